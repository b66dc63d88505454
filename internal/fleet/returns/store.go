package returns

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type RentaOption struct {
	ID     string
	Nombre string
}

type Store interface {
	GetRenta(ctx context.Context, id string) (*RentaRef, error)
	CloseRenta(ctx context.Context, id string, endedAt time.Time) error
	SetVehicleAvailability(ctx context.Context, autoID string, available bool) error
	InsertDevolucion(ctx context.Context, d *Devolucion) error
	InsertAlerta(ctx context.Context, a *Alerta) error
	ListDecorated(ctx context.Context) ([]decoratedRow, error)
	ActiveRentaOptions(ctx context.Context) ([]RentaOption, error)
}

type decoratedRow struct {
	Devolucion
	Auto    sql.NullString
	Cliente sql.NullString
}

type SQLStore struct{ db *sql.DB }

func NewStore(db *sql.DB) Store { return &SQLStore{db: db} }

func (s *SQLStore) GetRenta(ctx context.Context, id string) (*RentaRef, error) {
	var r RentaRef
	err := s.db.QueryRowContext(ctx, `SELECT id, auto_id, cliente_id FROM rentas WHERE id = ?`, id).
		Scan(&r.ID, &r.AutoID, &r.ClienteID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SQLStore) CloseRenta(ctx context.Context, id string, endedAt time.Time) error {
	const q = `UPDATE rentas SET estado = 'devuelta', fecha_fin = ? WHERE id = ?`
	_, err := s.db.ExecContext(ctx, q, endedAt, id)
	return err
}

func (s *SQLStore) SetVehicleAvailability(ctx context.Context, autoID string, available bool) error {
	_, err := s.db.ExecContext(ctx, `UPDATE autos SET disponible = ? WHERE id = ?`, available, autoID)
	return err
}

func (s *SQLStore) InsertDevolucion(ctx context.Context, d *Devolucion) error {
	const q = `
INSERT INTO devoluciones (id, renta_id, auto_id, fecha_devolucion, condicion, observaciones)
VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, d.ID, d.RentaID, d.AutoID, d.FechaDevolucion, d.Condicion, d.Observaciones)
	return err
}

func (s *SQLStore) InsertAlerta(ctx context.Context, a *Alerta) error {
	const q = `
INSERT INTO alertas (id, auto_id, fecha_alerta, descripcion, condicion)
VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, a.ID, a.AutoID, a.FechaAlerta, a.Descripcion, a.Condicion)
	return err
}

func (s *SQLStore) ListDecorated(ctx context.Context) ([]decoratedRow, error) {
	const q = `
SELECT d.id, d.renta_id, d.auto_id, d.fecha_devolucion, d.condicion, d.observaciones,
       CONCAT(a.marca, ' ', a.modelo),
       CONCAT(c.nombre, ' ', c.apellido)
FROM devoluciones d
LEFT JOIN rentas r ON r.id = d.renta_id
LEFT JOIN autos a ON a.id = d.auto_id
LEFT JOIN clientes c ON c.id = r.cliente_id
ORDER BY d.fecha_devolucion DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []decoratedRow
	for rows.Next() {
		var r decoratedRow
		if err := rows.Scan(&r.ID, &r.RentaID, &r.AutoID, &r.FechaDevolucion, &r.Condicion, &r.Observaciones, &r.Auto, &r.Cliente); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ActiveRentaOptions feeds the return form: one entry per active
// rental, labeled with the vehicle and customer.
func (s *SQLStore) ActiveRentaOptions(ctx context.Context) ([]RentaOption, error) {
	const q = `
SELECT r.id,
       CONCAT(COALESCE(a.marca, ''), ' ', COALESCE(a.modelo, ''), ' / ',
              COALESCE(c.nombre, ''), ' ', COALESCE(c.apellido, ''))
FROM rentas r
LEFT JOIN autos a ON a.id = r.auto_id
LEFT JOIN clientes c ON c.id = r.cliente_id
WHERE r.estado = 'activa'
ORDER BY r.fecha_inicio DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RentaOption
	for rows.Next() {
		var o RentaOption
		if err := rows.Scan(&o.ID, &o.Nombre); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
