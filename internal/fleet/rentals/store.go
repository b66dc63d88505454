package rentals

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// UpdateFields carries the parsed partial update; nil means untouched.
type UpdateFields struct {
	FechaInicio *time.Time
	FechaFin    *time.Time
	Costo       *float64
	Estado      *string
}

type Option struct {
	ID     string
	Nombre string
}

type Store interface {
	GetVehicle(ctx context.Context, id string) (*VehicleRef, error)
	SetVehicleAvailability(ctx context.Context, id string, available bool) error
	Insert(ctx context.Context, r *Renta) error
	Get(ctx context.Context, id string) (*Renta, error)
	Update(ctx context.Context, id string, f UpdateFields) (int64, error)
	ListSince(ctx context.Context, threshold time.Time) ([]Renta, error)
	ListDecorated(ctx context.Context) ([]decoratedRow, error)
	AvailableVehicleOptions(ctx context.Context) ([]Option, error)
	CustomerOptions(ctx context.Context) ([]Option, error)
}

type decoratedRow struct {
	Renta
	Auto    sql.NullString
	Cliente sql.NullString
}

type SQLStore struct{ db *sql.DB }

func NewStore(db *sql.DB) Store { return &SQLStore{db: db} }

const rentaColumns = `id, auto_id, cliente_id, fecha_inicio, fecha_fin, costo, estado`

func scanRenta(row interface{ Scan(...any) error }, r *Renta) error {
	return row.Scan(&r.ID, &r.AutoID, &r.ClienteID, &r.FechaInicio, &r.FechaFin, &r.Costo, &r.Estado)
}

func (s *SQLStore) GetVehicle(ctx context.Context, id string) (*VehicleRef, error) {
	var v VehicleRef
	err := s.db.QueryRowContext(ctx, `SELECT id, disponible FROM autos WHERE id = ?`, id).Scan(&v.ID, &v.Disponible)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *SQLStore) SetVehicleAvailability(ctx context.Context, id string, available bool) error {
	_, err := s.db.ExecContext(ctx, `UPDATE autos SET disponible = ? WHERE id = ?`, available, id)
	return err
}

func (s *SQLStore) Insert(ctx context.Context, r *Renta) error {
	const q = `
INSERT INTO rentas (id, auto_id, cliente_id, fecha_inicio, fecha_fin, costo, estado)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, r.ID, r.AutoID, r.ClienteID, r.FechaInicio, r.FechaFin, r.Costo, r.Estado)
	return err
}

func (s *SQLStore) Get(ctx context.Context, id string) (*Renta, error) {
	var r Renta
	err := scanRenta(s.db.QueryRowContext(ctx, `SELECT `+rentaColumns+` FROM rentas WHERE id = ?`, id), &r)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SQLStore) Update(ctx context.Context, id string, f UpdateFields) (int64, error) {
	sb := strings.Builder{}
	sb.WriteString(`UPDATE rentas SET id = id`)
	args := []any{}
	if f.FechaInicio != nil {
		sb.WriteString(`, fecha_inicio = ?`)
		args = append(args, *f.FechaInicio)
	}
	if f.FechaFin != nil {
		sb.WriteString(`, fecha_fin = ?`)
		args = append(args, *f.FechaFin)
	}
	if f.Costo != nil {
		sb.WriteString(`, costo = ?`)
		args = append(args, *f.Costo)
	}
	if f.Estado != nil {
		sb.WriteString(`, estado = ?`)
		args = append(args, *f.Estado)
	}
	sb.WriteString(` WHERE id = ?`)
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQLStore) ListSince(ctx context.Context, threshold time.Time) ([]Renta, error) {
	const q = `SELECT ` + rentaColumns + ` FROM rentas WHERE fecha_inicio >= ? ORDER BY fecha_inicio DESC`
	rows, err := s.db.QueryContext(ctx, q, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Renta
	for rows.Next() {
		var r Renta
		if err := scanRenta(rows, &r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) ListDecorated(ctx context.Context) ([]decoratedRow, error) {
	const q = `
SELECT r.id, r.auto_id, r.cliente_id, r.fecha_inicio, r.fecha_fin, r.costo, r.estado,
       CONCAT(a.marca, ' ', a.modelo),
       CONCAT(c.nombre, ' ', c.apellido)
FROM rentas r
LEFT JOIN autos a ON a.id = r.auto_id
LEFT JOIN clientes c ON c.id = r.cliente_id
ORDER BY r.fecha_inicio DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []decoratedRow
	for rows.Next() {
		var r decoratedRow
		if err := rows.Scan(&r.ID, &r.AutoID, &r.ClienteID, &r.FechaInicio, &r.FechaFin, &r.Costo, &r.Estado, &r.Auto, &r.Cliente); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) AvailableVehicleOptions(ctx context.Context) ([]Option, error) {
	return s.options(ctx, `SELECT id, CONCAT(marca, ' ', modelo) FROM autos WHERE disponible = 1 ORDER BY marca, modelo`)
}

func (s *SQLStore) CustomerOptions(ctx context.Context) ([]Option, error) {
	return s.options(ctx, `SELECT id, CONCAT(nombre, ' ', apellido) FROM clientes ORDER BY apellido, nombre`)
}

func (s *SQLStore) options(ctx context.Context, q string) ([]Option, error) {
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Option
	for rows.Next() {
		var o Option
		if err := rows.Scan(&o.ID, &o.Nombre); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
