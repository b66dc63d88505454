package repairs

import (
	"context"
	"database/sql"
	"strings"
)

type VehicleOption struct {
	ID     string
	Nombre string
}

type Store interface {
	Insert(ctx context.Context, r *Reparacion) error
	Query(ctx context.Context, f Filter) ([]Reparacion, error)
	ListDecorated(ctx context.Context) ([]decoratedRow, error)
	VehicleOptions(ctx context.Context) ([]VehicleOption, error)
}

type decoratedRow struct {
	Reparacion
	Auto sql.NullString
}

type SQLStore struct{ db *sql.DB }

func NewStore(db *sql.DB) Store { return &SQLStore{db: db} }

func (s *SQLStore) Insert(ctx context.Context, r *Reparacion) error {
	const q = `
INSERT INTO reparaciones (id, auto_id, descripcion, fecha, costo)
VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, r.ID, r.AutoID, r.Descripcion, r.Fecha, r.Costo)
	return err
}

func (s *SQLStore) Query(ctx context.Context, f Filter) ([]Reparacion, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT id, auto_id, descripcion, fecha, costo FROM reparaciones WHERE 1=1`)
	args := []any{}
	if f.Desde != nil {
		sb.WriteString(` AND fecha >= ?`)
		args = append(args, *f.Desde)
	}
	if f.Hasta != nil {
		sb.WriteString(` AND fecha <= ?`)
		args = append(args, *f.Hasta)
	}
	if f.CostoMax != nil {
		sb.WriteString(` AND costo <= ?`)
		args = append(args, *f.CostoMax)
	}
	sb.WriteString(` ORDER BY fecha`)

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Reparacion
	for rows.Next() {
		var r Reparacion
		if err := rows.Scan(&r.ID, &r.AutoID, &r.Descripcion, &r.Fecha, &r.Costo); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListDecorated joins the vehicle name for the HTML table. References
// are informal, so the join is LEFT and a dangling auto_id renders
// blank.
func (s *SQLStore) ListDecorated(ctx context.Context) ([]decoratedRow, error) {
	const q = `
SELECT r.id, r.auto_id, r.descripcion, r.fecha, r.costo,
       CONCAT(a.marca, ' ', a.modelo)
FROM reparaciones r
LEFT JOIN autos a ON a.id = r.auto_id
ORDER BY r.fecha`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []decoratedRow
	for rows.Next() {
		var r decoratedRow
		if err := rows.Scan(&r.ID, &r.AutoID, &r.Descripcion, &r.Fecha, &r.Costo, &r.Auto); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) VehicleOptions(ctx context.Context) ([]VehicleOption, error) {
	const q = `SELECT id, CONCAT(marca, ' ', modelo) FROM autos ORDER BY marca, modelo`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VehicleOption
	for rows.Next() {
		var v VehicleOption
		if err := rows.Scan(&v.ID, &v.Nombre); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
