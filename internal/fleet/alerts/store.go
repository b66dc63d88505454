package alerts

import (
	"context"
	"database/sql"
)

type Store interface {
	List(ctx context.Context) ([]Alerta, error)
	ListDecorated(ctx context.Context) ([]decoratedRow, error)
}

type decoratedRow struct {
	Alerta
	Auto sql.NullString
}

type SQLStore struct{ db *sql.DB }

func NewStore(db *sql.DB) Store { return &SQLStore{db: db} }

func (s *SQLStore) List(ctx context.Context) ([]Alerta, error) {
	const q = `SELECT id, auto_id, fecha_alerta, descripcion, condicion FROM alertas ORDER BY fecha_alerta DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Alerta
	for rows.Next() {
		var a Alerta
		if err := rows.Scan(&a.ID, &a.AutoID, &a.FechaAlerta, &a.Descripcion, &a.Condicion); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLStore) ListDecorated(ctx context.Context) ([]decoratedRow, error) {
	const q = `
SELECT al.id, al.auto_id, al.fecha_alerta, al.descripcion, al.condicion,
       CONCAT(a.marca, ' ', a.modelo)
FROM alertas al
LEFT JOIN autos a ON a.id = al.auto_id
ORDER BY al.fecha_alerta DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []decoratedRow
	for rows.Next() {
		var r decoratedRow
		if err := rows.Scan(&r.ID, &r.AutoID, &r.FechaAlerta, &r.Descripcion, &r.Condicion, &r.Auto); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
