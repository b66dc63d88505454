package vehicles

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

type Store interface {
	List(ctx context.Context) ([]Auto, error)
	ListAvailable(ctx context.Context) ([]Auto, error)
	Get(ctx context.Context, id string) (*Auto, error)
	Insert(ctx context.Context, a *Auto) error
	Update(ctx context.Context, id string, upd UpdateAutoRequest) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type SQLStore struct{ db *sql.DB }

func NewStore(db *sql.DB) Store { return &SQLStore{db: db} }

const autoColumns = `id, marca, modelo, anio, disponible`

func scanAuto(row interface{ Scan(...any) error }, a *Auto) error {
	return row.Scan(&a.ID, &a.Marca, &a.Modelo, &a.Anio, &a.Disponible)
}

func (s *SQLStore) List(ctx context.Context) ([]Auto, error) {
	return s.list(ctx, `SELECT `+autoColumns+` FROM autos ORDER BY id`)
}

func (s *SQLStore) ListAvailable(ctx context.Context) ([]Auto, error) {
	return s.list(ctx, `SELECT `+autoColumns+` FROM autos WHERE disponible = 1 ORDER BY id`)
}

func (s *SQLStore) list(ctx context.Context, q string) ([]Auto, error) {
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Auto
	for rows.Next() {
		var a Auto
		if err := scanAuto(rows, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLStore) Get(ctx context.Context, id string) (*Auto, error) {
	var a Auto
	err := scanAuto(s.db.QueryRowContext(ctx, `SELECT `+autoColumns+` FROM autos WHERE id = ?`, id), &a)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *SQLStore) Insert(ctx context.Context, a *Auto) error {
	const q = `
INSERT INTO autos (id, marca, modelo, anio, disponible)
VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, a.ID, a.Marca, a.Modelo, a.Anio, a.Disponible)
	return err
}

func (s *SQLStore) Update(ctx context.Context, id string, upd UpdateAutoRequest) (int64, error) {
	sb := strings.Builder{}
	sb.WriteString(`UPDATE autos SET id = id`)
	args := []any{}
	if upd.Marca != nil {
		sb.WriteString(`, marca = ?`)
		args = append(args, *upd.Marca)
	}
	if upd.Modelo != nil {
		sb.WriteString(`, modelo = ?`)
		args = append(args, *upd.Modelo)
	}
	if upd.Anio != nil {
		sb.WriteString(`, anio = ?`)
		args = append(args, *upd.Anio)
	}
	if upd.Disponible != nil {
		sb.WriteString(`, disponible = ?`)
		args = append(args, *upd.Disponible)
	}
	sb.WriteString(` WHERE id = ?`)
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQLStore) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM autos WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
