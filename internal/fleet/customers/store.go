package customers

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

type Store interface {
	List(ctx context.Context) ([]Cliente, error)
	Get(ctx context.Context, id string) (*Cliente, error)
	Insert(ctx context.Context, c *Cliente) error
	Update(ctx context.Context, id string, upd UpdateClienteRequest) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type SQLStore struct{ db *sql.DB }

func NewStore(db *sql.DB) Store { return &SQLStore{db: db} }

func (s *SQLStore) List(ctx context.Context) ([]Cliente, error) {
	const q = `SELECT id, nombre, apellido, telefono, direccion FROM clientes ORDER BY id`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Cliente
	for rows.Next() {
		var c Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Apellido, &c.Telefono, &c.Direccion); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLStore) Get(ctx context.Context, id string) (*Cliente, error) {
	const q = `SELECT id, nombre, apellido, telefono, direccion FROM clientes WHERE id = ?`
	var c Cliente
	err := s.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Nombre, &c.Apellido, &c.Telefono, &c.Direccion)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLStore) Insert(ctx context.Context, c *Cliente) error {
	const q = `
INSERT INTO clientes (id, nombre, apellido, telefono, direccion)
VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, c.ID, c.Nombre, c.Apellido, c.Telefono, c.Direccion)
	return err
}

func (s *SQLStore) Update(ctx context.Context, id string, upd UpdateClienteRequest) (int64, error) {
	sb := strings.Builder{}
	sb.WriteString(`UPDATE clientes SET id = id`)
	args := []any{}
	if upd.Nombre != nil {
		sb.WriteString(`, nombre = ?`)
		args = append(args, *upd.Nombre)
	}
	if upd.Apellido != nil {
		sb.WriteString(`, apellido = ?`)
		args = append(args, *upd.Apellido)
	}
	if upd.Telefono != nil {
		sb.WriteString(`, telefono = ?`)
		args = append(args, *upd.Telefono)
	}
	if upd.Direccion != nil {
		sb.WriteString(`, direccion = ?`)
		args = append(args, *upd.Direccion)
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
	res, err := s.db.ExecContext(ctx, `DELETE FROM clientes WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
