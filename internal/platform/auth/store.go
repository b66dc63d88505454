package auth

import (
	"context"
	"database/sql"
	"errors"

	"renta-autos-backend/internal/platform/db"
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
}

type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	CountTx(ctx context.Context, tx db.DBTX) (int64, error)
	CreateTx(ctx context.Context, tx db.DBTX, u *User) error
}

type Store struct{ db *sql.DB }

func NewStore(conn *sql.DB) UserStore {
	return &Store{db: conn}
}

func (s *Store) GetByUsername(ctx context.Context, username string) (*User, error) {
	const q = `
SELECT id, username, password_hash, role
FROM usuarios
WHERE username = ?
LIMIT 1`
	var u User
	err := s.db.QueryRowContext(ctx, q, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) CountTx(ctx context.Context, tx db.DBTX) (int64, error) {
	var n int64
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM usuarios`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) CreateTx(ctx context.Context, tx db.DBTX, u *User) error {
	const q = `
INSERT INTO usuarios (id, username, password_hash, role)
VALUES (?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, u.ID, u.Username, u.PasswordHash, u.Role)
	return err
}
