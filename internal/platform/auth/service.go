package auth

import (
	"context"
	"database/sql"

	"golang.org/x/crypto/bcrypt"

	"renta-autos-backend/internal/platform/db"
	"renta-autos-backend/internal/platform/httpapi"
	"renta-autos-backend/internal/platform/ids"
)

type Service struct {
	store    UserStore
	sessions *SessionManager
	tx       func(ctx context.Context, fn func(context.Context, db.DBTX) error) error
}

func NewService(conn *sql.DB, sessions *SessionManager) *Service {
	return &Service{
		store:    NewStore(conn),
		sessions: sessions,
		tx: func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return db.RunInTx(ctx, conn, nil, fn)
		},
	}
}

// Login verifies the password and opens a session. Unknown user and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	u, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, httpapi.ErrUnauthenticated("usuario o contraseña incorrectos")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, httpapi.ErrUnauthenticated("usuario o contraseña incorrectos")
	}

	sess := s.sessions.Create(u.ID, u.Username, u.Role)
	return &sess, nil
}

func (s *Service) Logout(token string) {
	s.sessions.Delete(token)
}

// Seed creates the three fixed accounts. Refuses to run once any user
// exists, so the setup route works exactly once.
func (s *Service) Seed(ctx context.Context, clerkPw, managerPw, ownerPw string) error {
	if clerkPw == "" || managerPw == "" || ownerPw == "" {
		return httpapi.ErrInvalid("se requieren las tres contraseñas")
	}

	seed := []struct {
		username string
		role     string
		password string
	}{
		{"clerk", RoleClerk, clerkPw},
		{"manager", RoleManager, managerPw},
		{"owner", RoleOwner, ownerPw},
	}

	return s.tx(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err := s.store.CountTx(ctx, tx)
		if err != nil {
			return err
		}
		if n > 0 {
			return httpapi.ErrConflict("los usuarios ya fueron creados")
		}
		for _, u := range seed {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			if err := s.store.CreateTx(ctx, tx, &User{
				ID:           ids.New(),
				Username:     u.username,
				PasswordHash: string(hash),
				Role:         u.role,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
