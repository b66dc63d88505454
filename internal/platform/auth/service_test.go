package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"renta-autos-backend/internal/platform/db"
	"renta-autos-backend/internal/platform/httpapi"
)

type mockUserStore struct {
	byUsernameFn func(ctx context.Context, username string) (*User, error)
	countTxFn    func(ctx context.Context, tx db.DBTX) (int64, error)
	createTxFn   func(ctx context.Context, tx db.DBTX, u *User) error
}

var _ UserStore = (*mockUserStore)(nil)

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*User, error) {
	if m.byUsernameFn == nil {
		return nil, nil
	}
	return m.byUsernameFn(ctx, username)
}

func (m *mockUserStore) CountTx(ctx context.Context, tx db.DBTX) (int64, error) {
	if m.countTxFn == nil {
		return 0, nil
	}
	return m.countTxFn(ctx, tx)
}

func (m *mockUserStore) CreateTx(ctx context.Context, tx db.DBTX, u *User) error {
	if m.createTxFn == nil {
		return nil
	}
	return m.createTxFn(ctx, tx, u)
}

func passThroughTx(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
	return fn(ctx, nil)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin_Success(t *testing.T) {
	hash := mustHash(t, "secreto")
	m := &mockUserStore{
		byUsernameFn: func(ctx context.Context, username string) (*User, error) {
			return &User{ID: "01ARZ3NDEKTSV4RRFFQ69G5FAV", Username: username, PasswordHash: hash, Role: RoleOwner}, nil
		},
	}
	svc := &Service{store: m, sessions: NewSessionManager(time.Hour)}

	sess, err := svc.Login(context.Background(), "owner", "secreto")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	require.Equal(t, RoleOwner, sess.Role)

	got, ok := svc.sessions.Get(sess.Token)
	require.True(t, ok)
	require.Equal(t, "owner", got.Username)
}

func TestLogin_BadCredentialsIndistinguishable(t *testing.T) {
	hash := mustHash(t, "secreto")
	m := &mockUserStore{
		byUsernameFn: func(ctx context.Context, username string) (*User, error) {
			if username == "owner" {
				return &User{ID: "01ARZ3NDEKTSV4RRFFQ69G5FAV", Username: username, PasswordHash: hash, Role: RoleOwner}, nil
			}
			return nil, nil
		},
	}
	svc := &Service{store: m, sessions: NewSessionManager(time.Hour)}

	_, errUnknown := svc.Login(context.Background(), "nadie", "secreto")
	_, errWrongPw := svc.Login(context.Background(), "owner", "incorrecta")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	require.Equal(t, errUnknown.Error(), errWrongPw.Error())
	require.Equal(t, httpapi.CodeUnauthenticated, errUnknown.(*httpapi.APIError).Code)
}

func TestSeed_CreatesThreeAccounts(t *testing.T) {
	var created []*User
	m := &mockUserStore{
		createTxFn: func(ctx context.Context, tx db.DBTX, u *User) error {
			created = append(created, u)
			return nil
		},
	}
	svc := &Service{store: m, tx: passThroughTx}

	err := svc.Seed(context.Background(), "pw-clerk", "pw-manager", "pw-owner")
	require.NoError(t, err)
	require.Len(t, created, 3)

	byName := make(map[string]*User)
	for _, u := range created {
		byName[u.Username] = u
	}
	require.Equal(t, RoleClerk, byName["clerk"].Role)
	require.Equal(t, RoleManager, byName["manager"].Role)
	require.Equal(t, RoleOwner, byName["owner"].Role)

	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(byName["owner"].PasswordHash), []byte("pw-owner")))
}

func TestSeed_SecondCallConflict(t *testing.T) {
	createCalled := false
	m := &mockUserStore{
		countTxFn: func(ctx context.Context, tx db.DBTX) (int64, error) {
			return 3, nil
		},
		createTxFn: func(ctx context.Context, tx db.DBTX, u *User) error {
			createCalled = true
			return nil
		},
	}
	svc := &Service{store: m, tx: passThroughTx}

	err := svc.Seed(context.Background(), "pw-clerk", "pw-manager", "pw-owner")
	require.Error(t, err)
	require.Equal(t, httpapi.CodeConflict, err.(*httpapi.APIError).Code)
	require.False(t, createCalled)
}

func TestSeed_MissingPassword(t *testing.T) {
	txCalled := false
	svc := &Service{store: &mockUserStore{}, tx: func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
		txCalled = true
		return fn(ctx, nil)
	}}

	err := svc.Seed(context.Background(), "pw-clerk", "", "pw-owner")
	require.Error(t, err)
	require.Equal(t, httpapi.CodeInvalidArgument, err.(*httpapi.APIError).Code)
	require.False(t, txCalled)
}

func TestSessionManager_Expiry(t *testing.T) {
	sm := NewSessionManager(30 * time.Minute)
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return base }

	sess := sm.Create("01ARZ3NDEKTSV4RRFFQ69G5FAV", "clerk", RoleClerk)

	_, ok := sm.Get(sess.Token)
	require.True(t, ok)

	sm.now = func() time.Time { return base.Add(31 * time.Minute) }
	_, ok = sm.Get(sess.Token)
	require.False(t, ok)

	// expired entry is dropped, a later Get inside the window still misses
	sm.now = func() time.Time { return base.Add(10 * time.Minute) }
	_, ok = sm.Get(sess.Token)
	require.False(t, ok)
}

func TestSessionManager_Delete(t *testing.T) {
	sm := NewSessionManager(time.Hour)
	sess := sm.Create("01ARZ3NDEKTSV4RRFFQ69G5FAV", "clerk", RoleClerk)

	sm.Delete(sess.Token)
	_, ok := sm.Get(sess.Token)
	require.False(t, ok)
}
