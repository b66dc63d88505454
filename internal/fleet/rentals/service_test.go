package rentals

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"renta-autos-backend/internal/platform/httpapi"
	"renta-autos-backend/internal/platform/ids"
)

type mockStore struct {
	getVehicleFn      func(ctx context.Context, id string) (*VehicleRef, error)
	setAvailabilityFn func(ctx context.Context, id string, available bool) error
	insertFn          func(ctx context.Context, r *Renta) error
	getFn             func(ctx context.Context, id string) (*Renta, error)
	updateFn          func(ctx context.Context, id string, f UpdateFields) (int64, error)
	listSinceFn       func(ctx context.Context, threshold time.Time) ([]Renta, error)
}

var _ Store = (*mockStore)(nil)

func (m *mockStore) GetVehicle(ctx context.Context, id string) (*VehicleRef, error) {
	if m.getVehicleFn == nil {
		return nil, nil
	}
	return m.getVehicleFn(ctx, id)
}

func (m *mockStore) SetVehicleAvailability(ctx context.Context, id string, available bool) error {
	if m.setAvailabilityFn == nil {
		return nil
	}
	return m.setAvailabilityFn(ctx, id, available)
}

func (m *mockStore) Insert(ctx context.Context, r *Renta) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, r)
}

func (m *mockStore) Get(ctx context.Context, id string) (*Renta, error) {
	if m.getFn == nil {
		return nil, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockStore) Update(ctx context.Context, id string, f UpdateFields) (int64, error) {
	if m.updateFn == nil {
		return 0, nil
	}
	return m.updateFn(ctx, id, f)
}

func (m *mockStore) ListSince(ctx context.Context, threshold time.Time) ([]Renta, error) {
	if m.listSinceFn == nil {
		return nil, nil
	}
	return m.listSinceFn(ctx, threshold)
}

func (m *mockStore) ListDecorated(ctx context.Context) ([]decoratedRow, error) { return nil, nil }

func (m *mockStore) AvailableVehicleOptions(ctx context.Context) ([]Option, error) { return nil, nil }

func (m *mockStore) CustomerOptions(ctx context.Context) ([]Option, error) { return nil, nil }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func costo(v float64) *float64 { return &v }

func strptr(s string) *string { return &s }

func TestCreate_Success(t *testing.T) {
	ctx := context.Background()
	autoID := ids.New()
	clienteID := ids.New()

	var inserted *Renta
	var released []bool
	m := &mockStore{
		getVehicleFn: func(ctx context.Context, id string) (*VehicleRef, error) {
			return &VehicleRef{ID: id, Disponible: true}, nil
		},
		insertFn: func(ctx context.Context, r *Renta) error {
			inserted = r
			return nil
		},
		setAvailabilityFn: func(ctx context.Context, id string, available bool) error {
			released = append(released, available)
			return nil
		},
	}
	svc := &Service{store: m, clock: realClock{}}

	resp, err := svc.Create(ctx, CreateRentaRequest{
		AutoID:      autoID,
		ClienteID:   clienteID,
		FechaInicio: "2026-03-01",
		Costo:       costo(350),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.Equal(t, EstadoActiva, resp.Estado)
	require.Equal(t, "2026-03-01", resp.FechaInicio)
	require.Nil(t, resp.FechaFin)
	require.True(t, ids.Valid(resp.ID))

	require.NotNil(t, inserted)
	require.False(t, inserted.FechaFin.Valid)
	require.Equal(t, []bool{false}, released)
}

func TestCreate_VehicleUnavailable(t *testing.T) {
	ctx := context.Background()

	insertCalled := false
	m := &mockStore{
		getVehicleFn: func(ctx context.Context, id string) (*VehicleRef, error) {
			return &VehicleRef{ID: id, Disponible: false}, nil
		},
		insertFn: func(ctx context.Context, r *Renta) error {
			insertCalled = true
			return nil
		},
	}
	svc := &Service{store: m, clock: realClock{}}

	_, err := svc.Create(ctx, CreateRentaRequest{
		AutoID:      ids.New(),
		ClienteID:   ids.New(),
		FechaInicio: "2026-03-01",
		Costo:       costo(350),
	})
	require.Error(t, err)
	require.Equal(t, httpapi.CodeConflict, err.(*httpapi.APIError).Code)
	require.False(t, insertCalled)
}

func TestCreate_VehicleNotFound(t *testing.T) {
	svc := &Service{store: &mockStore{}, clock: realClock{}}

	_, err := svc.Create(context.Background(), CreateRentaRequest{
		AutoID:      ids.New(),
		ClienteID:   ids.New(),
		FechaInicio: "2026-03-01",
		Costo:       costo(350),
	})
	require.Error(t, err)
	require.Equal(t, httpapi.CodeNotFound, err.(*httpapi.APIError).Code)
}

func TestCreate_BadStartDate(t *testing.T) {
	m := &mockStore{
		getVehicleFn: func(ctx context.Context, id string) (*VehicleRef, error) {
			return &VehicleRef{ID: id, Disponible: true}, nil
		},
	}
	svc := &Service{store: m, clock: realClock{}}

	_, err := svc.Create(context.Background(), CreateRentaRequest{
		AutoID:      ids.New(),
		ClienteID:   ids.New(),
		FechaInicio: "01/03/2026",
		Costo:       costo(350),
	})
	require.Error(t, err)
	require.Equal(t, httpapi.CodeInvalidArgument, err.(*httpapi.APIError).Code)
}

func TestCreate_UnparsableEndDateStoredNull(t *testing.T) {
	var inserted *Renta
	m := &mockStore{
		getVehicleFn: func(ctx context.Context, id string) (*VehicleRef, error) {
			return &VehicleRef{ID: id, Disponible: true}, nil
		},
		insertFn: func(ctx context.Context, r *Renta) error {
			inserted = r
			return nil
		},
	}
	svc := &Service{store: m, clock: realClock{}}

	resp, err := svc.Create(context.Background(), CreateRentaRequest{
		AutoID:      ids.New(),
		ClienteID:   ids.New(),
		FechaInicio: "2026-03-01",
		FechaFin:    strptr("pronto"),
		Costo:       costo(350),
	})
	require.NoError(t, err)
	require.Nil(t, resp.FechaFin)
	require.False(t, inserted.FechaFin.Valid)
}

func TestCreate_InvalidIDs(t *testing.T) {
	svc := &Service{store: &mockStore{}, clock: realClock{}}

	_, err := svc.Create(context.Background(), CreateRentaRequest{
		AutoID:      "no-es-ulid",
		ClienteID:   ids.New(),
		FechaInicio: "2026-03-01",
		Costo:       costo(350),
	})
	require.Error(t, err)
	require.Equal(t, httpapi.CodeInvalidID, err.(*httpapi.APIError).Code)
}

func TestUpdate_NotFound(t *testing.T) {
	m := &mockStore{
		updateFn: func(ctx context.Context, id string, f UpdateFields) (int64, error) {
			return 0, nil
		},
	}
	svc := &Service{store: m, clock: realClock{}}

	_, err := svc.Update(context.Background(), ids.New(), UpdateRentaRequest{Costo: costo(100)})
	require.Error(t, err)
	require.Equal(t, httpapi.CodeNotFound, err.(*httpapi.APIError).Code)
}

func TestRecent_WindowThreshold(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	var got time.Time
	m := &mockStore{
		listSinceFn: func(ctx context.Context, threshold time.Time) ([]Renta, error) {
			got = threshold
			return []Renta{}, nil
		},
	}
	svc := &Service{store: m, clock: fixedClock{t: now}}

	items, err := svc.Recent(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
	require.Equal(t, now.AddDate(0, 0, -60), got)
}
