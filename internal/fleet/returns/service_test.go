package returns

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"renta-autos-backend/internal/platform/httpapi"
	"renta-autos-backend/internal/platform/ids"
)

type mockStore struct {
	getRentaFn        func(ctx context.Context, id string) (*RentaRef, error)
	closeRentaFn      func(ctx context.Context, id string, endedAt time.Time) error
	setAvailabilityFn func(ctx context.Context, autoID string, available bool) error
	insertDevFn       func(ctx context.Context, d *Devolucion) error
	insertAlertaFn    func(ctx context.Context, a *Alerta) error
}

var _ Store = (*mockStore)(nil)

func (m *mockStore) GetRenta(ctx context.Context, id string) (*RentaRef, error) {
	if m.getRentaFn == nil {
		return nil, nil
	}
	return m.getRentaFn(ctx, id)
}

func (m *mockStore) CloseRenta(ctx context.Context, id string, endedAt time.Time) error {
	if m.closeRentaFn == nil {
		return nil
	}
	return m.closeRentaFn(ctx, id, endedAt)
}

func (m *mockStore) SetVehicleAvailability(ctx context.Context, autoID string, available bool) error {
	if m.setAvailabilityFn == nil {
		return nil
	}
	return m.setAvailabilityFn(ctx, autoID, available)
}

func (m *mockStore) InsertDevolucion(ctx context.Context, d *Devolucion) error {
	if m.insertDevFn == nil {
		return nil
	}
	return m.insertDevFn(ctx, d)
}

func (m *mockStore) InsertAlerta(ctx context.Context, a *Alerta) error {
	if m.insertAlertaFn == nil {
		return nil
	}
	return m.insertAlertaFn(ctx, a)
}

func (m *mockStore) ListDecorated(ctx context.Context) ([]decoratedRow, error) { return nil, nil }

func (m *mockStore) ActiveRentaOptions(ctx context.Context) ([]RentaOption, error) { return nil, nil }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func rentaStore(autoID string, alerts *[]Alerta, availability *[]bool) *mockStore {
	return &mockStore{
		getRentaFn: func(ctx context.Context, id string) (*RentaRef, error) {
			return &RentaRef{ID: id, AutoID: autoID, ClienteID: ids.New()}, nil
		},
		setAvailabilityFn: func(ctx context.Context, id string, available bool) error {
			if availability != nil {
				*availability = append(*availability, available)
			}
			return nil
		},
		insertAlertaFn: func(ctx context.Context, a *Alerta) error {
			if alerts != nil {
				*alerts = append(*alerts, *a)
			}
			return nil
		},
	}
}

func TestCreate_BadConditionRaisesAlert(t *testing.T) {
	autoID := ids.New()
	now := time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)

	var alerts []Alerta
	var availability []bool
	svc := &Service{store: rentaStore(autoID, &alerts, &availability), clock: fixedClock{t: now}}

	resp, err := svc.Create(context.Background(), CreateDevolucionRequest{
		RentaID:   ids.New(),
		Condicion: "  Dañado ",
	})
	require.NoError(t, err)
	require.Equal(t, "  Dañado ", resp.Condicion)

	require.Len(t, alerts, 1)
	require.Equal(t, autoID, alerts[0].AutoID)
	require.Equal(t, "dañado", alerts[0].Condicion)
	require.Equal(t, "Vehículo devuelto en mal estado", alerts[0].Descripcion)
	require.Equal(t, now, alerts[0].FechaAlerta)

	require.Equal(t, []bool{true}, availability)
}

func TestCreate_CombiningAccentStillMatches(t *testing.T) {
	// "dañado" typed with n plus a combining tilde
	var alerts []Alerta
	svc := &Service{store: rentaStore(ids.New(), &alerts, nil), clock: fixedClock{t: time.Now()}}

	_, err := svc.Create(context.Background(), CreateDevolucionRequest{
		RentaID:   ids.New(),
		Condicion: "dañado",
	})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
}

func TestCreate_GoodConditionNoAlert(t *testing.T) {
	var alerts []Alerta
	svc := &Service{store: rentaStore(ids.New(), &alerts, nil), clock: fixedClock{t: time.Now()}}

	resp, err := svc.Create(context.Background(), CreateDevolucionRequest{
		RentaID:   ids.New(),
		Condicion: "excelente",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.Empty(t, alerts)
}

func TestCreate_RentaNotFound(t *testing.T) {
	svc := &Service{store: &mockStore{}, clock: fixedClock{t: time.Now()}}

	_, err := svc.Create(context.Background(), CreateDevolucionRequest{
		RentaID:   ids.New(),
		Condicion: "bueno",
	})
	require.Error(t, err)
	require.Equal(t, httpapi.CodeNotFound, err.(*httpapi.APIError).Code)
}

func TestCreate_MissingFields(t *testing.T) {
	svc := &Service{store: &mockStore{}, clock: fixedClock{t: time.Now()}}

	_, err := svc.Create(context.Background(), CreateDevolucionRequest{RentaID: ids.New()})
	require.Error(t, err)
	require.Equal(t, httpapi.CodeInvalidArgument, err.(*httpapi.APIError).Code)
}

func TestCreate_ObservacionesOptional(t *testing.T) {
	var dev *Devolucion
	m := rentaStore(ids.New(), nil, nil)
	m.insertDevFn = func(ctx context.Context, d *Devolucion) error {
		dev = d
		return nil
	}
	svc := &Service{store: m, clock: fixedClock{t: time.Now()}}

	_, err := svc.Create(context.Background(), CreateDevolucionRequest{
		RentaID:   ids.New(),
		Condicion: "bueno",
	})
	require.NoError(t, err)
	require.False(t, dev.Observaciones.Valid)
}

func TestNormalizeCondition(t *testing.T) {
	tests := []struct {
		in   string
		want string
		bad  bool
	}{
		{"MALO", "malo", true},
		{" mal ", "mal", true},
		{"Defectuoso", "defectuoso", true},
		{"deteriorado", "deteriorado", true},
		{"bueno", "bueno", false},
		{"regular", "regular", false},
	}
	for _, tc := range tests {
		got := normalizeCondition(tc.in)
		require.Equal(t, tc.want, got)
		require.Equal(t, tc.bad, isBadCondition(got))
	}
}
