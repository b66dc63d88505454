package returns

import (
	"context"
	"database/sql"
	"time"

	"renta-autos-backend/internal/platform/httpapi"
	"renta-autos-backend/internal/platform/ids"
)

const alertDescription = "Vehículo devuelto en mal estado"

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type Service struct {
	store Store
	clock Clock
}

func NewService(db *sql.DB) *Service {
	return &Service{store: NewStore(db), clock: realClock{}}
}

// Create closes the rental, releases the vehicle, records the return
// and, when the condition falls in the bad-condition vocabulary,
// writes an alert. The writes are sequential and independent; there is
// no guard against returning an already-returned rental, re-running
// the sequence just overwrites the end date and re-releases the
// vehicle.
func (s *Service) Create(ctx context.Context, req CreateDevolucionRequest) (*DevolucionResponse, error) {
	if req.RentaID == "" || req.Condicion == "" {
		return nil, httpapi.ErrInvalid("Se requiere renta_id y condicion")
	}
	if !ids.Valid(req.RentaID) {
		return nil, httpapi.ErrInvalidID("Identificador de renta inválido")
	}

	renta, err := s.store.GetRenta(ctx, req.RentaID)
	if err != nil {
		return nil, err
	}
	if renta == nil {
		return nil, httpapi.ErrNotFound("Renta no encontrada")
	}

	now := s.clock.Now()

	if err := s.store.CloseRenta(ctx, renta.ID, now); err != nil {
		return nil, err
	}
	// vehicle id comes from the rental row, not re-validated
	if err := s.store.SetVehicleAvailability(ctx, renta.AutoID, true); err != nil {
		return nil, err
	}

	d := &Devolucion{
		ID:              ids.New(),
		RentaID:         renta.ID,
		AutoID:          renta.AutoID,
		FechaDevolucion: now,
		Condicion:       req.Condicion,
	}
	if req.Observaciones != nil && *req.Observaciones != "" {
		d.Observaciones = sql.NullString{String: *req.Observaciones, Valid: true}
	}
	if err := s.store.InsertDevolucion(ctx, d); err != nil {
		return nil, err
	}

	if cond := normalizeCondition(req.Condicion); isBadCondition(cond) {
		a := &Alerta{
			ID:          ids.New(),
			AutoID:      renta.AutoID,
			FechaAlerta: now,
			Descripcion: alertDescription,
			Condicion:   cond,
		}
		if err := s.store.InsertAlerta(ctx, a); err != nil {
			return nil, err
		}
	}

	resp := toResponse(d)
	return &resp, nil
}

func (s *Service) ListDecorated(ctx context.Context) ([]devolucionItem, error) {
	rows, err := s.store.ListDecorated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]devolucionItem, 0, len(rows))
	for i := range rows {
		item := devolucionItem{DevolucionResponse: toResponse(&rows[i].Devolucion)}
		if rows[i].Auto.Valid {
			item.Auto = rows[i].Auto.String
		}
		if rows[i].Cliente.Valid {
			item.Cliente = rows[i].Cliente.String
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *Service) ActiveRentaOptions(ctx context.Context) ([]RentaOption, error) {
	return s.store.ActiveRentaOptions(ctx)
}
