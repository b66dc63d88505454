package rentals

import (
	"context"
	"database/sql"
	"time"

	"renta-autos-backend/internal/platform/dates"
	"renta-autos-backend/internal/platform/httpapi"
	"renta-autos-backend/internal/platform/ids"
)

// recentWindowDays approximates "the last two months".
const recentWindowDays = 60

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

// Create registers a rental and marks the vehicle unavailable. The two
// writes are independent; there is no rollback of the rental row if
// the availability update fails.
func (s *Service) Create(ctx context.Context, req CreateRentaRequest) (*RentaResponse, error) {
	if req.AutoID == "" || req.ClienteID == "" || req.FechaInicio == "" || req.Costo == nil {
		return nil, httpapi.ErrInvalid("Faltan campos obligatorios en la renta")
	}
	if !ids.Valid(req.AutoID) || !ids.Valid(req.ClienteID) {
		return nil, httpapi.ErrInvalidID("Identificadores inválidos")
	}

	auto, err := s.store.GetVehicle(ctx, req.AutoID)
	if err != nil {
		return nil, err
	}
	if auto == nil {
		return nil, httpapi.ErrNotFound("Auto no encontrado")
	}
	if !auto.Disponible {
		return nil, httpapi.ErrConflict("El auto no está disponible")
	}

	fechaInicio, err := dates.Parse(req.FechaInicio)
	if err != nil {
		return nil, httpapi.ErrInvalid("Formato de fecha_inicio incorrecto")
	}

	r := &Renta{
		ID:          ids.New(),
		AutoID:      req.AutoID,
		ClienteID:   req.ClienteID,
		FechaInicio: fechaInicio,
		Costo:       *req.Costo,
		Estado:      EstadoActiva,
	}
	// an absent or unparsable optional end date is stored as null
	if req.FechaFin != nil && *req.FechaFin != "" {
		if t, err := dates.Parse(*req.FechaFin); err == nil {
			r.FechaFin = sql.NullTime{Time: t, Valid: true}
		}
	}

	if err := s.store.Insert(ctx, r); err != nil {
		return nil, err
	}
	if err := s.store.SetVehicleAvailability(ctx, req.AutoID, false); err != nil {
		return nil, err
	}

	resp := toResponse(r)
	return &resp, nil
}

// Update applies a partial update. The vehicle and customer references
// are immutable.
func (s *Service) Update(ctx context.Context, id string, req UpdateRentaRequest) (*RentaResponse, error) {
	if !ids.Valid(id) {
		return nil, httpapi.ErrInvalidID("Identificador de renta inválido")
	}

	var f UpdateFields
	if req.FechaInicio != nil {
		t, err := dates.Parse(*req.FechaInicio)
		if err != nil {
			return nil, httpapi.ErrInvalid("Formato de fecha_inicio incorrecto")
		}
		f.FechaInicio = &t
	}
	if req.FechaFin != nil && *req.FechaFin != "" {
		t, err := dates.Parse(*req.FechaFin)
		if err != nil {
			return nil, httpapi.ErrInvalid("Formato de fecha_fin incorrecto")
		}
		f.FechaFin = &t
	}
	f.Costo = req.Costo
	f.Estado = req.Estado

	matched, err := s.store.Update(ctx, id, f)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, httpapi.ErrNotFound("Renta no encontrada")
	}

	r, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, httpapi.ErrNotFound("Renta no encontrada")
	}
	resp := toResponse(r)
	return &resp, nil
}

// Recent returns rentals whose start date falls in the fixed 60-day
// window ending now.
func (s *Service) Recent(ctx context.Context) ([]RentaResponse, error) {
	threshold := s.clock.Now().AddDate(0, 0, -recentWindowDays)
	items, err := s.store.ListSince(ctx, threshold)
	if err != nil {
		return nil, err
	}
	out := make([]RentaResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	return out, nil
}

func (s *Service) ListDecorated(ctx context.Context) ([]rentaItem, error) {
	rows, err := s.store.ListDecorated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]rentaItem, 0, len(rows))
	for i := range rows {
		item := rentaItem{RentaResponse: toResponse(&rows[i].Renta)}
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

func (s *Service) AvailableVehicleOptions(ctx context.Context) ([]Option, error) {
	return s.store.AvailableVehicleOptions(ctx)
}

func (s *Service) CustomerOptions(ctx context.Context) ([]Option, error) {
	return s.store.CustomerOptions(ctx)
}
