package repairs

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"renta-autos-backend/internal/platform/dates"
	"renta-autos-backend/internal/platform/httpapi"
	"renta-autos-backend/internal/platform/ids"
)

type Service struct {
	store Store
}

func NewService(db *sql.DB) *Service { return &Service{store: NewStore(db)} }

func (s *Service) Create(ctx context.Context, req CreateReparacionRequest) (*ReparacionResponse, error) {
	if strings.TrimSpace(req.Descripcion) == "" || req.AutoID == "" || req.Fecha == "" || req.Costo == nil {
		return nil, httpapi.ErrInvalid("Faltan campos obligatorios en la reparación")
	}
	if !ids.Valid(req.AutoID) {
		return nil, httpapi.ErrInvalidID("Identificador de auto inválido")
	}
	fecha, err := dates.Parse(req.Fecha)
	if err != nil {
		return nil, httpapi.ErrInvalid("Formato de fecha incorrecto. Use AAAA-MM-DD")
	}

	r := &Reparacion{
		ID:          ids.New(),
		AutoID:      req.AutoID,
		Descripcion: req.Descripcion,
		Fecha:       fecha,
		Costo:       *req.Costo,
	}
	if err := s.store.Insert(ctx, r); err != nil {
		return nil, err
	}
	resp := toResponse(r)
	return &resp, nil
}

// Query filters repairs by an inclusive date range and cost ceiling.
// The raw strings come straight from the query string; empty means
// unbounded, an unparsable date bound is ignored, a non-numeric cost
// ceiling is an error.
func (s *Service) Query(ctx context.Context, inicio, fin, costoMax string) ([]ReparacionResponse, error) {
	var f Filter
	if inicio != "" {
		if t, err := dates.Parse(inicio); err == nil {
			f.Desde = &t
		}
	}
	if fin != "" {
		if t, err := dates.Parse(fin); err == nil {
			f.Hasta = &t
		}
	}
	if costoMax != "" {
		v, err := strconv.ParseFloat(costoMax, 64)
		if err != nil {
			return nil, httpapi.ErrInvalid("costo_max debe ser numérico")
		}
		f.CostoMax = &v
	}

	items, err := s.store.Query(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]ReparacionResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	return out, nil
}

func (s *Service) ListDecorated(ctx context.Context) ([]reparacionItem, error) {
	rows, err := s.store.ListDecorated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]reparacionItem, 0, len(rows))
	for i := range rows {
		item := reparacionItem{ReparacionResponse: toResponse(&rows[i].Reparacion)}
		if rows[i].Auto.Valid {
			item.Auto = rows[i].Auto.String
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *Service) VehicleOptions(ctx context.Context) ([]VehicleOption, error) {
	return s.store.VehicleOptions(ctx)
}
