package vehicles

import (
	"context"
	"database/sql"
	"strings"

	"renta-autos-backend/internal/platform/httpapi"
	"renta-autos-backend/internal/platform/ids"
)

type Service struct {
	store Store
}

func NewService(db *sql.DB) *Service { return &Service{store: NewStore(db)} }

func (s *Service) List(ctx context.Context) ([]AutoResponse, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

func (s *Service) ListAvailable(ctx context.Context) ([]AutoResponse, error) {
	items, err := s.store.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

func (s *Service) Get(ctx context.Context, id string) (*AutoResponse, error) {
	if !ids.Valid(id) {
		return nil, httpapi.ErrInvalidID("Identificador de auto inválido")
	}
	a, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, httpapi.ErrNotFound("Auto no encontrado")
	}
	resp := toResponse(a)
	return &resp, nil
}

// Create registers a vehicle. Disponible defaults to true when the
// payload does not say otherwise.
func (s *Service) Create(ctx context.Context, req CreateAutoRequest) (*AutoResponse, error) {
	if strings.TrimSpace(req.Marca) == "" || strings.TrimSpace(req.Modelo) == "" || req.Anio == 0 {
		return nil, httpapi.ErrInvalid("Datos de auto no proporcionados")
	}

	disponible := true
	if req.Disponible != nil {
		disponible = *req.Disponible
	}

	a := &Auto{
		ID:         ids.New(),
		Marca:      req.Marca,
		Modelo:     req.Modelo,
		Anio:       req.Anio,
		Disponible: disponible,
	}
	if err := s.store.Insert(ctx, a); err != nil {
		return nil, err
	}
	resp := toResponse(a)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateAutoRequest) (*AutoResponse, error) {
	if !ids.Valid(id) {
		return nil, httpapi.ErrInvalidID("Identificador de auto inválido")
	}
	matched, err := s.store.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, httpapi.ErrNotFound("Auto no encontrado")
	}
	a, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, httpapi.ErrNotFound("Auto no encontrado")
	}
	resp := toResponse(a)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !ids.Valid(id) {
		return httpapi.ErrInvalidID("Identificador de auto inválido")
	}
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return httpapi.ErrNotFound("Auto no encontrado")
	}
	return nil
}

func toResponses(items []Auto) []AutoResponse {
	out := make([]AutoResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	return out
}
