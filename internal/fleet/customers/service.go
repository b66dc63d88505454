package customers

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

func (s *Service) List(ctx context.Context) ([]ClienteResponse, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ClienteResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*ClienteResponse, error) {
	if !ids.Valid(id) {
		return nil, httpapi.ErrInvalidID("Identificador de cliente inválido")
	}
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, httpapi.ErrNotFound("Cliente no encontrado")
	}
	resp := toResponse(c)
	return &resp, nil
}

func (s *Service) Create(ctx context.Context, req CreateClienteRequest) (*ClienteResponse, error) {
	if strings.TrimSpace(req.Nombre) == "" || strings.TrimSpace(req.Apellido) == "" {
		return nil, httpapi.ErrInvalid("Datos de cliente no proporcionados")
	}

	c := &Cliente{
		ID:        ids.New(),
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
	}
	if err := s.store.Insert(ctx, c); err != nil {
		return nil, err
	}
	resp := toResponse(c)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateClienteRequest) (*ClienteResponse, error) {
	if !ids.Valid(id) {
		return nil, httpapi.ErrInvalidID("Identificador de cliente inválido")
	}
	matched, err := s.store.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, httpapi.ErrNotFound("Cliente no encontrado")
	}
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, httpapi.ErrNotFound("Cliente no encontrado")
	}
	resp := toResponse(c)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !ids.Valid(id) {
		return httpapi.ErrInvalidID("Identificador de cliente inválido")
	}
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return httpapi.ErrNotFound("Cliente no encontrado")
	}
	return nil
}
