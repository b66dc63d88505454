package alerts

import (
	"context"
	"database/sql"
)

type Service struct {
	store Store
}

func NewService(db *sql.DB) *Service { return &Service{store: NewStore(db)} }

func (s *Service) List(ctx context.Context) ([]AlertaResponse, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AlertaResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	return out, nil
}

func (s *Service) ListDecorated(ctx context.Context) ([]alertaItem, error) {
	rows, err := s.store.ListDecorated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]alertaItem, 0, len(rows))
	for i := range rows {
		item := alertaItem{AlertaResponse: toResponse(&rows[i].Alerta)}
		if rows[i].Auto.Valid {
			item.Auto = rows[i].Auto.String
		}
		out = append(out, item)
	}
	return out, nil
}
