package repairs

import "renta-autos-backend/internal/platform/dates"

type CreateReparacionRequest struct {
	AutoID      string   `json:"auto_id" binding:"required"`
	Descripcion string   `json:"descripcion" binding:"required"`
	Fecha       string   `json:"fecha" binding:"required"`
	Costo       *float64 `json:"costo" binding:"required"`
}

type ReparacionResponse struct {
	ID          string  `json:"_id"`
	AutoID      string  `json:"auto_id"`
	Descripcion string  `json:"descripcion"`
	Fecha       string  `json:"fecha"`
	Costo       float64 `json:"costo"`
}

func toResponse(r *Reparacion) ReparacionResponse {
	return ReparacionResponse{
		ID:          r.ID,
		AutoID:      r.AutoID,
		Descripcion: r.Descripcion,
		Fecha:       dates.Format(r.Fecha),
		Costo:       r.Costo,
	}
}

// reparacionItem is the HTML listing row, decorated with the vehicle
// name when the reference resolves.
type reparacionItem struct {
	ReparacionResponse
	Auto string
}
