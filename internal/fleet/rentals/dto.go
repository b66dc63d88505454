package rentals

import "renta-autos-backend/internal/platform/dates"

type CreateRentaRequest struct {
	AutoID      string   `json:"auto_id" binding:"required"`
	ClienteID   string   `json:"cliente_id" binding:"required"`
	FechaInicio string   `json:"fecha_inicio" binding:"required"`
	FechaFin    *string  `json:"fecha_fin"`
	Costo       *float64 `json:"costo" binding:"required"`
}

type UpdateRentaRequest struct {
	FechaInicio *string  `json:"fecha_inicio"`
	FechaFin    *string  `json:"fecha_fin"`
	Costo       *float64 `json:"costo"`
	Estado      *string  `json:"estado"`
}

type RentaResponse struct {
	ID          string  `json:"_id"`
	AutoID      string  `json:"auto_id"`
	ClienteID   string  `json:"cliente_id"`
	FechaInicio string  `json:"fecha_inicio"`
	FechaFin    *string `json:"fecha_fin"`
	Costo       float64 `json:"costo"`
	Estado      string  `json:"estado"`
}

func toResponse(r *Renta) RentaResponse {
	resp := RentaResponse{
		ID:          r.ID,
		AutoID:      r.AutoID,
		ClienteID:   r.ClienteID,
		FechaInicio: dates.Format(r.FechaInicio),
		Costo:       r.Costo,
		Estado:      r.Estado,
	}
	if r.FechaFin.Valid {
		s := dates.Format(r.FechaFin.Time)
		resp.FechaFin = &s
	}
	return resp
}

// rentaItem decorates a listing row with the vehicle and customer
// names for the HTML table.
type rentaItem struct {
	RentaResponse
	Auto    string
	Cliente string
}
