package alerts

import "renta-autos-backend/internal/platform/dates"

type AlertaResponse struct {
	ID          string `json:"_id"`
	AutoID      string `json:"auto_id"`
	FechaAlerta string `json:"fecha_alerta"`
	Descripcion string `json:"descripcion"`
	Condicion   string `json:"condicion"`
}

func toResponse(a *Alerta) AlertaResponse {
	return AlertaResponse{
		ID:          a.ID,
		AutoID:      a.AutoID,
		FechaAlerta: dates.Format(a.FechaAlerta),
		Descripcion: a.Descripcion,
		Condicion:   a.Condicion,
	}
}

type alertaItem struct {
	AlertaResponse
	Auto string
}
