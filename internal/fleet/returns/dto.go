package returns

import "renta-autos-backend/internal/platform/dates"

type CreateDevolucionRequest struct {
	RentaID       string  `json:"renta_id" form:"renta_id" binding:"required"`
	Condicion     string  `json:"condicion" form:"condicion" binding:"required"`
	Observaciones *string `json:"observaciones" form:"observaciones"`
}

type DevolucionResponse struct {
	ID              string  `json:"_id"`
	RentaID         string  `json:"renta_id"`
	AutoID          string  `json:"auto_id"`
	FechaDevolucion string  `json:"fecha_devolucion"`
	Condicion       string  `json:"condicion"`
	Observaciones   *string `json:"observaciones"`
}

func toResponse(d *Devolucion) DevolucionResponse {
	resp := DevolucionResponse{
		ID:              d.ID,
		RentaID:         d.RentaID,
		AutoID:          d.AutoID,
		FechaDevolucion: dates.Format(d.FechaDevolucion),
		Condicion:       d.Condicion,
	}
	if d.Observaciones.Valid {
		v := d.Observaciones.String
		resp.Observaciones = &v
	}
	return resp
}

// devolucionItem decorates a listing row for the HTML table with the
// vehicle and customer resolved through the rental.
type devolucionItem struct {
	DevolucionResponse
	Auto    string
	Cliente string
}
