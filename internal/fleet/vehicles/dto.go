package vehicles

type CreateAutoRequest struct {
	Marca      string `json:"marca" form:"marca" binding:"required"`
	Modelo     string `json:"modelo" form:"modelo" binding:"required"`
	Anio       int    `json:"anio" form:"anio" binding:"required"`
	Disponible *bool  `json:"disponible" form:"disponible"`
}

type UpdateAutoRequest struct {
	Marca      *string `json:"marca" form:"marca"`
	Modelo     *string `json:"modelo" form:"modelo"`
	Anio       *int    `json:"anio" form:"anio"`
	Disponible *bool   `json:"disponible" form:"disponible"`
}

type AutoResponse struct {
	ID         string `json:"_id"`
	Marca      string `json:"marca"`
	Modelo     string `json:"modelo"`
	Anio       int    `json:"anio"`
	Disponible bool   `json:"disponible"`
}

func toResponse(a *Auto) AutoResponse {
	return AutoResponse{
		ID:         a.ID,
		Marca:      a.Marca,
		Modelo:     a.Modelo,
		Anio:       a.Anio,
		Disponible: a.Disponible,
	}
}
