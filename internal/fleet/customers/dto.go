package customers

type CreateClienteRequest struct {
	Nombre    string `json:"nombre" form:"nombre" binding:"required"`
	Apellido  string `json:"apellido" form:"apellido" binding:"required"`
	Telefono  string `json:"telefono" form:"telefono"`
	Direccion string `json:"direccion" form:"direccion"`
}

type UpdateClienteRequest struct {
	Nombre    *string `json:"nombre" form:"nombre"`
	Apellido  *string `json:"apellido" form:"apellido"`
	Telefono  *string `json:"telefono" form:"telefono"`
	Direccion *string `json:"direccion" form:"direccion"`
}

type ClienteResponse struct {
	ID        string `json:"_id"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

func toResponse(c *Cliente) ClienteResponse {
	return ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Apellido:  c.Apellido,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
	}
}
