package customers

// Cliente is one row of the clientes table. All fields are free-form.
type Cliente struct {
	ID        string
	Nombre    string
	Apellido  string
	Telefono  string
	Direccion string
}
