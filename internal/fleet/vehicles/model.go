package vehicles

// Auto is one row of the autos table. Disponible is the only managed
// field: the rental and return workflows flip it.
type Auto struct {
	ID         string
	Marca      string
	Modelo     string
	Anio       int
	Disponible bool
}
