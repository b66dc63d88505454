package repairs

import "time"

// Reparacion is one row of the reparaciones table. Rows are only ever
// inserted.
type Reparacion struct {
	ID          string
	AutoID      string
	Descripcion string
	Fecha       time.Time
	Costo       float64
}

// Filter narrows the repair query. Nil bounds are open; the date range
// and the cost ceiling are inclusive.
type Filter struct {
	Desde    *time.Time
	Hasta    *time.Time
	CostoMax *float64
}
