package rentals

import (
	"database/sql"
	"time"
)

const (
	EstadoActiva   = "activa"
	EstadoDevuelta = "devuelta"
)

// Renta is one row of the rentas table. AutoID and ClienteID are
// informal references, nothing enforces them.
type Renta struct {
	ID          string
	AutoID      string
	ClienteID   string
	FechaInicio time.Time
	FechaFin    sql.NullTime
	Costo       float64
	Estado      string
}

// VehicleRef is the slice of the vehicle row the rental workflow needs.
type VehicleRef struct {
	ID         string
	Disponible bool
}
