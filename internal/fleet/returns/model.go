package returns

import (
	"database/sql"
	"time"
)

// Devolucion is one row of the devoluciones table. Immutable history
// once written.
type Devolucion struct {
	ID               string
	RentaID          string
	AutoID           string
	FechaDevolucion  time.Time
	Condicion        string
	Observaciones    sql.NullString
}

// Alerta is written alongside a return whose condition falls in the
// bad-condition vocabulary.
type Alerta struct {
	ID          string
	AutoID      string
	FechaAlerta time.Time
	Descripcion string
	Condicion   string
}

// RentaRef is the slice of the rental row the return workflow needs.
type RentaRef struct {
	ID        string
	AutoID    string
	ClienteID string
}
