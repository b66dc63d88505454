package alerts

import "time"

// Alerta rows are written by the return workflow; this package only
// reads them.
type Alerta struct {
	ID          string
	AutoID      string
	FechaAlerta time.Time
	Descripcion string
	Condicion   string
}
