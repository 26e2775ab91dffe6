package entity

import "time"

// Incident representa un tipo de incidencia de RRHH (falta, bono, permiso, etc.)
// que se aplica a un empleado mediante un Movement.
type Incident struct {
	ID        string
	Code      string
	Name      string
	Status    string // ACTIVE, INACTIVE
	CreatedAt time.Time
	UpdatedAt time.Time
}
