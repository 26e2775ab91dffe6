package entity

import "time"

// Movement representa una incidencia registrada: enlaza un empleado, un tipo de
// incidencia y un periodo, con fecha y observación opcional.
//
// Invariante: como máximo un movimiento ACTIVE puede existir por cada tripleta
// (PeriodID, EmployeeID, IncidentID). Se valida en el caso de uso y se refuerza
// con un índice único parcial en la base de datos.
type Movement struct {
	ID                   string
	PeriodID             string
	EmployeeID           string
	IncidentID           string
	IncidenceDate        time.Time
	IncidenceObservation string
	Status               string // ACTIVE, INACTIVE
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Relaciones cargadas en lecturas con join (pueden ser nil).
	Period   *Period
	Employee *Employee
	Incident *Incident
}
