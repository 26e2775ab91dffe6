package dto

import "time"

// SaveMovementRequest entrada para crear o actualizar un movimiento (incidencia).
type SaveMovementRequest struct {
	PeriodID             string `json:"period_id" validate:"required,uuid"`
	EmployeeID           string `json:"employee_id" validate:"required,uuid"`
	IncidentID           string `json:"incident_id" validate:"required,uuid"`
	IncidenceDate        string `json:"incidence_date" validate:"required,datetime=2006-01-02"`
	IncidenceObservation string `json:"incidence_observation" validate:"omitempty,max=500"`
}

// MovementResponse salida de un movimiento con sus relaciones cargadas.
type MovementResponse struct {
	ID                   string            `json:"id"`
	PeriodID             string            `json:"period_id"`
	EmployeeID           string            `json:"employee_id"`
	IncidentID           string            `json:"incident_id"`
	IncidenceDate        string            `json:"incidence_date"`
	IncidenceObservation string            `json:"incidence_observation,omitempty"`
	Status               string            `json:"status"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
	Period               *PeriodResponse   `json:"period,omitempty"`
	Employee             *EmployeeResponse `json:"employee,omitempty"`
	Incident             *IncidentResponse `json:"incident,omitempty"`
}

// MovementListResponse página de movimientos. TotalPages se incluye porque el
// dashboard pagina sobre este endpoint.
type MovementListResponse struct {
	Movements  []MovementResponse `json:"movements"`
	Total      int                `json:"total"`
	TotalPages int                `json:"total_pages"`
	Page       PageResponse       `json:"page"`
}
