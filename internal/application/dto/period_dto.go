package dto

import "time"

// DateLayout formato de fecha aceptado en requests (solo fecha, sin hora).
const DateLayout = "2006-01-02"

// CreatePeriodRequest entrada para crear un periodo.
type CreatePeriodRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// UpdatePeriodRequest entrada para actualizar un periodo.
type UpdatePeriodRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// PeriodResponse salida de un periodo (fechas como YYYY-MM-DD).
type PeriodResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PeriodListResponse página de periodos.
type PeriodListResponse struct {
	Items []PeriodResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
