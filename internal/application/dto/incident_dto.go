package dto

import "time"

// CreateIncidentRequest entrada para crear un tipo de incidencia.
type CreateIncidentRequest struct {
	Code string `json:"code" validate:"required,min=1,max=20"`
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateIncidentRequest entrada para actualizar un tipo de incidencia.
type UpdateIncidentRequest struct {
	Code   string `json:"code" validate:"required,min=1,max=20"`
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// IncidentResponse salida de un tipo de incidencia.
type IncidentResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IncidentListResponse página de tipos de incidencia.
type IncidentListResponse struct {
	Items []IncidentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
