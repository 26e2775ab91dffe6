package dto

import "time"

// CreateEmployeeRequest entrada para crear un empleado.
// Code es el número de empleado: entero positivo único dentro de la oficina.
type CreateEmployeeRequest struct {
	OfficeID string `json:"office_id" validate:"required,uuid"`
	Code     int    `json:"code" validate:"required,gt=0"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Type     string `json:"type" validate:"required,oneof=SINDICALIZADO CONFIANZA"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado.
type UpdateEmployeeRequest struct {
	OfficeID string `json:"office_id" validate:"required,uuid"`
	Code     int    `json:"code" validate:"required,gt=0"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Type     string `json:"type" validate:"required,oneof=SINDICALIZADO CONFIANZA"`
	Status   string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID        string          `json:"id"`
	OfficeID  string          `json:"office_id"`
	Code      int             `json:"code"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Office    *OfficeResponse `json:"office,omitempty"`
}

// EmployeeListResponse página de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
