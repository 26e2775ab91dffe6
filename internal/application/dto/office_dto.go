package dto

import "time"

// CreateOfficeRequest entrada para crear una oficina.
type CreateOfficeRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid"`
	Name      string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateOfficeRequest entrada para actualizar una oficina.
type UpdateOfficeRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid"`
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Status    string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// OfficeResponse salida de una oficina.
type OfficeResponse struct {
	ID        string           `json:"id"`
	CompanyID string           `json:"company_id"`
	Name      string           `json:"name"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Company   *CompanyResponse `json:"company,omitempty"`
}

// OfficeListResponse página de oficinas.
type OfficeListResponse struct {
	Items []OfficeResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
