package entity

import "time"

// Estados comunes para entidades con ciclo activo/inactivo.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Company representa una empresa: unidad organizacional raíz a la que pertenecen las oficinas.
type Company struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Status    string // ACTIVE, INACTIVE
	CreatedAt time.Time
	UpdatedAt time.Time
}
