package entity

import "time"

// Office representa una oficina/sucursal de una empresa. Empleados y usuarios
// se asocian a oficinas; el filtro de lectura por rol opera sobre este nivel.
type Office struct {
	ID        string
	CompanyID string
	Name      string
	Status    string // ACTIVE, INACTIVE
	CreatedAt time.Time
	UpdatedAt time.Time

	Company *Company // relación cargada en lecturas con join (puede ser nil)
}
