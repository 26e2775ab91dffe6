package entity

import "time"

// Tipos válidos de empleado.
const (
	EmployeeTypeSindicalizado = "SINDICALIZADO"
	EmployeeTypeConfianza     = "CONFIANZA"
)

// Employee representa un empleado adscrito a una oficina.
// Code es un entero positivo único dentro de la oficina (número de empleado).
type Employee struct {
	ID        string
	OfficeID  string
	Code      int
	Name      string
	Type      string // SINDICALIZADO, CONFIANZA
	Status    string // ACTIVE, INACTIVE
	CreatedAt time.Time
	UpdatedAt time.Time

	Office *Office // relación cargada en lecturas con join (puede ser nil)
}
