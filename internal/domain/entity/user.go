package entity

import "time"

// Roles válidos para User. RoleSuperAdmin es el rol superior: lecturas sin
// restricción de oficina y todas las acciones administrativas.
const (
	RoleSuperAdmin         = "SUPER_ADMIN"
	RoleEncargadoRRHH      = "ENCARGADO_RRHH"
	RoleSupervisorRegiones = "SUPERVISOR_REGIONES"
	RoleEncargadoCasino    = "ENCARGADO_CASINO"
)

// ValidRole informa si el rol es uno de los conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleEncargadoRRHH, RoleSupervisorRegiones, RoleEncargadoCasino:
		return true
	}
	return false
}

// User representa un usuario del sistema. Un usuario se asocia a cero o más
// oficinas (tabla user_offices); su rol determina qué acciones y qué datos
// por oficina puede ver.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // ver constantes Role*
	Status       string // ACTIVE, INACTIVE
	CreatedAt    time.Time
	UpdatedAt    time.Time

	OfficeIDs []string // oficinas vinculadas, cargadas bajo demanda
}
