// Package authz centraliza la autorización por rol. Cada permiso es una tupla
// (rol, recurso, acción) en una tabla tipada; Can es la única función de consulta.
package authz

import "github.com/jportillo/incidencias-api/internal/domain/entity"

// Resource recurso protegido de la API.
type Resource string

// Action acción sobre un recurso.
type Action string

const (
	ResourceCompanies Resource = "companies"
	ResourceOffices   Resource = "offices"
	ResourceEmployees Resource = "employees"
	ResourceIncidents Resource = "incidents"
	ResourcePeriods   Resource = "periods"
	ResourceMovements Resource = "movements"
	ResourceUsers     Resource = "users"
)

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionDelete Action = "delete"
)

type permission struct {
	Role     string
	Resource Resource
	Action   Action
}

// table permisos por rol. SUPER_ADMIN no aparece: tiene acceso total.
var table = map[permission]struct{}{}

func grant(role string, resource Resource, actions ...Action) {
	for _, a := range actions {
		table[permission{Role: role, Resource: resource, Action: a}] = struct{}{}
	}
}

func init() {
	// ENCARGADO_RRHH administra el catálogo operativo y los movimientos,
	// pero no empresas/oficinas/usuarios.
	grant(entity.RoleEncargadoRRHH, ResourceMovements, ActionRead, ActionWrite, ActionDelete)
	grant(entity.RoleEncargadoRRHH, ResourceEmployees, ActionRead, ActionWrite, ActionDelete)
	grant(entity.RoleEncargadoRRHH, ResourceIncidents, ActionRead, ActionWrite, ActionDelete)
	grant(entity.RoleEncargadoRRHH, ResourcePeriods, ActionRead, ActionWrite, ActionDelete)
	grant(entity.RoleEncargadoRRHH, ResourceOffices, ActionRead)
	grant(entity.RoleEncargadoRRHH, ResourceCompanies, ActionRead)

	// SUPERVISOR_REGIONES solo consulta dentro de sus oficinas.
	grant(entity.RoleSupervisorRegiones, ResourceMovements, ActionRead)
	grant(entity.RoleSupervisorRegiones, ResourceEmployees, ActionRead)
	grant(entity.RoleSupervisorRegiones, ResourceIncidents, ActionRead)
	grant(entity.RoleSupervisorRegiones, ResourcePeriods, ActionRead)
	grant(entity.RoleSupervisorRegiones, ResourceOffices, ActionRead)

	// ENCARGADO_CASINO captura movimientos de sus oficinas.
	grant(entity.RoleEncargadoCasino, ResourceMovements, ActionRead, ActionWrite)
	grant(entity.RoleEncargadoCasino, ResourceEmployees, ActionRead)
	grant(entity.RoleEncargadoCasino, ResourceIncidents, ActionRead)
	grant(entity.RoleEncargadoCasino, ResourcePeriods, ActionRead)
}

// Can informa si el rol puede ejecutar la acción sobre el recurso.
func Can(role string, resource Resource, action Action) bool {
	if role == entity.RoleSuperAdmin {
		return true
	}
	_, ok := table[permission{Role: role, Resource: resource, Action: action}]
	return ok
}
