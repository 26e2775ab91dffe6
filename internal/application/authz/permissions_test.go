package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jportillo/incidencias-api/internal/application/authz"
	"github.com/jportillo/incidencias-api/internal/domain/entity"
)

func TestCan_SuperAdminSinRestricciones(t *testing.T) {
	for _, res := range []authz.Resource{
		authz.ResourceCompanies, authz.ResourceOffices, authz.ResourceEmployees,
		authz.ResourceIncidents, authz.ResourcePeriods, authz.ResourceMovements,
		authz.ResourceUsers,
	} {
		for _, act := range []authz.Action{authz.ActionRead, authz.ActionWrite, authz.ActionDelete} {
			assert.True(t, authz.Can(entity.RoleSuperAdmin, res, act),
				"SUPER_ADMIN debe poder %s sobre %s", act, res)
		}
	}
}

func TestCan_EncargadoRRHH(t *testing.T) {
	assert.True(t, authz.Can(entity.RoleEncargadoRRHH, authz.ResourceMovements, authz.ActionWrite))
	assert.True(t, authz.Can(entity.RoleEncargadoRRHH, authz.ResourceEmployees, authz.ActionDelete))
	assert.True(t, authz.Can(entity.RoleEncargadoRRHH, authz.ResourceOffices, authz.ActionRead))

	// no administra empresas, oficinas ni usuarios
	assert.False(t, authz.Can(entity.RoleEncargadoRRHH, authz.ResourceOffices, authz.ActionWrite))
	assert.False(t, authz.Can(entity.RoleEncargadoRRHH, authz.ResourceCompanies, authz.ActionWrite))
	assert.False(t, authz.Can(entity.RoleEncargadoRRHH, authz.ResourceUsers, authz.ActionRead))
}

func TestCan_SupervisorSoloLectura(t *testing.T) {
	assert.True(t, authz.Can(entity.RoleSupervisorRegiones, authz.ResourceMovements, authz.ActionRead))
	assert.False(t, authz.Can(entity.RoleSupervisorRegiones, authz.ResourceMovements, authz.ActionWrite))
	assert.False(t, authz.Can(entity.RoleSupervisorRegiones, authz.ResourceMovements, authz.ActionDelete))
}

func TestCan_EncargadoCasino(t *testing.T) {
	assert.True(t, authz.Can(entity.RoleEncargadoCasino, authz.ResourceMovements, authz.ActionWrite))
	assert.False(t, authz.Can(entity.RoleEncargadoCasino, authz.ResourceMovements, authz.ActionDelete),
		"el encargado de casino captura pero no borra")
	assert.False(t, authz.Can(entity.RoleEncargadoCasino, authz.ResourceCompanies, authz.ActionRead))
}

func TestCan_RolDesconocido(t *testing.T) {
	assert.False(t, authz.Can("INVITADO", authz.ResourceMovements, authz.ActionRead))
	assert.False(t, authz.Can("", authz.ResourceMovements, authz.ActionRead))
}
