package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jportillo/incidencias-api/internal/application/movement"
)

func TestScopeAllows(t *testing.T) {
	unrestricted := movement.Scope{Unrestricted: true}
	assert.True(t, unrestricted.Allows("cualquier-oficina"))

	limited := movement.Scope{OfficeIDs: []string{"of-1", "of-2"}}
	assert.True(t, limited.Allows("of-1"))
	assert.True(t, limited.Allows("of-2"))
	assert.False(t, limited.Allows("of-3"))

	empty := movement.Scope{}
	assert.False(t, empty.Allows("of-1"), "scope vacío sin Unrestricted no permite nada")
}
