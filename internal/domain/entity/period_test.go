package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
)

func TestPeriodContains(t *testing.T) {
	p := &entity.Period{
		StartDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
	}

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	assert.True(t, p.Contains(day(2025, time.March, 1)), "el primer día cuenta")
	assert.True(t, p.Contains(day(2025, time.March, 15)), "el último día cuenta")
	assert.True(t, p.Contains(day(2025, time.March, 8)))
	assert.False(t, p.Contains(day(2025, time.February, 28)))
	assert.False(t, p.Contains(day(2025, time.March, 16)))

	// el componente horario no afecta la comparación
	assert.True(t, p.Contains(time.Date(2025, time.March, 15, 23, 59, 59, 0, time.UTC)))
}
