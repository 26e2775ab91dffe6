package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jportillo/incidencias-api/pkg/logger"
)

func TestNew_NivelConfigurado(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
}

func TestNew_NivelInvalidoCaeAInfo(t *testing.T) {
	for _, level := range []string{"", "verboso", "TRACE2"} {
		l := logger.New(logger.Config{Env: "production", Level: level})
		assert.Equal(t, zerolog.InfoLevel, l.GetLevel(), "nivel %q debe caer a info", level)
	}
}
