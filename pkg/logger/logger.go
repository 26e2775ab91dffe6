package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger de la aplicación.
type Config struct {
	Env   string // development escribe consola legible; cualquier otro, JSON
	Level string // debug, info, warn, error; inválido o vacío cae a info
}

// Logger logger estructurado de la aplicación. Expone la API de zerolog
// directamente (Info, Error, Fatal, With) vía embedding.
type Logger struct {
	zerolog.Logger
}

// New construye el logger según el entorno y redirige el logger global de
// zerolog al mismo destino, para las librerías que escriben por log.Logger.
func New(cfg Config) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl}
}
