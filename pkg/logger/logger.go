// Package logger envuelve zerolog con la configuración de la tienda.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config entorno, nivel mínimo y destino.
type Config struct {
	Env   string    // "development" escribe con ConsoleWriter; cualquier otro valor, JSON por línea
	Level string    // nombre de nivel zerolog; vacío o desconocido equivale a info
	Out   io.Writer // nil → os.Stdout (los binarios CLI pasan os.Stderr)
}

// Logger se inyecta en handlers y binarios.
type Logger struct {
	zl zerolog.Logger
}

// New arma el logger y lo instala también como log.Logger global.
func New(cfg Config) *Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zl := zerolog.New(out).Level(levelFrom(cfg.Level)).With().Timestamp().Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

func levelFrom(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Nop descarta todo.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un contexto para campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger subyacente (cliente de clima, adaptadores).
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
