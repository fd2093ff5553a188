// Package clock provee la hora actual a los casos de uso y permite fijarla en tests.
package clock

import (
	"sync"
	"time"
)

// Layout es el formato textual de las marcas de tiempo persistidas ("YYYY-MM-DD HH:MM:SS").
const Layout = "2006-01-02 15:04:05"

// Formatos usados para agrupar estadísticas y filtrar ventas por fecha.
const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

// Clock devuelve la hora actual.
type Clock interface {
	Now() time.Time
}

// System usa el reloj del sistema con precisión de segundos (la misma del formato persistido).
type System struct{}

// Now implementa Clock.
func (System) Now() time.Time {
	return time.Now().Truncate(time.Second)
}

// Fixed es un reloj manual para tests.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixed crea un reloj detenido en t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

// Now implementa Clock.
func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance adelanta el reloj d.
func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// Format convierte t al formato persistido.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse interpreta una marca de tiempo persistida en la zona horaria local.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.Local)
}
