package entity

import "time"

// Period representa un rango de fechas administrativo (ciclo de nómina).
// La fecha de incidencia de un movimiento debe caer dentro de [StartDate, EndDate].
type Period struct {
	ID        string
	Name      string
	StartDate time.Time // solo fecha, sin componente horario
	EndDate   time.Time
	Status    string // ACTIVE, INACTIVE
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains indica si la fecha cae dentro del periodo, con bordes inclusivos.
func (p *Period) Contains(date time.Time) bool {
	d := truncateDay(date)
	return !d.Before(truncateDay(p.StartDate)) && !d.After(truncateDay(p.EndDate))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
