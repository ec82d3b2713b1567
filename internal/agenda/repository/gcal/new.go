package gcal

import (
	"personal-scheduling-assistant/internal/agenda/repository"
	"personal-scheduling-assistant/pkg/gcalendar"
	pkgLog "personal-scheduling-assistant/pkg/log"
)

// Repository adapts the Google Calendar client to the agenda domain.
type Repository struct {
	l          pkgLog.Logger
	client     *gcalendar.Client
	calendarID string
	timezone   string
}

// Ensure Repository implements CalendarRepository interface
var _ repository.CalendarRepository = (*Repository)(nil)

// New creates a new Google Calendar backed repository.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(l pkgLog.Logger, client *gcalendar.Client, calendarID, timezone string) *Repository {
	return &Repository{
		l:          l,
		client:     client,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
