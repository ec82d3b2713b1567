package repository

import "time"

// CreateEventOptions holds the parameters for creating a calendar event.
type CreateEventOptions struct {
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool   // when set, only the dates of Start/End matter
	ColorID     string // backend color code, empty for default
}

// ListEventsOptions holds the parameters for listing calendar events.
type ListEventsOptions struct {
	From time.Time
	To   time.Time
}
