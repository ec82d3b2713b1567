package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "America/Argentina/Buenos_Aires"
	AllDay      bool
	ColorID     string
}

// PatchEventRequest is a partial update; nil fields are left untouched.
type PatchEventRequest struct {
	CalendarID string
	EventID    string
	Summary    *string
	StartTime  *time.Time
	EndTime    *time.Time
	Timezone   string
	AllDay     bool
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HtmlLink    string
	ColorID     string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
