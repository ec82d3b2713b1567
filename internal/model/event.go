package model

import (
	"strings"
	"time"
)

// CompletedMarker prefixes the title of an event that has been marked done.
const CompletedMarker = "[COMPLETADA]"

// CandidateEvent is a calendar entry considered during listing or
// delete/complete resolution. Ephemeral, never persisted by this service.
type CandidateEvent struct {
	ID      string
	Title   string
	Start   time.Time
	End     time.Time
	AllDay  bool
	ColorID string
}

// Completed reports whether the event carries the completion marker.
func (e CandidateEvent) Completed() bool {
	return strings.HasPrefix(e.Title, CompletedMarker)
}

// DisplayTitle returns the title without the completion marker.
func (e CandidateEvent) DisplayTitle() string {
	return strings.TrimSpace(strings.TrimPrefix(e.Title, CompletedMarker))
}

// MarkCompleted returns the title with the completion marker applied once.
func MarkCompleted(title string) string {
	if strings.HasPrefix(title, CompletedMarker) {
		return title
	}
	return CompletedMarker + " " + title
}
