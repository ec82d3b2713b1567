package model

import "time"

// Kind classifies what the user wants to do with the calendar.
type Kind string

const (
	KindCreateEvent     Kind = "CREATE_EVENT"
	KindListEvents      Kind = "LIST_EVENTS"
	KindDeleteEvent     Kind = "DELETE_EVENT"
	KindCompleteEvent   Kind = "COMPLETE_EVENT"
	KindSupplementQuery Kind = "SUPPLEMENT_QUERY"
	KindUnknown         Kind = "UNKNOWN"
)

// Confidence marks how trustworthy a parsed intent is. Wizard-produced
// intents are always ConfidenceHigh; the NLP path sets the other two.
type Confidence string

const (
	ConfidenceHigh        Confidence = "HIGH"
	ConfidenceAmbiguous   Confidence = "AMBIGUOUS"
	ConfidenceUnparseable Confidence = "UNPARSEABLE"
)

// Priority is the user-declared importance of an event.
type Priority string

const (
	PriorityHigh   Priority = "alta"
	PriorityMedium Priority = "media"
	PriorityLow    Priority = "baja"
	PriorityNone   Priority = ""
)

// Emoji returns the marker shown next to event titles in replies.
func (p Priority) Emoji() string {
	switch p {
	case PriorityHigh:
		return "🔴"
	case PriorityMedium:
		return "🟡"
	case PriorityLow:
		return "🟢"
	}
	return ""
}

// ColorID maps the priority to a Google Calendar color id.
// 11 = tomato, 5 = banana, 2 = sage.
func (p Priority) ColorID() string {
	switch p {
	case PriorityHigh:
		return "11"
	case PriorityMedium:
		return "5"
	case PriorityLow:
		return "2"
	}
	return ""
}

// PriorityFromColor is the inverse of ColorID, used when reading events
// back from the calendar. Unrecognized colors map to PriorityNone.
func PriorityFromColor(colorID string) Priority {
	switch colorID {
	case "11":
		return PriorityHigh
	case "5":
		return PriorityMedium
	case "2":
		return PriorityLow
	}
	return PriorityNone
}

// Intent is the structured representation of a user request, produced by
// either the wizard or the NLP parser.
type Intent struct {
	Kind        Kind
	Title       string     // required for CREATE_EVENT
	Start       *time.Time // event start; range lower bound for LIST_EVENTS
	End         *time.Time // optional; default duration applied at execution
	AllDay      bool       // date-only event, no clock time
	RangeDays   int        // listing window length in days
	QueryText   string     // match text for DELETE_EVENT / COMPLETE_EVENT
	Description string
	Location    string
	Priority    Priority
	Confidence  Confidence
	Clarify     string // follow-up question to send when Confidence is AMBIGUOUS
}

// Executable reports whether the intent carries everything its kind needs.
// Non-executable intents must be flagged AMBIGUOUS or UNPARSEABLE upstream.
func (i Intent) Executable() bool {
	switch i.Kind {
	case KindCreateEvent:
		return i.Title != "" && i.Start != nil && i.Confidence == ConfidenceHigh
	case KindListEvents:
		return i.Start != nil && i.RangeDays > 0
	case KindDeleteEvent, KindCompleteEvent:
		return i.QueryText != ""
	case KindSupplementQuery:
		return true
	}
	return false
}
