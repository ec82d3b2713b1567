package conversation

import (
	"time"

	"personal-scheduling-assistant/internal/model"
	"personal-scheduling-assistant/pkg/datemath"
)

// Step identifies where a guided dialog currently stands.
type Step string

const (
	StepIdle                 Step = "IDLE"
	StepAwaitingTitle        Step = "AWAITING_TITLE"
	StepAwaitingDate         Step = "AWAITING_DATE"
	StepAwaitingTime         Step = "AWAITING_TIME"
	StepAwaitingConfirmation Step = "AWAITING_CONFIRMATION"
	StepAwaitingDeleteQuery  Step = "AWAITING_DELETE_QUERY"
	StepAwaitingChoice       Step = "AWAITING_DISAMBIGUATION_CHOICE"
)

// Draft accumulates event fields across wizard turns.
type Draft struct {
	Title string
	Day   time.Time
	Clock datemath.Clock
}

// Conversation is the per-user dialog state. It lives only inside the
// Store and is dropped on completion, cancellation or TTL expiry.
type Conversation struct {
	Step      Step
	Draft     Draft
	Pending   *model.ResolvedAction // candidates awaiting a disambiguation choice
	StartedAt time.Time
}

// Result is what a dialog turn produced. At most one of Intent and Action
// is set; when Done is true the caller must drop the conversation.
type Result struct {
	Reply  string
	Intent *model.Intent         // completed wizard intent, ready to resolve and execute
	Action *model.ResolvedAction // resolved disambiguation choice, ready to execute
	Done   bool
}
