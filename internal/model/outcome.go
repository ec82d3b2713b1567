package model

// ResolutionStatus is the result class of a delete/complete resolution pass.
type ResolutionStatus string

const (
	ResolutionMatched             ResolutionStatus = "MATCHED"
	ResolutionNotFound            ResolutionStatus = "NOT_FOUND"
	ResolutionNeedsDisambiguation ResolutionStatus = "NEEDS_DISAMBIGUATION"
)

// ResolvedAction is the resolver output. Exactly one of the three statuses
// applies; EventID is set only for MATCHED, Candidates only for
// NEEDS_DISAMBIGUATION.
type ResolvedAction struct {
	Status     ResolutionStatus
	Kind       Kind // DELETE_EVENT or COMPLETE_EVENT
	EventID    string
	Event      CandidateEvent   // the matched candidate, for reply rendering
	Candidates []CandidateEvent // ordered by match score, then start time
}

// OutcomeStatus classifies what the executor did.
type OutcomeStatus string

const (
	OutcomeCreated      OutcomeStatus = "CREATED"
	OutcomeListed       OutcomeStatus = "LISTED"
	OutcomeDeleted      OutcomeStatus = "DELETED"
	OutcomeCompleted    OutcomeStatus = "COMPLETED"
	OutcomeBackendError OutcomeStatus = "BACKEND_ERROR"
)

// Outcome is the executor result handed back to the delivery layer.
type Outcome struct {
	Status   OutcomeStatus
	EventID  string
	Event    CandidateEvent
	Events   []CandidateEvent // LISTED payload, sorted by start ascending
	Overlaps []CandidateEvent // events overlapping a newly created one
	Detail   string           // backend error detail, not user-facing
}
