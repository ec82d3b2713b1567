package usecase

// Log prefixes
const (
	LogPrefixResolve = "agenda.usecase.Resolve"
	LogPrefixExecute = "agenda.usecase.Execute"
)

// Match scoring. A candidate must reach matchThreshold to count: exact
// titles win, then substring containment, then having every query word.
const (
	scoreExact     = 1.0
	scoreSubstring = 0.8
	scoreAllWords  = 0.6
	matchThreshold = 0.5
)

// maxCandidates caps the disambiguation list shown to the user.
const maxCandidates = 5
