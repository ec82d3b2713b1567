package parser

import (
	"context"
	"time"

	"personal-scheduling-assistant/internal/model"
	"personal-scheduling-assistant/pkg/datemath"
	"personal-scheduling-assistant/pkg/gemini"
	"personal-scheduling-assistant/pkg/log"
)

// Parser is the interface for natural-language intent extraction.
type Parser interface {
	Parse(ctx context.Context, freeText string, ref time.Time) model.Intent
}

// IntentParser extracts a structured scheduling intent from free Spanish
// text using the LLM backend. Failures never surface as errors: they fold
// into an UNKNOWN/UNPARSEABLE intent.
type IntentParser struct {
	llm   *gemini.Client
	dates *datemath.Parser
	l     log.Logger
}

// Ensure IntentParser implements Parser interface
var _ Parser = (*IntentParser)(nil)

// New creates a new IntentParser.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm *gemini.Client, dates *datemath.Parser, l log.Logger) *IntentParser {
	return &IntentParser{
		llm:   llm,
		dates: dates,
		l:     l,
	}
}
