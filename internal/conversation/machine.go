package conversation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"personal-scheduling-assistant/internal/model"
	"personal-scheduling-assistant/pkg/datemath"
)

// Machine advances guided dialogs. It holds no per-user state: all state
// travels in the Conversation, so a single Machine serves every user.
type Machine struct {
	dates *datemath.Parser
}

// NewMachine creates a new dialog Machine.
// Convention: Factory function returns concrete type (not interface) for internal packages
func NewMachine(dates *datemath.Parser) *Machine {
	return &Machine{dates: dates}
}

// StartCreate begins the guided event-creation dialog.
func (m *Machine) StartCreate(now time.Time) (*Conversation, string) {
	return &Conversation{Step: StepAwaitingTitle, StartedAt: now}, AskTitle
}

// StartDelete begins the guided deletion dialog, used when /eliminar
// arrives without any search text.
func (m *Machine) StartDelete(now time.Time) (*Conversation, string) {
	return &Conversation{Step: StepAwaitingDeleteQuery, StartedAt: now}, AskDeleteQuery
}

// StartChoice begins a disambiguation dialog over the resolver's
// candidates. The returned reply lists them numbered.
func (m *Machine) StartChoice(now time.Time, pending *model.ResolvedAction) (*Conversation, string) {
	conv := &Conversation{Step: StepAwaitingChoice, Pending: pending, StartedAt: now}

	var b strings.Builder
	b.WriteString(ChoiceHeader)
	b.WriteString("\n\n")
	for i, c := range pending.Candidates {
		b.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, c.DisplayTitle(), m.candidateWhen(c)))
	}
	b.WriteString("\n")
	b.WriteString(ChoiceFooter)

	return conv, b.String()
}

// Advance feeds one user message into the dialog. Input that does not
// match what the current step expects keeps the state and re-prompts.
func (m *Machine) Advance(conv *Conversation, input string, now time.Time) Result {
	input = strings.TrimSpace(input)

	switch conv.Step {
	case StepAwaitingTitle:
		if input == "" {
			return Result{Reply: AskTitle}
		}
		conv.Draft.Title = input
		conv.Step = StepAwaitingDate
		return Result{Reply: AskDate}

	case StepAwaitingDate:
		day, err := m.dates.ParseDate(input, now)
		if err != nil {
			return Result{Reply: ReplyBadDate}
		}
		conv.Draft.Day = day
		conv.Step = StepAwaitingTime
		return Result{Reply: AskTime}

	case StepAwaitingTime:
		clock, err := m.dates.ParseClock(input)
		if err != nil {
			return Result{Reply: ReplyBadTime}
		}
		conv.Draft.Clock = clock
		conv.Step = StepAwaitingConfirmation
		return Result{Reply: m.confirmPrompt(conv.Draft)}

	case StepAwaitingConfirmation:
		switch {
		case affirmatives[datemath.Normalize(input)]:
			intent := m.draftIntent(conv.Draft)
			return Result{Intent: &intent, Done: true}
		case negatives[datemath.Normalize(input)]:
			return Result{Reply: ReplyDiscarded, Done: true}
		default:
			return Result{Reply: ReplyConfirmHint}
		}

	case StepAwaitingDeleteQuery:
		if input == "" {
			return Result{Reply: AskDeleteQuery}
		}
		intent := model.Intent{
			Kind:       model.KindDeleteEvent,
			QueryText:  input,
			Confidence: model.ConfidenceHigh,
		}
		return Result{Intent: &intent, Done: true}

	case StepAwaitingChoice:
		return m.advanceChoice(conv, input)
	}

	// Idle or unknown step: nothing to advance.
	return Result{Done: true}
}

// advanceChoice resolves a disambiguation answer, either a 1-based number
// or text matched against the stored candidates. No new lookup happens
// here: only the candidates captured at resolution time are considered.
func (m *Machine) advanceChoice(conv *Conversation, input string) Result {
	candidates := conv.Pending.Candidates
	retry := Result{Reply: fmt.Sprintf(ReplyChoiceTemplate, len(candidates))}

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(candidates) {
			return retry
		}
		return m.choose(conv, candidates[n-1])
	}

	norm := datemath.Normalize(input)
	if norm == "" {
		return retry
	}

	var matched []model.CandidateEvent
	for _, c := range candidates {
		if strings.Contains(datemath.Normalize(c.Title), norm) {
			matched = append(matched, c)
		}
	}
	if len(matched) != 1 {
		return retry
	}
	return m.choose(conv, matched[0])
}

func (m *Machine) choose(conv *Conversation, c model.CandidateEvent) Result {
	return Result{
		Action: &model.ResolvedAction{
			Status:  model.ResolutionMatched,
			Kind:    conv.Pending.Kind,
			EventID: c.ID,
			Event:   c,
		},
		Done: true,
	}
}

func (m *Machine) confirmPrompt(d Draft) string {
	return fmt.Sprintf(ConfirmTemplate, d.Title, m.dates.FormatDay(d.Day), d.Clock.String())
}

func (m *Machine) draftIntent(d Draft) model.Intent {
	intent := model.Intent{
		Kind:       model.KindCreateEvent,
		Title:      d.Title,
		Confidence: model.ConfidenceHigh,
	}
	if d.Clock.AllDay {
		start := m.dates.StartOfDay(d.Day)
		intent.Start = &start
		intent.AllDay = true
		return intent
	}
	start := m.dates.Combine(d.Day, d.Clock)
	intent.Start = &start
	return intent
}

func (m *Machine) candidateWhen(c model.CandidateEvent) string {
	if c.AllDay {
		return m.dates.FormatDay(c.Start) + ", todo el día"
	}
	return m.dates.FormatDay(c.Start) + " " + c.Start.In(m.dates.Location()).Format("15:04")
}
