package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"personal-scheduling-assistant/internal/model"
	"personal-scheduling-assistant/internal/supplement"
	pkgTelegram "personal-scheduling-assistant/pkg/telegram"
)

// sendOutcome turns an executor outcome into the user-facing reply.
func (h *handler) sendOutcome(ctx context.Context, msg *pkgTelegram.Message, outcome model.Outcome) error {
	switch outcome.Status {
	case model.OutcomeCreated:
		return h.bot.SendMessageWithMode(msg.Chat.ID, h.renderCreated(outcome), modeMarkdown)

	case model.OutcomeListed:
		return h.bot.SendMessageWithMode(msg.Chat.ID, h.renderListing(outcome.Events), modeMarkdown)

	case model.OutcomeDeleted:
		return h.bot.SendMessageWithMode(msg.Chat.ID, fmt.Sprintf(ReplyDeletedTemplate, outcome.Event.DisplayTitle()), modeMarkdown)

	case model.OutcomeCompleted:
		return h.bot.SendMessageWithMode(msg.Chat.ID, fmt.Sprintf(ReplyCompletedTemplate, outcome.Event.DisplayTitle()), modeMarkdown)

	default:
		h.l.Errorf(ctx, "%s: calendar backend error: %s", LogPrefixProcess, outcome.Detail)
		return h.bot.SendMessage(msg.Chat.ID, ReplyBackendError)
	}
}

func (h *handler) renderCreated(outcome model.Outcome) string {
	ev := outcome.Event

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Agendado: *%s*\n📅 %s", ev.DisplayTitle(), h.dates.FormatDay(ev.Start))
	if ev.AllDay {
		b.WriteString(", todo el día")
	} else {
		fmt.Fprintf(&b, ", %s a %s", h.clock(ev.Start), h.clock(ev.End))
	}

	if len(outcome.Overlaps) > 0 {
		b.WriteString("\n\n⚠️ Ojo, se superpone con:")
		for _, ov := range outcome.Overlaps {
			fmt.Fprintf(&b, "\n• %s (%s a %s)", ov.DisplayTitle(), h.clock(ov.Start), h.clock(ov.End))
		}
	}
	return b.String()
}

// renderListing groups events by day. Events arrive sorted by start time,
// so one pass with a day cursor is enough.
func (h *handler) renderListing(events []model.CandidateEvent) string {
	if len(events) == 0 {
		return ReplyEmptyAgenda
	}

	var b strings.Builder
	currentDay := ""
	for _, ev := range events {
		day := h.dates.FormatDay(ev.Start)
		if day != currentDay {
			if currentDay != "" {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "*%s*\n", day)
			currentDay = day
		}
		b.WriteString(h.renderEventLine(ev))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (h *handler) renderEventLine(ev model.CandidateEvent) string {
	when := "todo el día"
	if !ev.AllDay {
		when = h.clock(ev.Start)
	}

	mark := "•"
	if p := model.PriorityFromColor(ev.ColorID); p != model.PriorityNone {
		mark = p.Emoji()
	}
	if ev.Completed() {
		mark = "✔️"
	}
	return fmt.Sprintf("%s %s  %s\n", mark, when, ev.DisplayTitle())
}

func (h *handler) clock(t time.Time) string {
	return t.In(h.dates.Location()).Format("15:04")
}

func renderSupplementPlan(plan []supplement.Status) string {
	if len(plan) == 0 {
		return "💊 Hoy no tenés suplementos programados."
	}

	var b strings.Builder
	b.WriteString("💊 *Suplementos de hoy:*\n")
	for _, st := range plan {
		switch {
		case st.Taken:
			fmt.Fprintf(&b, "✔️ %s (tomado a las %s)\n", st.Item.Name, st.TakenAt)
		case st.Due:
			fmt.Fprintf(&b, "⏰ %s (pendiente desde las %s)\n", st.Item.Name, st.Item.At())
		default:
			fmt.Fprintf(&b, "• %s (a las %s)\n", st.Item.Name, st.Item.At())
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
