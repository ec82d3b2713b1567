package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"personal-scheduling-assistant/internal/model"
	"personal-scheduling-assistant/internal/supplement"
	pkgTelegram "personal-scheduling-assistant/pkg/telegram"
)

// handleFreeText runs the NLP parser over a message that arrived with no
// conversation in flight and dispatches on the parsed confidence.
func (h *handler) handleFreeText(ctx context.Context, msg *pkgTelegram.Message, text string, now time.Time) error {
	parseCtx, cancel := context.WithTimeout(ctx, h.backendWait)
	defer cancel()
	intent := h.parser.Parse(parseCtx, text, now)

	switch intent.Confidence {
	case model.ConfidenceUnparseable:
		return h.bot.SendMessage(msg.Chat.ID, ReplyUnparseable)
	case model.ConfidenceAmbiguous:
		// One clarification question, no follow-up state: the answer comes
		// back through the parser as a fresh message.
		clarify := intent.Clarify
		if clarify == "" {
			clarify = ReplyUnparseable
		}
		return h.bot.SendMessage(msg.Chat.ID, clarify)
	}

	if intent.Kind == model.KindUnknown {
		return h.bot.SendMessage(msg.Chat.ID, ReplyOffTopic)
	}
	return h.runIntent(ctx, msg, intent, now)
}

// runIntent executes a high-confidence intent. Create and list go straight
// to the executor; delete and complete pass through resolution first.
func (h *handler) runIntent(ctx context.Context, msg *pkgTelegram.Message, intent model.Intent, now time.Time) error {
	switch intent.Kind {
	case model.KindCreateEvent, model.KindListEvents:
		callCtx, cancel := context.WithTimeout(ctx, h.backendWait)
		defer cancel()

		outcome, err := h.uc.Execute(callCtx, intent)
		if err != nil {
			h.l.Errorf(ctx, "%s: execute rejected intent %s: %v", LogPrefixProcess, intent.Kind, err)
			return h.bot.SendMessage(msg.Chat.ID, ReplyInternalError)
		}
		return h.sendOutcome(ctx, msg, outcome)

	case model.KindDeleteEvent, model.KindCompleteEvent:
		return h.resolveAndExecute(ctx, msg, intent, now)

	case model.KindSupplementQuery:
		return h.sendSupplementPlan(ctx, msg, now)

	default:
		return h.bot.SendMessage(msg.Chat.ID, ReplyUnparseable)
	}
}

func (h *handler) resolveAndExecute(ctx context.Context, msg *pkgTelegram.Message, intent model.Intent, now time.Time) error {
	callCtx, cancel := context.WithTimeout(ctx, h.backendWait)
	defer cancel()

	action, err := h.uc.Resolve(callCtx, intent, now)
	if err != nil {
		h.l.Errorf(ctx, "%s: resolve %q failed: %v", LogPrefixProcess, intent.QueryText, err)
		return h.bot.SendMessage(msg.Chat.ID, ReplyBackendError)
	}

	switch action.Status {
	case model.ResolutionNotFound:
		return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf(ReplyNotFoundTemplate, intent.QueryText))

	case model.ResolutionNeedsDisambiguation:
		conv, reply := h.machine.StartChoice(now, &action)
		h.store.Put(msg.From.ID, conv)
		return h.bot.SendMessage(msg.Chat.ID, reply)

	default:
		return h.executeResolved(ctx, msg, action)
	}
}

func (h *handler) executeResolved(ctx context.Context, msg *pkgTelegram.Message, action model.ResolvedAction) error {
	callCtx, cancel := context.WithTimeout(ctx, h.backendWait)
	defer cancel()

	outcome, err := h.uc.ExecuteResolved(callCtx, action)
	if err != nil {
		h.l.Errorf(ctx, "%s: execute resolved %s failed: %v", LogPrefixProcess, action.Kind, err)
		return h.bot.SendMessage(msg.Chat.ID, ReplyInternalError)
	}
	return h.sendOutcome(ctx, msg, outcome)
}

func (h *handler) sendSupplementPlan(ctx context.Context, msg *pkgTelegram.Message, now time.Time) error {
	if h.supplements == nil {
		return h.bot.SendMessage(msg.Chat.ID, ReplySupplementsDisabled)
	}

	plan, err := h.supplements.Plan(ctx, now)
	if err != nil {
		h.l.Errorf(ctx, "%s: supplement plan failed: %v", LogPrefixProcess, err)
		return h.bot.SendMessage(msg.Chat.ID, ReplyInternalError)
	}
	return h.bot.SendMessageWithMode(msg.Chat.ID, renderSupplementPlan(plan), modeMarkdown)
}

func (h *handler) recordSupplement(ctx context.Context, msg *pkgTelegram.Message, name string, now time.Time) error {
	if h.supplements == nil {
		return h.bot.SendMessage(msg.Chat.ID, ReplySupplementsDisabled)
	}

	status, err := h.supplements.RecordIntake(ctx, name, now)
	switch {
	case errors.Is(err, supplement.ErrUnknownSupplement):
		return h.bot.SendMessage(msg.Chat.ID, ReplyUnknownSupplement)
	case errors.Is(err, supplement.ErrNotScheduled):
		return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("%s no está en el plan de hoy.", status.Item.Name))
	case errors.Is(err, supplement.ErrAlreadyTaken):
		return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("Ya lo habías anotado a las %s 👍.", status.TakenAt))
	case err != nil:
		h.l.Errorf(ctx, "%s: record intake %q failed: %v", LogPrefixProcess, name, err)
		return h.bot.SendMessage(msg.Chat.ID, ReplyInternalError)
	}
	return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("💪 Anotado: %s a las %s.", status.Item.Name, status.TakenAt))
}
