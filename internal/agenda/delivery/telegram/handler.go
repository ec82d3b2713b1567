package telegram

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"personal-scheduling-assistant/internal/agenda"
	"personal-scheduling-assistant/internal/conversation"
	"personal-scheduling-assistant/internal/model"
	"personal-scheduling-assistant/internal/parser"
	"personal-scheduling-assistant/internal/supplement"
	"personal-scheduling-assistant/pkg/datemath"
	pkgLog "personal-scheduling-assistant/pkg/log"
	pkgResponse "personal-scheduling-assistant/pkg/response"
	pkgTelegram "personal-scheduling-assistant/pkg/telegram"
)

type handler struct {
	l           pkgLog.Logger
	uc          agenda.UseCase
	parser      parser.Parser
	machine     *conversation.Machine
	store       *conversation.Store
	supplements supplement.Service
	bot         *pkgTelegram.Bot
	dates       *datemath.Parser
	guard       *senderGuard
	locks       *userLocks
	ownerID     int64
	backendWait time.Duration
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram retries webhooks that take longer than a
// few seconds, and our pipeline (LLM + calendar) can take 5-10s.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "%s: failed to parse update: %v", LogPrefixWebhook, err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edits, polls, channel_post, etc.)
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	// Single-owner service: anything not from the owner is dropped without
	// a reply, so strangers cannot probe whether the bot is alive.
	if msg.From.ID != h.ownerID {
		h.l.Warnf(ctx, "%s: dropped update from unauthorized user %d", LogPrefixWebhook, msg.From.ID)
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	if !h.guard.allow(msg.From.ID) {
		h.l.Warnf(ctx, "%s: rate limited user %d", LogPrefixWebhook, msg.From.ID)
		pkgResponse.OK(c, map[string]string{"status": "dropped"})
		return
	}

	// Critical: process in goroutine, return 200 immediately to Telegram
	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		correlationID := uuid.NewString()

		// One pipeline pass at a time per sender, so rapid-fire wizard
		// answers never interleave on the same conversation.
		lock := h.locks.forUser(msg.From.ID)
		lock.Lock()
		defer lock.Unlock()

		if err := h.processMessage(bgCtx, correlationID, msg); err != nil {
			h.l.Errorf(bgCtx, "%s: [%s] background processMessage failed: %v", LogPrefixWebhook, correlationID, err)
			// Best-effort error notification to user
			_ = h.bot.SendMessage(msg.Chat.ID, ReplyInternalError)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message: commands first, then an
// in-flight conversation if there is one, then the NLP path.
func (h *handler) processMessage(ctx context.Context, correlationID string, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	h.l.Infof(ctx, "%s: [%s] message from %d (%d chars)", LogPrefixProcess, correlationID, msg.From.ID, len(text))

	now := time.Now().In(h.dates.Location())

	if strings.HasPrefix(text, "/") {
		return h.handleCommand(ctx, msg, text, now)
	}

	if conv, ok := h.store.Get(msg.From.ID); ok {
		return h.advanceConversation(ctx, msg, conv, text, now)
	}

	return h.handleFreeText(ctx, msg, text, now)
}

// handleCommand routes slash commands. Commands other than /cancelar leave
// any in-flight conversation untouched, except /nuevo and /eliminar which
// replace it with a fresh one.
func (h *handler) handleCommand(ctx context.Context, msg *pkgTelegram.Message, text string, now time.Time) error {
	command, args := splitCommand(text)

	switch command {
	case CmdStart, CmdHelp:
		return h.bot.SendMessageWithMode(msg.Chat.ID, ReplyWelcome, modeMarkdown)

	case CmdCancel:
		if _, ok := h.store.Get(msg.From.ID); !ok {
			return h.bot.SendMessage(msg.Chat.ID, ReplyNothingToCancel)
		}
		h.store.Delete(msg.From.ID)
		return h.bot.SendMessage(msg.Chat.ID, conversation.ReplyCancelled)

	case CmdNew:
		conv, reply := h.machine.StartCreate(now)
		h.store.Put(msg.From.ID, conv)
		return h.bot.SendMessage(msg.Chat.ID, reply)

	case CmdAgenda:
		return h.runIntent(ctx, msg, listIntent(h.dates.StartOfDay(now), agendaWindowDays), now)

	case CmdToday:
		return h.runIntent(ctx, msg, listIntent(h.dates.StartOfDay(now), todayWindowDays), now)

	case CmdDelete:
		if args == "" {
			conv, reply := h.machine.StartDelete(now)
			h.store.Put(msg.From.ID, conv)
			return h.bot.SendMessage(msg.Chat.ID, reply)
		}
		return h.runIntent(ctx, msg, queryIntent(model.KindDeleteEvent, args), now)

	case CmdComplete:
		if args == "" {
			return h.bot.SendMessage(msg.Chat.ID, ReplyCompleteUsage)
		}
		return h.runIntent(ctx, msg, queryIntent(model.KindCompleteEvent, args), now)

	case CmdSupplements:
		return h.sendSupplementPlan(ctx, msg, now)

	case CmdTook:
		if args == "" {
			return h.bot.SendMessage(msg.Chat.ID, ReplyTookUsage)
		}
		return h.recordSupplement(ctx, msg, args, now)

	default:
		return h.bot.SendMessage(msg.Chat.ID, ReplyUnknownCommand)
	}
}

// advanceConversation feeds user input into the wizard and acts on whatever
// the step produced.
func (h *handler) advanceConversation(ctx context.Context, msg *pkgTelegram.Message, conv *conversation.Conversation, text string, now time.Time) error {
	res := h.machine.Advance(conv, text, now)

	if res.Done {
		h.store.Delete(msg.From.ID)
	} else {
		// Re-put so the inactivity timer restarts on every exchange.
		h.store.Put(msg.From.ID, conv)
	}

	if res.Reply != "" {
		if err := h.bot.SendMessage(msg.Chat.ID, res.Reply); err != nil {
			return err
		}
	}

	switch {
	case res.Intent != nil:
		return h.runIntent(ctx, msg, *res.Intent, now)
	case res.Action != nil:
		return h.executeResolved(ctx, msg, *res.Action)
	}
	return nil
}

// splitCommand separates "/eliminar dentista" into the command and its
// argument text. Telegram appends "@botname" in groups; strip it.
func splitCommand(text string) (string, string) {
	command := text
	args := ""
	if i := strings.IndexByte(text, ' '); i >= 0 {
		command = text[:i]
		args = strings.TrimSpace(text[i+1:])
	}
	if i := strings.IndexByte(command, '@'); i >= 0 {
		command = command[:i]
	}
	return strings.ToLower(command), args
}

func listIntent(from time.Time, days int) model.Intent {
	return model.Intent{
		Kind:       model.KindListEvents,
		Start:      &from,
		RangeDays:  days,
		Confidence: model.ConfidenceHigh,
	}
}

func queryIntent(kind model.Kind, query string) model.Intent {
	return model.Intent{
		Kind:       kind,
		QueryText:  query,
		Confidence: model.ConfidenceHigh,
	}
}
