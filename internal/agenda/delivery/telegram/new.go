package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"personal-scheduling-assistant/internal/agenda"
	"personal-scheduling-assistant/internal/conversation"
	"personal-scheduling-assistant/internal/parser"
	"personal-scheduling-assistant/internal/supplement"
	"personal-scheduling-assistant/pkg/datemath"
	pkgLog "personal-scheduling-assistant/pkg/log"
	pkgTelegram "personal-scheduling-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	uc agenda.UseCase,
	intentParser parser.Parser,
	machine *conversation.Machine,
	store *conversation.Store,
	supplements supplement.Service,
	bot *pkgTelegram.Bot,
	dates *datemath.Parser,
	ownerID int64,
	rateLimitPerMin int,
	backendWait time.Duration,
) Handler {
	if backendWait <= 0 {
		backendWait = defaultBackendWait
	}
	return &handler{
		l:           l,
		uc:          uc,
		parser:      intentParser,
		machine:     machine,
		store:       store,
		supplements: supplements,
		bot:         bot,
		dates:       dates,
		guard:       newSenderGuard(rateLimitPerMin),
		locks:       newUserLocks(),
		ownerID:     ownerID,
		backendWait: backendWait,
	}
}
