package reminder

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"personal-scheduling-assistant/internal/agenda/repository"
	"personal-scheduling-assistant/internal/supplement"
	"personal-scheduling-assistant/pkg/datemath"
	pkgLog "personal-scheduling-assistant/pkg/log"
	pkgTelegram "personal-scheduling-assistant/pkg/telegram"
)

// Config controls the scheduled jobs. Zero specs fall back to defaults.
type Config struct {
	ChatID       int64 // where reminders are sent
	PendingSpec  string
	RolloverSpec string
	Supplements  []supplement.Item
	RepingDelay  time.Duration // how long before an untaken supplement is nagged again
}

// Service runs the proactive side of the assistant: pending-event pings,
// the nightly rollover and supplement reminders.
type Service struct {
	l           pkgLog.Logger
	repo        repository.CalendarRepository
	supplements supplement.Service
	bot         *pkgTelegram.Bot
	dates       *datemath.Parser
	cfg         Config
	cron        *cron.Cron

	mu       sync.Mutex
	timers   []*time.Timer
	stopOnce sync.Once
}

// New creates a new reminder Service.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(
	l pkgLog.Logger,
	repo repository.CalendarRepository,
	supplements supplement.Service,
	bot *pkgTelegram.Bot,
	dates *datemath.Parser,
	cfg Config,
) *Service {
	if cfg.PendingSpec == "" {
		cfg.PendingSpec = DefaultPendingSpec
	}
	if cfg.RolloverSpec == "" {
		cfg.RolloverSpec = DefaultRolloverSpec
	}
	if cfg.RepingDelay <= 0 {
		cfg.RepingDelay = DefaultRepingDelay
	}
	return &Service{
		l:           l,
		repo:        repo,
		supplements: supplements,
		bot:         bot,
		dates:       dates,
		cfg:         cfg,
		cron: cron.New(
			cron.WithLocation(dates.Location()),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
	}
}
