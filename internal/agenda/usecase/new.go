package usecase

import (
	"time"

	"personal-scheduling-assistant/internal/agenda/repository"
	"personal-scheduling-assistant/pkg/datemath"
	pkgLog "personal-scheduling-assistant/pkg/log"
)

type implUseCase struct {
	l                 pkgLog.Logger
	repo              repository.CalendarRepository
	dates             *datemath.Parser
	defaultDuration   time.Duration
	resolveWindowDays int
}

// New creates a new agenda UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.CalendarRepository,
	dates *datemath.Parser,
	defaultDuration time.Duration,
	resolveWindowDays int,
) *implUseCase {
	if defaultDuration <= 0 {
		defaultDuration = time.Hour
	}
	if resolveWindowDays <= 0 {
		resolveWindowDays = 30
	}
	return &implUseCase{
		l:                 l,
		repo:              repo,
		dates:             dates,
		defaultDuration:   defaultDuration,
		resolveWindowDays: resolveWindowDays,
	}
}
