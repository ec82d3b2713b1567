package usecase_test

import (
	"context"
	"time"

	"personal-scheduling-assistant/internal/agenda/repository"
	"personal-scheduling-assistant/internal/model"
)

// mockLogger is a no-op logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockCalendarRepo implements repository.CalendarRepository with
// overridable behavior and call recording.
type mockCalendarRepo struct {
	createFunc func(opt repository.CreateEventOptions) (model.CandidateEvent, error)
	listFunc   func(opt repository.ListEventsOptions) ([]model.CandidateEvent, error)
	renameFunc func(eventID, title string) (model.CandidateEvent, error)
	moveFunc   func(eventID string, start, end time.Time) (model.CandidateEvent, error)
	deleteFunc func(eventID string) error

	createCalls []repository.CreateEventOptions
	listCalls   []repository.ListEventsOptions
	renameCalls map[string]string
	moveCalls   map[string]time.Time
	deleteCalls []string
}

func (m *mockCalendarRepo) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.CandidateEvent, error) {
	m.createCalls = append(m.createCalls, opt)
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.CandidateEvent{
		ID:     "created-1",
		Title:  opt.Title,
		Start:  opt.Start,
		End:    opt.End,
		AllDay: opt.AllDay,
	}, nil
}

func (m *mockCalendarRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.CandidateEvent, error) {
	m.listCalls = append(m.listCalls, opt)
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockCalendarRepo) RenameEvent(ctx context.Context, eventID, title string) (model.CandidateEvent, error) {
	if m.renameCalls == nil {
		m.renameCalls = map[string]string{}
	}
	m.renameCalls[eventID] = title
	if m.renameFunc != nil {
		return m.renameFunc(eventID, title)
	}
	return model.CandidateEvent{ID: eventID, Title: title}, nil
}

func (m *mockCalendarRepo) MoveEvent(ctx context.Context, eventID string, start, end time.Time) (model.CandidateEvent, error) {
	if m.moveCalls == nil {
		m.moveCalls = map[string]time.Time{}
	}
	m.moveCalls[eventID] = start
	if m.moveFunc != nil {
		return m.moveFunc(eventID, start, end)
	}
	return model.CandidateEvent{ID: eventID, Start: start, End: end}, nil
}

func (m *mockCalendarRepo) DeleteEvent(ctx context.Context, eventID string) error {
	m.deleteCalls = append(m.deleteCalls, eventID)
	if m.deleteFunc != nil {
		return m.deleteFunc(eventID)
	}
	return nil
}

// windowFilter wraps a fixture so the mock honors the From/To window the
// way a real backend would.
func windowFilter(fixture []model.CandidateEvent) func(opt repository.ListEventsOptions) ([]model.CandidateEvent, error) {
	return func(opt repository.ListEventsOptions) ([]model.CandidateEvent, error) {
		var out []model.CandidateEvent
		for _, ev := range fixture {
			if ev.Start.Before(opt.From) || ev.Start.After(opt.To) {
				continue
			}
			out = append(out, ev)
		}
		return out, nil
	}
}
