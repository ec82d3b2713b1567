package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"personal-scheduling-assistant/internal/agenda/delivery/telegram"
	"personal-scheduling-assistant/internal/conversation"
	"personal-scheduling-assistant/internal/model"
	"personal-scheduling-assistant/internal/supplement"
	"personal-scheduling-assistant/pkg/datemath"
	pkgTelegram "personal-scheduling-assistant/pkg/telegram"
)

const (
	testOwnerID = int64(456)
	testChatID  = int64(123)
)

// ── Mocks ──────────────────────────────────────────────────────────────────

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

type mockAgendaUseCase struct {
	executeOutcome model.Outcome
	executeErr     error
	executeIntents []model.Intent

	resolveAction  model.ResolvedAction
	resolveErr     error
	resolveIntents []model.Intent

	resolvedOutcome model.Outcome
	resolvedErr     error
	resolvedActions []model.ResolvedAction
}

func (m *mockAgendaUseCase) Execute(ctx context.Context, intent model.Intent) (model.Outcome, error) {
	m.executeIntents = append(m.executeIntents, intent)
	return m.executeOutcome, m.executeErr
}

func (m *mockAgendaUseCase) Resolve(ctx context.Context, intent model.Intent, now time.Time) (model.ResolvedAction, error) {
	m.resolveIntents = append(m.resolveIntents, intent)
	return m.resolveAction, m.resolveErr
}

func (m *mockAgendaUseCase) ExecuteResolved(ctx context.Context, action model.ResolvedAction) (model.Outcome, error) {
	m.resolvedActions = append(m.resolvedActions, action)
	return m.resolvedOutcome, m.resolvedErr
}

type mockParser struct {
	intent model.Intent
	texts  []string
}

func (m *mockParser) Parse(ctx context.Context, freeText string, ref time.Time) model.Intent {
	m.texts = append(m.texts, freeText)
	return m.intent
}

type mockSupplementSvc struct {
	plan      []supplement.Status
	planErr   error
	recorded  supplement.Status
	recordErr error
}

func (m *mockSupplementSvc) Plan(ctx context.Context, ref time.Time) ([]supplement.Status, error) {
	return m.plan, m.planErr
}

func (m *mockSupplementSvc) RecordIntake(ctx context.Context, name string, ref time.Time) (supplement.Status, error) {
	return m.recorded, m.recordErr
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type testEnv struct {
	engine           *gin.Engine
	muc              *mockAgendaUseCase
	mparser          *mockParser
	msupp            *mockSupplementSvc
	store            *conversation.Store
	dates            *datemath.Parser
	capturedMessages *[]string
}

func newTestEnv(t *testing.T) (*testEnv, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	capturedMessages := &[]string{}

	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/sendMessage") {
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			if text, ok := payload["text"].(string); ok {
				*capturedMessages = append(*capturedMessages, text)
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))

	l := &mockLogger{}
	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	dates, err := datemath.NewParser("America/Argentina/Buenos_Aires")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	muc := &mockAgendaUseCase{}
	mparser := &mockParser{}
	msupp := &mockSupplementSvc{}
	machine := conversation.NewMachine(dates)
	store := conversation.NewStore(10 * time.Minute)

	engine := gin.New()
	h := telegram.New(l, muc, mparser, machine, store, msupp, bot, dates, testOwnerID, 600, 5*time.Second)
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{
		engine:           engine,
		muc:              muc,
		mparser:          mparser,
		msupp:            msupp,
		store:            store,
		dates:            dates,
		capturedMessages: capturedMessages,
	}, tgServer
}

func sendWebhookFrom(engine *gin.Engine, userID int64, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: testChatID},
			From:      &pkgTelegram.User{ID: userID},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	return sendWebhookFrom(engine, testOwnerID, text)
}

func waitForMessages(msgs *[]string, atLeast int, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) && len(*msgs) < atLeast {
		time.Sleep(20 * time.Millisecond)
	}
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

// ── Webhook plumbing ───────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	update := pkgTelegram.Update{UpdateID: 1, Message: nil}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHandleWebhook_UnauthorizedSenderIsSilent(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhookFrom(env.engine, 999, "Reunión mañana a las 3pm")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// No reply at all: strangers must not learn the bot exists.
	time.Sleep(150 * time.Millisecond)
	if n := len(*env.capturedMessages); n != 0 {
		t.Errorf("expected no messages for a stranger, got %d: %v", n, *env.capturedMessages)
	}
	if n := len(env.mparser.texts); n != 0 {
		t.Errorf("expected parser untouched for a stranger, got %d calls", n)
	}
}

// ── Commands ───────────────────────────────────────────────────────────────

func TestHandleStart(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "/start")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "asistente de agenda")
}

func TestHandleUnknownCommand(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/loquesea")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "No conozco ese comando")
}

func TestHandleAgendaCommand(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	loc := env.dates.Location()
	env.muc.executeOutcome = model.Outcome{
		Status: model.OutcomeListed,
		Events: []model.CandidateEvent{
			{ID: "ev-1", Title: "Dentista", Start: time.Date(2024, 6, 11, 10, 0, 0, 0, loc), End: time.Date(2024, 6, 11, 11, 0, 0, 0, loc)},
			{ID: "ev-2", Title: "Gimnasio", Start: time.Date(2024, 6, 12, 18, 0, 0, 0, loc), End: time.Date(2024, 6, 12, 19, 0, 0, 0, loc)},
		},
	}

	sendWebhook(env.engine, "/agenda")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)

	assertContains(t, *env.capturedMessages, "Dentista")
	assertContains(t, *env.capturedMessages, "Gimnasio")

	if len(env.muc.executeIntents) != 1 {
		t.Fatalf("expected 1 execute call, got %d", len(env.muc.executeIntents))
	}
	got := env.muc.executeIntents[0]
	if got.Kind != model.KindListEvents {
		t.Errorf("kind = %s, want LIST_EVENTS", got.Kind)
	}
	if got.RangeDays != 7 {
		t.Errorf("range = %d days, want 7", got.RangeDays)
	}
}

func TestHandleTodayCommand(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.executeOutcome = model.Outcome{Status: model.OutcomeListed}

	sendWebhook(env.engine, "/hoy")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)

	assertContains(t, *env.capturedMessages, "nada agendado")

	if len(env.muc.executeIntents) != 1 {
		t.Fatalf("expected 1 execute call, got %d", len(env.muc.executeIntents))
	}
	got := env.muc.executeIntents[0]
	if got.RangeDays != 1 {
		t.Errorf("range = %d days, want 1", got.RangeDays)
	}
	if got.Start == nil {
		t.Fatal("expected a start bound")
	}
	if h, m, s := got.Start.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("start should be midnight, got %02d:%02d:%02d", h, m, s)
	}
}

func TestCancelCommand_NothingInFlight(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/cancelar")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "No había nada en curso")
}

// ── Free text through the NLP parser ───────────────────────────────────────

func TestFreeText_CreateIntent(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	loc := env.dates.Location()
	start := time.Date(2024, 6, 11, 15, 0, 0, 0, loc)
	env.mparser.intent = model.Intent{
		Kind:       model.KindCreateEvent,
		Title:      "Reunión con Juan",
		Start:      &start,
		Confidence: model.ConfidenceHigh,
	}
	env.muc.executeOutcome = model.Outcome{
		Status: model.OutcomeCreated,
		Event: model.CandidateEvent{
			ID:    "ev-new",
			Title: "Reunión con Juan",
			Start: start,
			End:   start.Add(time.Hour),
		},
	}

	sendWebhook(env.engine, "Reunión con Juan mañana a las 3pm")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)

	assertContains(t, *env.capturedMessages, "Agendado")
	assertContains(t, *env.capturedMessages, "Reunión con Juan")
	assertContains(t, *env.capturedMessages, "15:00")

	if len(env.mparser.texts) != 1 || env.mparser.texts[0] != "Reunión con Juan mañana a las 3pm" {
		t.Errorf("parser saw %v", env.mparser.texts)
	}
}

func TestFreeText_CreateWithOverlapWarning(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	loc := env.dates.Location()
	start := time.Date(2024, 6, 11, 15, 0, 0, 0, loc)
	env.mparser.intent = model.Intent{
		Kind:       model.KindCreateEvent,
		Title:      "Llamada",
		Start:      &start,
		Confidence: model.ConfidenceHigh,
	}
	env.muc.executeOutcome = model.Outcome{
		Status: model.OutcomeCreated,
		Event:  model.CandidateEvent{ID: "ev-new", Title: "Llamada", Start: start, End: start.Add(time.Hour)},
		Overlaps: []model.CandidateEvent{
			{ID: "ev-old", Title: "Siesta", Start: start.Add(-30 * time.Minute), End: start.Add(30 * time.Minute)},
		},
	}

	sendWebhook(env.engine, "Llamada mañana a las 3")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)

	assertContains(t, *env.capturedMessages, "se superpone")
	assertContains(t, *env.capturedMessages, "Siesta")
}

func TestFreeText_Ambiguous_AsksAndStaysIdle(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.mparser.intent = model.Intent{
		Kind:       model.KindCreateEvent,
		Title:      "Reunión",
		Confidence: model.ConfidenceAmbiguous,
		Clarify:    "¿Para qué día es la reunión?",
	}

	sendWebhook(env.engine, "Agendá una reunión")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)

	assertContains(t, *env.capturedMessages, "¿Para qué día es la reunión?")

	if len(env.muc.executeIntents) != 0 {
		t.Errorf("ambiguous intent must not reach the executor")
	}
	if _, ok := env.store.Get(testOwnerID); ok {
		t.Errorf("clarification must not open a conversation")
	}
}

func TestFreeText_Unparseable(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.mparser.intent = model.Intent{Kind: model.KindUnknown, Confidence: model.ConfidenceUnparseable}

	sendWebhook(env.engine, "asdf qwerty")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "No entendí el mensaje")
}

func TestFreeText_OffTopic(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.mparser.intent = model.Intent{Kind: model.KindUnknown, Confidence: model.ConfidenceHigh}

	sendWebhook(env.engine, "Contame un chiste")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "solo manejo tu agenda")
}

func TestFreeText_BackendErrorOutcome(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	loc := env.dates.Location()
	start := time.Date(2024, 6, 11, 15, 0, 0, 0, loc)
	env.mparser.intent = model.Intent{
		Kind:       model.KindCreateEvent,
		Title:      "Reunión",
		Start:      &start,
		Confidence: model.ConfidenceHigh,
	}
	env.muc.executeOutcome = model.Outcome{Status: model.OutcomeBackendError, Detail: "googleapi: 503"}

	sendWebhook(env.engine, "Reunión mañana a las 3pm")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "No pude hablar con el calendario")
}

// ── The create wizard, end to end ──────────────────────────────────────────

func TestWizard_FullCreateFlow(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/nuevo")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "¿Cómo se llama el evento?")

	sendWebhook(env.engine, "Dentista")
	waitForMessages(env.capturedMessages, 2, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "¿Para qué día?")

	sendWebhook(env.engine, "mañana")
	waitForMessages(env.capturedMessages, 3, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "¿A qué hora?")

	sendWebhook(env.engine, "15:00")
	waitForMessages(env.capturedMessages, 4, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Revisá el evento")
	assertContains(t, *env.capturedMessages, "Dentista")

	loc := env.dates.Location()
	tomorrow := time.Now().In(loc).AddDate(0, 0, 1)
	env.muc.executeOutcome = model.Outcome{
		Status: model.OutcomeCreated,
		Event: model.CandidateEvent{
			ID:    "ev-new",
			Title: "Dentista",
			Start: time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 15, 0, 0, 0, loc),
			End:   time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 16, 0, 0, 0, loc),
		},
	}

	sendWebhook(env.engine, "sí")
	waitForMessages(env.capturedMessages, 5, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Agendado")

	if len(env.muc.executeIntents) != 1 {
		t.Fatalf("expected 1 execute call, got %d", len(env.muc.executeIntents))
	}
	got := env.muc.executeIntents[0]
	if got.Kind != model.KindCreateEvent || got.Title != "Dentista" {
		t.Errorf("unexpected intent %+v", got)
	}
	if got.Start == nil || got.Start.Hour() != 15 {
		t.Errorf("expected a 15:00 start, got %v", got.Start)
	}

	if _, ok := env.store.Get(testOwnerID); ok {
		t.Errorf("conversation should be gone after confirmation")
	}
}

func TestWizard_InvalidDateKeepsAsking(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/nuevo")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	sendWebhook(env.engine, "Dentista")
	waitForMessages(env.capturedMessages, 2, 500*time.Millisecond)

	sendWebhook(env.engine, "no tengo idea")
	waitForMessages(env.capturedMessages, 3, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "No entendí la fecha")

	// Still waiting on the same step.
	sendWebhook(env.engine, "mañana")
	waitForMessages(env.capturedMessages, 4, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "¿A qué hora?")
}

func TestWizard_CancelMidway(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/nuevo")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)

	sendWebhook(env.engine, "/cancelar")
	waitForMessages(env.capturedMessages, 2, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Listo, cancelado")

	if _, ok := env.store.Get(testOwnerID); ok {
		t.Errorf("cancel should drop the conversation")
	}
	if len(env.muc.executeIntents) != 0 {
		t.Errorf("nothing should have been executed")
	}
}

func TestWizard_DeclineConfirmation(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/nuevo")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	sendWebhook(env.engine, "Dentista")
	waitForMessages(env.capturedMessages, 2, 500*time.Millisecond)
	sendWebhook(env.engine, "mañana")
	waitForMessages(env.capturedMessages, 3, 500*time.Millisecond)
	sendWebhook(env.engine, "15:00")
	waitForMessages(env.capturedMessages, 4, 500*time.Millisecond)

	sendWebhook(env.engine, "no")
	waitForMessages(env.capturedMessages, 5, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "descarté el evento")

	if len(env.muc.executeIntents) != 0 {
		t.Errorf("declined draft must not be executed")
	}
	if _, ok := env.store.Get(testOwnerID); ok {
		t.Errorf("conversation should be gone after decline")
	}
}

// ── Delete and disambiguation ──────────────────────────────────────────────

func TestDeleteCommand_NotFound(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.resolveAction = model.ResolvedAction{Status: model.ResolutionNotFound, Kind: model.KindDeleteEvent}

	sendWebhook(env.engine, "/eliminar asado")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)

	assertContains(t, *env.capturedMessages, "No encontré ningún evento")
	assertContains(t, *env.capturedMessages, "asado")

	if len(env.muc.resolvedActions) != 0 {
		t.Errorf("nothing should have been executed")
	}
}

func TestDeleteCommand_MatchedDeletesDirectly(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	loc := env.dates.Location()
	ev := model.CandidateEvent{ID: "ev-1", Title: "Dentista", Start: time.Date(2024, 6, 11, 10, 0, 0, 0, loc)}
	env.muc.resolveAction = model.ResolvedAction{
		Status:  model.ResolutionMatched,
		Kind:    model.KindDeleteEvent,
		EventID: "ev-1",
		Event:   ev,
	}
	env.muc.resolvedOutcome = model.Outcome{Status: model.OutcomeDeleted, EventID: "ev-1", Event: ev}

	sendWebhook(env.engine, "/eliminar dentista")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)

	assertContains(t, *env.capturedMessages, "eliminé")
	assertContains(t, *env.capturedMessages, "Dentista")

	if len(env.muc.resolvedActions) != 1 || env.muc.resolvedActions[0].EventID != "ev-1" {
		t.Errorf("resolved actions = %+v", env.muc.resolvedActions)
	}
}

func TestDeleteCommand_DisambiguationRoundTrip(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	loc := env.dates.Location()
	dent1 := model.CandidateEvent{ID: "ev-1", Title: "Dentista control", Start: time.Date(2024, 6, 11, 10, 0, 0, 0, loc)}
	dent2 := model.CandidateEvent{ID: "ev-2", Title: "Dentista limpieza", Start: time.Date(2024, 6, 13, 16, 0, 0, 0, loc)}
	env.muc.resolveAction = model.ResolvedAction{
		Status:     model.ResolutionNeedsDisambiguation,
		Kind:       model.KindDeleteEvent,
		Candidates: []model.CandidateEvent{dent1, dent2},
	}

	sendWebhook(env.engine, "/eliminar dentista")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Encontré varios eventos")
	assertContains(t, *env.capturedMessages, "1. Dentista control")
	assertContains(t, *env.capturedMessages, "2. Dentista limpieza")

	// An out-of-range answer keeps the question open.
	sendWebhook(env.engine, "9")
	waitForMessages(env.capturedMessages, 2, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Decime el número (1 a 2)")

	env.muc.resolvedOutcome = model.Outcome{Status: model.OutcomeDeleted, EventID: "ev-2", Event: dent2}

	sendWebhook(env.engine, "2")
	waitForMessages(env.capturedMessages, 3, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "eliminé")
	assertContains(t, *env.capturedMessages, "Dentista limpieza")

	if len(env.muc.resolvedActions) != 1 || env.muc.resolvedActions[0].EventID != "ev-2" {
		t.Errorf("resolved actions = %+v", env.muc.resolvedActions)
	}
	if _, ok := env.store.Get(testOwnerID); ok {
		t.Errorf("conversation should be gone after the choice")
	}
}

func TestDeleteCommand_NoArgsStartsWizard(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/eliminar")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "¿Qué evento querés eliminar?")

	loc := env.dates.Location()
	ev := model.CandidateEvent{ID: "ev-9", Title: "Gimnasio", Start: time.Date(2024, 6, 11, 18, 0, 0, 0, loc)}
	env.muc.resolveAction = model.ResolvedAction{Status: model.ResolutionMatched, Kind: model.KindDeleteEvent, EventID: "ev-9", Event: ev}
	env.muc.resolvedOutcome = model.Outcome{Status: model.OutcomeDeleted, EventID: "ev-9", Event: ev}

	sendWebhook(env.engine, "gimnasio")
	waitForMessages(env.capturedMessages, 2, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "eliminé")

	if len(env.muc.resolveIntents) != 1 || env.muc.resolveIntents[0].QueryText != "gimnasio" {
		t.Errorf("resolve intents = %+v", env.muc.resolveIntents)
	}
}

func TestCompleteCommand_RequiresQuery(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/completar")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "/completar <parte del título>")
}

func TestCompleteCommand_Matched(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	loc := env.dates.Location()
	ev := model.CandidateEvent{ID: "ev-3", Title: "Informe mensual", Start: time.Date(2024, 6, 11, 9, 0, 0, 0, loc)}
	env.muc.resolveAction = model.ResolvedAction{Status: model.ResolutionMatched, Kind: model.KindCompleteEvent, EventID: "ev-3", Event: ev}
	env.muc.resolvedOutcome = model.Outcome{Status: model.OutcomeCompleted, EventID: "ev-3", Event: ev}

	sendWebhook(env.engine, "/completar informe")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)

	assertContains(t, *env.capturedMessages, "como hecho")
	assertContains(t, *env.capturedMessages, "Informe mensual")

	if len(env.muc.resolveIntents) != 1 || env.muc.resolveIntents[0].Kind != model.KindCompleteEvent {
		t.Errorf("resolve intents = %+v", env.muc.resolveIntents)
	}
}

// ── Supplements ────────────────────────────────────────────────────────────

func TestSupplementsCommand(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.msupp.plan = []supplement.Status{
		{Item: supplement.Item{Name: "Creatina", Hour: 8}, Taken: true, TakenAt: "08:12"},
		{Item: supplement.Item{Name: "Omega 3", Hour: 13}, Due: true},
		{Item: supplement.Item{Name: "Magnesio", Hour: 22}},
	}

	sendWebhook(env.engine, "/suplementos")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)

	assertContains(t, *env.capturedMessages, "Suplementos de hoy")
	assertContains(t, *env.capturedMessages, "Creatina")
	assertContains(t, *env.capturedMessages, "tomado a las 08:12")
	assertContains(t, *env.capturedMessages, "pendiente desde las 13:00")
	assertContains(t, *env.capturedMessages, "Magnesio")
}

func TestTookCommand(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.msupp.recorded = supplement.Status{
		Item:    supplement.Item{Name: "Creatina", Hour: 8},
		Taken:   true,
		TakenAt: "10:30",
	}

	sendWebhook(env.engine, "/tome creatina")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Anotado: Creatina a las 10:30")
}

func TestTookCommand_AlreadyTaken(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.msupp.recorded = supplement.Status{
		Item:    supplement.Item{Name: "Creatina", Hour: 8},
		Taken:   true,
		TakenAt: "08:12",
	}
	env.msupp.recordErr = supplement.ErrAlreadyTaken

	sendWebhook(env.engine, "/tome creatina")
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Ya lo habías anotado a las 08:12")
}
