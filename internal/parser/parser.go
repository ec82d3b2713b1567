package parser

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"

	"personal-scheduling-assistant/internal/model"
	"personal-scheduling-assistant/pkg/gemini"
)

// Parse extracts a scheduling intent from free text. ref is the user's
// current moment; every relative date in the message resolves against it.
// Exactly one LLM call is made, with no retries: any failure folds into
// an UNKNOWN/UNPARSEABLE intent instead of an error.
func (p *IntentParser) Parse(ctx context.Context, freeText string, ref time.Time) model.Intent {
	prompt := buildTimeContext(ref, p.dates.Location()) + "\n\nMensaje del usuario: " + freeText

	resp, err := p.llm.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: PromptIntentSystem}},
		},
		Contents: []gemini.Content{
			{
				Role:  "user",
				Parts: []gemini.Part{{Text: prompt}},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     ParserTemperature,
			MaxOutputTokens: ParserMaxOutputTokens,
		},
	})
	if err != nil {
		p.l.Warnf(ctx, "%s: %s: %v", LogPrefixParse, ErrMsgLLMCallFailed, err)
		return unparseableIntent()
	}

	responseText := resp.Text()
	if responseText == "" {
		p.l.Warnf(ctx, "%s: %s", LogPrefixParse, ErrMsgEmptyResponse)
		return unparseableIntent()
	}

	reply, ok := p.decodeReply(ctx, responseText)
	if !ok {
		return unparseableIntent()
	}

	intent := p.mapReply(ctx, reply, ref)
	p.l.Infof(ctx, "%s: intent %s (confidence %s)", LogPrefixParse, intent.Kind, intent.Confidence)
	return intent
}

// decodeReply unmarshals the model answer, trying a repair pass before
// giving up on malformed JSON.
func (p *IntentParser) decodeReply(ctx context.Context, text string) (llmReply, bool) {
	cleaned := sanitizeJSONResponse(text)

	var reply llmReply
	if err := json.Unmarshal([]byte(cleaned), &reply); err == nil {
		return reply, true
	}

	repaired, err := jsonrepair.JSONRepair(cleaned)
	if err != nil {
		p.l.Warnf(ctx, "%s: %s: %v", LogPrefixParse, ErrMsgJSONParseFailed, err)
		return llmReply{}, false
	}
	if err := json.Unmarshal([]byte(repaired), &reply); err != nil {
		p.l.Warnf(ctx, "%s: %s: %v", LogPrefixParse, ErrMsgJSONParseFailed, err)
		return llmReply{}, false
	}
	return reply, true
}

func (p *IntentParser) mapReply(ctx context.Context, reply llmReply, ref time.Time) model.Intent {
	switch strings.ToLower(strings.TrimSpace(reply.Intencion)) {
	case intentNameCreate:
		return p.buildCreate(ctx, reply, ref)
	case intentNameList:
		return p.buildList(ctx, reply, ref)
	case intentNameDelete:
		return p.buildMatch(ctx, model.KindDeleteEvent, reply, ref)
	case intentNameComplete:
		return p.buildMatch(ctx, model.KindCompleteEvent, reply, ref)
	case intentNameSupplements:
		return model.Intent{Kind: model.KindSupplementQuery, Confidence: model.ConfidenceHigh}
	case intentNameOther:
		return model.Intent{Kind: model.KindUnknown, Confidence: model.ConfidenceHigh}
	default:
		p.l.Warnf(ctx, "%s: %s: %q", LogPrefixParse, ErrMsgUnknownIntent, reply.Intencion)
		return unparseableIntent()
	}
}

func (p *IntentParser) buildCreate(ctx context.Context, reply llmReply, ref time.Time) model.Intent {
	d := reply.Datos
	intent := model.Intent{
		Kind:        model.KindCreateEvent,
		Title:       strings.TrimSpace(d.Titulo),
		Description: strings.TrimSpace(d.Descripcion),
		Location:    strings.TrimSpace(d.Ubicacion),
		Priority:    priorityFromLLM(d.Prioridad),
		Confidence:  model.ConfidenceHigh,
	}

	// The model's own ambiguity verdict wins when it asked something back.
	if strings.EqualFold(reply.Confianza, confianzaAmbigua) && reply.Aclaracion != "" {
		return ambiguousIntent(intent, reply.Aclaracion)
	}

	if intent.Title == "" {
		return ambiguousIntent(intent, firstNonEmpty(reply.Aclaracion, ClarifyMissingTitle))
	}
	if d.Fecha == "" {
		return ambiguousIntent(intent, firstNonEmpty(reply.Aclaracion, ClarifyMissingDate))
	}

	day, err := p.dates.ParseDate(d.Fecha, ref)
	if err != nil {
		p.l.Warnf(ctx, "%s: unparseable date %q from LLM: %v", LogPrefixParse, d.Fecha, err)
		return unparseableIntent()
	}

	if d.DiaCompleto {
		intent.AllDay = true
		intent.Start = &day
		return intent
	}

	if d.HoraInicio == "" {
		return ambiguousIntent(intent, firstNonEmpty(reply.Aclaracion, ClarifyMissingTime))
	}
	clock, err := p.dates.ParseClock(d.HoraInicio)
	if err != nil {
		p.l.Warnf(ctx, "%s: unparseable time %q from LLM: %v", LogPrefixParse, d.HoraInicio, err)
		return unparseableIntent()
	}
	if clock.AllDay {
		intent.AllDay = true
		intent.Start = &day
		return intent
	}

	start := p.dates.Combine(day, clock)
	intent.Start = &start

	if d.HoraFin != "" {
		if endClock, endErr := p.dates.ParseClock(d.HoraFin); endErr == nil && !endClock.AllDay {
			end := p.dates.Combine(day, endClock)
			if end.After(start) {
				intent.End = &end
			}
		}
	}

	return intent
}

func (p *IntentParser) buildList(ctx context.Context, reply llmReply, ref time.Time) model.Intent {
	d := reply.Datos
	start := p.dates.StartOfDay(ref)
	rangeDays := d.RangoDias

	if d.Fecha != "" {
		day, err := p.dates.ParseDate(d.Fecha, ref)
		if err != nil {
			p.l.Warnf(ctx, "%s: unparseable date %q from LLM: %v", LogPrefixParse, d.Fecha, err)
			return unparseableIntent()
		}
		start = day
		if rangeDays == 0 {
			rangeDays = 1
		}
	}
	if rangeDays <= 0 {
		rangeDays = 7
	}

	return model.Intent{
		Kind:       model.KindListEvents,
		Start:      &start,
		RangeDays:  rangeDays,
		Confidence: model.ConfidenceHigh,
	}
}

// buildMatch handles delete and complete intents: both carry only a query
// text and an optional date hint narrowing the resolver window.
func (p *IntentParser) buildMatch(ctx context.Context, kind model.Kind, reply llmReply, ref time.Time) model.Intent {
	d := reply.Datos
	query := strings.TrimSpace(d.TextoBusqueda)
	if query == "" {
		query = strings.TrimSpace(d.Titulo)
	}

	intent := model.Intent{
		Kind:       kind,
		QueryText:  query,
		Confidence: model.ConfidenceHigh,
	}
	if query == "" {
		return ambiguousIntent(intent, firstNonEmpty(reply.Aclaracion, ClarifyMissingQuery))
	}

	if d.Fecha != "" {
		if day, err := p.dates.ParseDate(d.Fecha, ref); err == nil {
			intent.Start = &day
		} else {
			p.l.Warnf(ctx, "%s: ignoring unparseable date hint %q: %v", LogPrefixParse, d.Fecha, err)
		}
	}

	return intent
}

func unparseableIntent() model.Intent {
	return model.Intent{Kind: model.KindUnknown, Confidence: model.ConfidenceUnparseable}
}

func ambiguousIntent(intent model.Intent, clarify string) model.Intent {
	intent.Confidence = model.ConfidenceAmbiguous
	intent.Clarify = clarify
	return intent
}
