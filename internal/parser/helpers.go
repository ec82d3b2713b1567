package parser

import (
	"regexp"
	"strings"

	"personal-scheduling-assistant/internal/model"
)

var jsonFenceRe = regexp.MustCompile("```(?:json)?\\s*")

// sanitizeJSONResponse strips markdown code fences and any prose around
// the JSON object so the reply can be unmarshalled directly.
func sanitizeJSONResponse(raw string) string {
	cleaned := jsonFenceRe.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		cleaned = cleaned[start : end+1]
	}
	return cleaned
}

func priorityFromLLM(raw string) model.Priority {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(model.PriorityHigh):
		return model.PriorityHigh
	case string(model.PriorityMedium):
		return model.PriorityMedium
	case string(model.PriorityLow):
		return model.PriorityLow
	default:
		return model.PriorityNone
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
