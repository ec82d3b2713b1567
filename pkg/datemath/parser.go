package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrUnknownDate is returned when the input matches no supported date form.
	ErrUnknownDate = errors.New("unrecognized date expression")
	// ErrUnknownClock is returned when the input matches no supported time-of-day form.
	ErrUnknownClock = errors.New("unrecognized time expression")
)

// Parser converts Spanish date and time expressions to absolute values.
type Parser struct {
	location *time.Location
}

// NewParser creates a date parser for the given IANA timezone string.
// e.g. "America/Argentina/Buenos_Aires"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

var weekdays = map[string]time.Weekday{
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miercoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sabado":    time.Saturday,
	"domingo":   time.Sunday,
	// English forms show up in LLM output now and then.
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var inDaysRe = regexp.MustCompile(`^(?:en|in)\s+(\d+)\s+(dia|dias|day|days|semana|semanas|week|weeks)$`)

var numericDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"02/01",
	"02-01",
	"2/1/2006",
	"2/1",
}

// ParseDate converts a date expression to midnight of that day in the
// parser's timezone. Supported forms: hoy, mañana, pasado mañana, ayer,
// weekday names (next occurrence, never today), "en N dias/semanas",
// ISO 2006-01-02 and DD/MM[/YYYY]. Unknown input returns ErrUnknownDate.
func (p *Parser) ParseDate(text string, base time.Time) (time.Time, error) {
	norm := Normalize(text)
	base = base.In(p.location)

	switch norm {
	case "hoy", "today":
		return p.StartOfDay(base), nil
	case "manana", "tomorrow":
		return p.StartOfDay(base.AddDate(0, 0, 1)), nil
	case "pasado manana":
		return p.StartOfDay(base.AddDate(0, 0, 2)), nil
	case "ayer", "yesterday":
		return p.StartOfDay(base.AddDate(0, 0, -1)), nil
	}

	if wd, ok := weekdays[strings.TrimPrefix(strings.TrimPrefix(norm, "proximo "), "el ")]; ok {
		return p.nextWeekday(wd, base), nil
	}

	if m := inDaysRe.FindStringSubmatch(norm); m != nil {
		amount, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(m[2], "semana") || strings.HasPrefix(m[2], "week") {
			amount *= 7
		}
		return p.StartOfDay(base.AddDate(0, 0, amount)), nil
	}

	for _, layout := range numericDateLayouts {
		t, err := time.ParseInLocation(layout, norm, p.location)
		if err != nil {
			continue
		}
		if t.Year() == 0 {
			t = time.Date(base.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
		}
		return p.StartOfDay(t), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownDate, text)
}

// nextWeekday returns the upcoming occurrence of wd strictly after base's day.
func (p *Parser) nextWeekday(wd time.Weekday, base time.Time) time.Time {
	daysUntil := (int(wd) - int(base.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return p.StartOfDay(base.AddDate(0, 0, daysUntil))
}

var clockRe = regexp.MustCompile(`^(\d{1,2})(?:[:.](\d{2}))?\s*(am|pm|hs|hrs|h)?$`)

// ParseClock converts a time-of-day expression to a Clock. Supported forms:
// HH:MM, H, HH, optional am/pm or hs suffix, and "todo el día" for all-day.
// Unknown input returns ErrUnknownClock.
func (p *Parser) ParseClock(text string) (Clock, error) {
	norm := Normalize(text)

	switch norm {
	case "todo el dia", "dia completo", "all day":
		return Clock{AllDay: true}, nil
	}

	m := clockRe.FindStringSubmatch(norm)
	if m == nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrUnknownClock, text)
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch m[3] {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: %q", ErrUnknownClock, text)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// Combine merges a day (any time on that day) with a clock value into an
// absolute time in the parser's timezone.
func (p *Parser) Combine(day time.Time, c Clock) time.Time {
	day = day.In(p.location)
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, 0, 0, p.location)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 on the same day as t in the parser's timezone.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	return p.StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

// Normalize lowercases, trims and folds Spanish accents so that
// "Miércoles" and "miercoles" compare equal.
func Normalize(s string) string {
	return accentFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
}
