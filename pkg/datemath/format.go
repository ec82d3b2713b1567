package datemath

import (
	"fmt"
	"time"
)

var weekdayNames = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

// WeekdayName returns the Spanish name of the weekday, lowercase.
func WeekdayName(wd time.Weekday) string {
	return weekdayNames[wd]
}

// FormatDay renders a day as "lunes 10/06" in the parser's timezone.
func (p *Parser) FormatDay(t time.Time) string {
	t = t.In(p.location)
	return fmt.Sprintf("%s %02d/%02d", WeekdayName(t.Weekday()), t.Day(), int(t.Month()))
}

// String renders the clock as "15:04", or "todo el día" for all-day values.
func (c Clock) String() string {
	if c.AllDay {
		return "todo el día"
	}
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
