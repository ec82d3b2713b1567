package parser

import (
	"fmt"
	"time"

	"personal-scheduling-assistant/pkg/datemath"
)

// Date format
const (
	DateFormatISO = "2006-01-02"
)

// buildTimeContext creates the temporal context block embedded in every
// prompt, computed from the caller's reference time so relative words
// resolve against the user's now.
func buildTimeContext(ref time.Time, loc *time.Location) string {
	now := ref.In(loc)

	// Week boundaries, Monday through Sunday
	weekday := int(now.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(DateFormatISO),
		datemath.WeekdayName(now.Weekday()),
		weekStart.Format(DateFormatISO),
		weekEnd.Format(DateFormatISO),
		tomorrow.Format(DateFormatISO),
		loc.String(),
		weekStart.Format(DateFormatISO),
		weekEnd.Format(DateFormatISO),
		tomorrow.Format(DateFormatISO),
	)
}
