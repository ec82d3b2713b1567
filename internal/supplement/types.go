package supplement

import (
	"fmt"
	"time"
)

// Item is one configured supplement with its weekly schedule.
type Item struct {
	Name   string
	Days   []time.Weekday // empty means every day
	Hour   int
	Minute int
}

// ScheduledOn reports whether the item is due on the given weekday.
func (i Item) ScheduledOn(wd time.Weekday) bool {
	if len(i.Days) == 0 {
		return true
	}
	for _, d := range i.Days {
		if d == wd {
			return true
		}
	}
	return false
}

// At renders the scheduled time as HH:MM.
func (i Item) At() string {
	return fmt.Sprintf("%02d:%02d", i.Hour, i.Minute)
}

// Status is today's state of one supplement.
type Status struct {
	Item    Item
	Taken   bool
	TakenAt string // HH:MM, empty while pending
	Due     bool   // scheduled time already passed and still untaken
}

var dayNames = map[string]time.Weekday{
	"lun": time.Monday, "lunes": time.Monday,
	"mar": time.Tuesday, "martes": time.Tuesday,
	"mie": time.Wednesday, "miercoles": time.Wednesday,
	"jue": time.Thursday, "jueves": time.Thursday,
	"vie": time.Friday, "viernes": time.Friday,
	"sab": time.Saturday, "sabado": time.Saturday,
	"dom": time.Sunday, "domingo": time.Sunday,
}

// ParseSchedule builds an Item from configuration strings: days are
// Spanish abbreviations or full names ("lun".."domingo"), or "diario" for
// every day; at is an HH:MM clock.
func ParseSchedule(name string, days []string, at string) (Item, error) {
	if name == "" {
		return Item{}, fmt.Errorf("supplement needs a name")
	}

	clock, err := time.Parse("15:04", at)
	if err != nil {
		return Item{}, fmt.Errorf("invalid supplement time %q for %s: %w", at, name, err)
	}
	item := Item{Name: name, Hour: clock.Hour(), Minute: clock.Minute()}

	for _, d := range days {
		norm := normalize(d)
		if norm == "diario" || norm == "todos" {
			item.Days = nil
			return item, nil
		}
		wd, ok := dayNames[norm]
		if !ok {
			return Item{}, fmt.Errorf("invalid supplement day %q for %s", d, name)
		}
		item.Days = append(item.Days, wd)
	}
	return item, nil
}
