package menu

import (
	"fmt"
	"strings"
	"time"
)

// Window is a same-day open/close interval parsed from a schedule string.
// Schedules that cross midnight ("22:00-02:00") are not modeled; such a
// window never reports open. Known limitation, kept on purpose.
type Window struct {
	OpenHour, OpenMinute   int
	CloseHour, CloseMinute int
}

// ParseSchedule parses an "HH:MM-HH:MM" schedule string.
func ParseSchedule(schedule string) (Window, error) {
	parts := strings.SplitN(strings.TrimSpace(schedule), "-", 2)
	if len(parts) != 2 {
		return Window{}, fmt.Errorf("schedule %q: want HH:MM-HH:MM", schedule)
	}
	var w Window
	var err error
	if w.OpenHour, w.OpenMinute, err = parseClock(parts[0]); err != nil {
		return Window{}, fmt.Errorf("schedule %q: %w", schedule, err)
	}
	if w.CloseHour, w.CloseMinute, err = parseClock(parts[1]); err != nil {
		return Window{}, fmt.Errorf("schedule %q: %w", schedule, err)
	}
	return w, nil
}

func parseClock(s string) (hour, minute int, err error) {
	s = strings.TrimSpace(s)
	if _, err = fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("bad clock %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock %q out of range", s)
	}
	return hour, minute, nil
}

// OpenAt reports whether t falls inside [open, close) on t's own day.
func (w Window) OpenAt(t time.Time) bool {
	open := time.Date(t.Year(), t.Month(), t.Day(), w.OpenHour, w.OpenMinute, 0, 0, t.Location())
	close := time.Date(t.Year(), t.Month(), t.Day(), w.CloseHour, w.CloseMinute, 0, 0, t.Location())
	return !t.Before(open) && t.Before(close)
}

// IsOpen evaluates a raw schedule string at time t. An unparseable schedule
// is treated as closed.
func IsOpen(schedule string, t time.Time) bool {
	w, err := ParseSchedule(schedule)
	if err != nil {
		return false
	}
	return w.OpenAt(t)
}
