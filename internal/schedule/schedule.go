// Package schedule holds the calendar math the planner is built on: ISO
// week bucketing, day-key conversions and date shifting. Everything here is
// pure and total; malformed dates fail closed instead of erroring.
package schedule

import (
	"fmt"
	"regexp"
	"time"
)

// DayKeys lists the seven template day keys in week order, Sunday first,
// indexed by time.Weekday.
var DayKeys = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

var dayIndex = func() map[string]int {
	m := make(map[string]int, len(DayKeys))
	for i, k := range DayKeys {
		m[k] = i
	}
	return m
}()

// IsDayKey reports whether s is one of the seven template day keys.
func IsDayKey(s string) bool {
	_, ok := dayIndex[s]
	return ok
}

const dayLayout = "2006-01-02"

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// ParseDay parses a calendar date, ignoring any time-of-day suffix. It
// accepts "2006-01-02" prefixes (plain dates, RFC 3339 timestamps) and
// returns ok=false for anything else.
func ParseDay(value string) (time.Time, bool) {
	if len(value) >= len(dayLayout) && dayPattern.MatchString(value) {
		t, err := time.Parse(dayLayout, value[:len(dayLayout)])
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

// FormatDay renders a date as the canonical YYYY-MM-DD calendar day.
func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}

// ISOWeekKey returns the ISO-8601 week bucket of a date, formatted
// "{isoYear}-W{week}". The day is re-anchored at a UTC midnight before the
// week is computed so dates near year boundaries land in the right week
// regardless of the wall clock's zone.
func ISOWeekKey(t time.Time) string {
	utc := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	year, week := utc.ISOWeek()
	return fmt.Sprintf("%d-W%d", year, week)
}

var weekKeyPattern = regexp.MustCompile(`^\d{4}-W\d{1,2}$`)

// IsWeekKey reports whether s has the "{isoYear}-W{week}" shape produced by
// ISOWeekKey. The week number is not range-checked; a key for a week that
// never occurs simply matches no entries.
func IsWeekKey(s string) bool {
	return weekKeyPattern.MatchString(s)
}

// EntryInWeek reports whether the entry date string falls in the given ISO
// week. Empty or unparsable dates are never in any week.
func EntryInWeek(dateString, weekKey string) bool {
	if dateString == "" || weekKey == "" {
		return false
	}
	day, ok := ParseDay(dateString)
	if !ok {
		return false
	}
	return ISOWeekKey(day) == weekKey
}

// DayKeyFromDate maps a date to its template day key.
func DayKeyFromDate(t time.Time) string {
	return DayKeys[int(t.Weekday())]
}

// DateForDayKey returns the date of the given day key within the anchor's
// Sunday-based week. An unknown day key returns the anchor unchanged.
func DateForDayKey(anchor time.Time, dayKey string) time.Time {
	target, ok := dayIndex[dayKey]
	if !ok {
		return anchor
	}
	return anchor.AddDate(0, 0, target-int(anchor.Weekday()))
}

// ShiftDate moves a date by whole calendar days.
func ShiftDate(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
