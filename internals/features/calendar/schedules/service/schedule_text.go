// file: internals/features/calendar/schedules/service/schedule_text.go
package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	helper "mali_scheduler_backend/internals/helpers"
)

// DefaultStartTime is used when a captured clock cannot be converted.
const DefaultStartTime = "09:00"

type dayName struct {
	name    string
	weekday time.Weekday
}

// canonical order; ParseScheduleDays keeps it
var canonicalDays = []dayName{
	{"lunes", time.Monday},
	{"martes", time.Tuesday},
	{"miercoles", time.Wednesday},
	{"jueves", time.Thursday},
	{"viernes", time.Friday},
	{"sabado", time.Saturday},
	{"domingo", time.Sunday},
}

var reStartTime = regexp.MustCompile(`(?i)(\d{1,2}:\d{2})\s*(pm|am|-|\s)`)

// FoldText strips diacritics and lowercases.
func FoldText(s string) string { return helper.FoldAccents(s) }

// ParseScheduleDays returns the weekdays whose Spanish name occurs in text.
// Plain substring test, no word boundaries.
func ParseScheduleDays(text string) []time.Weekday {
	folded := FoldText(text)
	var out []time.Weekday
	for _, d := range canonicalDays {
		if strings.Contains(folded, d.name) {
			out = append(out, d.weekday)
		}
	}
	return out
}

// ParseStartTime returns the first H:MM or HH:MM followed by am, pm, a hyphen
// or whitespace, plus the lowercased am/pm modifier when one was captured.
func ParseStartTime(text string) (clock, modifier string, ok bool) {
	m := reStartTime.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	mod := strings.ToLower(m[2])
	if mod != "am" && mod != "pm" {
		mod = ""
	}
	return m[1], mod, true
}

// To24Hour converts a 12-hour clock: "12" becomes "00", pm adds 12, other hours pass through.
func To24Hour(clock, modifier string) string {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return DefaultStartTime
	}
	hourStr, minStr, _ := strings.Cut(clock, ":")

	hour, err := strconv.Atoi(strings.TrimSpace(hourStr))
	if err != nil || hour < 0 {
		return DefaultStartTime
	}
	if hour == 12 {
		hour = 0
	}
	if strings.EqualFold(modifier, "pm") {
		hour += 12
	}
	if hour > 23 {
		return DefaultStartTime
	}

	minute, err := strconv.Atoi(strings.TrimSpace(minStr))
	if err != nil || minute < 0 || minute > 59 {
		minute = 0
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// AddMonthsClamped adds n calendar months, clamping the day to the target month's end
// (Jan 31 + 1 month = Feb 29 in a leap year).
func AddMonthsClamped(d time.Time, n int) time.Time {
	y, mo, day := d.Date()
	first := time.Date(y, mo, 1, 0, 0, 0, 0, d.Location()).AddDate(0, n, 0)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}
