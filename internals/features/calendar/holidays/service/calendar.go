// file: internals/features/calendar/holidays/service/calendar.go
package service

import "time"

// Calendar answers whether a calendar date is a holiday and its name.
// Only the date part of the argument is considered.
type Calendar interface {
	HolidayOn(date time.Time) (string, bool)
}

// Empty has no holidays.
type Empty struct{}

func (Empty) HolidayOn(time.Time) (string, bool) { return "", false }

// Composite asks each calendar in order; the first hit wins.
type Composite []Calendar

func (cs Composite) HolidayOn(d time.Time) (string, bool) {
	for _, c := range cs {
		if c == nil {
			continue
		}
		if name, ok := c.HolidayOn(d); ok {
			return name, true
		}
	}
	return "", false
}

// Holiday is one resolved holiday date.
type Holiday struct {
	Date   time.Time `json:"-"`
	Name   string    `json:"name"`
	Source string    `json:"source"`
}

const (
	SourceBuiltin = "builtin"
	SourceSchool  = "school"
)

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
