// file: internals/features/calendar/holidays/service/table_calendar.go
package service

import (
	"strings"
	"time"

	m "mali_scheduler_backend/internals/features/calendar/holidays/model"
)

type tableEntry struct {
	start, end time.Time
	title      string
	recurring  bool
}

// TableCalendar resolves holidays stored as date ranges.
type TableCalendar struct {
	entries []tableEntry
}

// NewTableCalendar keeps only active rows; the caller already filtered soft-deleted ones.
func NewTableCalendar(rows []m.NationalHolidayModel) *TableCalendar {
	tc := &TableCalendar{entries: make([]tableEntry, 0, len(rows))}
	for _, r := range rows {
		if !r.NationalHolidayIsActive {
			continue
		}
		start, end := dateOnly(r.NationalHolidayStartDate), dateOnly(r.NationalHolidayEndDate)
		if end.Before(start) {
			end = start
		}
		tc.entries = append(tc.entries, tableEntry{
			start:     start,
			end:       end,
			title:     strings.TrimSpace(r.NationalHolidayTitle),
			recurring: r.NationalHolidayIsRecurringYearly,
		})
	}
	return tc
}

func (tc *TableCalendar) Len() int { return len(tc.entries) }

func (tc *TableCalendar) HolidayOn(d time.Time) (string, bool) {
	day := dateOnly(d)
	for _, e := range tc.entries {
		if e.recurring {
			if inYearlyRange(day, e.start, e.end) {
				return e.title, true
			}
			continue
		}
		if !day.Before(e.start) && !day.After(e.end) {
			return e.title, true
		}
	}
	return "", false
}

// inYearlyRange compares month/day only; a range may wrap the new year (12-24..01-02).
func inYearlyRange(day, start, end time.Time) bool {
	// a recurring range of a year or more covers every day
	if !end.Before(start.AddDate(1, 0, -1)) {
		return true
	}
	k := monthDay(day)
	s, e := monthDay(start), monthDay(end)
	if s <= e {
		return k >= s && k <= e
	}
	return k >= s || k <= e
}

func monthDay(t time.Time) int { return int(t.Month())*100 + t.Day() }
