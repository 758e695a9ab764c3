// file: internals/features/calendar/schedules/service/expander.go
package service

import (
	"fmt"
	"strings"
	"time"
)

const (
	KindSession = "session"
	KindHoliday = "holiday"

	DefaultColor = "#6366f1"

	holidayBackground = "rgba(254, 202, 202, 0.5)"
	holidayBorder     = "rgba(248, 113, 113, 0.5)"
	holidayClassName  = "holiday-event"
	sessionTextColor  = "#ffffff"
)

// DefaultCategoryColors maps course category tags to calendar colors.
var DefaultCategoryColors = map[string]string{
	"interiores":  "#C00000",
	"escenicas":   "#9900FF",
	"graficas":    "#A02B93",
	"audiovisual": "#BF4F14",
	"modas":       "#BF9000",
	"socialmedia": "#747474",
	"literatura":  "#78206E",
	"musica":      "#3333FF",
}

// HolidayCalendar is satisfied by the holidays service calendars.
type HolidayCalendar interface {
	HolidayOn(date time.Time) (string, bool)
}

type noHolidays struct{}

func (noHolidays) HolidayOn(time.Time) (string, bool) { return "", false }

// CourseInput is what the expander needs from a course.
type CourseInput struct {
	ID             string
	Name           string
	Category       string
	StartDate      *time.Time
	DurationMonths int
	Schedule       string
	Professors     []string
}

type EventProps struct {
	CourseID      string   `json:"courseId"`
	Professors    []string `json:"professors"`
	Category      string   `json:"category"`
	SessionNumber int      `json:"sessionNumber"`
	Duration      int      `json:"duration"`
}

// CalendarEvent is shaped for FullCalendar.
type CalendarEvent struct {
	ID              string      `json:"id"`
	Kind            string      `json:"kind"`
	Title           string      `json:"title"`
	Start           string      `json:"start"`
	AllDay          bool        `json:"allDay"`
	Display         string      `json:"display,omitempty"`
	BackgroundColor string      `json:"backgroundColor"`
	BorderColor     string      `json:"borderColor"`
	TextColor       string      `json:"textColor,omitempty"`
	ClassName       string      `json:"className,omitempty"`
	CourseID        string      `json:"courseId,omitempty"`
	CourseName      string      `json:"courseName,omitempty"`
	Professors      []string    `json:"professors,omitempty"`
	Category        string      `json:"category,omitempty"`
	SessionNumber   int         `json:"sessionNumber,omitempty"`
	ExtendedProps   *EventProps `json:"extendedProps,omitempty"`

	Date time.Time `json:"-"`
}

// Expander turns weekly schedule text into dated events. Holidays is one
// snapshot; the zero value uses no holidays and the default palette.
type Expander struct {
	Holidays HolidayCalendar
	Colors   map[string]string
}

func NewExpander(holidays HolidayCalendar) *Expander {
	return &Expander{Holidays: holidays, Colors: DefaultCategoryColors}
}

func (e *Expander) colorFor(category string) string {
	colors := e.Colors
	if colors == nil {
		colors = DefaultCategoryColors
	}
	if c, ok := colors[category]; ok && c != "" {
		return c
	}
	return DefaultColor
}

func (e *Expander) calendar() HolidayCalendar {
	if e.Holidays == nil {
		return noHolidays{}
	}
	return e.Holidays
}

// ExpandCourse walks start..start+DurationMonths inclusive. Matched weekdays
// that are not holidays become numbered sessions; every holiday in the window
// becomes one background marker.
func (e *Expander) ExpandCourse(in CourseInput) []CalendarEvent {
	if in.StartDate == nil || strings.TrimSpace(in.Schedule) == "" {
		return nil
	}

	start := dateOnly(*in.StartDate)
	end := AddMonthsClamped(start, in.DurationMonths)

	days := weekdaySet(ParseScheduleDays(in.Schedule))
	clock := ""
	if raw, mod, ok := ParseStartTime(in.Schedule); ok {
		clock = To24Hour(raw, mod)
	}

	color := e.colorFor(in.Category)
	professors := in.Professors
	if professors == nil {
		professors = []string{}
	}
	cal := e.calendar()

	var out []CalendarEvent
	n := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		holidayName, isHoliday := cal.HolidayOn(d)

		if days[d.Weekday()] && !isHoliday {
			n++
			ev := CalendarEvent{
				ID:              fmt.Sprintf("%s-%d", in.ID, n),
				Kind:            KindSession,
				Title:           in.Name,
				Start:           d.Format("2006-01-02"),
				AllDay:          clock == "",
				BackgroundColor: color,
				BorderColor:     color,
				TextColor:       sessionTextColor,
				CourseID:        in.ID,
				CourseName:      in.Name,
				Professors:      professors,
				Category:        in.Category,
				SessionNumber:   n,
				ExtendedProps: &EventProps{
					CourseID:      in.ID,
					Professors:    professors,
					Category:      in.Category,
					SessionNumber: n,
					Duration:      in.DurationMonths,
				},
				Date: d,
			}
			if clock != "" {
				ev.Start += "T" + clock
			}
			out = append(out, ev)
		}

		if isHoliday {
			out = append(out, holidayEvent(d, holidayName))
		}
	}
	return out
}

// ExpandAll concatenates per-course expansions in input order; a holiday
// marker shared by several courses is kept once (first occurrence).
func (e *Expander) ExpandAll(courses []CourseInput) []CalendarEvent {
	out := make([]CalendarEvent, 0)
	seenHoliday := map[string]bool{}
	for _, c := range courses {
		for _, ev := range e.ExpandCourse(c) {
			if ev.Kind == KindHoliday {
				if seenHoliday[ev.ID] {
					continue
				}
				seenHoliday[ev.ID] = true
			}
			out = append(out, ev)
		}
	}
	return out
}

// SessionDates returns only the session dates of one course, in order.
func (e *Expander) SessionDates(in CourseInput) []time.Time {
	var out []time.Time
	for _, ev := range e.ExpandCourse(in) {
		if ev.Kind == KindSession {
			out = append(out, ev.Date)
		}
	}
	return out
}

// FilterByCategory keeps sessions of the category and every holiday marker.
func FilterByCategory(events []CalendarEvent, category string) []CalendarEvent {
	category = strings.TrimSpace(category)
	if category == "" {
		return events
	}
	out := make([]CalendarEvent, 0, len(events))
	for _, ev := range events {
		if ev.Kind == KindHoliday || ev.Category == category {
			out = append(out, ev)
		}
	}
	return out
}

func holidayEvent(d time.Time, name string) CalendarEvent {
	day := d.Format("2006-01-02")
	return CalendarEvent{
		ID:              "holiday-" + day,
		Kind:            KindHoliday,
		Title:           name,
		Start:           day,
		AllDay:          true,
		Display:         "background",
		BackgroundColor: holidayBackground,
		BorderColor:     holidayBorder,
		ClassName:       holidayClassName,
		Date:            d,
	}
}

func weekdaySet(days []time.Weekday) map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set
}

// dates are naive calendar dates
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
