// file: internals/features/calendar/holidays/service/peru_calendar.go
package service

import (
	"sort"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/aa"
)

func peFixed(name string, month time.Month, day, startYear int) *cal.Holiday {
	return &cal.Holiday{
		Name:      name,
		Month:     month,
		Day:       day,
		StartYear: startYear,
		Func:      cal.CalcDayOfMonth,
	}
}

// Peruvian public holidays. Fixed dates come first so they win when an
// Easter day lands on the same date.
var peruHolidays = []*cal.Holiday{
	peFixed("Año Nuevo", time.January, 1, 0),
	peFixed("Día del Trabajo", time.May, 1, 0),
	peFixed("Día de la Bandera", time.June, 7, 2024),
	peFixed("San Pedro y San Pablo", time.June, 29, 0),
	peFixed("Fiestas Patrias", time.July, 28, 0),
	peFixed("Fiestas Patrias", time.July, 29, 0),
	peFixed("Batalla de Junín", time.August, 6, 2022),
	peFixed("Santa Rosa de Lima", time.August, 30, 0),
	peFixed("Combate de Angamos", time.October, 8, 0),
	peFixed("Todos los Santos", time.November, 1, 0),
	peFixed("Inmaculada Concepción", time.December, 8, 0),
	peFixed("Batalla de Ayacucho", time.December, 9, 2022),
	peFixed("Navidad", time.December, 25, 0),

	aa.MaundyThursday.Clone(&cal.Holiday{Name: "Jueves Santo"}),
	aa.GoodFriday.Clone(&cal.Holiday{Name: "Viernes Santo"}),
	aa.Easter.Clone(&cal.Holiday{Name: "Domingo de Resurrección"}),
}

var peruBusiness = newPeruBusinessCalendar()

func newPeruBusinessCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(peruHolidays...)
	return c
}

// PeruCalendar holds Peruvian public holidays, fixed and Easter-based.
type PeruCalendar struct{}

func (PeruCalendar) HolidayOn(d time.Time) (string, bool) {
	actual, _, h := peruBusiness.IsHoliday(dateOnly(d))
	if !actual || h == nil {
		return "", false
	}
	return h.Name, true
}

// HolidaysInYear lists every holiday of year sorted by date.
func (PeruCalendar) HolidaysInYear(year int) []Holiday {
	out := make([]Holiday, 0, len(peruHolidays))
	for _, h := range peruHolidays {
		actual, _ := h.Calc(year)
		if actual.IsZero() {
			continue
		}
		out = append(out, Holiday{Date: dateOnly(actual), Name: h.Name, Source: SourceBuiltin})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Easter returns Western Easter Sunday at UTC midnight.
func Easter(year int) time.Time {
	actual, _ := aa.Easter.Calc(year)
	return dateOnly(actual)
}

// BuiltinFor returns the built-in calendar for an ISO country code.
func BuiltinFor(country string) Calendar {
	switch country {
	case "PE", "pe":
		return PeruCalendar{}
	default:
		return Empty{}
	}
}
