package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mali_scheduler_backend/internals/features/calendar/holidays/model"
)

func row(title string, start, end time.Time, recurring, active bool) m.NationalHolidayModel {
	return m.NationalHolidayModel{
		NationalHolidayTitle:             title,
		NationalHolidayStartDate:         start,
		NationalHolidayEndDate:           end,
		NationalHolidayIsRecurringYearly: recurring,
		NationalHolidayIsActive:          active,
	}
}

func TestTableCalendar(t *testing.T) {
	tc := NewTableCalendar([]m.NationalHolidayModel{
		row("Vacaciones", day(2025, 7, 21), day(2025, 8, 3), false, true),
		row("Cierre", day(2025, 12, 24), day(2026, 1, 2), true, true),
		row("Aniversario", day(2025, 4, 10), day(2025, 4, 10), true, true),
		row("Inactivo", day(2025, 3, 3), day(2025, 3, 3), false, false),
		row("Invertido", day(2025, 9, 9), day(2025, 9, 1), false, true),
	})
	require.Equal(t, 4, tc.Len())

	tests := []struct {
		name string
		date time.Time
		want string
		ok   bool
	}{
		{"range start", day(2025, 7, 21), "Vacaciones", true},
		{"range end inclusive", day(2025, 8, 3), "Vacaciones", true},
		{"after range", day(2025, 8, 4), "", false},
		{"one-off not repeated", day(2026, 7, 25), "", false},
		{"wrap before new year", day(2030, 12, 31), "Cierre", true},
		{"wrap after new year", day(2031, 1, 2), "Cierre", true},
		{"wrap outside", day(2031, 1, 3), "", false},
		{"yearly single day", day(2027, 4, 10), "Aniversario", true},
		{"inactive ignored", day(2025, 3, 3), "", false},
		{"end before start clamps", day(2025, 9, 9), "Invertido", true},
		{"end before start only start", day(2025, 9, 5), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := tc.HolidayOn(tt.date)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, name)
		})
	}
}

func TestTableCalendar_YearLongRecurringCoversAll(t *testing.T) {
	tc := NewTableCalendar([]m.NationalHolidayModel{
		row("Cerrado", day(2025, 3, 1), day(2026, 2, 28), true, true),
	})
	_, ok := tc.HolidayOn(day(2040, 2, 29))
	assert.True(t, ok)
}

func TestResolveBetween_SchoolWins(t *testing.T) {
	school := NewTableCalendar([]m.NationalHolidayModel{
		row("Cierre de año", day(2024, 12, 24), day(2025, 1, 2), false, true),
	})

	got := ResolveBetween(school, PeruCalendar{}, day(2024, 12, 20), day(2025, 1, 5))
	require.Len(t, got, 10) // Dec 24..Jan 2

	for _, h := range got {
		assert.Equal(t, SourceSchool, h.Source)
	}

	got = ResolveBetween(Empty{}, PeruCalendar{}, day(2024, 12, 20), day(2025, 1, 5))
	require.Len(t, got, 2)
	assert.Equal(t, "Navidad", got[0].Name)
	assert.Equal(t, SourceBuiltin, got[1].Source)
}
