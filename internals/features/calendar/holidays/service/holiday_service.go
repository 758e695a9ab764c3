// file: internals/features/calendar/holidays/service/holiday_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// maxRangeDays bounds /holidays/calendar lookups.
const maxRangeDays = 3 * 366

var ErrInvalidRange = errors.New("invalid holiday range")

type Service struct {
	Store   HolidayStore
	Country string
}

func New(db *gorm.DB, country string) *Service {
	return NewWithStore(NewGormHolidayStore(db), country)
}

func NewWithStore(store HolidayStore, country string) *Service {
	return &Service{Store: store, Country: strings.ToUpper(strings.TrimSpace(country))}
}

// Snapshot loads the school-defined rows once and pairs them with the built-in table.
// School rows win on dates both define.
func (s *Service) Snapshot(ctx context.Context) (Calendar, error) {
	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}
	return Composite{table, BuiltinFor(s.Country)}, nil
}

func (s *Service) loadTable(ctx context.Context) (*TableCalendar, error) {
	rows, err := s.Store.ActiveRows(ctx, s.Country)
	if err != nil {
		return nil, fmt.Errorf("load holidays: %w", err)
	}
	return NewTableCalendar(rows), nil
}

// Between resolves every holiday date in [from, to] with its source.
func (s *Service) Between(ctx context.Context, from, to time.Time) ([]Holiday, error) {
	from, to = dateOnly(from), dateOnly(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to must be >= from", ErrInvalidRange)
	}
	if to.Sub(from) > maxRangeDays*24*time.Hour {
		return nil, fmt.Errorf("%w: at most %d days", ErrInvalidRange, maxRangeDays)
	}
	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveBetween(table, BuiltinFor(s.Country), from, to), nil
}

// ResolveBetween walks [from, to] day by day; school rows take precedence over built-ins.
func ResolveBetween(school, builtin Calendar, from, to time.Time) []Holiday {
	var out []Holiday
	for d := dateOnly(from); !d.After(dateOnly(to)); d = d.AddDate(0, 0, 1) {
		if name, ok := school.HolidayOn(d); ok {
			out = append(out, Holiday{Date: d, Name: name, Source: SourceSchool})
			continue
		}
		if name, ok := builtin.HolidayOn(d); ok {
			out = append(out, Holiday{Date: d, Name: name, Source: SourceBuiltin})
		}
	}
	return out
}
