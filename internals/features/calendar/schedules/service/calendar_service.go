// file: internals/features/calendar/schedules/service/calendar_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	am "mali_scheduler_backend/internals/features/academics/model"
	hsvc "mali_scheduler_backend/internals/features/calendar/holidays/service"
)

// HolidaySource hands out one holiday snapshot per expansion.
type HolidaySource interface {
	Snapshot(ctx context.Context) (hsvc.Calendar, error)
}

type CalendarService struct {
	Courses  CourseReader
	Holidays HolidaySource
	Cache    EventCache
	Colors   map[string]string
}

func NewCalendarService(courses CourseReader, holidays HolidaySource, cache EventCache) *CalendarService {
	if cache == nil {
		cache = NoopCache{}
	}
	return &CalendarService{Courses: courses, Holidays: holidays, Cache: cache, Colors: DefaultCategoryColors}
}

func (s *CalendarService) expander(ctx context.Context) (*Expander, error) {
	cal, err := s.Holidays.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("holiday snapshot: %w", err)
	}
	return &Expander{Holidays: cal, Colors: s.Colors}, nil
}

func (s *CalendarService) Invalidate(ctx context.Context) { s.Cache.Invalidate(ctx) }

// Events returns the aggregated calendar, optionally narrowed to one category.
func (s *CalendarService) Events(ctx context.Context, category string) ([]CalendarEvent, error) {
	// the version is read before loading, so an invalidation that lands
	// while building leaves this result under a dead key
	cached, version, hit := s.Cache.Get(ctx)
	if hit {
		return FilterByCategory(cached, category), nil
	}

	events, err := s.build(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, version, events)
	return FilterByCategory(events, category), nil
}

func (s *CalendarService) build(ctx context.Context) ([]CalendarEvent, error) {
	courses, err := s.Courses.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	exp, err := s.expander(ctx)
	if err != nil {
		return nil, err
	}
	return exp.ExpandAll(ToCourseInputs(courses)), nil
}

// Warm drops the cached calendar and rebuilds it.
func (s *CalendarService) Warm(ctx context.Context) (int, error) {
	s.Cache.Invalidate(ctx)
	events, err := s.Events(ctx, "")
	if err != nil {
		return 0, err
	}
	return len(events), nil
}

// ProfessorSchedule expands only the courses the professor teaches.
func (s *CalendarService) ProfessorSchedule(ctx context.Context, professorID uuid.UUID) ([]CalendarEvent, error) {
	courses, err := s.Courses.ProfessorCourses(ctx, professorID)
	if err != nil {
		return nil, err
	}
	exp, err := s.expander(ctx)
	if err != nil {
		return nil, err
	}
	return exp.ExpandAll(ToCourseInputs(courses)), nil
}

// PreviewRow is one course in the schedule preview.
type PreviewRow struct {
	CourseID       string   `json:"course_id"`
	Name           string   `json:"course_name"`
	Category       string   `json:"category,omitempty"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	DurationMonths int      `json:"duration_months"`
	Schedule       string   `json:"schedule"`
	StartTime      string   `json:"start_time,omitempty"`
	Professors     []string `json:"professors"`
	SessionDates   []string `json:"sessions"`
}

// Preview lists session dates for every course that has a start date and schedule.
func (s *CalendarService) Preview(ctx context.Context) ([]PreviewRow, error) {
	courses, err := s.Courses.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	exp, err := s.expander(ctx)
	if err != nil {
		return nil, err
	}
	return BuildPreview(exp, courses), nil
}

func BuildPreview(exp *Expander, courses []am.CourseModel) []PreviewRow {
	out := make([]PreviewRow, 0, len(courses))
	for _, c := range courses {
		if !c.HasSchedule() {
			continue
		}
		in := ToCourseInput(c)
		start := dateOnly(*in.StartDate)
		row := PreviewRow{
			CourseID:       in.ID,
			Name:           in.Name,
			Category:       in.Category,
			StartDate:      start.Format("2006-01-02"),
			EndDate:        AddMonthsClamped(start, in.DurationMonths).Format("2006-01-02"),
			DurationMonths: in.DurationMonths,
			Schedule:       in.Schedule,
			Professors:     in.Professors,
			SessionDates:   []string{},
		}
		if raw, mod, ok := ParseStartTime(in.Schedule); ok {
			row.StartTime = To24Hour(raw, mod)
		}
		for _, d := range exp.SessionDates(in) {
			row.SessionDates = append(row.SessionDates, d.Format("2006-01-02"))
		}
		out = append(out, row)
	}
	return out
}

// SessionDates expands one stored course against a fresh holiday snapshot.
func (s *CalendarService) SessionDates(ctx context.Context, course am.CourseModel) ([]time.Time, error) {
	if !course.HasSchedule() {
		return nil, nil
	}
	exp, err := s.expander(ctx)
	if err != nil {
		return nil, err
	}
	return exp.SessionDates(ToCourseInput(course)), nil
}
