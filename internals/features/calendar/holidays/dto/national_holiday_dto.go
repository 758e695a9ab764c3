// file: internals/features/calendar/holidays/dto/national_holiday_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	m "mali_scheduler_backend/internals/features/calendar/holidays/model"
	svc "mali_scheduler_backend/internals/features/calendar/holidays/service"
	helper "mali_scheduler_backend/internals/helpers"
	"mali_scheduler_backend/internals/helpers/dbtime"
)

var (
	ErrInvalidStartDate = errors.New("invalid start_date (use YYYY-MM-DD)")
	ErrInvalidEndDate   = errors.New("invalid end_date (use YYYY-MM-DD)")
	ErrEndBeforeStart   = errors.New("end_date must be >= start_date")
)

/* =========================================================
   REQUESTS
   ========================================================= */

type NationalHolidayCreateRequest struct {
	NationalHolidaySlug    *string `json:"national_holiday_slug"    validate:"omitempty,max=160"`
	NationalHolidayCountry *string `json:"national_holiday_country" validate:"omitempty,len=2,alpha"`

	NationalHolidayStartDate string  `json:"national_holiday_start_date" validate:"required,datetime=2006-01-02"`
	NationalHolidayEndDate   *string `json:"national_holiday_end_date"   validate:"omitempty,datetime=2006-01-02"`

	NationalHolidayTitle  string  `json:"national_holiday_title"  validate:"required,max=200"`
	NationalHolidayReason *string `json:"national_holiday_reason" validate:"omitempty"`

	NationalHolidayIsActive          *bool `json:"national_holiday_is_active"`
	NationalHolidayIsRecurringYearly *bool `json:"national_holiday_is_recurring_yearly"`
}

// ToModel: end date defaults to the start date (single-day holiday).
func (r NationalHolidayCreateRequest) ToModel(defaultCountry string) (m.NationalHolidayModel, error) {
	start, err := dbtime.ParseDate(r.NationalHolidayStartDate)
	if err != nil {
		return m.NationalHolidayModel{}, ErrInvalidStartDate
	}
	end := start
	if r.NationalHolidayEndDate != nil && strings.TrimSpace(*r.NationalHolidayEndDate) != "" {
		if end, err = dbtime.ParseDate(*r.NationalHolidayEndDate); err != nil {
			return m.NationalHolidayModel{}, ErrInvalidEndDate
		}
	}
	if end.Before(start) {
		return m.NationalHolidayModel{}, ErrEndBeforeStart
	}

	country := strings.ToUpper(strings.TrimSpace(defaultCountry))
	if r.NationalHolidayCountry != nil && strings.TrimSpace(*r.NationalHolidayCountry) != "" {
		country = strings.ToUpper(strings.TrimSpace(*r.NationalHolidayCountry))
	}

	isActive := true
	if r.NationalHolidayIsActive != nil {
		isActive = *r.NationalHolidayIsActive
	}
	isRecurring := false
	if r.NationalHolidayIsRecurringYearly != nil {
		isRecurring = *r.NationalHolidayIsRecurringYearly
	}

	return m.NationalHolidayModel{
		NationalHolidayCountry:           country,
		NationalHolidaySlug:              helper.TrimPtr(r.NationalHolidaySlug),
		NationalHolidayStartDate:         start,
		NationalHolidayEndDate:           end,
		NationalHolidayTitle:             strings.TrimSpace(r.NationalHolidayTitle),
		NationalHolidayReason:            helper.TrimPtr(r.NationalHolidayReason),
		NationalHolidayIsActive:          isActive,
		NationalHolidayIsRecurringYearly: isRecurring,
	}, nil
}

type NationalHolidayUpdateRequest struct {
	NationalHolidaySlug *string `json:"national_holiday_slug" validate:"omitempty,max=160"`

	NationalHolidayStartDate *string `json:"national_holiday_start_date" validate:"omitempty,datetime=2006-01-02"`
	NationalHolidayEndDate   *string `json:"national_holiday_end_date"   validate:"omitempty,datetime=2006-01-02"`

	NationalHolidayTitle  *string `json:"national_holiday_title"  validate:"omitempty,max=200"`
	NationalHolidayReason *string `json:"national_holiday_reason" validate:"omitempty"`

	NationalHolidayIsActive          *bool `json:"national_holiday_is_active"`
	NationalHolidayIsRecurringYearly *bool `json:"national_holiday_is_recurring_yearly"`
}

// Apply patches an existing row; the range is re-checked after both dates are applied.
func (r NationalHolidayUpdateRequest) Apply(row *m.NationalHolidayModel) error {
	if r.NationalHolidaySlug != nil {
		row.NationalHolidaySlug = helper.TrimPtr(r.NationalHolidaySlug)
	}

	newStart, newEnd := row.NationalHolidayStartDate, row.NationalHolidayEndDate
	if r.NationalHolidayStartDate != nil {
		t, err := dbtime.ParseDate(*r.NationalHolidayStartDate)
		if err != nil {
			return ErrInvalidStartDate
		}
		newStart = t
	}
	if r.NationalHolidayEndDate != nil {
		t, err := dbtime.ParseDate(*r.NationalHolidayEndDate)
		if err != nil {
			return ErrInvalidEndDate
		}
		newEnd = t
	}
	if newEnd.Before(newStart) {
		return ErrEndBeforeStart
	}
	row.NationalHolidayStartDate = newStart
	row.NationalHolidayEndDate = newEnd

	// blank titles are ignored to keep NOT NULL
	if r.NationalHolidayTitle != nil {
		if title := strings.TrimSpace(*r.NationalHolidayTitle); title != "" {
			row.NationalHolidayTitle = title
		}
	}
	if r.NationalHolidayReason != nil {
		row.NationalHolidayReason = helper.TrimPtr(r.NationalHolidayReason)
	}
	if r.NationalHolidayIsActive != nil {
		row.NationalHolidayIsActive = *r.NationalHolidayIsActive
	}
	if r.NationalHolidayIsRecurringYearly != nil {
		row.NationalHolidayIsRecurringYearly = *r.NationalHolidayIsRecurringYearly
	}
	return nil
}

type NationalHolidayListQuery struct {
	Limit       *int    `query:"limit"        validate:"omitempty,min=1,max=200"`
	Offset      *int    `query:"offset"       validate:"omitempty,min=0"`
	Q           *string `query:"q"            validate:"omitempty,max=160"`
	IsActive    *bool   `query:"is_active"`
	IsRecurring *bool   `query:"is_recurring"`
	WithDeleted *bool   `query:"with_deleted"`

	// overlap: end >= date_from AND start <= date_to
	DateFrom *string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   *string `query:"date_to"   validate:"omitempty,datetime=2006-01-02"`

	Sort *string `query:"sort" validate:"omitempty,oneof=start_date_asc start_date_desc end_date_asc end_date_desc created_at_asc created_at_desc"`
}

type HolidayCalendarQuery struct {
	From string `query:"from" validate:"required,datetime=2006-01-02"`
	To   string `query:"to"   validate:"required,datetime=2006-01-02"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type NationalHolidayResponse struct {
	NationalHolidayID      uuid.UUID `json:"national_holiday_id"`
	NationalHolidayCountry string    `json:"national_holiday_country"`
	NationalHolidaySlug    *string   `json:"national_holiday_slug,omitempty"`

	NationalHolidayStartDate string `json:"national_holiday_start_date"`
	NationalHolidayEndDate   string `json:"national_holiday_end_date"`

	NationalHolidayTitle  string  `json:"national_holiday_title"`
	NationalHolidayReason *string `json:"national_holiday_reason,omitempty"`

	NationalHolidayIsActive          bool `json:"national_holiday_is_active"`
	NationalHolidayIsRecurringYearly bool `json:"national_holiday_is_recurring_yearly"`

	NationalHolidayCreatedAt time.Time  `json:"national_holiday_created_at"`
	NationalHolidayUpdatedAt time.Time  `json:"national_holiday_updated_at"`
	NationalHolidayDeletedAt *time.Time `json:"national_holiday_deleted_at,omitempty"`
}

func FromModel(row m.NationalHolidayModel) NationalHolidayResponse {
	var deletedAt *time.Time
	if row.NationalHolidayDeletedAt.Valid {
		d := row.NationalHolidayDeletedAt.Time
		deletedAt = &d
	}
	return NationalHolidayResponse{
		NationalHolidayID:                row.NationalHolidayID,
		NationalHolidayCountry:           row.NationalHolidayCountry,
		NationalHolidaySlug:              row.NationalHolidaySlug,
		NationalHolidayStartDate:         dbtime.FormatDate(row.NationalHolidayStartDate),
		NationalHolidayEndDate:           dbtime.FormatDate(row.NationalHolidayEndDate),
		NationalHolidayTitle:             row.NationalHolidayTitle,
		NationalHolidayReason:            row.NationalHolidayReason,
		NationalHolidayIsActive:          row.NationalHolidayIsActive,
		NationalHolidayIsRecurringYearly: row.NationalHolidayIsRecurringYearly,
		NationalHolidayCreatedAt:         row.NationalHolidayCreatedAt,
		NationalHolidayUpdatedAt:         row.NationalHolidayUpdatedAt,
		NationalHolidayDeletedAt:         deletedAt,
	}
}

func FromModels(list []m.NationalHolidayModel) []NationalHolidayResponse {
	out := make([]NationalHolidayResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(list[i]))
	}
	return out
}

// ResolvedHolidayResponse is one row of GET /holidays/calendar.
type ResolvedHolidayResponse struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

func FromResolved(list []svc.Holiday) []ResolvedHolidayResponse {
	out := make([]ResolvedHolidayResponse, 0, len(list))
	for _, h := range list {
		out = append(out, ResolvedHolidayResponse{
			Date:   dbtime.FormatDate(h.Date),
			Name:   h.Name,
			Source: h.Source,
		})
	}
	return out
}
