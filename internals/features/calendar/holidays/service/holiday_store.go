// file: internals/features/calendar/holidays/service/holiday_store.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "mali_scheduler_backend/internals/features/calendar/holidays/model"
)

var ErrHolidayNotFound = errors.New("holiday not found")

// HolidayFilter narrows List. From/To select rows overlapping the range.
type HolidayFilter struct {
	IsActive    *bool
	IsRecurring *bool
	WithDeleted bool
	Q           string
	From, To    *time.Time
	Sort        string
	Limit       int
	Offset      int
}

type HolidayStore interface {
	ActiveRows(ctx context.Context, country string) ([]m.NationalHolidayModel, error)
	// Get returns ErrHolidayNotFound for unknown or (unless withDeleted) deleted rows.
	Get(ctx context.Context, id uuid.UUID, withDeleted bool) (m.NationalHolidayModel, error)
	Create(ctx context.Context, row *m.NationalHolidayModel) error
	Save(ctx context.Context, row *m.NationalHolidayModel) error
	SoftDelete(ctx context.Context, row *m.NationalHolidayModel) error
	List(ctx context.Context, f HolidayFilter) ([]m.NationalHolidayModel, int64, error)
}

var holidaySortOrders = map[string]string{
	"start_date_asc":  "national_holiday_start_date ASC, national_holiday_end_date ASC",
	"start_date_desc": "national_holiday_start_date DESC, national_holiday_end_date DESC",
	"end_date_asc":    "national_holiday_end_date ASC",
	"end_date_desc":   "national_holiday_end_date DESC",
	"created_at_asc":  "national_holiday_created_at ASC",
	"created_at_desc": "national_holiday_created_at DESC",
}

type GormHolidayStore struct {
	DB *gorm.DB
}

func NewGormHolidayStore(db *gorm.DB) *GormHolidayStore { return &GormHolidayStore{DB: db} }

func (s *GormHolidayStore) ActiveRows(ctx context.Context, country string) ([]m.NationalHolidayModel, error) {
	var rows []m.NationalHolidayModel
	err := s.DB.WithContext(ctx).
		Where("national_holiday_is_active = ? AND national_holiday_country = ?", true, country).
		Find(&rows).Error
	return rows, err
}

func (s *GormHolidayStore) Get(ctx context.Context, id uuid.UUID, withDeleted bool) (m.NationalHolidayModel, error) {
	q := s.DB.WithContext(ctx)
	if withDeleted {
		q = q.Unscoped()
	}
	var row m.NationalHolidayModel
	err := q.Where("national_holiday_id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, ErrHolidayNotFound
	}
	return row, err
}

func (s *GormHolidayStore) Create(ctx context.Context, row *m.NationalHolidayModel) error {
	return s.DB.WithContext(ctx).Create(row).Error
}

func (s *GormHolidayStore) Save(ctx context.Context, row *m.NationalHolidayModel) error {
	return s.DB.WithContext(ctx).Save(row).Error
}

func (s *GormHolidayStore) SoftDelete(ctx context.Context, row *m.NationalHolidayModel) error {
	return s.DB.WithContext(ctx).Delete(row).Error
}

func (s *GormHolidayStore) List(ctx context.Context, f HolidayFilter) ([]m.NationalHolidayModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&m.NationalHolidayModel{})
	if f.WithDeleted {
		tx = tx.Unscoped()
	}
	if f.IsActive != nil {
		tx = tx.Where("national_holiday_is_active = ?", *f.IsActive)
	}
	if f.IsRecurring != nil {
		tx = tx.Where("national_holiday_is_recurring_yearly = ?", *f.IsRecurring)
	}
	if q := strings.TrimSpace(f.Q); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where(`(LOWER(COALESCE(national_holiday_slug, '')) LIKE ? OR LOWER(national_holiday_title) LIKE ?)`, kw, kw)
	}
	if f.From != nil {
		tx = tx.Where("national_holiday_end_date >= ?", *f.From)
	}
	if f.To != nil {
		tx = tx.Where("national_holiday_start_date <= ?", *f.To)
	}

	order, ok := holidaySortOrders[f.Sort]
	if !ok {
		order = "national_holiday_start_date ASC"
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []m.NationalHolidayModel
	err := tx.Order(order).Limit(f.Limit).Offset(f.Offset).Find(&rows).Error
	return rows, total, err
}
