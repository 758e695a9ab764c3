// file: internals/seeds/holidays/seed_holidays.go
package holidays

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	hm "mali_scheduler_backend/internals/features/calendar/holidays/model"
	hsvc "mali_scheduler_backend/internals/features/calendar/holidays/service"
	helper "mali_scheduler_backend/internals/helpers"
	"mali_scheduler_backend/internals/helpers/dbtime"
)

// HolidaySeed mirrors one entry of the JSON seed file.
type HolidaySeed struct {
	Slug            string  `json:"slug"`
	Title           string  `json:"title"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Reason          *string `json:"reason"`
	RecurringYearly bool    `json:"recurring_yearly"`
	Country         string  `json:"country"`
}

// SeedPeruHolidays stores the built-in Peruvian holidays of [fromYear, toYear]
// as rows so they can be listed and edited. Existing slugs are skipped.
func SeedPeruHolidays(db *gorm.DB, fromYear, toYear int) (int, error) {
	if toYear < fromYear {
		return 0, fmt.Errorf("invalid year range %d-%d", fromYear, toYear)
	}
	var rows []hm.NationalHolidayModel
	for y := fromYear; y <= toYear; y++ {
		for _, h := range (hsvc.PeruCalendar{}).HolidaysInYear(y) {
			slug := helper.Slugify(h.Name+" "+dbtime.FormatDate(h.Date), 160)
			rows = append(rows, hm.NationalHolidayModel{
				NationalHolidayCountry:   "PE",
				NationalHolidaySlug:      &slug,
				NationalHolidayStartDate: h.Date,
				NationalHolidayEndDate:   h.Date,
				NationalHolidayTitle:     h.Name,
				NationalHolidayIsActive:  true,
			})
		}
	}
	return insertMissing(db, rows)
}

// SeedHolidaysFromJSON loads school-specific holidays (breaks, closures).
func SeedHolidaysFromJSON(db *gorm.DB, filePath string) (int, error) {
	log.Println("[SEED] reading", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", filePath, err)
	}
	var seeds []HolidaySeed
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return 0, fmt.Errorf("decode %s: %w", filePath, err)
	}

	rows := make([]hm.NationalHolidayModel, 0, len(seeds))
	for _, s := range seeds {
		row, err := s.toModel()
		if err != nil {
			log.Printf("[SEED] skip %q: %v", s.Title, err)
			continue
		}
		rows = append(rows, row)
	}
	return insertMissing(db, rows)
}

func (s HolidaySeed) toModel() (hm.NationalHolidayModel, error) {
	start, err := dbtime.ParseDate(s.StartDate)
	if err != nil {
		return hm.NationalHolidayModel{}, err
	}
	end := start
	if strings.TrimSpace(s.EndDate) != "" {
		if end, err = dbtime.ParseDate(s.EndDate); err != nil {
			return hm.NationalHolidayModel{}, err
		}
	}
	if end.Before(start) {
		return hm.NationalHolidayModel{}, fmt.Errorf("end_date before start_date")
	}
	slug := strings.TrimSpace(s.Slug)
	if slug == "" {
		slug = helper.Slugify(s.Title+" "+s.StartDate, 160)
	}
	country := strings.ToUpper(strings.TrimSpace(s.Country))
	if country == "" {
		country = "PE"
	}
	return hm.NationalHolidayModel{
		NationalHolidayCountry:           country,
		NationalHolidaySlug:              &slug,
		NationalHolidayStartDate:         start,
		NationalHolidayEndDate:           end,
		NationalHolidayTitle:             strings.TrimSpace(s.Title),
		NationalHolidayReason:            helper.TrimPtr(s.Reason),
		NationalHolidayIsActive:          true,
		NationalHolidayIsRecurringYearly: s.RecurringYearly,
	}, nil
}

func insertMissing(db *gorm.DB, rows []hm.NationalHolidayModel) (int, error) {
	created := 0
	for i := range rows {
		var n int64
		// soft-deleted rows count as existing so a removed holiday stays removed
		if err := db.Unscoped().Model(&hm.NationalHolidayModel{}).
			Where("national_holiday_slug = ?", *rows[i].NationalHolidaySlug).
			Count(&n).Error; err != nil {
			return created, err
		}
		if n > 0 {
			continue
		}
		if err := db.Create(&rows[i]).Error; err != nil {
			return created, err
		}
		created++
	}
	log.Printf("[SEED] holidays created=%d skipped=%d", created, len(rows)-created)
	return created, nil
}
