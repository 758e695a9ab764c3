package seeds

import (
	"log"
	"time"

	"gorm.io/gorm"

	"mali_scheduler_backend/internals/configs"
	holidays "mali_scheduler_backend/internals/seeds/holidays"
)

// RunAllSeeds is driven by SEED_HOLIDAYS; SEED_HOLIDAYS_FILE adds school breaks.
// It returns the number of rows created.
func RunAllSeeds(db *gorm.DB) int {
	if !configs.GetEnvBool("SEED_HOLIDAYS", false) {
		return 0
	}
	created := 0

	//* Built-in national holidays
	year := time.Now().In(configs.AppLocation()).Year()
	if configs.HolidayCountry == "PE" {
		n, err := holidays.SeedPeruHolidays(db, year, year+1)
		if err != nil {
			log.Printf("[SEED] peru holidays: %v", err)
		}
		created += n
	}

	//* School breaks
	if path := configs.GetEnv("SEED_HOLIDAYS_FILE", "internals/seeds/holidays/data_school_holidays.json"); path != "" {
		n, err := holidays.SeedHolidaysFromJSON(db, path)
		if err != nil {
			log.Printf("[SEED] school holidays: %v", err)
		}
		created += n
	}
	return created
}
