// file: internals/features/calendar/holidays/model/national_holiday_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NationalHolidayModel struct {
	NationalHolidayID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:national_holiday_id" json:"national_holiday_id"`

	// ISO 3166 alpha-2, matched against HOLIDAY_COUNTRY
	NationalHolidayCountry string  `gorm:"type:varchar(2);not null;default:'PE';index:idx_national_holiday_country;column:national_holiday_country" json:"national_holiday_country"`
	NationalHolidaySlug    *string `gorm:"type:varchar(160);uniqueIndex:uq_national_holiday_slug;column:national_holiday_slug" json:"national_holiday_slug,omitempty"`

	// single day: start = end; both inclusive
	NationalHolidayStartDate time.Time `gorm:"type:date;not null;column:national_holiday_start_date" json:"national_holiday_start_date"`
	NationalHolidayEndDate   time.Time `gorm:"type:date;not null;column:national_holiday_end_date" json:"national_holiday_end_date"`

	NationalHolidayTitle  string  `gorm:"type:varchar(200);not null;column:national_holiday_title" json:"national_holiday_title"`
	NationalHolidayReason *string `gorm:"type:text;column:national_holiday_reason" json:"national_holiday_reason,omitempty"`

	NationalHolidayIsActive          bool `gorm:"not null;default:true;column:national_holiday_is_active" json:"national_holiday_is_active"`
	NationalHolidayIsRecurringYearly bool `gorm:"not null;default:false;column:national_holiday_is_recurring_yearly" json:"national_holiday_is_recurring_yearly"`

	NationalHolidayCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:national_holiday_created_at" json:"national_holiday_created_at"`
	NationalHolidayUpdatedAt time.Time      `gorm:"type:timestamptz;default:now();autoUpdateTime;column:national_holiday_updated_at" json:"national_holiday_updated_at,omitempty"`
	NationalHolidayDeletedAt gorm.DeletedAt `gorm:"index;column:national_holiday_deleted_at" json:"national_holiday_deleted_at,omitempty"`
}

func (NationalHolidayModel) TableName() string { return "national_holidays" }
