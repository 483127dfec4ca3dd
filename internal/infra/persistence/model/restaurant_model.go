package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel mirrors the 'restaurants' table.
type RestaurantModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string    `gorm:"type:varchar(255);not null;index"`
	ImagePath       string    `gorm:"type:varchar(255)"`
	Description     string    `gorm:"type:text"`
	LowestPrice     int       `gorm:"not null;index"`
	HighestPrice    int       `gorm:"not null"`
	PostalCode      string    `gorm:"type:varchar(7);not null"`
	Address         string    `gorm:"type:varchar(255);not null"`
	OpeningTime     string    `gorm:"type:varchar(5);not null"`
	ClosingTime     string    `gorm:"type:varchar(5);not null"`
	SeatingCapacity int       `gorm:"not null"`

	Categories      []*CategoryModel       `gorm:"many2many:category_restaurant"`
	RegularHolidays []*RegularHolidayModel `gorm:"many2many:regular_holiday_restaurant"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"type:varchar(255);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// RegularHolidayModel mirrors the 'regular_holidays' table. The rows are the
// seven weekdays plus "no holiday"; they are seeded once and never mutated.
type RegularHolidayModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Day      string    `gorm:"type:varchar(255)"`
	DayIndex int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegularHolidayModel) TableName() string {
	return "regular_holidays"
}
