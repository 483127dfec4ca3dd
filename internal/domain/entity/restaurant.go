package entity

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is a directory listing that members can browse, reserve at,
// review and favorite.
type Restaurant struct {
	ID              uuid.UUID
	Name            string
	ImagePath       string // Relative path of the stored listing image. Empty when none uploaded.
	Description     string
	LowestPrice     int // Lower bound of the price range, in the smallest currency unit.
	HighestPrice    int // Upper bound of the price range.
	PostalCode      string
	Address         string
	OpeningTime     string // "15:04" 24-hour format.
	ClosingTime     string // "15:04" 24-hour format.
	SeatingCapacity int

	Categories      []*Category       // Categories this restaurant belongs to.
	RegularHolidays []*RegularHoliday // Weekly closing days.

	// AverageScore and ReservationCount are aggregates computed by the
	// directory query; they are zero unless the query asked for them.
	AverageScore     float64
	ReservationCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Category groups restaurants for filtering and search.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RegularHoliday is a weekly closing day a restaurant can be associated with.
type RegularHoliday struct {
	ID        uuid.UUID
	Day       string // Day name, e.g. "Monday".
	CreatedAt time.Time
	UpdatedAt time.Time
}
