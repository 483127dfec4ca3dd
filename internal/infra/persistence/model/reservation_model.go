package model

import (
	"time"

	"github.com/google/uuid"
)

// ReservationModel mirrors the 'reservations' table. Cancellation removes the
// row outright, so the model carries no soft-delete column.
type ReservationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	MemberID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ReservedAt   time.Time `gorm:"not null;index"`
	PartySize    int       `gorm:"not null"`

	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservations"
}
