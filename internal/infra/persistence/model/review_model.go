package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. Deletion is hard, same as reservations.
type ReviewModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	MemberID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Score        int       `gorm:"not null"`
	Content      string    `gorm:"type:text;not null"`

	Member *MemberModel `gorm:"foreignKey:MemberID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
