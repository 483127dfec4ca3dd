package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table. The composite unique index
// guarantees a member favorites a restaurant at most once.
type FavoriteModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MemberID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_member_restaurant"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_member_restaurant"`

	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
