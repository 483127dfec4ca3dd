// Package model contains the GORM-specific table mappings, kept separate from
// the domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// MemberModel mirrors the 'members' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Members are never deleted through the application, so no soft-delete column exists.
type MemberModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Kana         string    `gorm:"type:varchar(255)"`
	PostalCode   string    `gorm:"type:varchar(7)"`
	Address      string    `gorm:"type:varchar(255)"`
	PhoneNumber  string    `gorm:"type:varchar(11)"`
	Birthday     string    `gorm:"type:varchar(8)"`
	Occupation   string    `gorm:"type:varchar(255)"`

	// BillingCustomerID is the billing provider's customer reference.
	// Empty until the member first touches a billing operation.
	BillingCustomerID string `gorm:"type:varchar(255);index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}
