package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyModel mirrors the 'companies' table. The table holds a single row
// describing the operating company; the admin UI only ever updates it.
type CompanyModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	PostalCode     string    `gorm:"type:varchar(7);not null"`
	Address        string    `gorm:"type:varchar(255);not null"`
	Representative string    `gorm:"type:varchar(255);not null"`
	EstablishedAt  string    `gorm:"type:varchar(255);not null"`
	Capital        string    `gorm:"type:varchar(255);not null"`
	Business       string    `gorm:"type:varchar(255);not null"`
	EmployeeCount  string    `gorm:"type:varchar(255);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}

// TermModel mirrors the 'terms' table, another single-row table holding the
// current terms of service text.
type TermModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Content string    `gorm:"type:text;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TermModel) TableName() string {
	return "terms"
}
