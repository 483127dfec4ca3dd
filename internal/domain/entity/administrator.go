package entity

import (
	"time"

	"github.com/google/uuid"
)

// Administrator is a back-office principal managing catalog and company data.
// Administrators have no subscription concept and never overlap with Members:
// the credential stores and token scopes are kept fully disjoint.
type Administrator struct {
	ID           uuid.UUID
	Email        string // Login identifier, unique across administrators.
	PasswordHash string // Bcrypt hash of the administrator's password.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
