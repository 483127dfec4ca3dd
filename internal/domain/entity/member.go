// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Member is a registered end-user who can browse restaurants, place
// reservations, post reviews and hold a paid subscription. Members and
// Administrators are disjoint principal kinds with separate credential stores.
type Member struct {
	ID           uuid.UUID // The unique identifier for the member.
	Email        string    // The member's login identifier; unique across members.
	PasswordHash string    // Bcrypt hash of the member's password. Never exposed outward.
	Name         string    // The member's display name.
	Kana         string    // Phonetic reading of the name, katakana only.
	PostalCode   string    // Seven-digit postal code.
	Address      string    // The member's street address.
	PhoneNumber  string    // Contact phone number, 10 or 11 digits.
	Birthday     string    // Optional, eight digits (YYYYMMDD). Empty when unset.
	Occupation   string    // Optional free-text occupation.

	// BillingCustomerID links the member to the external billing provider.
	// Empty until the member first touches a billing operation; the local
	// system never interprets it beyond passing it back to the provider.
	BillingCustomerID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBillingCustomer reports whether the member has been registered with the
// billing provider yet.
func (m *Member) HasBillingCustomer() bool {
	return m.BillingCustomerID != ""
}
