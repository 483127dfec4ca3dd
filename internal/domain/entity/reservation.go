package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reservation party size bounds enforced on creation.
const (
	MinPartySize = 1
	MaxPartySize = 50
)

// Reservation is a booking owned by exactly one member at exactly one
// restaurant. Only the owning member may cancel it; cancellation removes the
// record permanently (no soft-cancel state).
type Reservation struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	MemberID     uuid.UUID // The owning member. Always taken from the request principal.
	ReservedAt   time.Time // Combined reservation date and time.
	PartySize    int       // Number of people, within [MinPartySize, MaxPartySize].
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Restaurant is preloaded for listings so the owner sees where the
	// reservation is. Nil when not requested.
	Restaurant *Restaurant
}

// OwnedBy reports whether the reservation belongs to the given member.
func (r *Reservation) OwnedBy(memberID uuid.UUID) bool {
	return r.MemberID == memberID
}
