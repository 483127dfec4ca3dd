package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review score bounds enforced on create and update.
const (
	MinReviewScore = 1
	MaxReviewScore = 5
)

// Review is a member's rating and comment on a restaurant. Only the owning
// member may edit or delete it; any authenticated member may read reviews.
type Review struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	MemberID     uuid.UUID // The owning member.
	Score        int       // Integer rating within [MinReviewScore, MaxReviewScore].
	Content      string    // Free-text review body.
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Member is preloaded for listings so reviews can be attributed.
	// Nil when not requested.
	Member *Member
}

// OwnedBy reports whether the review belongs to the given member.
func (r *Review) OwnedBy(memberID uuid.UUID) bool {
	return r.MemberID == memberID
}
