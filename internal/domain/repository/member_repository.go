package repository

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for member persistence.
var (
	// ErrMemberNotFound is returned when a member is not found.
	ErrMemberNotFound = errors.New("member not found")
	// ErrDuplicateMember is returned when a member with the same email already exists.
	ErrDuplicateMember = errors.New("member already exists")
)

// MemberRepository defines the standard operations for member persistence.
// The application layer depends on this interface, not the concrete implementation.
type MemberRepository interface {
	// FindByID retrieves a single member by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// FindByEmail retrieves a single member by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Member, error)

	// Create persists a new member entity to the storage.
	Create(ctx context.Context, member *entity.Member) error

	// Update modifies an existing member entity in the storage.
	Update(ctx context.Context, member *entity.Member) error

	// Search lists members ordered by creation time, optionally filtered by a
	// keyword matching name or kana. Used by the administrative back-office;
	// members are never deleted through this surface.
	Search(ctx context.Context, keyword string, page int) (*Page[*entity.Member], error)

	// Count returns the total number of members.
	Count(ctx context.Context) (int64, error)
}
