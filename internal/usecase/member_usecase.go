package usecase

import (
	"context"

	"tavolo/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries a member sign-up request.
type RegisterInput struct {
	Name                 string
	Kana                 string
	Email                string
	Password             string
	PasswordConfirmation string
	PostalCode           string
	Address              string
	PhoneNumber          string
	Birthday             string
	Occupation           string
}

// UpdateProfileInput carries a member profile edit.
type UpdateProfileInput struct {
	Name        string
	Kana        string
	Email       string
	PostalCode  string
	Address     string
	PhoneNumber string
	Birthday    string
	Occupation  string
}

// MemberUsecase defines member registration, login and profile management.
type MemberUsecase interface {
	// Register creates a member account and returns the new member.
	Register(ctx context.Context, input RegisterInput) (*entity.Member, error)

	// Login verifies member credentials and returns a session token.
	Login(ctx context.Context, email, password string) (string, error)

	// GetProfile retrieves the member's own profile. The requester must be
	// the profile's owner.
	GetProfile(ctx context.Context, requesterID, memberID uuid.UUID) (*entity.Member, error)

	// UpdateProfile edits the member's own profile. The requester must be
	// the profile's owner.
	UpdateProfile(ctx context.Context, requesterID, memberID uuid.UUID, input UpdateProfileInput) (*entity.Member, error)
}
