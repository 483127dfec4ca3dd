package repository

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/errors"

	"github.com/google/uuid"
)

// ErrAdministratorNotFound is returned when an administrator is not found.
var ErrAdministratorNotFound = errors.New("administrator not found")

// AdministratorRepository defines persistence for back-office principals.
// The credential store is fully disjoint from members.
type AdministratorRepository interface {
	// FindByID retrieves a single administrator by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Administrator, error)

	// FindByEmail retrieves a single administrator by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Administrator, error)

	// Create persists a new administrator. Used by startup seeding.
	Create(ctx context.Context, admin *entity.Administrator) error
}
