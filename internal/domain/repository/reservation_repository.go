package repository

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/errors"

	"github.com/google/uuid"
)

// ErrReservationNotFound is returned when a reservation is not found.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepository defines persistence for reservations.
type ReservationRepository interface {
	// Create persists a new reservation.
	Create(ctx context.Context, reservation *entity.Reservation) error

	// FindByID retrieves a reservation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)

	// FindByMember lists a member's reservations ordered by reserved time
	// descending, with the restaurant preloaded. Fixed page size.
	FindByMember(ctx context.Context, memberID uuid.UUID, page int) (*Page[*entity.Reservation], error)

	// Delete removes a reservation permanently. Cancellation has no
	// tombstone state and no recovery.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of reservations.
	Count(ctx context.Context) (int64, error)
}
