package usecase

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateReservationInput carries a new booking request. Date and Time arrive
// as separate form fields and are combined by the use case.
type CreateReservationInput struct {
	RestaurantID uuid.UUID
	Date         string // "2006-01-02"
	Time         string // "15:04"
	PartySize    int
}

// ReservationUsecase defines the reservation lifecycle for members holding a
// paid subscription. The owner is always the authenticated member; no
// operation accepts an owner from the request body.
type ReservationUsecase interface {
	// List returns the member's reservations, most recent reserved time first.
	List(ctx context.Context, memberID uuid.UUID, page int) (*repository.Page[*entity.Reservation], error)

	// Create books a table for the member.
	Create(ctx context.Context, memberID uuid.UUID, input CreateReservationInput) (*entity.Reservation, error)

	// Cancel removes a reservation owned by the member. Cancelling someone
	// else's reservation fails and leaves the record untouched.
	Cancel(ctx context.Context, memberID, reservationID uuid.UUID) error
}
