package impl

import (
	"context"
	"time"

	"tavolo/internal/domain/entity"
	domainerrors "tavolo/internal/domain/errors"
	"tavolo/internal/domain/repository"
	"tavolo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Wire formats for the two reservation form fields.
const (
	reservationDateLayout = "2006-01-02"
	reservationTimeLayout = "15:04"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	restaurantRepo  repository.RestaurantRepository
}

// ReservationServiceParams holds dependencies for ReservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	ReservationRepo repository.ReservationRepository
	RestaurantRepo  repository.RestaurantRepository
}

// NewReservationService creates a new reservation service instance.
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	return &reservationService{
		reservationRepo: params.ReservationRepo,
		restaurantRepo:  params.RestaurantRepo,
	}
}

// List returns the member's reservations, most recent reserved time first.
func (s *reservationService) List(ctx context.Context, memberID uuid.UUID, page int) (*repository.Page[*entity.Reservation], error) {
	return s.reservationRepo.FindByMember(ctx, memberID, page)
}

// Create books a table for the member. The owner is always the authenticated
// member; the input carries no owner field to tamper with.
func (s *reservationService) Create(ctx context.Context, memberID uuid.UUID, input usecase.CreateReservationInput) (*entity.Reservation, error) {
	reservedAt, err := combineReservationDateTime(input.Date, input.Time)
	if err != nil {
		return nil, err
	}
	if input.PartySize < entity.MinPartySize || input.PartySize > entity.MaxPartySize {
		return nil, domainerrors.ErrValidationFailed.WithDetails("party size must be between 1 and 50")
	}

	if _, err := s.restaurantRepo.FindByID(ctx, input.RestaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("restaurant not found")
		}

		return nil, err
	}

	reservation := &entity.Reservation{
		RestaurantID: input.RestaurantID,
		MemberID:     memberID,
		ReservedAt:   reservedAt,
		PartySize:    input.PartySize,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	return reservation, nil
}

// Cancel removes a reservation owned by the member. A cancel attempt on
// someone else's reservation redirects back to the index and leaves the
// record untouched.
func (s *reservationService) Cancel(ctx context.Context, memberID, reservationID uuid.UUID) error {
	reservation, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("reservation not found")
		}

		return err
	}

	if !reservation.OwnedBy(memberID) {
		return domainerrors.ErrReservationOwnership
	}

	return s.reservationRepo.Delete(ctx, reservationID)
}

func combineReservationDateTime(date, timeOfDay string) (time.Time, error) {
	if _, err := time.Parse(reservationDateLayout, date); err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("reservation date must be YYYY-MM-DD")
	}
	if _, err := time.Parse(reservationTimeLayout, timeOfDay); err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("reservation time must be HH:MM")
	}

	reservedAt, err := time.Parse(reservationDateLayout+" "+reservationTimeLayout, date+" "+timeOfDay)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("invalid reservation date and time")
	}

	return reservedAt, nil
}
