package usecase

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/domain/repository"

	"github.com/google/uuid"
)

// ReviewInput carries a review create or edit request.
type ReviewInput struct {
	Score   int
	Content string
}

// ReviewUsecase defines the review lifecycle. Reading requires a signed-in
// member; writing additionally requires a paid subscription, enforced by the
// route guards before these operations run.
type ReviewUsecase interface {
	// ListByRestaurant returns one page of a restaurant's reviews, newest first.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, page int) (*repository.Page[*entity.Review], error)

	// Create posts a review on the restaurant as the member.
	Create(ctx context.Context, memberID, restaurantID uuid.UUID, input ReviewInput) (*entity.Review, error)

	// Update edits a review owned by the member.
	Update(ctx context.Context, memberID, reviewID uuid.UUID, input ReviewInput) (*entity.Review, error)

	// Delete removes a review owned by the member.
	Delete(ctx context.Context, memberID, reviewID uuid.UUID) error
}
