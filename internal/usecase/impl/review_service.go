package impl

import (
	"context"
	"fmt"

	"tavolo/internal/domain/entity"
	domainerrors "tavolo/internal/domain/errors"
	"tavolo/internal/domain/repository"
	"tavolo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	reviewRepo     repository.ReviewRepository
	restaurantRepo repository.RestaurantRepository
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo     repository.ReviewRepository
	RestaurantRepo repository.RestaurantRepository
}

// NewReviewService creates a new review service instance.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:     params.ReviewRepo,
		restaurantRepo: params.RestaurantRepo,
	}
}

// ListByRestaurant returns one page of a restaurant's reviews, newest first.
func (s *reviewService) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, page int) (*repository.Page[*entity.Review], error) {
	return s.reviewRepo.FindByRestaurant(ctx, restaurantID, page)
}

// Create posts a review on the restaurant as the member.
func (s *reviewService) Create(ctx context.Context, memberID, restaurantID uuid.UUID, input usecase.ReviewInput) (*entity.Review, error) {
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}

	if _, err := s.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("restaurant not found")
		}

		return nil, err
	}

	review := &entity.Review{
		RestaurantID: restaurantID,
		MemberID:     memberID,
		Score:        input.Score,
		Content:      input.Content,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// Update edits a review owned by the member. A non-owner is redirected to
// the restaurant's review index with nothing changed.
func (s *reviewService) Update(ctx context.Context, memberID, reviewID uuid.UUID, input usecase.ReviewInput) (*entity.Review, error) {
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("review not found")
		}

		return nil, err
	}

	if !review.OwnedBy(memberID) {
		return nil, domainerrors.ReviewOwnership(restaurantReviewsPath(review.RestaurantID))
	}

	review.Score = input.Score
	review.Content = input.Content

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// Delete removes a review owned by the member.
func (s *reviewService) Delete(ctx context.Context, memberID, reviewID uuid.UUID) error {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("review not found")
		}

		return err
	}

	if !review.OwnedBy(memberID) {
		return domainerrors.ReviewOwnership(restaurantReviewsPath(review.RestaurantID))
	}

	return s.reviewRepo.Delete(ctx, reviewID)
}

func validateReviewInput(input usecase.ReviewInput) error {
	if input.Score < entity.MinReviewScore || input.Score > entity.MaxReviewScore {
		return domainerrors.ErrValidationFailed.WithDetails("score must be between 1 and 5")
	}
	if input.Content == "" {
		return domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	return nil
}

func restaurantReviewsPath(restaurantID uuid.UUID) string {
	return fmt.Sprintf("/restaurants/%s/reviews", restaurantID)
}
