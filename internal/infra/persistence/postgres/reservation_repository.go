package postgres

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/domain/repository"
	"tavolo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reservationRepository implements the repository.ReservationRepository interface.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{
		db: db,
	}
}

// Create persists a new reservation.
func (repo *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	reservationM := fromReservationDomain(reservation)

	if err := repo.db.WithContext(ctx).Create(reservationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return errors.Wrap(err, "failed to create reservation")
	}

	reservation.ID = reservationM.ID
	reservation.CreatedAt = reservationM.CreatedAt
	reservation.UpdatedAt = reservationM.UpdatedAt

	return nil
}

// FindByID retrieves a reservation by its unique ID.
func (repo *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var reservationM model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reservationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by ID")
	}

	return toReservationDomain(&reservationM), nil
}

// FindByMember lists a member's reservations ordered by reserved time
// descending, with the restaurant preloaded.
func (repo *reservationRepository) FindByMember(ctx context.Context, memberID uuid.UUID, page int) (*repository.Page[*entity.Reservation], error) {
	page = repository.NormalizePage(page)

	query := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("member_id = ?", memberID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count reservations")
	}

	var reservationModels []*model.ReservationModel
	if err := query.
		Preload("Restaurant").
		Order("reserved_at DESC").
		Limit(repository.DefaultPageSize).
		Offset((page - 1) * repository.DefaultPageSize).
		Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reservations by member")
	}

	reservations := make([]*entity.Reservation, 0, len(reservationModels))
	for _, reservationM := range reservationModels {
		reservations = append(reservations, toReservationDomain(reservationM))
	}

	return &repository.Page[*entity.Reservation]{
		Items:   reservations,
		Total:   total,
		Page:    page,
		PerPage: repository.DefaultPageSize,
	}, nil
}

// Delete removes a reservation permanently.
func (repo *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReservationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete reservation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReservationNotFound
	}

	return nil
}

// Count returns the total number of reservations.
func (repo *reservationRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reservations")
	}

	return total, nil
}

// --- Mapper Functions ---

// toReservationDomain converts a GORM ReservationModel to a domain Reservation entity.
func toReservationDomain(data *model.ReservationModel) *entity.Reservation {
	if data == nil {
		return nil
	}

	return &entity.Reservation{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		MemberID:     data.MemberID,
		ReservedAt:   data.ReservedAt,
		PartySize:    data.PartySize,
		Restaurant:   toRestaurantDomain(data.Restaurant),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromReservationDomain converts a domain Reservation entity to a GORM ReservationModel.
func fromReservationDomain(data *entity.Reservation) *model.ReservationModel {
	if data == nil {
		return nil
	}

	return &model.ReservationModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		MemberID:     data.MemberID,
		ReservedAt:   data.ReservedAt,
		PartySize:    data.PartySize,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
