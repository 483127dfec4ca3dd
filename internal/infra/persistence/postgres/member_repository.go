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

// memberRepository implements the repository.MemberRepository interface.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{
		db: db,
	}
}

// FindByID retrieves a single member by their unique ID.
func (repo *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var memberM model.MemberModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by ID")
	}

	return toMemberDomain(&memberM), nil
}

// FindByEmail retrieves a single member by their email address.
func (repo *memberRepository) FindByEmail(ctx context.Context, email string) (*entity.Member, error) {
	var memberM model.MemberModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by email")
	}

	return toMemberDomain(&memberM), nil
}

// Create persists a new member entity to the storage.
func (repo *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMember
		}

		return errors.Wrap(err, "failed to create member")
	}

	// Update the entity with generated values
	member.ID = memberM.ID
	member.CreatedAt = memberM.CreatedAt
	member.UpdatedAt = memberM.UpdatedAt

	return nil
}

// Update modifies an existing member entity in the storage.
func (repo *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ?", member.ID).
		Select("Email", "PasswordHash", "Name", "Kana", "PostalCode", "Address",
			"PhoneNumber", "Birthday", "Occupation", "BillingCustomerID").
		Updates(memberM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateMember
		}

		return errors.Wrap(result.Error, "failed to update member")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// Search lists members ordered by creation time, optionally filtered by a
// keyword matching name or kana.
func (repo *memberRepository) Search(ctx context.Context, keyword string, page int) (*repository.Page[*entity.Member], error) {
	page = repository.NormalizePage(page)

	query := repo.db.WithContext(ctx).Model(&model.MemberModel{})
	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("name LIKE ? OR kana LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count members")
	}

	var memberModels []*model.MemberModel
	if err := query.
		Order("created_at DESC").
		Limit(repository.DefaultPageSize).
		Offset((page - 1) * repository.DefaultPageSize).
		Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search members")
	}

	members := make([]*entity.Member, 0, len(memberModels))
	for _, memberM := range memberModels {
		members = append(members, toMemberDomain(memberM))
	}

	return &repository.Page[*entity.Member]{
		Items:   members,
		Total:   total,
		Page:    page,
		PerPage: repository.DefaultPageSize,
	}, nil
}

// Count returns the total number of members.
func (repo *memberRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count members")
	}

	return total, nil
}

// --- Mapper Functions ---

// toMemberDomain converts a GORM MemberModel to a domain Member entity.
func toMemberDomain(data *model.MemberModel) *entity.Member {
	if data == nil {
		return nil
	}

	return &entity.Member{
		ID:                data.ID,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		Name:              data.Name,
		Kana:              data.Kana,
		PostalCode:        data.PostalCode,
		Address:           data.Address,
		PhoneNumber:       data.PhoneNumber,
		Birthday:          data.Birthday,
		Occupation:        data.Occupation,
		BillingCustomerID: data.BillingCustomerID,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromMemberDomain converts a domain Member entity to a GORM MemberModel.
func fromMemberDomain(data *entity.Member) *model.MemberModel {
	if data == nil {
		return nil
	}

	return &model.MemberModel{
		ID:                data.ID,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		Name:              data.Name,
		Kana:              data.Kana,
		PostalCode:        data.PostalCode,
		Address:           data.Address,
		PhoneNumber:       data.PhoneNumber,
		Birthday:          data.Birthday,
		Occupation:        data.Occupation,
		BillingCustomerID: data.BillingCustomerID,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
