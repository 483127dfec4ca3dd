package impl

import (
	"context"
	"regexp"

	"tavolo/internal/domain/entity"
	domainerrors "tavolo/internal/domain/errors"
	"tavolo/internal/domain/repository"
	"tavolo/internal/domain/service"
	"tavolo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Field formats enforced on registration and profile edits.
var (
	katakanaPattern = regexp.MustCompile(`^[ァ-ヶー\s　]+$`)
	postalPattern   = regexp.MustCompile(`^[0-9]{7}$`)
	phonePattern    = regexp.MustCompile(`^[0-9]{10,11}$`)
	birthdayPattern = regexp.MustCompile(`^[0-9]{8}$`)
)

const minPasswordLength = 8

type memberService struct {
	memberRepo repository.MemberRepository
	hasher     service.PasswordHasher
	tokens     service.TokenService
}

// MemberServiceParams holds dependencies for MemberService, injected by Fx.
type MemberServiceParams struct {
	fx.In

	MemberRepo repository.MemberRepository
	Hasher     service.PasswordHasher
	Tokens     service.TokenService
}

// NewMemberService creates a new member service instance.
func NewMemberService(params MemberServiceParams) usecase.MemberUsecase {
	return &memberService{
		memberRepo: params.MemberRepo,
		hasher:     params.Hasher,
		tokens:     params.Tokens,
	}
}

// Register creates a member account.
func (s *memberService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Member, error) {
	if input.Password != input.PasswordConfirmation {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password confirmation does not match")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters")
	}
	if err := validateProfileFields(input.Name, input.Kana, input.PostalCode, input.PhoneNumber, input.Birthday); err != nil {
		return nil, err
	}

	if _, err := s.memberRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrMemberAlreadyExists
	} else if !errors.Is(err, repository.ErrMemberNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	member := &entity.Member{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Kana:         input.Kana,
		PostalCode:   input.PostalCode,
		Address:      input.Address,
		PhoneNumber:  input.PhoneNumber,
		Birthday:     input.Birthday,
		Occupation:   input.Occupation,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicateMember) {
			return nil, domainerrors.ErrMemberAlreadyExists
		}

		return nil, err
	}

	return member, nil
}

// Login verifies member credentials and returns a member-scoped session token.
func (s *memberService) Login(ctx context.Context, email, password string) (string, error) {
	member, err := s.memberRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return "", domainerrors.ErrInvalidCredentials
		}

		return "", err
	}

	if !s.hasher.Check(password, member.PasswordHash) {
		return "", domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(member.ID, service.ScopeMember)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	return token, nil
}

// GetProfile retrieves the member's own profile.
func (s *memberService) GetProfile(ctx context.Context, requesterID, memberID uuid.UUID) (*entity.Member, error) {
	if requesterID != memberID {
		return nil, domainerrors.ErrProfileOwnership
	}

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrMemberNotFound
		}

		return nil, err
	}

	return member, nil
}

// UpdateProfile edits the member's own profile. Password and billing linkage
// are untouched by this operation.
func (s *memberService) UpdateProfile(ctx context.Context, requesterID, memberID uuid.UUID, input usecase.UpdateProfileInput) (*entity.Member, error) {
	if requesterID != memberID {
		return nil, domainerrors.ErrProfileOwnership
	}

	if err := validateProfileFields(input.Name, input.Kana, input.PostalCode, input.PhoneNumber, input.Birthday); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrMemberNotFound
		}

		return nil, err
	}

	if input.Email != member.Email {
		if _, err := s.memberRepo.FindByEmail(ctx, input.Email); err == nil {
			return nil, domainerrors.ErrMemberAlreadyExists
		} else if !errors.Is(err, repository.ErrMemberNotFound) {
			return nil, err
		}
	}

	member.Name = input.Name
	member.Kana = input.Kana
	member.Email = input.Email
	member.PostalCode = input.PostalCode
	member.Address = input.Address
	member.PhoneNumber = input.PhoneNumber
	member.Birthday = input.Birthday
	member.Occupation = input.Occupation

	if err := s.memberRepo.Update(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicateMember) {
			return nil, domainerrors.ErrMemberAlreadyExists
		}

		return nil, err
	}

	return member, nil
}

func validateProfileFields(name, kana, postalCode, phoneNumber, birthday string) error {
	if name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if kana == "" || !katakanaPattern.MatchString(kana) {
		return domainerrors.ErrValidationFailed.WithDetails("kana must be katakana only")
	}
	if !postalPattern.MatchString(postalCode) {
		return domainerrors.ErrValidationFailed.WithDetails("postal code must be 7 digits")
	}
	if !phonePattern.MatchString(phoneNumber) {
		return domainerrors.ErrValidationFailed.WithDetails("phone number must be 10 or 11 digits")
	}
	if birthday != "" && !birthdayPattern.MatchString(birthday) {
		return domainerrors.ErrValidationFailed.WithDetails("birthday must be 8 digits")
	}

	return nil
}
