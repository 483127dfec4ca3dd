package impl

import (
	"context"
	"testing"

	"tavolo/internal/domain/entity"
	domainerrors "tavolo/internal/domain/errors"
	"tavolo/internal/domain/repository"
	"tavolo/internal/domain/service"
	"tavolo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Name:                 "Taro Yamada",
		Kana:                 "ヤマダタロウ",
		Email:                "taro@example.com",
		Password:             "StrongPass123!",
		PasswordConfirmation: "StrongPass123!",
		PostalCode:           "4600000",
		Address:              "Nagoya",
		PhoneNumber:          "09012345678",
		Birthday:             "19900101",
		Occupation:           "engineer",
	}
}

func newTestMemberService(memberRepo *mockMemberRepository, hasher *mockPasswordHasher, tokens *mockTokenService) usecase.MemberUsecase {
	return NewMemberService(MemberServiceParams{
		MemberRepo: memberRepo,
		Hasher:     hasher,
		Tokens:     tokens,
	})
}

func TestMemberService_Register(t *testing.T) {
	memberRepo := new(mockMemberRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := newTestMemberService(memberRepo, hasher, tokens)

	ctx := context.Background()
	input := validRegisterInput()

	memberRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrMemberNotFound)
	hasher.On("Hash", input.Password).Return("hashed", nil)
	memberRepo.On("Create", ctx, mock.MatchedBy(func(m *entity.Member) bool {
		return m.Email == input.Email && m.PasswordHash == "hashed"
	})).Return(nil)

	member, err := svc.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, input.Email, member.Email)
}

func TestMemberService_Register_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.RegisterInput)
	}{
		{
			name:   "password confirmation mismatch",
			mutate: func(in *usecase.RegisterInput) { in.PasswordConfirmation = "different" },
		},
		{
			name: "password too short",
			mutate: func(in *usecase.RegisterInput) {
				in.Password = "short"
				in.PasswordConfirmation = "short"
			},
		},
		{
			name:   "kana not katakana",
			mutate: func(in *usecase.RegisterInput) { in.Kana = "yamada" },
		},
		{
			name:   "postal code wrong length",
			mutate: func(in *usecase.RegisterInput) { in.PostalCode = "12345" },
		},
		{
			name:   "phone number too short",
			mutate: func(in *usecase.RegisterInput) { in.PhoneNumber = "012345" },
		},
		{
			name:   "birthday wrong length",
			mutate: func(in *usecase.RegisterInput) { in.Birthday = "1990" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memberRepo := new(mockMemberRepository)
			hasher := new(mockPasswordHasher)
			tokens := new(mockTokenService)
			svc := newTestMemberService(memberRepo, hasher, tokens)

			input := validRegisterInput()
			tt.mutate(&input)

			_, err := svc.Register(context.Background(), input)
			require.Error(t, err)
			memberRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestMemberService_Register_EmptyBirthdayAllowed(t *testing.T) {
	memberRepo := new(mockMemberRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := newTestMemberService(memberRepo, hasher, tokens)

	ctx := context.Background()
	input := validRegisterInput()
	input.Birthday = ""

	memberRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrMemberNotFound)
	hasher.On("Hash", input.Password).Return("hashed", nil)
	memberRepo.On("Create", ctx, mock.Anything).Return(nil)

	_, err := svc.Register(ctx, input)
	require.NoError(t, err)
}

func TestMemberService_Register_DuplicateEmail(t *testing.T) {
	memberRepo := new(mockMemberRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := newTestMemberService(memberRepo, hasher, tokens)

	ctx := context.Background()
	input := validRegisterInput()

	memberRepo.On("FindByEmail", ctx, input.Email).
		Return(&entity.Member{Email: input.Email}, nil)

	_, err := svc.Register(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMemberAlreadyExists)
}

func TestMemberService_Login(t *testing.T) {
	memberRepo := new(mockMemberRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := newTestMemberService(memberRepo, hasher, tokens)

	ctx := context.Background()
	memberID := uuid.New()

	memberRepo.On("FindByEmail", ctx, "taro@example.com").
		Return(&entity.Member{ID: memberID, PasswordHash: "hashed"}, nil)
	hasher.On("Check", "StrongPass123!", "hashed").Return(true)
	tokens.On("Generate", memberID, service.ScopeMember).Return("token", nil)

	token, err := svc.Login(ctx, "taro@example.com", "StrongPass123!")
	require.NoError(t, err)
	assert.Equal(t, "token", token)
}

func TestMemberService_Login_WrongPassword(t *testing.T) {
	memberRepo := new(mockMemberRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := newTestMemberService(memberRepo, hasher, tokens)

	ctx := context.Background()

	memberRepo.On("FindByEmail", ctx, "taro@example.com").
		Return(&entity.Member{ID: uuid.New(), PasswordHash: "hashed"}, nil)
	hasher.On("Check", "wrong", "hashed").Return(false)

	_, err := svc.Login(ctx, "taro@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestMemberService_Login_UnknownEmail(t *testing.T) {
	memberRepo := new(mockMemberRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := newTestMemberService(memberRepo, hasher, tokens)

	ctx := context.Background()

	memberRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrMemberNotFound)

	// Unknown email and wrong password answer identically.
	_, err := svc.Login(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestMemberService_GetProfile_OwnershipEnforced(t *testing.T) {
	memberRepo := new(mockMemberRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := newTestMemberService(memberRepo, hasher, tokens)

	ctx := context.Background()

	_, err := svc.GetProfile(ctx, uuid.New(), uuid.New())
	require.Error(t, err)

	var redirect domainerrors.Redirecter
	require.ErrorAs(t, err, &redirect)
	assert.Equal(t, domainerrors.MemberProfilePath, redirect.Location())
	memberRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestMemberService_UpdateProfile(t *testing.T) {
	memberRepo := new(mockMemberRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)
	svc := newTestMemberService(memberRepo, hasher, tokens)

	ctx := context.Background()
	memberID := uuid.New()

	memberRepo.On("FindByID", ctx, memberID).
		Return(&entity.Member{ID: memberID, Email: "taro@example.com", PasswordHash: "hashed"}, nil)
	memberRepo.On("Update", ctx, mock.MatchedBy(func(m *entity.Member) bool {
		// The password hash survives a profile edit untouched.
		return m.Name == "Jiro Yamada" && m.PasswordHash == "hashed"
	})).Return(nil)

	input := usecase.UpdateProfileInput{
		Name:        "Jiro Yamada",
		Kana:        "ヤマダジロウ",
		Email:       "taro@example.com",
		PostalCode:  "4600000",
		Address:     "Nagoya",
		PhoneNumber: "09012345678",
	}

	member, err := svc.UpdateProfile(ctx, memberID, memberID, input)
	require.NoError(t, err)
	assert.Equal(t, "Jiro Yamada", member.Name)
}
