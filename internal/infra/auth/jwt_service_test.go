package auth

import (
	"testing"

	"tavolo/config"
	"tavolo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Member = "test_member_secret_key_very_long_for_testing"
	cfg.SecretKey.Admin = "test_admin_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(t)
	memberID := uuid.New()

	token, err := svc.Generate(memberID, service.ScopeMember)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token, service.ScopeMember)
	require.NoError(t, err)
	assert.Equal(t, memberID, claims.PrincipalID)
	assert.Equal(t, service.ScopeMember, claims.Scope)
}

func TestJWTService_ScopesAreDisjoint(t *testing.T) {
	svc := newTestTokenService(t)

	memberToken, err := svc.Generate(uuid.New(), service.ScopeMember)
	require.NoError(t, err)
	adminToken, err := svc.Generate(uuid.New(), service.ScopeAdmin)
	require.NoError(t, err)

	// A member token must never authenticate as an administrator and vice
	// versa: the scopes sign with different secrets.
	_, err = svc.Validate(memberToken, service.ScopeAdmin)
	assert.Error(t, err)
	_, err = svc.Validate(adminToken, service.ScopeMember)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestTokenService(t)

	claims, err := svc.Validate("clearly-not-a-jwt-token-format", service.ScopeMember)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Member = "only-member-secret"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
