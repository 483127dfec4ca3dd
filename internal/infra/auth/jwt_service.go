package auth

import (
	"time"

	"tavolo/config"
	"tavolo/internal/domain/service"
	"tavolo/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Member and admin sessions sign with separate secrets, so a token issued in
// one scope can never authenticate in the other.
type jwtService struct {
	memberSecret string
	adminSecret  string
	ttl          time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Member == "" || cfg.SecretKey.Admin == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		memberSecret: cfg.SecretKey.Member,
		adminSecret:  cfg.SecretKey.Admin,
		ttl:          ttl,
	}, nil
}

// Generate creates a signed session token for a principal in the given scope.
func (s *jwtService) Generate(principalID uuid.UUID, scope service.TokenScope) (string, error) {
	secret, err := s.secretFor(scope)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &service.Claims{
		PrincipalID: principalID,
		Scope:       scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// Validate checks a token string against the given scope and returns its claims.
func (s *jwtService) Validate(tokenString string, scope service.TokenScope) (*service.Claims, error) {
	secret, err := s.secretFor(scope)
	if err != nil {
		return nil, err
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	// The scope claim must agree with the secret that validated the token.
	if claims.Scope != scope {
		return nil, errors.New("token scope mismatch")
	}

	return claims, nil
}

func (s *jwtService) secretFor(scope service.TokenScope) (string, error) {
	switch scope {
	case service.ScopeMember:
		return s.memberSecret, nil
	case service.ScopeAdmin:
		return s.adminSecret, nil
	default:
		return "", errors.Errorf("unknown token scope: %s", scope)
	}
}
