package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenScope separates member sessions from administrator sessions. Tokens of
// one scope are never valid in the other: each scope signs with its own secret.
type TokenScope string

const (
	// ScopeMember is the session scope for registered members.
	ScopeMember TokenScope = "member"
	// ScopeAdmin is the session scope for back-office administrators.
	ScopeAdmin TokenScope = "admin"
)

// Claims defines the custom claims carried by session tokens.
type Claims struct {
	PrincipalID uuid.UUID  `json:"principal_id"`
	Scope       TokenScope `json:"scope"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed session token for a principal in the given scope.
	Generate(principalID uuid.UUID, scope TokenScope) (string, error)

	// Validate checks a token string against the given scope and returns its
	// claims. A token signed for the other scope must fail validation.
	Validate(tokenString string, scope TokenScope) (*Claims, error)
}
