package middleware

import (
	"strings"

	"tavolo/internal/domain/entity"
	"tavolo/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// PrincipalMiddleware resolves the request's identity from the session token.
// It never rejects a request: an absent or invalid token yields the anonymous
// principal and the route guards decide what that principal may reach.
type PrincipalMiddleware struct {
	tokenSvc service.TokenService
}

// NewPrincipalMiddleware is the constructor for PrincipalMiddleware.
func NewPrincipalMiddleware(tokenSvc service.TokenService) *PrincipalMiddleware {
	return &PrincipalMiddleware{tokenSvc: tokenSvc}
}

// Resolve extracts the bearer token, validates it against the member scope
// first and the admin scope second, and stores the resulting principal on the
// context. The scopes sign with different secrets, so a token can match at
// most one of them.
func (m *PrincipalMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(principalContextKey, resolvePrincipal(m.tokenSvc, c))

		return next(c)
	}
}

func resolvePrincipal(tokenSvc service.TokenService, c echo.Context) entity.Principal {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return entity.Anonymous()
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return entity.Anonymous()
	}

	if claims, err := tokenSvc.Validate(tokenString, service.ScopeMember); err == nil {
		return entity.MemberPrincipal(claims.PrincipalID)
	}

	if claims, err := tokenSvc.Validate(tokenString, service.ScopeAdmin); err == nil {
		return entity.AdministratorPrincipal(claims.PrincipalID)
	}

	return entity.Anonymous()
}

// SetPrincipal stores a principal on the context, replacing whatever Resolve
// put there. Handler tests use it to run under a chosen identity.
func SetPrincipal(c echo.Context, p entity.Principal) {
	c.Set(principalContextKey, p)
}

// GetPrincipal returns the principal resolved for this request. Requests that
// never passed through the middleware count as anonymous.
func GetPrincipal(c echo.Context) entity.Principal {
	if p, ok := c.Get(principalContextKey).(entity.Principal); ok {
		return p
	}

	return entity.Anonymous()
}
