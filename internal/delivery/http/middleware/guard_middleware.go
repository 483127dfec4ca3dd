package middleware

import (
	"tavolo/internal/domain/guard"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GuardMiddleware runs the admission chain in front of a route group. It must
// be mounted after PrincipalMiddleware so the principal is already resolved.
type GuardMiddleware struct {
	chain *guard.Chain
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(chain *guard.Chain) *GuardMiddleware {
	return &GuardMiddleware{chain: chain}
}

// Require admits or redirects every request in the group according to the
// route class. A redirect decision becomes an error carrying its destination;
// the error handler turns it into a 303 before the handler ever runs. An
// oracle failure propagates as-is and is never treated as "not subscribed".
func (m *GuardMiddleware) Require(class guard.RouteClass) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision, err := m.chain.Evaluate(c.Request().Context(), GetPrincipal(c), class)
			if err != nil {
				return errors.WithStack(err)
			}
			if decision != nil {
				return decision.Err()
			}

			return next(c)
		}
	}
}
