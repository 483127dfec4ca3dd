// Package guard implements the request admission chain: an explicit, ordered
// list of pure predicates that decide, per (principal, route class), whether a
// request proceeds to its handler or is redirected elsewhere.
//
// Ordering is part of the contract: administrator exclusion runs before
// authentication, which runs before any subscription check, which runs before
// the anti-gate. Ownership of individual records is deliberately NOT checked
// here; it needs the record and belongs to the lifecycle use cases.
package guard

import (
	"context"

	"tavolo/internal/domain/entity"
	domainerrors "tavolo/internal/domain/errors"

	"github.com/google/uuid"
)

// RouteClass classifies the target of a request for admission purposes.
type RouteClass string

const (
	// RoutePublic is browseable by guests and members. Administrators are
	// still excluded: their session never mixes with the member surface.
	RoutePublic RouteClass = "public"
	// RouteMember requires an authenticated member, subscribed or not.
	// Review listings fall in this class: read access is free-tier.
	RouteMember RouteClass = "member"
	// RouteSubscribed additionally requires an active paid subscription.
	RouteSubscribed RouteClass = "subscribed"
	// RouteNotSubscribed is the anti-gate protecting the subscription
	// creation flow: the member must NOT already be subscribed.
	RouteNotSubscribed RouteClass = "not_subscribed"
	// RouteAdmin requires an authenticated administrator.
	RouteAdmin RouteClass = "admin"
)

// SubscriptionOracle answers whether a member currently holds an active paid
// entitlement. Implementations must consult the billing collaborator on every
// call; a stale cached answer after cancellation would grant access wrongly.
type SubscriptionOracle interface {
	IsSubscribed(ctx context.Context, memberID uuid.UUID) (bool, error)
}

// Decision is a redirect verdict. A nil *Decision from a guard means the
// guard has no objection and evaluation continues down the chain.
type Decision struct {
	Location string // Where to send the principal.
	Reason   string // Business error code, e.g. "SUBSCRIPTION_REQUIRED".
}

// Err converts the decision into the redirect error handled at the boundary.
func (d *Decision) Err() *domainerrors.RedirectError {
	return domainerrors.NewRedirectError(d.Reason, "redirected by access guard", d.Location)
}

// Guard is a single named admission predicate. Guards are pure: they may read
// the principal and consult the oracle but never mutate state.
type Guard struct {
	Name  string
	Check func(ctx context.Context, p entity.Principal, class RouteClass) (*Decision, error)
}

// Chain evaluates guards in a fixed order.
type Chain struct {
	guards []Guard
}

// NewChain builds the standard admission chain around the given oracle.
func NewChain(oracle SubscriptionOracle) *Chain {
	return &Chain{
		guards: []Guard{
			{Name: "admin-exclusion", Check: adminExclusion},
			{Name: "authentication", Check: authentication},
			{Name: "subscription", Check: subscription(oracle)},
			{Name: "anti-gate", Check: antiGate(oracle)},
		},
	}
}

// Evaluate runs the chain for a principal against a route class. It returns
// the first redirect decision, or nil when the request may proceed. An error
// is returned only when the oracle fails; callers must surface it rather than
// treat it as "not subscribed".
func (c *Chain) Evaluate(ctx context.Context, p entity.Principal, class RouteClass) (*Decision, error) {
	for _, g := range c.guards {
		decision, err := g.Check(ctx, p, class)
		if err != nil {
			return nil, err
		}
		if decision != nil {
			return decision, nil
		}
	}

	return nil, nil
}

// adminExclusion short-circuits administrators away from every non-admin
// route before any other check runs.
func adminExclusion(_ context.Context, p entity.Principal, class RouteClass) (*Decision, error) {
	if p.IsAdministrator() && class != RouteAdmin {
		return &Decision{
			Location: domainerrors.AdminHomePath,
			Reason:   "WRONG_PRINCIPAL_KIND",
		}, nil
	}

	return nil, nil
}

// authentication requires the principal kind the route class demands and
// sends everyone else to the matching login page.
func authentication(_ context.Context, p entity.Principal, class RouteClass) (*Decision, error) {
	switch class {
	case RouteAdmin:
		if !p.IsAdministrator() {
			return &Decision{
				Location: domainerrors.AdminLoginPath,
				Reason:   "AUTHENTICATION_REQUIRED",
			}, nil
		}
	case RouteMember, RouteSubscribed, RouteNotSubscribed:
		if !p.IsMember() {
			return &Decision{
				Location: domainerrors.MemberLoginPath,
				Reason:   "AUTHENTICATION_REQUIRED",
			}, nil
		}
	case RoutePublic:
		// No identity required.
	}

	return nil, nil
}

// subscription gates paid-tier routes on a fresh oracle answer.
func subscription(oracle SubscriptionOracle) func(context.Context, entity.Principal, RouteClass) (*Decision, error) {
	return func(ctx context.Context, p entity.Principal, class RouteClass) (*Decision, error) {
		if class != RouteSubscribed {
			return nil, nil
		}

		subscribed, err := oracle.IsSubscribed(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if !subscribed {
			return &Decision{
				Location: domainerrors.SubscriptionCreatePath,
				Reason:   "SUBSCRIPTION_REQUIRED",
			}, nil
		}

		return nil, nil
	}
}

// antiGate keeps already-subscribed members out of the subscription creation
// flow, preventing duplicate subscriptions.
func antiGate(oracle SubscriptionOracle) func(context.Context, entity.Principal, RouteClass) (*Decision, error) {
	return func(ctx context.Context, p entity.Principal, class RouteClass) (*Decision, error) {
		if class != RouteNotSubscribed {
			return nil, nil
		}

		subscribed, err := oracle.IsSubscribed(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if subscribed {
			return &Decision{
				Location: domainerrors.SubscriptionEditPath,
				Reason:   "ALREADY_SUBSCRIBED",
			}, nil
		}

		return nil, nil
	}
}
