package guard

import (
	"context"
	"testing"

	"tavolo/internal/domain/entity"
	domainerrors "tavolo/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOracle answers subscription checks from a fixed map and records how
// often it was consulted.
type stubOracle struct {
	subscribed map[uuid.UUID]bool
	err        error
	calls      int
}

func (o *stubOracle) IsSubscribed(_ context.Context, memberID uuid.UUID) (bool, error) {
	o.calls++
	if o.err != nil {
		return false, o.err
	}

	return o.subscribed[memberID], nil
}

func TestChain_AnonymousOnPublicRouteProceeds(t *testing.T) {
	chain := NewChain(&stubOracle{})

	decision, err := chain.Evaluate(context.Background(), entity.Anonymous(), RoutePublic)
	require.NoError(t, err)
	assert.Nil(t, decision)
}

func TestChain_AnonymousOnMemberRouteRedirectsToLogin(t *testing.T) {
	chain := NewChain(&stubOracle{})

	for _, class := range []RouteClass{RouteMember, RouteSubscribed, RouteNotSubscribed} {
		decision, err := chain.Evaluate(context.Background(), entity.Anonymous(), class)
		require.NoError(t, err)
		require.NotNil(t, decision, "class %s", class)
		assert.Equal(t, domainerrors.MemberLoginPath, decision.Location)
		assert.Equal(t, "AUTHENTICATION_REQUIRED", decision.Reason)
	}
}

func TestChain_AnonymousOnAdminRouteRedirectsToAdminLogin(t *testing.T) {
	chain := NewChain(&stubOracle{})

	decision, err := chain.Evaluate(context.Background(), entity.Anonymous(), RouteAdmin)
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.Equal(t, domainerrors.AdminLoginPath, decision.Location)
}

func TestChain_MemberOnAdminRouteRedirectsToAdminLogin(t *testing.T) {
	chain := NewChain(&stubOracle{})
	member := entity.MemberPrincipal(uuid.New())

	decision, err := chain.Evaluate(context.Background(), member, RouteAdmin)
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.Equal(t, domainerrors.AdminLoginPath, decision.Location)
	assert.Equal(t, "AUTHENTICATION_REQUIRED", decision.Reason)
}

func TestChain_AdministratorExcludedFromEveryNonAdminRoute(t *testing.T) {
	oracle := &stubOracle{}
	chain := NewChain(oracle)
	admin := entity.AdministratorPrincipal(uuid.New())

	for _, class := range []RouteClass{RoutePublic, RouteMember, RouteSubscribed, RouteNotSubscribed} {
		decision, err := chain.Evaluate(context.Background(), admin, class)
		require.NoError(t, err)
		require.NotNil(t, decision, "class %s", class)
		assert.Equal(t, domainerrors.AdminHomePath, decision.Location)
		assert.Equal(t, "WRONG_PRINCIPAL_KIND", decision.Reason)
	}

	// Admin exclusion must short-circuit before the subscription guard runs.
	assert.Zero(t, oracle.calls)
}

func TestChain_AdministratorOnAdminRouteProceeds(t *testing.T) {
	chain := NewChain(&stubOracle{})
	admin := entity.AdministratorPrincipal(uuid.New())

	decision, err := chain.Evaluate(context.Background(), admin, RouteAdmin)
	require.NoError(t, err)
	assert.Nil(t, decision)
}

func TestChain_FreeMemberOnSubscribedRouteRedirectsToSubscriptionCreate(t *testing.T) {
	memberID := uuid.New()
	chain := NewChain(&stubOracle{subscribed: map[uuid.UUID]bool{}})

	decision, err := chain.Evaluate(context.Background(), entity.MemberPrincipal(memberID), RouteSubscribed)
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.Equal(t, domainerrors.SubscriptionCreatePath, decision.Location)
	assert.Equal(t, "SUBSCRIPTION_REQUIRED", decision.Reason)
}

func TestChain_SubscribedMemberOnSubscribedRouteProceeds(t *testing.T) {
	memberID := uuid.New()
	chain := NewChain(&stubOracle{subscribed: map[uuid.UUID]bool{memberID: true}})

	decision, err := chain.Evaluate(context.Background(), entity.MemberPrincipal(memberID), RouteSubscribed)
	require.NoError(t, err)
	assert.Nil(t, decision)
}

func TestChain_FreeMemberOnMemberRouteProceeds(t *testing.T) {
	// Review listings are class RouteMember: readable without a subscription.
	oracle := &stubOracle{}
	chain := NewChain(oracle)

	decision, err := chain.Evaluate(context.Background(), entity.MemberPrincipal(uuid.New()), RouteMember)
	require.NoError(t, err)
	assert.Nil(t, decision)
	assert.Zero(t, oracle.calls)
}

func TestChain_SubscribedMemberHittingAntiGateRedirectsToEdit(t *testing.T) {
	memberID := uuid.New()
	chain := NewChain(&stubOracle{subscribed: map[uuid.UUID]bool{memberID: true}})

	decision, err := chain.Evaluate(context.Background(), entity.MemberPrincipal(memberID), RouteNotSubscribed)
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.Equal(t, domainerrors.SubscriptionEditPath, decision.Location)
	assert.Equal(t, "ALREADY_SUBSCRIBED", decision.Reason)
}

func TestChain_FreeMemberPassesAntiGate(t *testing.T) {
	chain := NewChain(&stubOracle{subscribed: map[uuid.UUID]bool{}})

	decision, err := chain.Evaluate(context.Background(), entity.MemberPrincipal(uuid.New()), RouteNotSubscribed)
	require.NoError(t, err)
	assert.Nil(t, decision)
}

func TestChain_OracleFailureSurfacesAsError(t *testing.T) {
	// A billing outage must never be read as "not subscribed".
	chain := NewChain(&stubOracle{err: errors.New("billing provider down")})

	decision, err := chain.Evaluate(context.Background(), entity.MemberPrincipal(uuid.New()), RouteSubscribed)
	assert.Error(t, err)
	assert.Nil(t, decision)
}

func TestChain_OracleConsultedOnEveryGatedEvaluation(t *testing.T) {
	// No caching between evaluations: cancellation must take effect on the
	// very next request.
	memberID := uuid.New()
	oracle := &stubOracle{subscribed: map[uuid.UUID]bool{memberID: true}}
	chain := NewChain(oracle)
	member := entity.MemberPrincipal(memberID)

	decision, err := chain.Evaluate(context.Background(), member, RouteSubscribed)
	require.NoError(t, err)
	assert.Nil(t, decision)

	oracle.subscribed[memberID] = false

	decision, err = chain.Evaluate(context.Background(), member, RouteSubscribed)
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.Equal(t, domainerrors.SubscriptionCreatePath, decision.Location)
	assert.Equal(t, 2, oracle.calls)
}

func TestDecision_ErrCarriesLocation(t *testing.T) {
	decision := &Decision{Location: domainerrors.SubscriptionCreatePath, Reason: "SUBSCRIPTION_REQUIRED"}

	err := decision.Err()
	assert.Equal(t, domainerrors.SubscriptionCreatePath, err.Location())
	assert.Equal(t, "SUBSCRIPTION_REQUIRED", err.ErrorCode())
}
