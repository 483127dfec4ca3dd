// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tavolo/internal/delivery/http/middleware"
	"tavolo/internal/delivery/http/router/handler"
	"tavolo/internal/domain/guard"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RestaurantHandler   *handler.RestaurantHandler
	AuthHandler         *handler.AuthHandler
	MemberHandler       *handler.MemberHandler
	ReservationHandler  *handler.ReservationHandler
	ReviewHandler       *handler.ReviewHandler
	SubscriptionHandler *handler.SubscriptionHandler
	FavoriteHandler     *handler.FavoriteHandler
	AdminHandler        *handler.AdminHandler
	PrincipalMiddleware *middleware.PrincipalMiddleware
	GuardMiddleware     *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application. Every group
// runs the admission chain for its route class; the principal is resolved
// once, globally, before any guard runs.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint, outside the guard chain.
	e.GET("/health", handler.HealthCheck)

	e.Use(p.PrincipalMiddleware.Resolve)

	// Public surface. Administrators are excluded by the chain and sent to
	// their own home.
	publicGroup := e.Group("", p.GuardMiddleware.Require(guard.RoutePublic))
	{
		publicGroup.GET("/", p.RestaurantHandler.Home)
		publicGroup.GET("/restaurants", p.RestaurantHandler.Index)
		publicGroup.GET("/restaurants/:id", p.RestaurantHandler.Show)
		publicGroup.GET("/company", p.RestaurantHandler.Company)
		publicGroup.GET("/terms", p.RestaurantHandler.Terms)

		publicGroup.POST("/auth/register", p.AuthHandler.Register)
		publicGroup.POST("/auth/login", p.AuthHandler.Login)
		publicGroup.POST("/admin/auth/login", p.AuthHandler.AdminLogin)
	}

	// Member surface: any signed-in member, subscribed or not.
	memberGroup := e.Group("", p.GuardMiddleware.Require(guard.RouteMember))
	{
		memberGroup.GET("/restaurants/:restaurant_id/reviews", p.ReviewHandler.Index)
		memberGroup.GET("/user/:id", p.MemberHandler.Show)
		memberGroup.PUT("/user/:id", p.MemberHandler.Update)
	}

	// Subscription creation flow: members who already subscribe are
	// redirected to the edit page by the anti-gate.
	subscribeGroup := e.Group("/subscription", p.GuardMiddleware.Require(guard.RouteNotSubscribed))
	{
		subscribeGroup.GET("/create", p.SubscriptionHandler.New)
		subscribeGroup.POST("", p.SubscriptionHandler.Create)
	}

	// Subscription management: requires an active subscription.
	subscriptionEditGroup := e.Group("/subscription", p.GuardMiddleware.Require(guard.RouteSubscribed))
	{
		subscriptionEditGroup.GET("/edit", p.SubscriptionHandler.Edit)
		subscriptionEditGroup.PUT("/payment-method", p.SubscriptionHandler.UpdatePaymentMethod)
		subscriptionEditGroup.DELETE("", p.SubscriptionHandler.Delete)
	}

	// Paid-tier surface: reservations, review writes and favorites.
	subscribedGroup := e.Group("", p.GuardMiddleware.Require(guard.RouteSubscribed))
	{
		subscribedGroup.GET("/reservations", p.ReservationHandler.Index)
		subscribedGroup.POST("/reservations", p.ReservationHandler.Create)
		subscribedGroup.DELETE("/reservations/:id", p.ReservationHandler.Delete)

		subscribedGroup.POST("/restaurants/:restaurant_id/reviews", p.ReviewHandler.Create)
		subscribedGroup.PUT("/reviews/:id", p.ReviewHandler.Update)
		subscribedGroup.DELETE("/reviews/:id", p.ReviewHandler.Delete)

		subscribedGroup.GET("/favorites", p.FavoriteHandler.Index)
		subscribedGroup.POST("/restaurants/:restaurant_id/favorite", p.FavoriteHandler.Create)
		subscribedGroup.DELETE("/restaurants/:restaurant_id/favorite", p.FavoriteHandler.Delete)
	}

	// Back-office surface.
	adminGroup := e.Group("/admin", p.GuardMiddleware.Require(guard.RouteAdmin))
	{
		adminGroup.GET("", p.AdminHandler.Dashboard)

		adminGroup.GET("/restaurants", p.AdminHandler.ListRestaurants)
		adminGroup.POST("/restaurants", p.AdminHandler.CreateRestaurant)
		adminGroup.GET("/restaurants/:id", p.AdminHandler.GetRestaurant)
		adminGroup.PUT("/restaurants/:id", p.AdminHandler.UpdateRestaurant)
		adminGroup.DELETE("/restaurants/:id", p.AdminHandler.DeleteRestaurant)

		adminGroup.GET("/categories", p.AdminHandler.ListCategories)
		adminGroup.POST("/categories", p.AdminHandler.CreateCategory)
		adminGroup.PUT("/categories/:id", p.AdminHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", p.AdminHandler.DeleteCategory)

		adminGroup.GET("/regular-holidays", p.AdminHandler.ListRegularHolidays)
		adminGroup.GET("/members", p.AdminHandler.ListMembers)

		adminGroup.GET("/company", p.AdminHandler.GetCompany)
		adminGroup.PUT("/company", p.AdminHandler.UpdateCompany)
		adminGroup.GET("/terms", p.AdminHandler.GetTerms)
		adminGroup.PUT("/terms", p.AdminHandler.UpdateTerms)
	}
}
