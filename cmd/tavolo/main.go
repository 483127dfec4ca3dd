package main

import (
	"context"
	"log/slog"
	"os"

	"tavolo/config"
	"tavolo/internal/delivery"
	"tavolo/internal/delivery/http"
	"tavolo/internal/delivery/http/middleware"
	"tavolo/internal/delivery/http/router/handler"
	"tavolo/internal/domain/guard"
	"tavolo/internal/infra/auth"
	"tavolo/internal/infra/billing"
	logs "tavolo/internal/infra/log"
	"tavolo/internal/infra/persistence/postgres"
	"tavolo/internal/usecase"
	"tavolo/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			postgres.RunMigrations,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewMemberRepository,
			postgres.NewAdministratorRepository,
			postgres.NewRestaurantRepository,
			postgres.NewCategoryRepository,
			postgres.NewRegularHolidayRepository,
			postgres.NewReservationRepository,
			postgres.NewReviewRepository,
			postgres.NewFavoriteRepository,
			postgres.NewCompanyRepository,
			postgres.NewTermRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			billing.NewStripeService,
			newGuardChain,
		),
	)
}

// newGuardChain wires the admission chain to the subscription use case, which
// acts as its oracle against the billing provider.
func newGuardChain(subscriptionUC usecase.SubscriptionUsecase) *guard.Chain {
	return guard.NewChain(subscriptionUC)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMemberService,
			impl.NewRestaurantService,
			impl.NewReservationService,
			impl.NewReviewService,
			impl.NewSubscriptionService,
			impl.NewFavoriteService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewPrincipalMiddleware,
			middleware.NewGuardMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRestaurantHandler,
			handler.NewAuthHandler,
			handler.NewMemberHandler,
			handler.NewReservationHandler,
			handler.NewReviewHandler,
			handler.NewSubscriptionHandler,
			handler.NewFavoriteHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
