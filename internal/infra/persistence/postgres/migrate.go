package postgres

import (
	"context"
	"log/slog"

	"tavolo/config"
	"tavolo/internal/domain/entity"
	"tavolo/internal/domain/lifecycle"
	"tavolo/internal/domain/repository"
	"tavolo/internal/domain/service"
	"tavolo/internal/errors"
	"tavolo/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// weekdays seeds the fixed regular-holiday rows, Sunday first to match the
// directory's display order. Index 7 means "no regular holiday".
var weekdays = []struct {
	day   string
	index int
}{
	{"Sunday", 0},
	{"Monday", 1},
	{"Tuesday", 2},
	{"Wednesday", 3},
	{"Thursday", 4},
	{"Friday", 5},
	{"Saturday", 6},
	{"No holiday", 7},
}

// MigrateParams defines the dependencies for schema migration and seeding.
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Config *config.Config
	Hasher service.PasswordHasher
	Logger *slog.Logger
}

// RunMigrations applies the schema and seeds the fixed rows on startup.
// Registered as an Fx invocation so it runs before the HTTP server starts.
func RunMigrations(params MigrateParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := migrateSchema(ctx, params.DB); err != nil {
				return err
			}
			if err := seedRegularHolidays(ctx, params.DB); err != nil {
				return err
			}
			if err := seedAdministrator(ctx, params.DB, params.Config, params.Hasher, params.Logger); err != nil {
				return err
			}

			return nil
		},
	})
}

func migrateSchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.MemberModel{},
		&model.AdministratorModel{},
		&model.CategoryModel{},
		&model.RegularHolidayModel{},
		&model.RestaurantModel{},
		&model.ReservationModel{},
		&model.ReviewModel{},
		&model.FavoriteModel{},
		&model.CompanyModel{},
		&model.TermModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

func seedRegularHolidays(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).
		Model(&model.RegularHolidayModel{}).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count regular holidays")
	}
	if count > 0 {
		return nil
	}

	rows := make([]*model.RegularHolidayModel, 0, len(weekdays))
	for _, w := range weekdays {
		rows = append(rows, &model.RegularHolidayModel{Day: w.day, DayIndex: w.index})
	}

	if err := db.WithContext(ctx).Create(rows).Error; err != nil {
		return errors.Wrap(err, "failed to seed regular holidays")
	}

	return nil
}

func seedAdministrator(ctx context.Context, db *gorm.DB, cfg *config.Config, hasher service.PasswordHasher, logger *slog.Logger) error {
	if cfg.AdminSeed == nil || cfg.AdminSeed.Email == "" || cfg.AdminSeed.Password == "" {
		return nil
	}

	adminRepo := NewAdministratorRepository(db)

	_, err := adminRepo.FindByEmail(ctx, cfg.AdminSeed.Email)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, repository.ErrAdministratorNotFound):
		return err
	}

	hash, err := hasher.Hash(cfg.AdminSeed.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash seed administrator password")
	}

	admin := &entity.Administrator{
		Email:        cfg.AdminSeed.Email,
		PasswordHash: hash,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "seeded administrator account",
		slog.String("email", cfg.AdminSeed.Email),
	)

	return nil
}
