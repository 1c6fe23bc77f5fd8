package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/lansen/driveadmin/internal/app/models"
	"github.com/lansen/driveadmin/internal/app/repositories"
	"github.com/lansen/driveadmin/internal/config"
	"github.com/lansen/driveadmin/internal/pkg/apperrors"
	"github.com/lansen/driveadmin/internal/pkg/auth"
)

// CreateDefaultData ensures the configured admin account exists so the
// console is reachable on a fresh database. An existing account with the
// same username is left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	existing, err := userRepo.GetByUsername(ctx, cfg.Admin.Username)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for admin account")
		return err
	}
	if existing != nil {
		lgr.Debug().Str("username", cfg.Admin.Username).Msg("Admin account already exists")
		return nil
	}

	if cfg.Admin.Password == "" {
		lgr.Warn().Str("username", cfg.Admin.Username).Msg("No admin password configured, skipping admin account creation")
		return nil
	}

	lgr.Info().Str("username", cfg.Admin.Username).Msg("Creating admin account...")

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &models.User{
		Gender:   models.GenderMale,
		Password: hash,
		Username: cfg.Admin.Username,
		IsAdmin:  true,
	}

	if _, err := userRepo.Create(ctx, admin); err != nil {
		// A concurrent startup may have created it first
		if errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Info().Str("username", cfg.Admin.Username).Msg("Admin account created")
	return nil
}
