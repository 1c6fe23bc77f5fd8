package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lansen/driveadmin/internal/app/models"
	"github.com/lansen/driveadmin/internal/db"
	"github.com/lansen/driveadmin/internal/pkg/apperrors"
	"github.com/lansen/driveadmin/internal/pkg/logger"
)

// CarRepository handles vehicle database operations
type CarRepository struct {
	db *pgxpool.Pool
}

// NewCarRepository creates a new CarRepository
func NewCarRepository(db *pgxpool.Pool) *CarRepository {
	return &CarRepository{db: db}
}

func scanCar(row pgx.Row) (*models.Car, error) {
	c := &models.Car{}
	err := row.Scan(&c.ID, &c.Name, &c.CarType, &c.IsAvailable, &c.UserCount, &c.SubjectType)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new vehicle and returns the assigned id
func (r *CarRepository) Create(ctx context.Context, car *models.Car) (int64, error) {
	sql, args, err := buildInsertCarQuery(car)
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert car SQL")
		return 0, fmt.Errorf("failed to build insert car query: %w", err)
	}

	var id int64
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx, sql, args...).Scan(&id)
	})
	if err != nil {
		logger.Error().Err(err).Str("carName", car.Name).Msg("Error executing insert car query")
		return 0, fmt.Errorf("error creating car: %w", err)
	}

	return id, nil
}

// GetByID retrieves a vehicle by id, returning (nil, nil) when absent
func (r *CarRepository) GetByID(ctx context.Context, id int64) (*models.Car, error) {
	sql, args, err := buildSelectCarByIDQuery(id)
	if err != nil {
		logger.Error().Err(err).Msg("Error building select car SQL")
		return nil, fmt.Errorf("failed to build select car query: %w", err)
	}

	car, err := scanCar(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Int64("carID", id).Msg("Error scanning car row")
		return nil, fmt.Errorf("error getting car by id: %w", err)
	}

	return car, nil
}

// UpdateByID replaces every mutable field of one vehicle
func (r *CarRepository) UpdateByID(ctx context.Context, id int64, car *models.Car) error {
	sql, args, err := buildUpdateCarByIDQuery(id, car)
	if err != nil {
		logger.Error().Err(err).Msg("Error building update car SQL")
		return fmt.Errorf("failed to build update car query: %w", err)
	}

	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.ErrCarNotFound
		}
		logger.Error().Err(err).Int64("carID", id).Msg("Error executing update car query")
		return fmt.Errorf("error updating car: %w", err)
	}

	return nil
}

// DeleteByID removes one vehicle; dependent bookings cascade at the storage layer
func (r *CarRepository) DeleteByID(ctx context.Context, id int64) error {
	sql, args, err := buildDeleteCarByIDQuery(id)
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete car SQL")
		return fmt.Errorf("failed to build delete car query: %w", err)
	}

	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.ErrCarNotFound
		}
		logger.Error().Err(err).Int64("carID", id).Msg("Error executing delete car query")
		return fmt.Errorf("error deleting car: %w", err)
	}

	return nil
}
