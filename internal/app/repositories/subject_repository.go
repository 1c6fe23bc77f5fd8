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
	"github.com/lansen/driveadmin/internal/pkg/dberrors"
	"github.com/lansen/driveadmin/internal/pkg/logger"
)

// SubjectRepository handles exam booking database operations
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{db: db}
}

func scanSubject(row pgx.Row) (*models.Subject, error) {
	s := &models.Subject{}
	err := row.Scan(&s.ID, &s.UserID, &s.CarID, &s.SubjectType, &s.SubjectNumber)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new booking and returns the assigned id.
// The (user_id, car_id) pair must be unused.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) (int64, error) {
	sql, args, err := buildInsertSubjectQuery(subject)
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert subject SQL")
		return 0, fmt.Errorf("failed to build insert subject query: %w", err)
	}

	var id int64
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx, sql, args...).Scan(&id)
	})
	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "subjects_user_car_key") {
			return 0, apperrors.ErrBookingAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrInvalidReference
		}
		logger.Error().Err(err).Int64("userID", subject.UserID).Int64("carID", subject.CarID).Msg("Error executing insert subject query")
		return 0, fmt.Errorf("error creating subject: %w", err)
	}

	return id, nil
}

// GetByID retrieves a booking by id, returning (nil, nil) when absent
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	sql, args, err := buildSelectSubjectByIDQuery(id)
	if err != nil {
		logger.Error().Err(err).Msg("Error building select subject SQL")
		return nil, fmt.Errorf("failed to build select subject query: %w", err)
	}

	subject, err := scanSubject(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error scanning subject row")
		return nil, fmt.Errorf("error getting subject by id: %w", err)
	}

	return subject, nil
}

// UpdateByID replaces every mutable field of one booking
func (r *SubjectRepository) UpdateByID(ctx context.Context, id int64, subject *models.Subject) error {
	sql, args, err := buildUpdateSubjectByIDQuery(id, subject)
	if err != nil {
		logger.Error().Err(err).Msg("Error building update subject SQL")
		return fmt.Errorf("failed to build update subject query: %w", err)
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
			return apperrors.ErrBookingNotFound
		}
		if dberrors.IsUniqueViolationOn(err, "subjects_user_car_key") {
			return apperrors.ErrBookingAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInvalidReference
		}
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error executing update subject query")
		return fmt.Errorf("error updating subject: %w", err)
	}

	return nil
}

// DeleteByID removes one booking
func (r *SubjectRepository) DeleteByID(ctx context.Context, id int64) error {
	sql, args, err := buildDeleteSubjectByIDQuery(id)
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete subject SQL")
		return fmt.Errorf("failed to build delete subject query: %w", err)
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
			return apperrors.ErrBookingNotFound
		}
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error executing delete subject query")
		return fmt.Errorf("error deleting subject: %w", err)
	}

	return nil
}

// DeleteByUserAndCar removes the booking identified by the (user, car) pair
func (r *SubjectRepository) DeleteByUserAndCar(ctx context.Context, userID, carID int64) error {
	sql, args, err := buildDeleteSubjectByUserAndCarQuery(userID, carID)
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete subject by user and car SQL")
		return fmt.Errorf("failed to build delete subject query: %w", err)
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
			return apperrors.ErrBookingNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Int64("carID", carID).Msg("Error executing delete subject by user and car query")
		return fmt.Errorf("error deleting subject by user and car: %w", err)
	}

	return nil
}
