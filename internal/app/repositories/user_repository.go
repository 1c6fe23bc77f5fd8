package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lansen/driveadmin/internal/app/models"
	"github.com/lansen/driveadmin/internal/app/models/dto"
	"github.com/lansen/driveadmin/internal/db"
	"github.com/lansen/driveadmin/internal/pkg/apperrors"
	"github.com/lansen/driveadmin/internal/pkg/dberrors"
	"github.com/lansen/driveadmin/internal/pkg/logger"
)

// UserRepository handles student database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// scanUser reads one users row in userColumns order
func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Gender, &u.Password, &u.Username, &u.Birthday, &u.Contact,
		&u.SubjectType, &u.Subject1, &u.Subject2, &u.Subject3, &u.Subject4, &u.IsAdmin)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new student and returns the assigned id.
// The password on the model must already be hashed.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := buildInsertUserQuery(user)
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert user SQL")
		return 0, fmt.Errorf("failed to build insert user query: %w", err)
	}

	var id int64
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx, sql, args...).Scan(&id)
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error executing insert user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// CreateBulk inserts all records in a single transaction and returns their
// assigned ids in input order. Identities come straight from the insert, so
// no secondary lookup by username is needed.
func (r *UserRepository) CreateBulk(ctx context.Context, users []*models.User) ([]int64, error) {
	if len(users) == 0 {
		return nil, nil
	}

	sql, args, err := buildBulkInsertUsersQuery(users)
	if err != nil {
		logger.Error().Err(err).Msg("Error building bulk insert users SQL")
		return nil, fmt.Errorf("failed to build bulk insert users query: %w", err)
	}

	ids := make([]int64, 0, len(users))
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return rows.Err()
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		logger.Error().Err(err).Int("count", len(users)).Msg("Error executing bulk insert users query")
		return nil, fmt.Errorf("error creating users in bulk: %w", err)
	}

	return ids, nil
}

// GetByID retrieves a student by id, returning (nil, nil) when absent
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := buildSelectUserByIDQuery(id)
	if err != nil {
		logger.Error().Err(err).Msg("Error building select user by id SQL")
		return nil, fmt.Errorf("failed to build select user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by id: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a student by username, returning (nil, nil) when absent
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	sql, args, err := buildSelectUserByUsernameQuery(username)
	if err != nil {
		logger.Error().Err(err).Msg("Error building select user by username SQL")
		return nil, fmt.Errorf("failed to build select user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by username: %w", err)
	}

	return user, nil
}

// GetByFilter retrieves every student matching the filter, possibly none
func (r *UserRepository) GetByFilter(ctx context.Context, filter dto.UserFilter) ([]*models.User, error) {
	sql, args, err := buildSelectUsersByFilterQuery(filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error building select users by filter SQL")
		return nil, fmt.Errorf("failed to build select users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing select users by filter query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning user row during filter query")
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating user rows")
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// UpdateByID applies the non-nil fields of the update to one student
func (r *UserRepository) UpdateByID(ctx context.Context, id int64, update UserUpdate) error {
	if update.Empty() {
		return nil
	}

	sql, args, err := buildUpdateUserByIDQuery(id, update)
	if err != nil {
		logger.Error().Err(err).Msg("Error building update user SQL")
		return fmt.Errorf("failed to build update user query: %w", err)
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
			return apperrors.ErrUserNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameAlreadyExists
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing update user query")
		return fmt.Errorf("error updating user: %w", err)
	}

	return nil
}

// UpdateByUsername resolves the username inside the transaction and applies
// the update to the matching student
func (r *UserRepository) UpdateByUsername(ctx context.Context, username string, update UserUpdate) error {
	if update.Empty() {
		return nil
	}

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		selSql, selArgs, err := buildSelectUserByUsernameQuery(username)
		if err != nil {
			return fmt.Errorf("failed to build select user query: %w", err)
		}

		user, err := scanUser(tx.QueryRow(ctx, selSql, selArgs...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		updSql, updArgs, err := buildUpdateUserByIDQuery(user.ID, update)
		if err != nil {
			return fmt.Errorf("failed to build update user query: %w", err)
		}

		_, err = tx.Exec(ctx, updSql, updArgs...)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameAlreadyExists
		}
		logger.Error().Err(err).Str("username", username).Msg("Error executing update user by username")
		return fmt.Errorf("error updating user by username: %w", err)
	}

	return nil
}

// DeleteByID removes one student; dependent bookings cascade at the storage layer
func (r *UserRepository) DeleteByID(ctx context.Context, id int64) error {
	sql, args, err := buildDeleteUserByIDQuery(id)
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete user SQL")
		return fmt.Errorf("failed to build delete user query: %w", err)
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
			return apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing delete user query")
		return fmt.Errorf("error deleting user: %w", err)
	}

	return nil
}

// DeleteByUsername removes the student with the given username
func (r *UserRepository) DeleteByUsername(ctx context.Context, username string) error {
	sql, args, err := buildDeleteUserByUsernameQuery(username)
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete user by username SQL")
		return fmt.Errorf("failed to build delete user query: %w", err)
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
			return apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error executing delete user by username query")
		return fmt.Errorf("error deleting user by username: %w", err)
	}

	return nil
}

// DeleteByFilter removes every student matching the filter and reports how many
func (r *UserRepository) DeleteByFilter(ctx context.Context, filter dto.UserFilter) (int64, error) {
	sql, args, err := buildDeleteUsersByFilterQuery(filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete users by filter SQL")
		return 0, fmt.Errorf("failed to build delete users query: %w", err)
	}

	var deleted int64
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		deleted = cmdTag.RowsAffected()
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete users by filter query")
		return 0, fmt.Errorf("error deleting users by filter: %w", err)
	}

	return deleted, nil
}
