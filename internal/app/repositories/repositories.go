package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for rows that do not exist.
// Entity-specific sentinels in apperrors wrap the same meaning at the
// service boundary; repositories signal absence with (nil, nil) on reads
// and this error on writes that matched no rows.
var ErrNotFound = errors.New("record not found")

// Repositories is the container for all data-access objects
type Repositories struct {
	UserRepository    *UserRepository
	CarRepository     *CarRepository
	SubjectRepository *SubjectRepository
}

// NewRepositories creates every repository over a shared connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		CarRepository:     NewCarRepository(db),
		SubjectRepository: NewSubjectRepository(db),
	}
}
