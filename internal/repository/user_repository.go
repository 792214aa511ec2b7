package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"newel/internal/entity"
)

var (
	// ErrUsernameTaken is the authoritative duplicate-username signal. It
	// comes from the store's UNIQUE constraint, never from a read-then-write
	// pre-check, so concurrent registrations cannot both slip through.
	ErrUsernameTaken = errors.New("username already exists")

	ErrNotFound = errors.New("user not found")
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user and fills in the generated ID.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	err := r.db.QueryRowContext(ctx, `
        INSERT INTO users (full_name, username, password_hash, role, class_name)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, user.FullName, user.Username, user.PasswordHash, string(user.Role), user.ClassName).Scan(&user.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByUsername looks a user up by exact, case-sensitive username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRowContext(ctx, `
        SELECT id, full_name, username, password_hash, role, class_name, created_at
        FROM users
        WHERE username = $1
    `, username).Scan(&u.ID, &u.FullName, &u.Username, &u.PasswordHash, &u.Role, &u.ClassName, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// CountByUsername exists for tests asserting the uniqueness invariant.
func (r *UserRepository) CountByUsername(ctx context.Context, username string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
        SELECT count(*) FROM users WHERE username = $1
    `, username).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users %q: %w", username, err)
	}
	return n, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
