package postgres

import (
	"database/sql"
	"errors"
	"fmt"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// profile is the per-user row; unknown users read as the zero value
type profile struct {
	authorized bool
	avatar     string
}

func (r *UserRepo) profile(userID int64) (profile, error) {
	var p profile
	query := `SELECT authorized, avatar FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&p.authorized, &p.avatar)

	if errors.Is(err, sql.ErrNoRows) {
		return profile{}, nil
	}
	if err != nil {
		return profile{}, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	return p, nil
}

// IsAuthorized reports whether the user entered the password; unknown users are not
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	p, err := r.profile(userID)
	return p.authorized, err
}

// GetAvatar returns the stored avatar, or "" when none was picked
func (r *UserRepo) GetAvatar(userID int64) (string, error) {
	p, err := r.profile(userID)
	return p.avatar, err
}

// AuthorizeUser marks user as authorized, creating the row if needed
func (r *UserRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`
	if _, err := r.db.Exec(query, userID); err != nil {
		return fmt.Errorf("failed to authorize user %d: %w", userID, err)
	}
	return nil
}

// EnsureUserExists creates an unauthorized user row on first contact
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Exec(query, userID); err != nil {
		return fmt.Errorf("failed to register user %d: %w", userID, err)
	}
	return nil
}

// SetAvatar stores the user's avatar, creating the row if needed
func (r *UserRepo) SetAvatar(userID int64, avatar string) error {
	query := `
		INSERT INTO users (user_id, avatar)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET avatar = EXCLUDED.avatar
	`
	if _, err := r.db.Exec(query, userID, avatar); err != nil {
		return fmt.Errorf("failed to set avatar of user %d: %w", userID, err)
	}
	return nil
}
