package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"Sociable/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// GetByID retrieves a user by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	query := `
		SELECT id, first_name, last_name, location, picture_path, created_at
		FROM users
		WHERE id = $1
	`

	var u users.User
	var picture sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Location, &picture, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if picture.Valid {
		u.PicturePath = picture.String
	}

	return &u, nil
}

// Create inserts a new user
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, location, picture_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	picture := sql.NullString{String: user.PicturePath, Valid: user.PicturePath != ""}

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Location, picture, user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("user already exists: %s", user.ID)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}
