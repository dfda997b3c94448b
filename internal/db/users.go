package db

import (
	"context"
	"errors"
	"fmt"

	"mealia-backend/internal/models"

	"github.com/jackc/pgconn"
)

// ErrDuplicate is returned when an insert collides with a uniqueness
// constraint (email, inventory name, recipe name).
var ErrDuplicate = errors.New("record already exists")

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (db *PostgresDB) CreateUser(ctx context.Context, user *models.User) error {
	query := `
        INSERT INTO users (email, first_name, last_name, password_hash, goal)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `

	err := db.pool.QueryRow(ctx, query,
		user.Email, user.FirstName, user.LastName, user.PasswordHash, user.Goal,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (db *PostgresDB) GetUser(ctx context.Context, id int64) (*models.User, error) {
	query := `
        SELECT id, email, first_name, last_name, password_hash,
               height, weight, birthdate, goal, photo_url, premium,
               created_at, updated_at
        FROM users
        WHERE id = $1
    `

	var user models.User
	err := db.pool.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash,
		&user.HeightM, &user.WeightKg, &user.Birthdate, &user.Goal, &user.PhotoURL,
		&user.Premium, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (db *PostgresDB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
        SELECT id, email, first_name, last_name, password_hash,
               height, weight, birthdate, goal, photo_url, premium,
               created_at, updated_at
        FROM users
        WHERE email = $1
    `

	var user models.User
	err := db.pool.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash,
		&user.HeightM, &user.WeightKg, &user.Birthdate, &user.Goal, &user.PhotoURL,
		&user.Premium, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateProfile persists the editable profile fields.
func (db *PostgresDB) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
        UPDATE users
        SET first_name = $2, last_name = $3, height = $4, weight = $5,
            birthdate = $6, goal = $7, photo_url = $8, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at
    `

	err := db.pool.QueryRow(ctx, query,
		user.ID, user.FirstName, user.LastName, user.HeightM, user.WeightKg,
		user.Birthdate, user.Goal, user.PhotoURL,
	).Scan(&user.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

func (db *PostgresDB) SetPremium(ctx context.Context, userID int64, premium bool) error {
	query := `
        UPDATE users
        SET premium = $2, updated_at = NOW()
        WHERE id = $1
    `

	_, err := db.pool.Exec(ctx, query, userID, premium)
	return err
}
