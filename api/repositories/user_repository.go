package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/deepthansh-m/WhisperNet/api/models"

	"github.com/google/uuid"
)

// interface
type UserRepository interface {
	CreateUser(username string, email string, passwordHash string) (uuid.UUID, error)
	GetUserByID(id uuid.UUID) (*models.User, error)
	GetPasswordHashByEmail(email string) (uuid.UUID, string, error)
	IsPremium(userID uuid.UUID) (bool, error)
	SetPremium(userID uuid.UUID) error
}

// Postgres implementation.
type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (ur *userRepository) CreateUser(username string, email string, passwordHash string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := ur.db.Exec(
		"INSERT INTO users (id, username, email, password_hash) VALUES ($1, $2, $3, $4)",
		id, username, email, passwordHash,
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (ur *userRepository) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := ur.db.QueryRow(
		"SELECT id, username, is_premium, created_at FROM users WHERE id = $1",
		id,
	).Scan(&user.ID, &user.Username, &user.IsPremium, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) GetPasswordHashByEmail(email string) (uuid.UUID, string, error) {
	var id uuid.UUID
	var passwordHash string

	err := ur.db.QueryRow(
		"SELECT id, password_hash FROM users WHERE email = $1",
		email,
	).Scan(&id, &passwordHash)
	if err != nil {
		return uuid.Nil, "", err
	}
	return id, passwordHash, nil
}

// IsPremium is the entitlement read; called per request, so it stays a
// single indexed lookup.
func (ur *userRepository) IsPremium(userID uuid.UUID) (bool, error) {
	var premium bool
	err := ur.db.QueryRow(
		"SELECT is_premium FROM users WHERE id = $1",
		userID,
	).Scan(&premium)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, models.ErrNotFound
		}
		return false, err
	}
	return premium, nil
}

// SetPremium records a completed purchase. Idempotent.
func (ur *userRepository) SetPremium(userID uuid.UUID) error {
	result, err := ur.db.Exec(
		"UPDATE users SET is_premium = TRUE WHERE id = $1",
		userID,
	)
	if err != nil {
		return fmt.Errorf("set premium: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}
