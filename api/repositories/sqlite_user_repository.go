package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/deepthansh-m/WhisperNet/api/models"

	"github.com/google/uuid"
)

// SQLite implementation of UserRepository.
type sqliteUserRepository struct {
	db *sql.DB
}

func NewSQLiteUserRepository(db *sql.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

func (ur *sqliteUserRepository) CreateUser(username string, email string, passwordHash string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := ur.db.Exec(
		"INSERT INTO users (id, username, email, password_hash) VALUES (?, ?, ?, ?)",
		id, username, email, passwordHash,
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (ur *sqliteUserRepository) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := ur.db.QueryRow(
		"SELECT id, username, is_premium, created_at FROM users WHERE id = ?",
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

func (ur *sqliteUserRepository) GetPasswordHashByEmail(email string) (uuid.UUID, string, error) {
	var id uuid.UUID
	var passwordHash string

	err := ur.db.QueryRow(
		"SELECT id, password_hash FROM users WHERE email = ?",
		email,
	).Scan(&id, &passwordHash)
	if err != nil {
		return uuid.Nil, "", err
	}
	return id, passwordHash, nil
}

func (ur *sqliteUserRepository) IsPremium(userID uuid.UUID) (bool, error) {
	var premium bool
	err := ur.db.QueryRow(
		"SELECT is_premium FROM users WHERE id = ?",
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

func (ur *sqliteUserRepository) SetPremium(userID uuid.UUID) error {
	result, err := ur.db.Exec(
		"UPDATE users SET is_premium = 1 WHERE id = ?",
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
