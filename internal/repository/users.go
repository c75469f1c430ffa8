package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RudraNarayan94/MOK/internal/models"
)

type UsersR struct {
	db QueryI
}

func NewUsersRepository(db QueryI) *UsersR {
	return &UsersR{db: db}
}

func (u *UsersR) CreateUser(ctx context.Context, email, username, passwordHash string) (models.User, error) {
	query := `
		INSERT INTO users (email, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, email, username, password_hash, is_active, is_admin, last_login, created_at, updated_at
	`

	var user models.User
	err := u.db.GetContext(ctx, &user, query, email, username, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrDuplicate
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (u *UsersR) UserByID(ctx context.Context, id int64) (models.User, error) {
	query := `
		SELECT id, email, username, password_hash, is_active, is_admin, last_login, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return u.getUser(ctx, query, id)
}

func (u *UsersR) UserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `
		SELECT id, email, username, password_hash, is_active, is_admin, last_login, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`
	return u.getUser(ctx, query, email)
}

func (u *UsersR) UserByUsername(ctx context.Context, username string) (models.User, error) {
	query := `
		SELECT id, email, username, password_hash, is_active, is_admin, last_login, created_at, updated_at
		FROM users
		WHERE LOWER(username) = LOWER($1)
	`
	return u.getUser(ctx, query, username)
}

func (u *UsersR) getUser(ctx context.Context, query string, arg any) (models.User, error) {
	var user models.User
	err := u.db.GetContext(ctx, &user, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (u *UsersR) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`
	if err := u.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func (u *UsersR) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(username) = LOWER($1))`
	if err := u.db.GetContext(ctx, &exists, query, username); err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

func (u *UsersR) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	if _, err := u.db.ExecContext(ctx, query, userID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (u *UsersR) TouchLastLogin(ctx context.Context, userID int64) error {
	query := `UPDATE users SET last_login = NOW() WHERE id = $1`
	if _, err := u.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}
