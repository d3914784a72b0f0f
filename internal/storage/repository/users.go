package repository

import (
	"context"
	"fmt"

	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

// CreateUser сохраняет нового пользователя и возвращает созданную запись.
// Занятый username или email приводит к models.ErrAlreadyExists.
func (s *Storage) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (username, email, password_hash)
			  VALUES ($1, $2, $3)
			  RETURNING id, username, email, password_hash, is_active`
	u := &models.User{}
	if err := s.DB.QueryRowContext(ctx, query, username, email, passwordHash).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsActive); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateError(err))
	}
	return u, nil
}

// GetUserByUsername возвращает пользователя по его username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, email, password_hash, is_active
			  FROM users
			  WHERE username = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, username)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsActive); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateError(err))
	}
	return u, nil
}

// GetUser возвращает пользователя по его ID.
func (s *Storage) GetUser(ctx context.Context, id int) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, email, password_hash, is_active
			  FROM users
			  WHERE id = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsActive); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateError(err))
	}
	return u, nil
}

// DeactivateUser помечает пользователя неактивным (мягкое удаление)
// и возвращает обновлённую запись.
func (s *Storage) DeactivateUser(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.DeactivateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET is_active = false
			  WHERE username = $1
			  RETURNING id, username, email, password_hash, is_active`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, username)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsActive); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateError(err))
	}
	return u, nil
}

// UpdatePasswordHash заменяет хэш пароля пользователя, найденного по email.
func (s *Storage) UpdatePasswordHash(ctx context.Context, email, passwordHash string) (*models.User, error) {
	const op = "storage.UpdatePasswordHash"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET password_hash = $1
			  WHERE email = $2
			  RETURNING id, username, email, password_hash, is_active`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, passwordHash, email)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsActive); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateError(err))
	}
	return u, nil
}
