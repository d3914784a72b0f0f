// Package services содержит бизнес-логику сервиса подписок на журналы:
// аутентификацию, управление журналами, тарифами и подписками.
package services

import (
	"context"
	"fmt"

	"github.com/eroshevich/magazine-subscription-service/internal/lib/jwt"
	"github.com/eroshevich/magazine-subscription-service/internal/lib/password"
	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает созданную запись.
	CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// DeactivateUser помечает пользователя неактивным.
	DeactivateUser(ctx context.Context, username string) (*models.User, error)
	// UpdatePasswordHash заменяет хэш пароля пользователя, найденного по email.
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) (*models.User, error)
}

// TokenPair содержит пару токенов, выдаваемую при входе.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// AuthService отвечает за регистрацию, авторизацию и выпуск JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Занятый username или email приводит к models.ErrAlreadyExists.
func (s *AuthService) Register(ctx context.Context, req models.DummyUser) (*models.User, error) {
	const op = "services.auth.Register"
	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.users.CreateUser(ctx, req.Username, req.Email, hashed)
}

// Login проверяет пароль пользователя и выдаёт пару access/refresh токенов.
// Отсутствующий пользователь и неверный пароль неразличимы для вызывающего:
// оба случая дают models.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (*TokenPair, error) {
	const op = "services.auth.Login"
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}
	access, err := s.jwtMaker.GenerateAccessToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	refresh, err := s.jwtMaker.GenerateRefreshToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

// Token реализует вход по форме (OAuth2 password grant): выдаёт только
// токен доступа.
func (s *AuthService) Token(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "services.auth.Token"
	pair, err := s.Login(ctx, username, rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}
	return pair.AccessToken, nil
}

// Refresh проверяет refresh-токен и выпускает новый токен доступа.
// Токен доступа в роли refresh-токена отклоняется.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	const op = "services.auth.Refresh"
	claims, err := s.jwtMaker.ParseToken(refreshToken)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return "", fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}
	if _, err := s.users.GetUserByUsername(ctx, claims.Username); err != nil {
		return "", fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}
	access, err := s.jwtMaker.GenerateAccessToken(claims.Username)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return access, nil
}

// Authorize разрешает подателя bearer-токена в запись пользователя.
// Принимается только access-токен, refresh-токен не дает доступа к API.
// Флаг is_active намеренно не проверяется: токены деактивированного
// пользователя остаются действительными до истечения срока.
func (s *AuthService) Authorize(ctx context.Context, token string) (*models.User, error) {
	const op = "services.auth.Authorize"
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}
	user, err := s.users.GetUserByUsername(ctx, claims.Username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}
	return user, nil
}

// GetByUsername возвращает пользователя по имени.
func (s *AuthService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.users.GetUserByUsername(ctx, username)
}

// Deactivate помечает пользователя неактивным (мягкое удаление).
func (s *AuthService) Deactivate(ctx context.Context, username string) (*models.User, error) {
	return s.users.DeactivateUser(ctx, username)
}

// ResetPassword заменяет пароль пользователя, найденного по email.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) (*models.User, error) {
	const op = "services.auth.ResetPassword"
	hashed, err := password.GetHash(newPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.users.UpdatePasswordHash(ctx, email, hashed)
}
