// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/magabrotheeeer/crop-ledger/internal/lib/jwt"
	"github.com/magabrotheeeer/crop-ledger/internal/lib/password"
	"github.com/magabrotheeeer/crop-ledger/internal/models"
)

var (
	// ErrEmailTaken возвращается при повторной регистрации на занятый email.
	ErrEmailTaken = errors.New("user already exists")
	// ErrUnknownEmail возвращается при входе с незарегистрированным email.
	ErrUnknownEmail = errors.New("email is not registered")
	// ErrInvalidPassword возвращается при несовпадении пароля.
	ErrInvalidPassword = errors.New("invalid password")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
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
// Повторная регистрация на занятый email возвращает ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string) (string, error) {
	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя и генерирует JWT с uid и email.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUnknownEmail
		}
		return "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidPassword
	}
	return s.jwtMaker.GenerateToken(user.UID, user.Email)
}

// ValidateToken проверяет JWT и возвращает информацию о пользователе.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return &models.User{
		UID:   claims.UserUID,
		Email: claims.Email,
	}, nil
}
