// Package services содержит логику бизнес-уровня для работы с пользователями
// и аутентификацией.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ggmj92/backend-blog/internal/lib/jwt"
	"github.com/ggmj92/backend-blog/internal/lib/password"
	"github.com/ggmj92/backend-blog/internal/models"
)

// ErrInvalidCredentials - пароль не соответствует хэшу пользователя.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его uid.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUser возвращает пользователя по uid или ошибку, если не найден.
	GetUser(ctx context.Context, uid string) (*models.User, error)

	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// AuthService отвечает за регистрацию, вход и выдачу токенов идентичности.
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

// Register создает нового пользователя с хэшированием пароля и выпускает
// для него токен. Дубликат email приходит из хранилища как repository.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string, isAdmin bool) (*models.User, string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, "", err
	}
	user := models.User{
		UID:          uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		RegisteredAt: time.Now().UTC(),
		IsAdmin:      isAdmin,
	}
	if _, err := s.users.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}
	token, err := s.jwtMaker.GenerateToken(user.UID, user.Name)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login проверяет пароль пользователя по email и выпускает токен.
// Неверный пароль возвращается как ErrInvalidCredentials, отсутствие
// пользователя - как repository.ErrUserNotFound.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.UID, user.Name)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUser возвращает пользователя по uid. Используется админ-гейтом
// и выборкой контрольного списка постов.
func (s *AuthService) GetUser(ctx context.Context, uid string) (*models.User, error) {
	return s.users.GetUser(ctx, uid)
}

// ListUsers возвращает всех пользователей для админского списка.
func (s *AuthService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.ListUsers(ctx)
}
