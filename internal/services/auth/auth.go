// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/andreyzhukovv/country-explorer/internal/lib/jwt"
	"github.com/andreyzhukovv/country-explorer/internal/lib/password"
	"github.com/andreyzhukovv/country-explorer/internal/models"
	"github.com/andreyzhukovv/country-explorer/internal/storage/repository"
)

// Ошибки бизнес-уровня. Обработчики переводят их в HTTP-статусы
// и сообщения клиенту.
var (
	// ErrEmailTaken — email уже занят другим пользователем.
	ErrEmailTaken = errors.New("user with that email already exists")
	// ErrUsernameTaken — username уже занят другим пользователем.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials — неверная пара идентификатор/пароль.
	ErrInvalidCredentials = errors.New("invalid email/username or password")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (string, error)
	// GetUserByEmail возвращает пользователя по email или repository.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByUsername возвращает пользователя по имени или repository.ErrUserNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUserByID возвращает пользователя по идентификатору.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// AuthResult — результат успешной регистрации или входа:
// публичные данные пользователя и подписанный токен.
type AuthResult struct {
	ID       string
	Name     string
	Username string
	Email    string
	Token    string
}

// TokenInfo — данные пользователя, извлечённые из валидного токена.
type TokenInfo struct {
	Username string
	UserID   string
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
//
// Занятый email и занятый username различаются: клиент получает
// конкретную причину отказа. Проверка выполняется до вставки, уникальные
// индексы базы остаются последней линией защиты от гонок.
func (s *AuthService) Register(ctx context.Context, name, username, email, rawPassword string) (*AuthResult, error) {
	const op = "auth.Register"

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
	}
	id, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(username, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &AuthResult{
		ID:       id,
		Name:     name,
		Username: username,
		Email:    email,
		Token:    token,
	}, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
//
// Идентификатором служит одно поле: сначала оно пробуется как email,
// затем как username. Несуществующий пользователь и неверный пароль
// неразличимы для клиента.
func (s *AuthService) Login(ctx context.Context, identifier, rawPassword string) (*AuthResult, error) {
	const op = "auth.Login"

	user, err := s.users.GetUserByEmail(ctx, identifier)
	if errors.Is(err, repository.ErrUserNotFound) {
		user, err = s.users.GetUserByUsername(ctx, identifier)
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.Username, user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &AuthResult{
		ID:       user.ID.Hex(),
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}

// Profile возвращает пользователя по идентификатору из токена.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

// ValidateToken проверяет JWT и возвращает информацию о пользователе.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*TokenInfo, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return &TokenInfo{
		Username: claims.Username,
		UserID:   claims.UserID,
	}, nil
}
