package auth

import (
	"context"

	"github.com/iudanet/gophotel/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service defines the main interface for authentication operations.
// It talks to the backend and keeps the session in local storage.
type Service interface {
	// Register регистрирует нового сотрудника (без входа)
	Register(ctx context.Context, username, password string) (*RegisterResult, error)

	// Login выполняет аутентификацию и сохраняет сессию
	Login(ctx context.Context, username, password string) (*storage.AuthData, error)

	// RefreshToken обновляет access token по refresh token и сохраняет новую пару
	RefreshToken(ctx context.Context) error

	// Session возвращает действующую сессию, при необходимости обновив access token.
	// Возвращает ErrNotLoggedIn, если сессии нет.
	Session(ctx context.Context) (*storage.AuthData, error)

	// Logout удаляет локальную сессию и отзывает refresh token на сервере (best effort)
	Logout(ctx context.Context) error
}
