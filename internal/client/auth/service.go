package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/gophotel/internal/client/storage"
	"github.com/iudanet/gophotel/internal/validation"
	pkgapi "github.com/iudanet/gophotel/pkg/api"
)

// ErrNotLoggedIn возвращается, когда локальной сессии нет
var ErrNotLoggedIn = errors.New("not logged in, run 'login' first")

// refreshSkew - за сколько до истечения access token обновляется заранее
const refreshSkew = 30 * time.Second

// APIClient - часть HTTP клиента, нужная сервису авторизации
type APIClient interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// AuthService предоставляет функции авторизации
type AuthService struct {
	apiClient APIClient
	store     storage.AuthStorage
	clock     clockwork.Clock
	logger    *slog.Logger
}

var _ Service = (*AuthService)(nil)

// NewAuthService создает новый сервис авторизации
func NewAuthService(apiClient APIClient, store storage.AuthStorage, clock clockwork.Clock, logger *slog.Logger) *AuthService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		apiClient: apiClient,
		store:     store,
		clock:     clock,
		logger:    logger,
	}
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID   string
	Username string
}

// Register регистрирует нового сотрудника
func (s *AuthService) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	username = validation.NormalizeUsername(username)
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(username, password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return &RegisterResult{UserID: resp.UserID, Username: username}, nil
}

// Login выполняет аутентификацию и сохраняет сессию в локальном хранилище
func (s *AuthService) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	username = validation.NormalizeUsername(username)
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("invalid password: password cannot be empty")
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	authData, err := s.fromTokens(username, resp)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Debug("session saved", "username", username, "user_id", authData.UserID)
	return authData, nil
}

// RefreshToken обновляет пару токенов
func (s *AuthService) RefreshToken(ctx context.Context) error {
	current, err := s.getAuth(ctx)
	if err != nil {
		return err
	}
	_, err = s.refresh(ctx, current)
	return err
}

// Session возвращает сессию с действующим access token
func (s *AuthService) Session(ctx context.Context) (*storage.AuthData, error) {
	current, err := s.getAuth(ctx)
	if err != nil {
		return nil, err
	}

	if s.clock.Now().Add(refreshSkew).Unix() < current.ExpiresAt {
		return current, nil
	}

	s.logger.Debug("access token expired, refreshing", "username", current.Username)
	return s.refresh(ctx, current)
}

// AccessToken возвращает действующий access token; подходит как api.TokenSource
func (s *AuthService) AccessToken(ctx context.Context) (string, error) {
	session, err := s.Session(ctx)
	if err != nil {
		return "", err
	}
	return session.AccessToken, nil
}

// Logout выполняет выход из системы
func (s *AuthService) Logout(ctx context.Context) error {
	authData, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return ErrNotLoggedIn
		}
		return fmt.Errorf("failed to read session: %w", err)
	}

	// Сервер может быть недоступен: локальную сессию удаляем в любом случае
	if logoutErr := s.apiClient.Logout(ctx, authData.RefreshToken); logoutErr != nil {
		s.logger.Warn("failed to logout on server", "error", logoutErr)
	}

	if err := s.store.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	return nil
}

func (s *AuthService) getAuth(ctx context.Context) (*storage.AuthData, error) {
	current, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return current, nil
}

func (s *AuthService) refresh(ctx context.Context, current *storage.AuthData) (*storage.AuthData, error) {
	resp, err := s.apiClient.Refresh(ctx, current.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	next, err := s.fromTokens(current.Username, resp)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveAuth(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return next, nil
}

func (s *AuthService) fromTokens(username string, resp *pkgapi.TokenResponse) (*storage.AuthData, error) {
	if resp.AccessToken == "" || resp.RefreshToken == "" || resp.UserID == "" {
		return nil, fmt.Errorf("server returned incomplete token response")
	}
	return &storage.AuthData{
		Username:     username,
		UserID:       resp.UserID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    s.clock.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}, nil
}
