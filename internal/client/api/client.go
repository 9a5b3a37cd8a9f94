package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/gophotel/internal/models"
	"github.com/iudanet/gophotel/pkg/api"
)

var (
	// ErrUnauthorized сервер отклонил токен (401)
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound запись не найдена на сервере (404)
	ErrNotFound = errors.New("not found")
	// ErrConflict запись конфликтует с существующей (409)
	ErrConflict = errors.New("conflict")
	// ErrInvalidResponse ответ сервера не прошел строгую проверку
	ErrInvalidResponse = errors.New("invalid server response")
)

// StatusError - ответ сервера с кодом вне 2xx
type StatusError struct {
	Message string
	Code    int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Code, e.Message)
}

// Is сопоставляет код ответа с sentinel ошибками
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrConflict:
		return e.Code == http.StatusConflict
	}
	return false
}

// TokenSource возвращает access token для очередного запроса
type TokenSource func(ctx context.Context) (string, error)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient  *http.Client
	tokenSource TokenSource
	baseURL     string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			// Таймаут клиента ограничивает все удаленные вызовы доски
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Authorization переносим только в пределах того же хоста,
				// чужому хосту токен не отдаем
				if len(via) > 0 && req.URL.Host == via[0].URL.Host && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// WithAccessToken возвращает копию клиента, подписывающую запросы токеном
func (c *Client) WithAccessToken(token string) *Client {
	return c.WithTokenSource(func(context.Context) (string, error) {
		return token, nil
	})
}

// WithTokenSource возвращает копию клиента, запрашивающую токен перед каждым
// запросом. Так долгоживущая доска переживает обновление access token.
func (c *Client) WithTokenSource(src TokenSource) *Client {
	cp := *c
	cp.tokenSource = src
	return &cp
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обменивает refresh token на новую пару токенов
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	req := api.RefreshRequest{RefreshToken: refreshToken}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", req, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout отзывает refresh token на сервере
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	req := api.LogoutRequest{RefreshToken: refreshToken}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", req, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// ListRooms возвращает живые номера объекта в порядке сервера
func (c *Client) ListRooms(ctx context.Context, propertyID string) ([]models.Room, error) {
	var resp api.RoomListResponse
	path := fmt.Sprintf("/api/v1/properties/%s/rooms", url.PathEscape(propertyID))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list rooms request failed: %w", err)
	}

	rooms := make([]models.Room, 0, len(resp.Rooms))
	for _, dto := range resp.Rooms {
		if err := dto.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
		rooms = append(rooms, dto.ToModel())
	}
	return rooms, nil
}

// CreateRoom создает номер и возвращает авторитетную запись с серверным ID
func (c *Client) CreateRoom(ctx context.Context, propertyID string, req api.CreateRoomRequest) (models.Room, error) {
	var dto api.RoomDTO
	path := fmt.Sprintf("/api/v1/properties/%s/rooms", url.PathEscape(propertyID))
	if err := c.doRequest(ctx, http.MethodPost, path, req, &dto); err != nil {
		return models.Room{}, fmt.Errorf("create room request failed: %w", err)
	}
	return validated(dto)
}

// UpdateRoom применяет patch к номеру
func (c *Client) UpdateRoom(ctx context.Context, id string, patch api.RoomPatch) (models.Room, error) {
	var dto api.RoomDTO
	path := "/api/v1/rooms/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodPatch, path, patch, &dto); err != nil {
		return models.Room{}, fmt.Errorf("update room request failed: %w", err)
	}
	return validated(dto)
}

// DeleteRoom помечает номер удаленным (soft delete)
func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	path := "/api/v1/rooms/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete room request failed: %w", err)
	}
	return nil
}

// RestoreRoom снимает пометку удаления
func (c *Client) RestoreRoom(ctx context.Context, id string) (models.Room, error) {
	var dto api.RoomDTO
	path := "/api/v1/rooms/" + url.PathEscape(id) + "/restore"
	if err := c.doRequest(ctx, http.MethodPost, path, nil, &dto); err != nil {
		return models.Room{}, fmt.Errorf("restore room request failed: %w", err)
	}
	return validated(dto)
}

// RecordHistory пишет запись в журнал аудита
func (c *Client) RecordHistory(ctx context.Context, actorID, entityID, action string) error {
	req := api.HistoryRequest{ActorID: actorID, EntityID: entityID, Action: action}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/history", req, nil); err != nil {
		return fmt.Errorf("record history request failed: %w", err)
	}
	return nil
}

// ListHistory возвращает журнал по номеру, новые записи первыми
func (c *Client) ListHistory(ctx context.Context, roomID string) ([]models.HistoryEntry, error) {
	var resp api.HistoryListResponse
	path := "/api/v1/rooms/" + url.PathEscape(roomID) + "/history"
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list history request failed: %w", err)
	}

	entries := make([]models.HistoryEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, models.HistoryEntry{
			CreatedAt: e.CreatedAt,
			ID:        e.ID,
			ActorID:   e.ActorID,
			EntityID:  e.EntityID,
			Action:    e.Action,
		})
	}
	return entries, nil
}

func validated(dto api.RoomDTO) (models.Room, error) {
	if err := dto.Validate(); err != nil {
		return models.Room{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return dto.ToModel(), nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokenSource != nil {
		token, err := c.tokenSource(ctx)
		if err != nil {
			return fmt.Errorf("failed to get access token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && (errResp.Message != "" || errResp.Error != "") {
			msg := errResp.Message
			if msg == "" {
				msg = errResp.Error
			}
			return &StatusError{Code: resp.StatusCode, Message: msg}
		}
		return &StatusError{Code: resp.StatusCode, Message: string(bytes.TrimSpace(respBody))}
	}

	if result == nil {
		return nil
	}

	// Строгое декодирование: незнакомые поля - это ошибка, а не молчаливое приведение
	dec := json.NewDecoder(bytes.NewReader(respBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", ErrInvalidResponse, err)
	}

	return nil
}
