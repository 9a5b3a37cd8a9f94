// Package server собирает HTTP API сервера: маршруты, middleware и handlers.
package server

import (
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/gophotel/internal/metrics"
	"github.com/iudanet/gophotel/internal/server/handlers"
	"github.com/iudanet/gophotel/internal/server/middleware"
	"github.com/iudanet/gophotel/internal/server/storage"
)

// Deps зависимости роутера
type Deps struct {
	Users   storage.UserStorage
	Tokens  storage.TokenStorage
	Rooms   storage.RoomStorage
	History storage.HistoryStorage
	// DB для health check, может быть nil
	DB    handlers.Pinger
	Clock clockwork.Clock
	// Recorder и MetricsHandler необязательны
	Recorder       *metrics.HTTPRecorder
	MetricsHandler http.Handler
	// AuthLimiter ограничивает запросы к /auth, nil отключает лимит
	AuthLimiter *middleware.RateLimiter
	Logger      *slog.Logger
	Version     string
	JWT         handlers.JWTConfig
}

// NewRouter возвращает корневой handler API
func NewRouter(d Deps) http.Handler {
	if d.Clock == nil {
		d.Clock = clockwork.NewRealClock()
	}
	if d.JWT.Clock == nil {
		d.JWT.Clock = d.Clock
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	authHandler := handlers.NewAuthHandler(d.Logger, d.Users, d.Tokens, d.JWT)
	roomHandler := handlers.NewRoomHandler(d.Logger, d.Rooms, d.Clock)
	historyHandler := handlers.NewHistoryHandler(d.Logger, d.History, d.Clock)
	healthHandler := handlers.NewHealthHandler(d.Logger, d.DB, d.Version)

	requireAuth := middleware.AuthMiddleware(d.Logger, d.JWT)
	limited := func(h http.HandlerFunc) http.Handler { return h }
	if d.AuthLimiter != nil {
		rl := middleware.RateLimitMiddleware(d.AuthLimiter, d.Logger)
		limited = func(h http.HandlerFunc) http.Handler { return rl(h) }
	}
	protected := func(h http.HandlerFunc) http.Handler { return requireAuth(h) }

	mux := http.NewServeMux()

	// Публичные маршруты
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.Handle("POST /api/v1/auth/register", limited(authHandler.Register))
	mux.Handle("POST /api/v1/auth/login", limited(authHandler.Login))
	mux.Handle("POST /api/v1/auth/refresh", limited(authHandler.Refresh))
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)

	// Доска номеров
	mux.Handle("GET /api/v1/properties/{property}/rooms", protected(roomHandler.List))
	mux.Handle("POST /api/v1/properties/{property}/rooms", protected(roomHandler.Create))
	mux.Handle("PATCH /api/v1/rooms/{id}", protected(roomHandler.Patch))
	mux.Handle("DELETE /api/v1/rooms/{id}", protected(roomHandler.Delete))
	mux.Handle("POST /api/v1/rooms/{id}/restore", protected(roomHandler.Restore))

	// Журнал изменений
	mux.Handle("GET /api/v1/rooms/{id}/history", protected(historyHandler.List))
	mux.Handle("POST /api/v1/history", protected(historyHandler.Record))

	if d.MetricsHandler != nil {
		mux.Handle("GET /metrics", d.MetricsHandler)
	}

	// Порядок снаружи внутрь: метрики, логи, recovery, mux
	var h http.Handler = mux
	h = middleware.RecoveryMiddleware(d.Logger)(h)
	h = middleware.LoggingWithSkip(d.Logger, []string{"/api/v1/health", "/metrics"})(h)
	if d.Recorder != nil {
		h = middleware.MetricsMiddleware(d.Recorder)(h)
	}

	return h
}
