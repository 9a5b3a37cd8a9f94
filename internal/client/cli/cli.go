package cli

import (
	"context"
	"log/slog"
	"text/template"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/gophotel/internal/client/auth"
	"github.com/iudanet/gophotel/internal/client/board"
	"github.com/iudanet/gophotel/internal/client/iocli"
	"github.com/iudanet/gophotel/internal/client/storage"
	"github.com/iudanet/gophotel/internal/models"
	"github.com/iudanet/gophotel/internal/optimistic"
)

//go:generate moq -out backend_mock.go . Backend

// Backend - удаленное хранилище номеров и журнала, подписанное токеном сессии
type Backend interface {
	board.RoomStore
	optimistic.HistoryLogger
	ListHistory(ctx context.Context, roomID string) ([]models.HistoryEntry, error)
}

// Options - зависимости CLI
type Options struct {
	IO          iocli.IO
	AuthService auth.Service
	Backend     Backend
	Cache       storage.RoomCache
	Recorder    optimistic.Recorder
	Clock       clockwork.Clock
	Logger      *slog.Logger
	// DrainTimeout сколько ждать незавершенные запросы при выходе с доски
	DrainTimeout time.Duration
}

type Cli struct {
	io           iocli.IO
	authService  auth.Service
	backend      Backend
	cache        storage.RoomCache
	recorder     optimistic.Recorder
	clock        clockwork.Clock
	logger       *slog.Logger
	drainTimeout time.Duration
}

func New(opts Options) *Cli {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.DrainTimeout <= 0 {
		opts.DrainTimeout = 10 * time.Second
	}
	return &Cli{
		io:           opts.IO,
		authService:  opts.AuthService,
		backend:      opts.Backend,
		cache:        opts.Cache,
		recorder:     opts.Recorder,
		clock:        opts.Clock,
		logger:       opts.Logger,
		drainTimeout: opts.DrainTimeout,
	}
}

// newBoard собирает доску объекта; actorID пустой, если сессии нет
func (c *Cli) newBoard(propertyID, actorID string) (*board.Board, error) {
	return board.New(board.Config{
		Store:      c.backend,
		Cache:      c.cache,
		History:    c.backend,
		Recorder:   c.recorder,
		Clock:      c.clock,
		Logger:     c.logger,
		PropertyID: propertyID,
		ActorID:    actorID,
	})
}

var usageTmpl = template.Must(template.New("usage").Parse(usageTemplate))

// PrintUsage печатает справку по командам
func (c *Cli) PrintUsage() {
	if err := usageTmpl.Execute(c.io, nil); err != nil {
		c.logger.Error("failed to render usage", "error", err)
	}
}
