package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/gophotel/internal/server/storage"
)

// RunTokenCleanup удаляет истекшие refresh токены каждые interval, пока ctx жив
func RunTokenCleanup(ctx context.Context, tokens storage.TokenStorage, clock clockwork.Clock, interval time.Duration, logger *slog.Logger) {
	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			removed, err := tokens.DeleteExpiredTokens(ctx, clock.Now())
			if err != nil {
				logger.ErrorContext(ctx, "failed to delete expired refresh tokens", slog.Any("error", err))
				continue
			}
			if removed > 0 {
				logger.InfoContext(ctx, "expired refresh tokens removed", slog.Int("count", removed))
			}
		}
	}
}
