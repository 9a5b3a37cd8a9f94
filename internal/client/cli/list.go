package cli

import (
	"context"
	"errors"
	"fmt"
	"text/template"

	"github.com/iudanet/gophotel/internal/client/board"
	"github.com/iudanet/gophotel/internal/models"
	"github.com/iudanet/gophotel/internal/optimistic"
)

var boardTmpl = template.Must(template.New("board").Parse(boardTemplate))

// roomRow - строка доски для шаблона
type roomRow struct {
	models.Room
	Saving bool
}

type boardView struct {
	PropertyID string
	FetchedAt  string
	Rooms      []roomRow
	Vacant     int
	Dirty      int
	Stale      bool
}

func (c *Cli) runRooms(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing property. Usage: gophotel rooms <property>")
	}

	b, err := c.newBoard(args[0], "")
	if err != nil {
		return err
	}

	stale, err := c.refresh(ctx, b)
	if err != nil {
		return err
	}

	return c.renderBoard(b, stale)
}

// refresh загружает доску; stale=true, если показан снимок из кэша
func (c *Cli) refresh(ctx context.Context, b *board.Board) (bool, error) {
	err := b.Refresh(ctx)
	if errors.Is(err, board.ErrStale) {
		// Сообщение уже в alert доски, здесь только логируем
		c.logger.Debug("board loaded from cache", "error", err)
		return true, nil
	}
	return false, err
}

func (c *Cli) renderBoard(b *board.Board, stale bool) error {
	rooms := b.Rooms()
	view := boardView{
		PropertyID: b.PropertyID(),
		Stale:      stale,
		Rooms:      make([]roomRow, 0, len(rooms)),
	}
	if stale {
		view.FetchedAt = b.LastRefresh().Local().Format("2006-01-02 15:04")
	}

	for _, r := range rooms {
		view.Rooms = append(view.Rooms, roomRow{
			Room:   r,
			Saving: optimistic.IsLocalID(r.ID),
		})
		if r.Occupancy == models.OccupancyVacant {
			view.Vacant++
		}
		if r.Cleaning == models.CleaningDirty {
			view.Dirty++
		}
	}

	if err := boardTmpl.Execute(c.io, view); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}
	return nil
}
