package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/gophotel/internal/client/board"
	"github.com/iudanet/gophotel/internal/models"
)

const addUsage = "Usage: add <room> <floor> [standard|double|suite]"

// runAdd добавляет номер на доску; серверный ID приходит позже
func (c *Cli) runAdd(ctx context.Context, b *board.Board, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. %s", addUsage)
	}

	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid room number %q. %s", args[0], addUsage)
	}
	floor, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid floor %q. %s", args[1], addUsage)
	}
	kind := models.RoomKindStandard
	if len(args) > 2 {
		kind = args[2]
	}

	p, err := b.AddRoom(ctx, number, floor, kind)
	if err != nil {
		return err
	}

	c.io.Printf("Adding room %d (%s, floor %d)...\n", number, kind, floor)
	c.printUndoHint(p)
	return nil
}
