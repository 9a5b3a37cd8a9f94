package cli

import (
	"context"

	"github.com/iudanet/gophotel/internal/client/board"
)

// runDelete убирает номер с доски; на сервере это soft delete
func (c *Cli) runDelete(ctx context.Context, b *board.Board, args []string) error {
	room, err := roomArg(b, args)
	if err != nil {
		return err
	}

	p, err := b.DeleteRoom(ctx, room.ID)
	if err != nil {
		return err
	}

	c.io.Printf("Deleting room %d...\n", room.Number)
	c.printUndoHint(p)
	return nil
}
