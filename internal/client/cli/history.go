package cli

import (
	"context"
	"fmt"
	"text/template"

	"github.com/iudanet/gophotel/internal/models"
)

var historyTmpl = template.Must(template.New("history").Parse(historyTemplate))

func (c *Cli) runHistory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing room ID. Usage: gophotel history <room-id>")
	}
	roomID := args[0]

	entries, err := c.backend.ListHistory(ctx, roomID)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}

	data := struct {
		RoomID  string
		Entries []models.HistoryEntry
	}{
		RoomID:  roomID,
		Entries: entries,
	}
	if err := historyTmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render history: %w", err)
	}
	return nil
}
