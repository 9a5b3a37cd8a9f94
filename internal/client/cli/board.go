package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/iudanet/gophotel/internal/client/board"
	"github.com/iudanet/gophotel/internal/models"
	"github.com/iudanet/gophotel/internal/optimistic"
)

var boardHelpTmpl = template.Must(template.New("board-help").Parse(boardHelpTemplate))

// boardSession - состояние интерактивной доски между командами
type boardSession struct {
	board     *board.Board
	lastToast string
	stale     bool
}

func (c *Cli) runBoard(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing property. Usage: gophotel board <property>")
	}

	// Добавлять и удалять номера может только вошедший сотрудник
	session, err := c.authService.Session(ctx)
	if err != nil {
		return err
	}

	b, err := c.newBoard(args[0], session.UserID)
	if err != nil {
		return err
	}
	defer c.drain(b)

	s := &boardSession{board: b}
	if s.stale, err = c.refresh(ctx, b); err != nil {
		return err
	}
	if err := c.renderBoard(b, s.stale); err != nil {
		return err
	}
	c.io.Println("Type 'help' for commands.")

	for {
		c.printNotices(s)

		line, err := c.io.ReadInput(b.PropertyID() + "> ")
		if errors.Is(err, io.EOF) {
			c.io.Println()
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		quit, err := c.boardCommand(ctx, s, fields[0], fields[1:])
		if err != nil {
			c.io.Printf("Error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func (c *Cli) boardCommand(ctx context.Context, s *boardSession, command string, args []string) (bool, error) {
	b := s.board
	switch command {
	case "list", "ls":
		return false, c.renderBoard(b, s.stale)
	case "occupy":
		return false, c.setOccupancy(ctx, b, args, models.OccupancyOccupied)
	case "vacate":
		return false, c.setOccupancy(ctx, b, args, models.OccupancyVacant)
	case "dirty":
		return false, c.setCleaning(ctx, b, args, models.CleaningDirty)
	case "cleaning":
		return false, c.setCleaning(ctx, b, args, models.CleaningInProgress)
	case "clean":
		return false, c.setCleaning(ctx, b, args, models.CleaningClean)
	case "inspect":
		return false, c.setCleaning(ctx, b, args, models.CleaningInspected)
	case "flag":
		return false, c.toggleFlag(ctx, b, args)
	case "add":
		return false, c.runAdd(ctx, b, args)
	case "delete", "rm":
		return false, c.runDelete(ctx, b, args)
	case "undo":
		if b.Undo() {
			c.io.Println("Undone.")
		} else {
			c.io.Println("Nothing to undo.")
		}
		return false, nil
	case "wait":
		c.drain(b)
		c.io.Println("All requests finished.")
		return false, nil
	case "dismiss":
		b.DismissAlert()
		return false, nil
	case "refresh":
		stale, err := c.refresh(ctx, b)
		if err != nil {
			return false, err
		}
		s.stale = stale
		return false, c.renderBoard(b, s.stale)
	case "help":
		return false, boardHelpTmpl.Execute(c.io, nil)
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown board command %q, type 'help'", command)
	}
}

func (c *Cli) setOccupancy(ctx context.Context, b *board.Board, args []string, status models.OccupancyStatus) error {
	room, err := roomArg(b, args)
	if err != nil {
		return err
	}
	if _, err := b.SetOccupancy(ctx, room.ID, status); err != nil {
		return err
	}
	c.io.Printf("Room %d: %s\n", room.Number, status)
	return nil
}

func (c *Cli) setCleaning(ctx context.Context, b *board.Board, args []string, status models.CleaningStatus) error {
	room, err := roomArg(b, args)
	if err != nil {
		return err
	}
	if _, err := b.SetCleaning(ctx, room.ID, status); err != nil {
		return err
	}
	c.io.Printf("Room %d: %s\n", room.Number, status)
	return nil
}

func (c *Cli) toggleFlag(ctx context.Context, b *board.Board, args []string) error {
	room, err := roomArg(b, args)
	if err != nil {
		return err
	}
	if _, err := b.ToggleFlag(ctx, room.ID); err != nil {
		return err
	}
	if room.Flagged {
		c.io.Printf("Room %d: flag cleared\n", room.Number)
	} else {
		c.io.Printf("Room %d: flagged\n", room.Number)
	}
	return nil
}

// printNotices выводит ошибку и новые уведомления перед приглашением
func (c *Cli) printNotices(s *boardSession) {
	if alert := s.board.Alert(); alert.Show {
		c.io.Printf("! %s (type 'dismiss' to hide)\n", alert.Message)
	}

	toast := s.board.Toast()
	if !toast.Show {
		s.lastToast = ""
		return
	}
	if toast.Message != s.lastToast {
		c.io.Printf("✓ %s\n", toast.Message)
		s.lastToast = toast.Message
	}
}

func (c *Cli) printUndoHint(p *optimistic.Pending) {
	if u := p.Undo(); u != nil && u.Active() {
		c.io.Printf("Type 'undo' to revert (%s).\n", u.Label())
	}
}

// drain ждет незавершенные запросы, чтобы откаты и журнал не потерялись при выходе
func (c *Cli) drain(b *board.Board) {
	ctx, cancel := context.WithTimeout(context.Background(), c.drainTimeout)
	defer cancel()
	if err := b.Drain(ctx); err != nil {
		c.logger.Warn("board closed with requests in flight", "error", err)
	}
}

// roomArg находит номер на доске по первому аргументу
func roomArg(b *board.Board, args []string) (models.Room, error) {
	if len(args) == 0 {
		return models.Room{}, fmt.Errorf("missing room number")
	}
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return models.Room{}, fmt.Errorf("invalid room number %q", args[0])
	}
	room, ok := b.FindByNumber(number)
	if !ok {
		return models.Room{}, fmt.Errorf("%w: %d", board.ErrRoomNotFound, number)
	}
	return room, nil
}
