package cli

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownCommand возвращается для неизвестной команды; main печатает справку
var ErrUnknownCommand = errors.New("unknown command")

// Run выполняет одну команду клиента
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "rooms":
		return c.runRooms(ctx, args)
	case "board":
		return c.runBoard(ctx, args)
	case "history":
		return c.runHistory(ctx, args)
	case "help":
		c.PrintUsage()
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}
