package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	// Выполняем logout через authService
	if err := c.authService.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	// Снимок доски принадлежит сотруднику, который вышел
	if c.cache != nil {
		if err := c.cache.ClearRooms(ctx); err != nil {
			c.logger.Warn("failed to clear cached boards", "error", err)
		}
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")

	return nil
}
