package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophotel/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	// Session при необходимости обновляет access token
	session, err := c.authService.Session(ctx)
	if errors.Is(err, auth.ErrNotLoggedIn) {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'gophotel login' to authenticate.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	expiresAt := time.Unix(session.ExpiresAt, 0)
	remaining := expiresAt.Sub(c.clock.Now())

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Printf("User ID: %s\n", session.UserID)
	c.io.Printf("Token expires: %s\n", expiresAt.UTC().Format(time.RFC3339))
	if remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	}

	return nil
}
