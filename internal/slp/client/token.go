package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jrh3k5/slp-utils/internal/slp"
)

// notFoundID is the ID the server reports in place of a token it does not know.
const notFoundID = "not found"

// ListTokens lists all SLP tokens known to the server.
func (c *Client) ListTokens(ctx context.Context) ([]*slp.Token, error) {
	var tokens []*slp.Token
	if err := c.getJSON(ctx, c.network, &tokens, "slp", "list"); err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}

	return tokens, nil
}

// GetToken retrieves the genesis record of the token with the given ID.
// ErrTokenNotFound is returned if the server does not know the token.
func (c *Client) GetToken(ctx context.Context, tokenID string) (*slp.Token, error) {
	if err := slp.ValidateTokenID(tokenID); err != nil {
		return nil, err
	}

	var token slp.Token
	if err := c.getJSON(ctx, c.network, &token, "slp", "list", tokenID); err != nil {
		return nil, fmt.Errorf("failed to get token '%s': %w", tokenID, err)
	}

	if token.ID == notFoundID || token.ID == "" {
		slog.DebugContext(ctx, fmt.Sprintf("Server reports no token for ID '%s'", tokenID))

		return nil, fmt.Errorf("%w: %s", ErrTokenNotFound, tokenID)
	}

	return &token, nil
}

// TokenStats retrieves the genesis record of the token with the given ID along with its on-chain activity.
// ErrTokenNotFound is returned if the server does not know the token.
func (c *Client) TokenStats(ctx context.Context, tokenID string) (*slp.TokenStats, error) {
	if err := slp.ValidateTokenID(tokenID); err != nil {
		return nil, err
	}

	var stats slp.TokenStats
	if err := c.getJSON(ctx, c.network, &stats, "slp", "tokenStats", tokenID); err != nil {
		return nil, fmt.Errorf("failed to get stats for token '%s': %w", tokenID, err)
	}

	if stats.ID == notFoundID || stats.ID == "" {
		return nil, fmt.Errorf("%w: %s", ErrTokenNotFound, tokenID)
	}

	return &stats, nil
}
