package client

import (
	"context"
	"fmt"

	"github.com/jrh3k5/slp-utils/internal/slp"
)

// BalancesForAddress lists the balance of every token held by the given address.
func (c *Client) BalancesForAddress(ctx context.Context, address string) ([]*slp.Balance, error) {
	if err := slp.ValidateAddress(address); err != nil {
		return nil, err
	}

	var balances []*slp.Balance
	if err := c.getJSON(ctx, c.network, &balances, "slp", "balancesForAddress", address); err != nil {
		return nil, fmt.Errorf("failed to get balances for address '%s': %w", address, err)
	}

	return balances, nil
}

// Balance retrieves the balance of a single token held by the given address.
func (c *Client) Balance(ctx context.Context, address string, tokenID string) (*slp.Balance, error) {
	if err := slp.ValidateAddress(address); err != nil {
		return nil, err
	}

	if err := slp.ValidateTokenID(tokenID); err != nil {
		return nil, err
	}

	var balance slp.Balance
	if err := c.getJSON(ctx, c.network, &balance, "slp", "balance", address, tokenID); err != nil {
		return nil, fmt.Errorf(
			"failed to get balance of token '%s' for address '%s': %w",
			tokenID,
			address,
			err,
		)
	}

	return &balance, nil
}

// BalancesForToken lists every address holding the token with the given ID.
func (c *Client) BalancesForToken(ctx context.Context, tokenID string) ([]*slp.TokenHolder, error) {
	if err := slp.ValidateTokenID(tokenID); err != nil {
		return nil, err
	}

	var holders []*slp.TokenHolder
	if err := c.getJSON(ctx, c.network, &holders, "slp", "balancesForToken", tokenID); err != nil {
		return nil, fmt.Errorf("failed to get holders of token '%s': %w", tokenID, err)
	}

	return holders, nil
}
