package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jrh3k5/slp-utils/internal/slp"
)

type validateTxidRequest struct {
	Txids []string `json:"txids"`
}

// ValidateTxid reports whether the given transaction is a valid SLP transaction on the given network.
func (c *Client) ValidateTxid(ctx context.Context, txid string, network slp.Network) (bool, error) {
	results, err := c.ValidateTxids(ctx, network, txid)
	if err != nil {
		return false, err
	}

	for _, result := range results {
		if strings.EqualFold(result.Txid, txid) {
			return result.Valid, nil
		}
	}

	return false, fmt.Errorf("%w: %s", ErrNoValidationResult, txid)
}

// ValidateTxids validates the given transactions on the given network in a single request.
// Transactions the server has no result for are omitted from the returned slice.
func (c *Client) ValidateTxids(
	ctx context.Context,
	network slp.Network,
	txids ...string,
) ([]*slp.ValidationResult, error) {
	if len(txids) == 0 {
		return nil, errors.New("at least one txid is required")
	}

	// the server reports txids in lower case
	normalized := make([]string, len(txids))
	for i, txid := range txids {
		if err := slp.ValidateTxid(txid); err != nil {
			return nil, err
		}

		normalized[i] = strings.ToLower(txid)
	}

	var rawResults []*slp.ValidationResult
	if err := c.postJSON(
		ctx,
		network,
		validateTxidRequest{Txids: normalized},
		&rawResults,
		"slp",
		"validateTxid",
	); err != nil {
		return nil, fmt.Errorf("failed to validate %d txid(s) on %s: %w", len(txids), network, err)
	}

	results := make([]*slp.ValidationResult, 0, len(rawResults))
	for _, result := range rawResults {
		if result == nil {
			slog.DebugContext(ctx, "Validation response contains a null entry; skipping")

			continue
		}

		results = append(results, result)
	}

	return results, nil
}
