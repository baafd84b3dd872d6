package watchlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jrh3k5/slp-utils/internal/slp"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of addresses scanned at once by default.
const DefaultConcurrency = 4

// BalanceFetcher retrieves the token balances held by an address.
type BalanceFetcher interface {
	BalancesForAddress(ctx context.Context, address string) ([]*slp.Balance, error)
}

// AddressBalances holds the balances retrieved for a watched address.
type AddressBalances struct {
	WatchedAddress

	Balances []*slp.Balance
}

// Scan fetches the balances of every address in the watchlist, fetching up to concurrency addresses at once.
// The results are in watchlist order. The first failure cancels the remaining fetches.
func Scan(
	ctx context.Context,
	fetcher BalanceFetcher,
	watchlist *Watchlist,
	concurrency int,
) ([]*AddressBalances, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	addresses := watchlist.GetAddresses()
	results := make([]*AddressBalances, len(addresses))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, watched := range addresses {
		group.Go(func() error {
			balances, err := fetcher.BalancesForAddress(groupCtx, watched.Address)
			if err != nil {
				return fmt.Errorf("scan address '%s': %w", watched.Address, err)
			}

			slog.DebugContext(
				groupCtx,
				fmt.Sprintf("Retrieved %d balance(s) for '%s'", len(balances), watched.Address),
			)

			results[i] = &AddressBalances{
				WatchedAddress: watched,
				Balances:       balances,
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
