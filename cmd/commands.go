package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jrh3k5/slp-utils/internal/amount"
	ctsio "github.com/jrh3k5/slp-utils/internal/io"
	"github.com/jrh3k5/slp-utils/internal/report"
	"github.com/jrh3k5/slp-utils/internal/slp"
	"github.com/jrh3k5/slp-utils/internal/token"
	"github.com/jrh3k5/slp-utils/internal/watchlist"
	"golang.org/x/sync/errgroup"
)

const (
	formatText = "text"
	formatCSV  = "csv"
)

// input is a flag that interactive mode prompts for.
type input struct {
	flag     string
	label    string
	optional bool
}

type command struct {
	name        string
	description string
	inputs      []input
	run         func(ctx context.Context, a *app, args []string) error
}

var commands = []*command{
	{
		name:        "list",
		description: "List tokens, or show a single token",
		inputs:      []input{{flag: "token-id", label: "Token ID (blank to list all)", optional: true}},
		run:         listTokens,
	},
	{
		name:        "balances",
		description: "Show every token balance held by an address",
		inputs:      []input{{flag: "address", label: "Address"}},
		run:         showAddressBalances,
	},
	{
		name:        "balance",
		description: "Show the balance of one token held by an address",
		inputs:      []input{{flag: "address", label: "Address"}, {flag: "token-id", label: "Token ID"}},
		run:         showBalance,
	},
	{
		name:        "validate",
		description: "Check whether transactions are valid SLP transactions",
		inputs: []input{
			{flag: "txid", label: "Transaction ID(s), comma-separated"},
			{flag: "network", label: "Network (blank for the configured network)", optional: true},
		},
		run: validateTransactions,
	},
	{
		name:        "stats",
		description: "Show the statistics of a token",
		inputs:      []input{{flag: "token-id", label: "Token ID"}},
		run:         showTokenStats,
	},
	{
		name:        "holders",
		description: "Show the addresses holding a token",
		inputs:      []input{{flag: "token-id", label: "Token ID"}},
		run:         showTokenHolders,
	},
	{
		name:        "watch",
		description: "Show the balances of every address in a watchlist",
		inputs: []input{
			{flag: "watchlist", label: "Watchlist file"},
			{flag: "min-balance", label: "Minimum balance (blank for none)", optional: true},
		},
		run: scanWatchlist,
	},
	{
		name:        "watch-add",
		description: "Add an address to a watchlist",
		inputs: []input{
			{flag: "watchlist", label: "Watchlist file"},
			{flag: "address", label: "Address"},
			{flag: "label", label: "Label", optional: true},
		},
		run: addToWatchlist,
	},
}

func findCommand(name string) (*command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}

	return nil, false
}

func commandNames() []string {
	names := make([]string, len(commands))
	for i, cmd := range commands {
		names[i] = cmd.name
	}

	return names
}

func listTokens(ctx context.Context, a *app, args []string) error {
	if tokenID, hasTokenID := flagValue(args, "token-id"); hasTokenID && tokenID != "" {
		slpToken, err := a.client.GetToken(ctx, tokenID)
		if err != nil {
			return fmt.Errorf("failed to retrieve token '%s': %w", tokenID, err)
		}

		return writeToken(a, slpToken)
	}

	tokens, err := a.client.ListTokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tokens: %w", err)
	}

	slog.DebugContext(ctx, fmt.Sprintf("Retrieved %d tokens", len(tokens)))

	for _, slpToken := range tokens {
		if _, err := fmt.Fprintf(a.out, "%s\t%s\t%s\n", slpToken.ID, slpToken.Symbol, slpToken.Name); err != nil {
			return fmt.Errorf("failed to write token: %w", err)
		}
	}

	return nil
}

func writeToken(a *app, slpToken *slp.Token) error {
	createdAt := slpToken.Timestamp
	if parsed, err := slpToken.CreatedAt(); err == nil {
		createdAt = parsed.Format("2006-01-02 15:04:05 MST")
	}

	_, err := fmt.Fprintf(
		a.out,
		"ID:            %s\nName:          %s\nSymbol:        %s\nDecimals:      %d\nCreated:       %s\nInitial qty:   %s\nDocument URI:  %s\nDocument hash: %s\n",
		slpToken.ID,
		slpToken.Name,
		slpToken.Symbol,
		slpToken.Decimals,
		createdAt,
		amount.Format(slpToken.InitialTokenQty, slpToken.Decimals),
		slpToken.DocumentURI,
		slpToken.DocumentHash,
	)
	if err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}

	return nil
}

func showAddressBalances(ctx context.Context, a *app, args []string) error {
	address, err := requiredFlag(args, "address")
	if err != nil {
		return err
	}

	balances, err := a.client.BalancesForAddress(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to retrieve balances for address '%s': %w", address, err)
	}

	rows := make([]*report.Row, 0, len(balances))
	for _, balance := range balances {
		rows = append(rows, &report.Row{Address: address, Balance: balance})
	}

	return writeRows(ctx, a, args, rows)
}

func showBalance(ctx context.Context, a *app, args []string) error {
	address, err := requiredFlag(args, "address")
	if err != nil {
		return err
	}

	tokenID, err := requiredFlag(args, "token-id")
	if err != nil {
		return err
	}

	balance, err := a.client.Balance(ctx, address, tokenID)
	if err != nil {
		return fmt.Errorf("failed to retrieve balance of token '%s' for address '%s': %w", tokenID, address, err)
	}

	return writeRows(ctx, a, args, []*report.Row{{Address: address, Balance: balance}})
}

func validateTransactions(ctx context.Context, a *app, args []string) error {
	txidArg, err := requiredFlag(args, "txid")
	if err != nil {
		return err
	}

	network := a.client.Network()
	if networkName, hasNetwork := flagValue(args, "network"); hasNetwork && networkName != "" {
		network, err = slp.ParseNetwork(networkName)
		if err != nil {
			return err
		}
	}

	var txids []string
	for _, txid := range strings.Split(txidArg, ",") {
		if trimmed := strings.TrimSpace(txid); trimmed != "" {
			txids = append(txids, trimmed)
		}
	}

	if len(txids) == 1 {
		valid, err := a.client.ValidateTxid(ctx, txids[0], network)
		if err != nil {
			return fmt.Errorf("failed to validate transaction '%s': %w", txids[0], err)
		}

		return writeValidation(a, &slp.ValidationResult{Txid: txids[0], Valid: valid})
	}

	results, err := a.client.ValidateTxids(ctx, network, txids...)
	if err != nil {
		return fmt.Errorf("failed to validate %d transactions: %w", len(txids), err)
	}

	for _, result := range results {
		if err := writeValidation(a, result); err != nil {
			return err
		}
	}

	return nil
}

func writeValidation(a *app, result *slp.ValidationResult) error {
	verdict := "valid"
	if !result.Valid {
		verdict = "invalid"
		if result.InvalidReason != "" {
			verdict += " (" + result.InvalidReason + ")"
		}
	}

	if _, err := fmt.Fprintf(a.out, "%s: %s\n", result.Txid, verdict); err != nil {
		return fmt.Errorf("failed to write validation result: %w", err)
	}

	return nil
}

func showTokenStats(ctx context.Context, a *app, args []string) error {
	tokenID, err := requiredFlag(args, "token-id")
	if err != nil {
		return err
	}

	stats, err := a.client.TokenStats(ctx, tokenID)
	if err != nil {
		return fmt.Errorf("failed to retrieve statistics of token '%s': %w", tokenID, err)
	}

	if err := writeToken(a, &stats.Token); err != nil {
		return err
	}

	_, err = fmt.Fprintf(
		a.out,
		"Minted:        %s\nBurned:        %s\nCirculating:   %s\nHolders:       %d\nTransactions:  %d\nBaton status:  %s\n",
		amount.Format(stats.TotalMinted, stats.Decimals),
		amount.Format(stats.TotalBurned, stats.Decimals),
		amount.Format(stats.CirculatingSupply, stats.Decimals),
		stats.ValidAddresses,
		stats.TxnsSinceGenesis,
		stats.MintingBatonStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to write token statistics: %w", err)
	}

	return nil
}

func showTokenHolders(ctx context.Context, a *app, args []string) error {
	tokenID, err := requiredFlag(args, "token-id")
	if err != nil {
		return err
	}

	holders, err := a.client.BalancesForToken(ctx, tokenID)
	if err != nil {
		return fmt.Errorf("failed to retrieve holders of token '%s': %w", tokenID, err)
	}

	details, err := a.details.GetTokenDetails(ctx, tokenID)
	if err != nil {
		return fmt.Errorf("failed to retrieve details of token '%s': %w", tokenID, err)
	}

	rows := make([]*report.Row, 0, len(holders))
	for _, holder := range holders {
		decimalCount := 0
		if details != nil {
			decimalCount = details.Decimals
		} else if exponent := holder.Balance.Exponent(); exponent < 0 {
			decimalCount = int(-exponent)
		}

		rows = append(rows, &report.Row{
			Address: holder.SLPAddress,
			Balance: &slp.Balance{TokenID: holder.TokenID, Balance: holder.Balance, DecimalCount: decimalCount},
			Details: details,
		})
	}

	return writeReport(a, args, rows)
}

func scanWatchlist(ctx context.Context, a *app, args []string) error {
	watchlistFile, err := requiredFlag(args, "watchlist")
	if err != nil {
		return err
	}

	list, err := readWatchlist(watchlistFile)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, fmt.Sprintf("Scanning %d watched addresses", list.GetAddressCount()))

	scanned, err := watchlist.Scan(ctx, a.client, list, a.cfg.Concurrency)
	if err != nil {
		return fmt.Errorf("failed to scan watchlist: %w", err)
	}

	var rows []*report.Row
	for _, addressBalances := range scanned {
		for _, balance := range addressBalances.Balances {
			rows = append(rows, &report.Row{
				Address: addressBalances.Address,
				Label:   addressBalances.Label,
				Balance: balance,
			})
		}
	}

	if minBalanceArg, hasMinBalance := flagValue(args, "min-balance"); hasMinBalance && minBalanceArg != "" {
		minBalance, err := amount.Parse(minBalanceArg)
		if err != nil {
			return fmt.Errorf("invalid --min-balance: %w", err)
		}

		filtered := rows[:0]
		for _, row := range rows {
			if row.Balance.Balance.LessThan(minBalance) {
				slog.DebugContext(
					ctx,
					fmt.Sprintf(
						"balance of %s for token '%s' at address '%s' is less than the minimum (%s)",
						row.Balance.FormatAmount(),
						row.Balance.TokenID,
						row.Address,
						minBalance.String(),
					),
				)

				continue
			}

			filtered = append(filtered, row)
		}
		rows = filtered
	}

	return writeRows(ctx, a, args, rows)
}

func addToWatchlist(ctx context.Context, a *app, args []string) error {
	watchlistFile, err := requiredFlag(args, "watchlist")
	if err != nil {
		return err
	}

	address, err := requiredFlag(args, "address")
	if err != nil {
		return err
	}

	label, _ := flagValue(args, "label")

	exists, err := ctsio.FileExists(watchlistFile)
	if err != nil {
		return err
	}

	list := watchlist.NewWatchlist()
	if exists {
		list, err = readWatchlist(watchlistFile)
		if err != nil {
			return err
		}
	}

	added, err := list.AddAddress(address, label)
	if err != nil {
		return fmt.Errorf("failed to add address '%s' to watchlist: %w", address, err)
	}

	if !added {
		slog.InfoContext(ctx, fmt.Sprintf("Address '%s' is already watched", address))

		return nil
	}

	if err := ctsio.ReplaceFile(watchlistFile, func(w io.Writer) error {
		return watchlist.ToYAML(list, w)
	}); err != nil {
		return fmt.Errorf("failed to write watchlist file '%s': %w", watchlistFile, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Now watching %d addresses", list.GetAddressCount()))

	return nil
}

func readWatchlist(watchlistFile string) (*watchlist.Watchlist, error) {
	file, err := os.Open(watchlistFile) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to open watchlist file '%s': %w", watchlistFile, err)
	}
	defer func() { _ = file.Close() }()

	list, err := watchlist.FromYAML(ctsio.StripUTF8BOM(file))
	if err != nil {
		return nil, fmt.Errorf("failed to read watchlist file '%s': %w", watchlistFile, err)
	}

	return list, nil
}

// writeRows resolves the details of the rows' tokens and writes them in the format named by --format.
func writeRows(ctx context.Context, a *app, args []string, rows []*report.Row) error {
	if err := enrichRows(ctx, a.details, rows, a.cfg.Concurrency); err != nil {
		return err
	}

	return writeReport(a, args, rows)
}

func writeReport(a *app, args []string, rows []*report.Row) error {
	format, _ := flagValue(args, "format")
	switch strings.ToLower(format) {
	case "", formatText:
		return report.WriteText(a.out, rows)
	case formatCSV:
		return report.WriteCSV(a.out, rows)
	default:
		return fmt.Errorf("unsupported format '%s'; expected '%s' or '%s'", format, formatText, formatCSV)
	}
}

// enrichRows looks up the details of every distinct token in the rows.
func enrichRows(ctx context.Context, detailsService token.DetailsService, rows []*report.Row, concurrency int) error {
	tokenIDs := make(map[string]*token.Details)
	for _, row := range rows {
		tokenIDs[row.Balance.TokenID] = nil
	}

	if concurrency <= 0 {
		concurrency = watchlist.DefaultConcurrency
	}

	type lookup struct {
		tokenID string
		details *token.Details
	}

	results := make(chan lookup, len(tokenIDs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for tokenID := range tokenIDs {
		group.Go(func() error {
			details, err := detailsService.GetTokenDetails(groupCtx, tokenID)
			if err != nil {
				return fmt.Errorf("failed to retrieve details of token '%s': %w", tokenID, err)
			}

			results <- lookup{tokenID: tokenID, details: details}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}
	close(results)

	for result := range results {
		tokenIDs[result.tokenID] = result.details
	}

	for _, row := range rows {
		row.Details = tokenIDs[row.Balance.TokenID]
	}

	return nil
}

var errUserCanceled = errors.New("user canceled operation")
