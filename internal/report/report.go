package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jrh3k5/slp-utils/internal/slp"
	"github.com/jrh3k5/slp-utils/internal/token"
)

// csvHeader lists the columns written by WriteCSV.
var csvHeader = []string{"Address", "Label", "Token ID", "Symbol", "Balance"}

// Row is a single token balance held by an address.
type Row struct {
	Address string
	Label   string
	Balance *slp.Balance
	Details *token.Details // nil if the token's details are unknown
}

// Symbol returns the token's symbol, or an empty string if it is unknown.
func (r *Row) Symbol() string {
	if r.Details == nil {
		return ""
	}

	return r.Details.Symbol
}

// WriteCSV writes the given rows as CSV, preceded by a header row.
func WriteCSV(w io.Writer, rows []*Row) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Address,
			row.Label,
			row.Balance.TokenID,
			row.Symbol(),
			row.Balance.FormatAmount(),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write CSV record for token '%s': %w", row.Balance.TokenID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush CSV: %w", err)
	}

	return nil
}

// WriteText writes the given rows as human-readable lines.
func WriteText(w io.Writer, rows []*Row) error {
	for _, row := range rows {
		owner := row.Address
		if row.Label != "" {
			owner = fmt.Sprintf("%s (%s)", row.Label, row.Address)
		}

		tokenName := row.Balance.TokenID
		if symbol := row.Symbol(); symbol != "" {
			tokenName = fmt.Sprintf("%s [%s]", symbol, row.Balance.TokenID)
		}

		if _, err := fmt.Fprintf(w, "%s holds %s %s\n", owner, row.Balance.FormatAmount(), tokenName); err != nil {
			return fmt.Errorf("unable to write report line: %w", err)
		}
	}

	return nil
}
