package slp

import (
	"github.com/jrh3k5/slp-utils/internal/amount"
	"github.com/shopspring/decimal"
)

// Balance is the amount of a single token held by an address.
type Balance struct {
	TokenID      string          `json:"tokenId"`      // the ID of the held token
	Balance      decimal.Decimal `json:"balance"`      // the amount held, expressed in whole tokens
	DecimalCount int             `json:"decimalCount"` // the number of decimal places the token supports
}

// FormatAmount renders the balance at the token's precision.
func (b *Balance) FormatAmount() string {
	return amount.Format(b.Balance, b.DecimalCount)
}

// TokenHolder is the balance of a token held by a particular address.
type TokenHolder struct {
	TokenID    string          `json:"tokenId"`
	Balance    decimal.Decimal `json:"balance"`
	SLPAddress string          `json:"slpAddress"`
}
