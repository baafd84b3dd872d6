package slp

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// timestampLayouts are the layouts the REST API has used for token creation times.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

// Token describes the genesis record of an SLP token.
type Token struct {
	ID              string          `json:"id"`              // the token ID, which is the txid of the genesis transaction
	Timestamp       string          `json:"timestamp"`       // the creation time of the token as reported by the server
	Symbol          string          `json:"symbol"`          // the ticker symbol of the token
	Name            string          `json:"name"`            // the name of the token
	DocumentURI     string          `json:"documentUri"`     // the URI of the token's document, if any
	DocumentHash    string          `json:"documentHash"`    // the hash of the token's document, if any
	Decimals        int             `json:"decimals"`        // the number of decimal places the token supports
	InitialTokenQty decimal.Decimal `json:"initialTokenQty"` // the quantity minted in the genesis transaction
}

// CreatedAt parses the server-reported timestamp of the token.
func (t *Token) CreatedAt() (time.Time, error) {
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, t.Timestamp)
		if err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized token timestamp: %q", t.Timestamp)
}

// TokenStats extends a token's genesis record with its activity on chain.
type TokenStats struct {
	Token

	TotalMinted         decimal.Decimal `json:"totalMinted"`
	TotalBurned         decimal.Decimal `json:"totalBurned"`
	CirculatingSupply   decimal.Decimal `json:"circulatingSupply"`
	ValidAddresses      int64           `json:"validAddresses"`
	SatoshisLockedUp    int64           `json:"satoshisLockedUp"`
	TxnsSinceGenesis    int64           `json:"txnsSinceGenesis"`
	BlockCreated        int64           `json:"blockCreated"`
	BlockLastActiveSend int64           `json:"blockLastActiveSend"`
	BlockLastActiveMint int64           `json:"blockLastActiveMint"`
	MintingBatonStatus  string          `json:"mintingBatonStatus"`
}
