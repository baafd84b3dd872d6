package slp

// ValidationResult describes whether a transaction is a valid SLP transaction.
type ValidationResult struct {
	Txid          string `json:"txid"`
	Valid         bool   `json:"valid"`
	InvalidReason string `json:"invalidReason,omitempty"`
}
