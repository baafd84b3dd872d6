package token

// Details describes the details of a token.
type Details struct {
	ID       string // the token ID
	Name     string // the name of the token, e.g., "NAKAMOTO"
	Symbol   string // the ticker symbol of the token
	Decimals int    // the power of ten to use when representing the "whole" unit of the token from its base value
}
