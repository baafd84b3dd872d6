package token

import "context"

// DetailsService defines the interface for retrieving token details.
type DetailsService interface {
	// GetTokenDetails retrieves the token details for the given token ID.
	// If no details are found, it returns nil without an error.
	GetTokenDetails(ctx context.Context, tokenID string) (*Details, error)
}
