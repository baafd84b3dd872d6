package token

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jrh3k5/slp-utils/internal/slp"
	"github.com/jrh3k5/slp-utils/internal/slp/client"
)

// DefaultCacheSize is the number of token details kept by an SLPDetailsService by default.
const DefaultCacheSize = 512

// TokenGetter retrieves the genesis record of a token.
type TokenGetter interface {
	GetToken(ctx context.Context, tokenID string) (*slp.Token, error)
}

// SLPDetailsService implements DetailsService by querying the SLP REST API.
// Token genesis records never change, so retrieved details are cached.
type SLPDetailsService struct {
	getter TokenGetter
	cache  *lru.Cache[string, *Details]
}

// NewSLPDetailsService returns a DetailsService that looks up tokens through the given getter,
// keeping up to cacheSize details in memory.
func NewSLPDetailsService(getter TokenGetter, cacheSize int) (*SLPDetailsService, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, *Details](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create token details cache: %w", err)
	}

	return &SLPDetailsService{getter: getter, cache: cache}, nil
}

// GetTokenDetails fetches the name, symbol and decimals of the given token.
// If the server does not know the token, it returns (nil, nil).
func (s *SLPDetailsService) GetTokenDetails(ctx context.Context, tokenID string) (*Details, error) {
	if cached, hasCached := s.cache.Get(tokenID); hasCached {
		return cached, nil
	}

	if s.getter == nil {
		return nil, errors.New("token getter is nil")
	}

	token, err := s.getter.GetToken(ctx, tokenID)
	if errors.Is(err, client.ErrTokenNotFound) {
		slog.DebugContext(
			ctx,
			fmt.Sprintf("Token '%s' is not known; returning nil for the token details", tokenID),
		)

		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("get token '%s': %w", tokenID, err)
	}

	details := &Details{
		ID:       token.ID,
		Name:     token.Name,
		Symbol:   token.Symbol,
		Decimals: token.Decimals,
	}
	s.cache.Add(tokenID, details)

	return details, nil
}
