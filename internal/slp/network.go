package slp

import (
	"errors"
	"fmt"
	"strings"
)

// Network identifies the chain a request is made against.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// ErrUnknownNetwork is returned when a network name is not recognized.
var ErrUnknownNetwork = errors.New("unknown network")

// ParseNetwork resolves a network name. An empty name resolves to mainnet.
func ParseNetwork(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(Mainnet):
		return Mainnet, nil
	case string(Testnet):
		return Testnet, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
}
