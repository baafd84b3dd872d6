package watchlist

import (
	"errors"
	"fmt"
	"io"

	"github.com/jrh3k5/slp-utils/internal/slp"
	"go.yaml.in/yaml/v3"
)

// Watchlist represents a list of addresses whose token balances are tracked.
type Watchlist struct {
	addresses []WatchedAddress // slice of watched addresses
}

// WatchedAddress represents a watched address.
type WatchedAddress struct {
	Address string // the address in the canonical form returned by slp.NormalizeAddress
	Label   string // a human-readable label for the address
}

// NewWatchlist creates an empty watchlist.
func NewWatchlist() *Watchlist {
	return &Watchlist{}
}

// AddAddress adds the given address to the watchlist.
// It returns false if the address is already watched, in this or any other notation.
func (w *Watchlist) AddAddress(address string, label string) (bool, error) {
	normalized, err := slp.NormalizeAddress(address)
	if err != nil {
		return false, err
	}

	if w.contains(normalized) {
		return false, nil
	}

	w.addresses = append(w.addresses, WatchedAddress{
		Address: normalized,
		Label:   label,
	})

	return true, nil
}

// Contains reports whether the given address is watched.
func (w *Watchlist) Contains(address string) bool {
	normalized, err := slp.NormalizeAddress(address)
	if err != nil {
		return false
	}

	return w.contains(normalized)
}

func (w *Watchlist) contains(normalized string) bool {
	for _, watched := range w.addresses {
		if watched.Address == normalized {
			return true
		}
	}

	return false
}

// GetAddresses returns a copy of the watched addresses in the order they were added.
func (w *Watchlist) GetAddresses() []WatchedAddress {
	addresses := make([]WatchedAddress, len(w.addresses))
	copy(addresses, w.addresses)

	return addresses
}

// GetAddressCount returns the number of watched addresses.
func (w *Watchlist) GetAddressCount() int {
	return len(w.addresses)
}

// FromYAML reads a Watchlist from a YAML representation.
func FromYAML(reader io.Reader) (*Watchlist, error) {
	var ymlList yamlWatchlist
	decoder := yaml.NewDecoder(reader)
	if err := decoder.Decode(&ymlList); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode watchlist from YAML: %w", err)
	}

	watchlist := NewWatchlist()
	for _, ymlAddress := range ymlList.WatchedAddresses {
		if _, err := watchlist.AddAddress(ymlAddress.Address, ymlAddress.Label); err != nil {
			return nil, fmt.Errorf("invalid watchlist entry: %w", err)
		}
	}

	return watchlist, nil
}

// ToYAML writes a Watchlist to a YAML representation.
func ToYAML(watchlist *Watchlist, writer io.Writer) error {
	ymlList := yamlWatchlist{
		WatchedAddresses: make([]yamlWatchedAddress, 0, len(watchlist.addresses)),
	}
	for _, watched := range watchlist.addresses {
		ymlList.WatchedAddresses = append(ymlList.WatchedAddresses, yamlWatchedAddress{
			Address: watched.Address,
			Label:   watched.Label,
		})
	}

	encoder := yaml.NewEncoder(writer)
	defer func() { _ = encoder.Close() }()

	if err := encoder.Encode(&ymlList); err != nil {
		return fmt.Errorf("failed to encode watchlist to YAML: %w", err)
	}

	return nil
}

type yamlWatchedAddress struct {
	Address string `yaml:"address"`
	Label   string `yaml:"label,omitempty"`
}

type yamlWatchlist struct {
	WatchedAddresses []yamlWatchedAddress `yaml:"watched_addresses"`
}
