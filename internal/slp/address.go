package slp

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

const (
	// PrefixSLP is the cashaddr prefix for SLP-aware addresses.
	PrefixSLP = "simpleledger"
	// PrefixBCH is the cashaddr prefix for plain Bitcoin Cash addresses.
	PrefixBCH = "bitcoincash"

	cashAddrCharset     = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	cashAddrChecksumLen = 8
	legacyChecksumLen   = 4
	legacyAddressLen    = 25
)

// ErrInvalidAddress is returned when an address is neither a valid cashaddr nor a valid legacy address.
var ErrInvalidAddress = errors.New("invalid address")

// ValidateAddress checks that the given address is a checksummed cashaddr
// (with a simpleledger or bitcoincash prefix, or no prefix at all) or a checksummed legacy base58 address.
func ValidateAddress(address string) error {
	_, err := NormalizeAddress(address)

	return err
}

// NormalizeAddress validates the given address and returns its canonical form.
// Cashaddrs are lower-cased and given the prefix their checksum was computed over,
// preferring simpleledger for bare payloads. Legacy addresses are case-sensitive and returned as given.
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", fmt.Errorf("%w: address is empty", ErrInvalidAddress)
	}

	prefix, payload, hasPrefix := strings.Cut(address, ":")
	if hasPrefix {
		if !isCashAddr(prefix, payload) {
			return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
		}

		return strings.ToLower(prefix) + ":" + strings.ToLower(payload), nil
	}

	for _, candidate := range []string{PrefixSLP, PrefixBCH} {
		if isCashAddr(candidate, address) {
			return candidate + ":" + strings.ToLower(address), nil
		}
	}

	if isLegacyAddress(address) {
		return address, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
}

func isCashAddr(prefix, payload string) bool {
	// cashaddr is case-insensitive but must not be mixed-case
	if payload != strings.ToLower(payload) && payload != strings.ToUpper(payload) {
		return false
	}

	prefix = strings.ToLower(prefix)
	payload = strings.ToLower(payload)

	if prefix != PrefixSLP && prefix != PrefixBCH {
		return false
	}

	if len(payload) <= cashAddrChecksumLen {
		return false
	}

	values := make([]byte, 0, len(prefix)+1+len(payload))
	for _, c := range []byte(prefix) {
		values = append(values, c&0x1f)
	}
	values = append(values, 0)

	for _, c := range []byte(payload) {
		idx := strings.IndexByte(cashAddrCharset, c)
		if idx < 0 {
			return false
		}
		values = append(values, byte(idx))
	}

	return cashAddrPolymod(values) == 0
}

// cashAddrPolymod computes the BCH checksum over 5-bit values.
func cashAddrPolymod(values []byte) uint64 {
	c := uint64(1)
	for _, d := range values {
		c0 := byte(c >> 35)
		c = ((c & 0x07ffffffff) << 5) ^ uint64(d)

		if c0&0x01 != 0 {
			c ^= 0x98f2bc8e61
		}
		if c0&0x02 != 0 {
			c ^= 0x79b76d99e2
		}
		if c0&0x04 != 0 {
			c ^= 0xf33e5fb3c4
		}
		if c0&0x08 != 0 {
			c ^= 0xae2eabe2a8
		}
		if c0&0x10 != 0 {
			c ^= 0x1e4f43e470
		}
	}

	return c ^ 1
}

func isLegacyAddress(address string) bool {
	decoded, err := base58.Decode(address)
	if err != nil || len(decoded) != legacyAddressLen {
		return false
	}

	body := decoded[:len(decoded)-legacyChecksumLen]
	checksum := decoded[len(decoded)-legacyChecksumLen:]

	first := sha256.Sum256(body)
	second := sha256.Sum256(first[:])

	return bytes.Equal(second[:legacyChecksumLen], checksum)
}
