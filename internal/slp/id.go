package slp

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// idHexLength is the length of a hex-encoded 32-byte transaction hash.
const idHexLength = 64

var (
	// ErrInvalidTokenID is returned when a token ID is not a 64-character hex string.
	ErrInvalidTokenID = errors.New("invalid token ID")
	// ErrInvalidTxid is returned when a transaction ID is not a 64-character hex string.
	ErrInvalidTxid = errors.New("invalid txid")
)

// ValidateTokenID checks that the given token ID is a hex-encoded 32-byte hash.
func ValidateTokenID(tokenID string) error {
	if !isHexHash(tokenID) {
		return fmt.Errorf("%w: %q", ErrInvalidTokenID, tokenID)
	}

	return nil
}

// ValidateTxid checks that the given transaction ID is a hex-encoded 32-byte hash.
func ValidateTxid(txid string) error {
	if !isHexHash(txid) {
		return fmt.Errorf("%w: %q", ErrInvalidTxid, txid)
	}

	return nil
}

func isHexHash(s string) bool {
	if len(s) != idHexLength {
		return false
	}

	_, err := hex.DecodeString(s)

	return err == nil
}
