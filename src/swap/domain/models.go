package domain

import (
	"regexp"
	"time"
)

var addressRx = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// IsHexAddress reports whether s is a 0x-prefixed 20-byte hex address.
func IsHexAddress(s string) bool {
	return addressRx.MatchString(s)
}

// ExecuteRequest submits a signed user operation for a previously issued quote.
// ExpiresAt is the quote expiry echoed back by the caller; a stale quote is
// rejected before the network call.
type ExecuteRequest struct {
	QuoteID           string    `json:"quoteId"`
	UserOperationHash string    `json:"userOperationHash"`
	Signature         string    `json:"signature"`
	ExpiresAt         time.Time `json:"expiresAt"`
}
