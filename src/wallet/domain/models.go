package domain

import (
	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/shopspring/decimal"
)

// Default account-abstraction factory and salt used when deriving a smart
// wallet from an EOA. Every user gets the same deterministic derivation.
const (
	DefaultFactory = "0x0000000000400CdFef5E2714E63d8040b700BC24"
	DefaultSalt    = "0"
)

// Portfolio is the read-only balance snapshot with the locally computed total.
// TotalValueUSD is a decimal sum of the tokens' balanceUsd values; the upstream
// API provides no total of its own.
type Portfolio struct {
	Tokens        []notus.Token   `json:"tokens"`
	TotalValueUSD decimal.Decimal `json:"totalValueUsd"`
}
