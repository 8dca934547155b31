package domain

import (
	"context"

	"github.com/lumapay/luma/src/Infrastructure/notus"
)

// CryptoAdapter is the port over the upstream crypto resource: quotes, user
// operation execution and the chain/token catalog.
type CryptoAdapter interface {
	Chains(ctx context.Context) ([]notus.Chain, error)
	Tokens(ctx context.Context, chainID int64) ([]notus.Token, error)
	TransferQuote(ctx context.Context, in notus.TransferQuoteRequest) (*notus.Quote, error)
	SwapQuote(ctx context.Context, in notus.SwapQuoteRequest) (*notus.Quote, error)
	Execute(ctx context.Context, in notus.ExecuteUserOpRequest) (*notus.UserOperation, error)
}

type SwapUseCase interface {
	Chains(ctx context.Context) ([]notus.Chain, error)
	Tokens(ctx context.Context, chainID int64) ([]notus.Token, error)
	TransferQuote(ctx context.Context, in notus.TransferQuoteRequest) (*notus.Quote, error)
	SwapQuote(ctx context.Context, in notus.SwapQuoteRequest) (*notus.Quote, error)
	Execute(ctx context.Context, in ExecuteRequest) (*notus.UserOperation, error)
}
