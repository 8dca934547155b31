package adapter

import (
	"context"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/swap/domain"
)

var _ domain.CryptoAdapter = (*NotusAdapter)(nil)

// NotusAdapter binds the crypto port to the notus client.
type NotusAdapter struct {
	client *notus.Client
}

func NewNotusAdapter(client *notus.Client) *NotusAdapter {
	return &NotusAdapter{client: client}
}

func (a *NotusAdapter) Chains(ctx context.Context) ([]notus.Chain, error) {
	return a.client.ListChains(ctx)
}

func (a *NotusAdapter) Tokens(ctx context.Context, chainID int64) ([]notus.Token, error) {
	return a.client.ListTokens(ctx, chainID)
}

func (a *NotusAdapter) TransferQuote(ctx context.Context, in notus.TransferQuoteRequest) (*notus.Quote, error) {
	return a.client.CreateTransferQuote(ctx, in)
}

func (a *NotusAdapter) SwapQuote(ctx context.Context, in notus.SwapQuoteRequest) (*notus.Quote, error) {
	return a.client.CreateSwapQuote(ctx, in)
}

func (a *NotusAdapter) Execute(ctx context.Context, in notus.ExecuteUserOpRequest) (*notus.UserOperation, error) {
	return a.client.ExecuteUserOperation(ctx, in)
}
