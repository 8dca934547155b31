package adapter

import (
	"context"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/fiat/domain"
)

var _ domain.FiatAdapter = (*NotusAdapter)(nil)

// NotusAdapter binds the fiat port to the notus client.
type NotusAdapter struct {
	client *notus.Client
}

func NewNotusAdapter(client *notus.Client) *NotusAdapter {
	return &NotusAdapter{client: client}
}

func (a *NotusAdapter) DepositQuote(ctx context.Context, in notus.DepositQuoteRequest) (*notus.FiatQuote, error) {
	return a.client.CreateDepositQuote(ctx, in)
}

func (a *NotusAdapter) CreateDeposit(ctx context.Context, in notus.CreateDepositOrderRequest) (*notus.FiatDepositOrder, error) {
	return a.client.CreateDepositOrder(ctx, in)
}

func (a *NotusAdapter) WithdrawQuote(ctx context.Context, in notus.WithdrawQuoteRequest) (*notus.FiatQuote, error) {
	return a.client.CreateWithdrawQuote(ctx, in)
}

func (a *NotusAdapter) CreateWithdraw(ctx context.Context, in notus.CreateWithdrawOrderRequest) (*notus.FiatWithdrawOrder, error) {
	return a.client.CreateWithdrawOrder(ctx, in)
}
