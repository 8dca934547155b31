package domain

import (
	"context"

	"github.com/lumapay/luma/src/Infrastructure/notus"
)

// FiatAdapter is the port over the upstream fiat (PIX) resource.
type FiatAdapter interface {
	DepositQuote(ctx context.Context, in notus.DepositQuoteRequest) (*notus.FiatQuote, error)
	CreateDeposit(ctx context.Context, in notus.CreateDepositOrderRequest) (*notus.FiatDepositOrder, error)
	WithdrawQuote(ctx context.Context, in notus.WithdrawQuoteRequest) (*notus.FiatQuote, error)
	CreateWithdraw(ctx context.Context, in notus.CreateWithdrawOrderRequest) (*notus.FiatWithdrawOrder, error)
}

type FiatUseCase interface {
	DepositQuote(ctx context.Context, in notus.DepositQuoteRequest) (*notus.FiatQuote, error)
	CreateDeposit(ctx context.Context, in notus.CreateDepositOrderRequest) (*notus.FiatDepositOrder, error)
	WithdrawQuote(ctx context.Context, in notus.WithdrawQuoteRequest) (*notus.FiatQuote, error)
	CreateWithdraw(ctx context.Context, in notus.CreateWithdrawOrderRequest) (*notus.FiatWithdrawOrder, error)
}
