package usecase

import (
	"context"
	"errors"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/fiat/domain"
	"github.com/lumapay/luma/src/logger"
	"github.com/shopspring/decimal"
)

var _ domain.FiatUseCase = (*UseCase)(nil)

var (
	ErrBelowMinimum = errors.New("Minimum deposit amount is 10")
	ErrAboveMaximum = errors.New("Maximum deposit amount is 50000")
)

// Deposit and withdrawal bounds in the fiat currency, enforced here regardless
// of what the upstream API accepts.
var (
	minFiatAmount = decimal.NewFromInt(10)
	maxFiatAmount = decimal.NewFromInt(50000)
)

// individualNotFound is the upstream error id the API docs claim resolves
// itself: the individual is auto-created and a retry succeeds. That claim is
// not verified anywhere, so the error is logged and surfaced unchanged.
const individualNotFound = "INDIVIDUAL_NOT_FOUND"

type UseCase struct {
	fiat   domain.FiatAdapter
	logger *logger.Logger
}

func NewUseCase(fiat domain.FiatAdapter, logg *logger.Logger) *UseCase {
	return &UseCase{fiat: fiat, logger: logg}
}

func (u *UseCase) DepositQuote(ctx context.Context, in notus.DepositQuoteRequest) (*notus.FiatQuote, error) {
	if err := checkBounds(in.Amount); err != nil {
		return nil, err
	}
	q, err := u.fiat.DepositQuote(ctx, in)
	if err != nil {
		var apiErr *notus.APIError
		if errors.As(err, &apiErr) && apiErr.ID == individualNotFound {
			u.logger.Warnf("deposit quote: individual not found for wallet %s, upstream should create it on retry", in.WalletAddress)
		}
		return nil, err
	}
	return q, nil
}

func (u *UseCase) CreateDeposit(ctx context.Context, in notus.CreateDepositOrderRequest) (*notus.FiatDepositOrder, error) {
	return u.fiat.CreateDeposit(ctx, in)
}

func (u *UseCase) WithdrawQuote(ctx context.Context, in notus.WithdrawQuoteRequest) (*notus.FiatQuote, error) {
	return u.fiat.WithdrawQuote(ctx, in)
}

func (u *UseCase) CreateWithdraw(ctx context.Context, in notus.CreateWithdrawOrderRequest) (*notus.FiatWithdrawOrder, error) {
	return u.fiat.CreateWithdraw(ctx, in)
}

// checkBounds only rejects amounts it can parse; unparsable input falls
// through to the service validation, which owns that message.
func checkBounds(amount string) error {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil
	}
	if d.LessThan(minFiatAmount) {
		return ErrBelowMinimum
	}
	if d.GreaterThan(maxFiatAmount) {
		return ErrAboveMaximum
	}
	return nil
}
