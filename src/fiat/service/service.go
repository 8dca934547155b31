package service

import (
	"context"
	"errors"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/fiat/domain"
	"github.com/lumapay/luma/src/logger"
	"github.com/shopspring/decimal"
)

var _ domain.FiatAdapter = (*Service)(nil)

// Service validates fiat quote and order parameters. The individualId is proof
// the user has completed the KYC tier that unlocks fiat rails; requests
// without one never leave the process.
type Service struct {
	adapter domain.FiatAdapter
	logger  *logger.Logger
}

func NewService(adapter domain.FiatAdapter, logg *logger.Logger) *Service {
	return &Service{adapter: adapter, logger: logg}
}

func (s *Service) DepositQuote(ctx context.Context, in notus.DepositQuoteRequest) (*notus.FiatQuote, error) {
	if in.WalletAddress == "" {
		return nil, errors.New("walletAddress is required")
	}
	if in.IndividualID == "" {
		return nil, errors.New("Individual ID is required")
	}
	if err := validatePositiveAmount(in.Amount); err != nil {
		return nil, err
	}
	if in.SendFiatCurrency == "" || in.ReceiveCryptoCurrency == "" {
		return nil, errors.New("sendFiatCurrency and receiveCryptoCurrency are required")
	}
	if in.PaymentMethodToSend == "" {
		return nil, errors.New("paymentMethodToSend is required")
	}
	if in.ChainID <= 0 {
		return nil, errors.New("chainId is required")
	}
	return s.adapter.DepositQuote(ctx, in)
}

func (s *Service) CreateDeposit(ctx context.Context, in notus.CreateDepositOrderRequest) (*notus.FiatDepositOrder, error) {
	if in.QuoteID == "" {
		return nil, errors.New("quoteId is required")
	}
	if in.WalletAddress == "" {
		return nil, errors.New("walletAddress is required")
	}
	if in.ChainID <= 0 {
		return nil, errors.New("chainId is required")
	}
	return s.adapter.CreateDeposit(ctx, in)
}

func (s *Service) WithdrawQuote(ctx context.Context, in notus.WithdrawQuoteRequest) (*notus.FiatQuote, error) {
	if in.WalletAddress == "" {
		return nil, errors.New("walletAddress is required")
	}
	if in.IndividualID == "" {
		return nil, errors.New("Individual ID is required")
	}
	if err := validatePositiveAmount(in.Amount); err != nil {
		return nil, err
	}
	if in.SendCryptoCurrency == "" || in.ReceiveFiatCurrency == "" {
		return nil, errors.New("sendCryptoCurrency and receiveFiatCurrency are required")
	}
	if in.PaymentMethodToReceive == "" {
		return nil, errors.New("paymentMethodToReceive is required")
	}
	if in.PixKey == "" {
		return nil, errors.New("pixKey is required")
	}
	if in.ChainID <= 0 {
		return nil, errors.New("chainId is required")
	}
	return s.adapter.WithdrawQuote(ctx, in)
}

func (s *Service) CreateWithdraw(ctx context.Context, in notus.CreateWithdrawOrderRequest) (*notus.FiatWithdrawOrder, error) {
	if in.QuoteID == "" {
		return nil, errors.New("quoteId is required")
	}
	if in.WalletAddress == "" {
		return nil, errors.New("walletAddress is required")
	}
	if in.ChainID <= 0 {
		return nil, errors.New("chainId is required")
	}
	return s.adapter.CreateWithdraw(ctx, in)
}

func validatePositiveAmount(amount string) error {
	if amount == "" {
		return errors.New("amount is required")
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return errors.New("amount must be a decimal number")
	}
	if d.LessThanOrEqual(decimal.Zero) {
		return errors.New("amount must be greater than 0")
	}
	return nil
}
