package service

import (
	"context"
	"errors"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/logger"
	"github.com/lumapay/luma/src/swap/domain"
	"github.com/shopspring/decimal"
)

var _ domain.CryptoAdapter = (*Service)(nil)

// Service validates quote and execution parameters before they reach the wire.
type Service struct {
	adapter domain.CryptoAdapter
	logger  *logger.Logger
}

func NewService(adapter domain.CryptoAdapter, logg *logger.Logger) *Service {
	return &Service{adapter: adapter, logger: logg}
}

func (s *Service) Chains(ctx context.Context) ([]notus.Chain, error) {
	return s.adapter.Chains(ctx)
}

func (s *Service) Tokens(ctx context.Context, chainID int64) ([]notus.Token, error) {
	return s.adapter.Tokens(ctx, chainID)
}

func (s *Service) TransferQuote(ctx context.Context, in notus.TransferQuoteRequest) (*notus.Quote, error) {
	if in.WalletAddress == "" {
		return nil, errors.New("walletAddress is required")
	}
	if in.ToAddress == "" {
		return nil, errors.New("toAddress is required")
	}
	if in.Token == "" {
		return nil, errors.New("token is required")
	}
	if in.ChainID <= 0 {
		return nil, errors.New("chainId is required")
	}
	if err := validateAmount(in.AmountToSend); err != nil {
		return nil, err
	}
	return s.adapter.TransferQuote(ctx, in)
}

func (s *Service) SwapQuote(ctx context.Context, in notus.SwapQuoteRequest) (*notus.Quote, error) {
	if in.WalletAddress == "" {
		return nil, errors.New("walletAddress is required")
	}
	if in.TokenIn == "" || in.TokenOut == "" {
		return nil, errors.New("tokenIn and tokenOut are required")
	}
	if in.ChainIDIn <= 0 || in.ChainIDOut <= 0 {
		return nil, errors.New("chainIdIn and chainIdOut are required")
	}
	if err := validateAmount(in.AmountIn); err != nil {
		return nil, err
	}
	return s.adapter.SwapQuote(ctx, in)
}

func (s *Service) Execute(ctx context.Context, in notus.ExecuteUserOpRequest) (*notus.UserOperation, error) {
	if in.QuoteID == "" {
		return nil, errors.New("quoteId is required")
	}
	if in.UserOperationHash == "" {
		return nil, errors.New("userOperationHash is required")
	}
	if in.Signature == "" {
		return nil, errors.New("signature is required")
	}
	return s.adapter.Execute(ctx, in)
}

func validateAmount(amount string) error {
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
