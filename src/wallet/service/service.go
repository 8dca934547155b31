package service

import (
	"context"
	"errors"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/logger"
	"github.com/lumapay/luma/src/wallet/domain"
)

var _ domain.WalletAdapter = (*Service)(nil)

// Service enforces input contracts before touching the adapter. A malformed
// request is rejected here with a descriptive error instead of going out on the
// wire. No retries, no caching; every call is one awaited round-trip.
type Service struct {
	adapter domain.WalletAdapter
	logger  *logger.Logger
}

func NewService(adapter domain.WalletAdapter, logg *logger.Logger) *Service {
	return &Service{adapter: adapter, logger: logg}
}

func (s *Service) Register(ctx context.Context, in notus.RegisterWalletRequest) (*notus.Wallet, error) {
	if in.ExternallyOwnedAccount == "" {
		return nil, errors.New("externallyOwnedAccount is required")
	}
	return s.adapter.Register(ctx, in)
}

func (s *Service) Get(ctx context.Context, in notus.GetWalletRequest) (*notus.Wallet, error) {
	if in.ExternallyOwnedAccount == "" {
		return nil, errors.New("externallyOwnedAccount is required")
	}
	return s.adapter.Get(ctx, in)
}

func (s *Service) GetByAddress(ctx context.Context, walletAddress string) (*notus.Wallet, error) {
	if walletAddress == "" {
		return nil, errors.New("walletAddress is required")
	}
	return s.adapter.GetByAddress(ctx, walletAddress)
}

func (s *Service) Portfolio(ctx context.Context, walletAddress string) (*notus.Portfolio, error) {
	if walletAddress == "" {
		return nil, errors.New("walletAddress is required")
	}
	return s.adapter.Portfolio(ctx, walletAddress)
}

func (s *Service) History(ctx context.Context, in notus.WalletHistoryRequest) (*notus.WalletHistory, error) {
	if in.WalletAddress == "" {
		return nil, errors.New("walletAddress is required")
	}
	if in.Take < 1 || in.Take > 100 {
		return nil, errors.New("take must be between 1 and 100")
	}
	return s.adapter.History(ctx, in)
}

func (s *Service) UpdateMetadata(ctx context.Context, walletAddress string, metadata map[string]any) (*notus.Wallet, error) {
	if walletAddress == "" {
		return nil, errors.New("walletAddress is required")
	}
	if len(metadata) == 0 {
		return nil, errors.New("metadata must not be empty")
	}
	return s.adapter.UpdateMetadata(ctx, walletAddress, metadata)
}
