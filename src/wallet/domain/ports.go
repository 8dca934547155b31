package domain

import (
	"context"

	"github.com/lumapay/luma/src/Infrastructure/notus"
)

// WalletAdapter is the port over the upstream wallets resource. The notus
// client implements the calls; the service layer decorates them with input
// validation and satisfies the same interface.
type WalletAdapter interface {
	Register(ctx context.Context, in notus.RegisterWalletRequest) (*notus.Wallet, error)
	Get(ctx context.Context, in notus.GetWalletRequest) (*notus.Wallet, error)
	GetByAddress(ctx context.Context, walletAddress string) (*notus.Wallet, error)
	Portfolio(ctx context.Context, walletAddress string) (*notus.Portfolio, error)
	History(ctx context.Context, in notus.WalletHistoryRequest) (*notus.WalletHistory, error)
	UpdateMetadata(ctx context.Context, walletAddress string, metadata map[string]any) (*notus.Wallet, error)
}

// WalletUseCase is what the delivery layer and sibling domains consume.
type WalletUseCase interface {
	Register(ctx context.Context, externallyOwnedAccount string) (*notus.Wallet, error)
	GetOrCreate(ctx context.Context, externallyOwnedAccount string) (*notus.Wallet, error)
	Get(ctx context.Context, externallyOwnedAccount string) (*notus.Wallet, error)
	GetByAddress(ctx context.Context, walletAddress string) (*notus.Wallet, error)
	Portfolio(ctx context.Context, walletAddress string) (*Portfolio, error)
	History(ctx context.Context, in notus.WalletHistoryRequest) (*notus.WalletHistory, error)
	UpdateMetadata(ctx context.Context, walletAddress string, metadata map[string]any) (*notus.Wallet, error)
}
