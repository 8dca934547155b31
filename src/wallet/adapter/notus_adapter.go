package adapter

import (
	"context"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/wallet/domain"
)

var _ domain.WalletAdapter = (*NotusAdapter)(nil)

// NotusAdapter binds the wallet port to the notus client. Each method is one
// outbound HTTP call; failures arrive as *notus.APIError and pass through
// untouched.
type NotusAdapter struct {
	client *notus.Client
}

func NewNotusAdapter(client *notus.Client) *NotusAdapter {
	return &NotusAdapter{client: client}
}

func (a *NotusAdapter) Register(ctx context.Context, in notus.RegisterWalletRequest) (*notus.Wallet, error) {
	return a.client.RegisterWallet(ctx, in)
}

func (a *NotusAdapter) Get(ctx context.Context, in notus.GetWalletRequest) (*notus.Wallet, error) {
	return a.client.GetWallet(ctx, in)
}

func (a *NotusAdapter) GetByAddress(ctx context.Context, walletAddress string) (*notus.Wallet, error) {
	return a.client.GetWalletByAddress(ctx, walletAddress)
}

func (a *NotusAdapter) Portfolio(ctx context.Context, walletAddress string) (*notus.Portfolio, error) {
	return a.client.GetPortfolio(ctx, walletAddress)
}

func (a *NotusAdapter) History(ctx context.Context, in notus.WalletHistoryRequest) (*notus.WalletHistory, error) {
	return a.client.GetWalletHistory(ctx, in)
}

func (a *NotusAdapter) UpdateMetadata(ctx context.Context, walletAddress string, metadata map[string]any) (*notus.Wallet, error) {
	return a.client.UpdateWalletMetadata(ctx, walletAddress, metadata)
}
