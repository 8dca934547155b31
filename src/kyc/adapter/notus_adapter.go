package adapter

import (
	"context"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/kyc/domain"
	walletdomain "github.com/lumapay/luma/src/wallet/domain"
)

var _ domain.KYCAdapter = (*NotusAdapter)(nil)

// NotusAdapter binds the KYC port to the upstream client.
type NotusAdapter struct {
	client *notus.Client
}

func NewNotusAdapter(client *notus.Client) *NotusAdapter {
	return &NotusAdapter{client: client}
}

func (a *NotusAdapter) CreateSession(ctx context.Context, in notus.CreateKYCSessionRequest) (*notus.CreateKYCSessionResponse, error) {
	return a.client.CreateKYCSession(ctx, in)
}

func (a *NotusAdapter) GetSession(ctx context.Context, sessionID string) (*notus.KYCSession, error) {
	return a.client.GetKYCSession(ctx, sessionID)
}

func (a *NotusAdapter) ProcessSession(ctx context.Context, sessionID string) error {
	return a.client.ProcessKYCSession(ctx, sessionID)
}

func (a *NotusAdapter) UploadDocument(ctx context.Context, target notus.PresignedUpload, filename string, file []byte) error {
	return a.client.UploadDocument(ctx, target, filename, file)
}

var _ domain.MetadataStore = (*WalletMetadataStore)(nil)

// WalletMetadataStore exposes the wallet metadata bag to the KYC flow through
// the already-validated wallet port.
type WalletMetadataStore struct {
	wallets walletdomain.WalletAdapter
}

func NewWalletMetadataStore(wallets walletdomain.WalletAdapter) *WalletMetadataStore {
	return &WalletMetadataStore{wallets: wallets}
}

func (s *WalletMetadataStore) Read(ctx context.Context, walletAddress string) (*notus.Wallet, error) {
	return s.wallets.GetByAddress(ctx, walletAddress)
}

func (s *WalletMetadataStore) Write(ctx context.Context, walletAddress string, metadata map[string]any) (*notus.Wallet, error) {
	return s.wallets.UpdateMetadata(ctx, walletAddress, metadata)
}
