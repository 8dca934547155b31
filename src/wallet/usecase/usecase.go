package usecase

import (
	"context"
	"errors"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/logger"
	"github.com/lumapay/luma/src/wallet/domain"
	"github.com/shopspring/decimal"
)

var _ domain.WalletUseCase = (*UseCase)(nil)

// ErrAlreadyRegistered is raised by the pre-check in Register so a duplicate
// registration never reaches the network.
var ErrAlreadyRegistered = errors.New("Wallet already registered")

type UseCase struct {
	wallets domain.WalletAdapter
	logger  *logger.Logger
}

// NewUseCase takes the validated service as its wallet port.
func NewUseCase(wallets domain.WalletAdapter, logg *logger.Logger) *UseCase {
	return &UseCase{wallets: wallets, logger: logg}
}

// Register creates the custodial smart wallet for an EOA. It fetches first and
// compares registeredAt, turning the upstream conflict into an explicit
// application error raised before any register call.
func (u *UseCase) Register(ctx context.Context, externallyOwnedAccount string) (*notus.Wallet, error) {
	existing, err := u.wallets.Get(ctx, notus.GetWalletRequest{
		ExternallyOwnedAccount: externallyOwnedAccount,
		Factory:                domain.DefaultFactory,
		Salt:                   domain.DefaultSalt,
	})
	if err != nil {
		var apiErr *notus.APIError
		// a 404 simply means nothing is registered yet
		if !errors.As(err, &apiErr) || apiErr.StatusCode != 404 {
			return nil, err
		}
	}
	if existing != nil && existing.RegisteredAt != nil {
		return nil, ErrAlreadyRegistered
	}

	return u.wallets.Register(ctx, notus.RegisterWalletRequest{
		ExternallyOwnedAccount: externallyOwnedAccount,
		Factory:                domain.DefaultFactory,
		Salt:                   domain.DefaultSalt,
	})
}

// GetOrCreate resolves the smart wallet for an EOA, registering it on first
// contact. Used by the auth middleware on every authenticated request.
func (u *UseCase) GetOrCreate(ctx context.Context, externallyOwnedAccount string) (*notus.Wallet, error) {
	w, err := u.Get(ctx, externallyOwnedAccount)
	if err != nil {
		var apiErr *notus.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != 404 {
			return nil, err
		}
	}
	if w != nil && w.RegisteredAt != nil {
		return w, nil
	}
	return u.wallets.Register(ctx, notus.RegisterWalletRequest{
		ExternallyOwnedAccount: externallyOwnedAccount,
		Factory:                domain.DefaultFactory,
		Salt:                   domain.DefaultSalt,
	})
}

func (u *UseCase) Get(ctx context.Context, externallyOwnedAccount string) (*notus.Wallet, error) {
	return u.wallets.Get(ctx, notus.GetWalletRequest{
		ExternallyOwnedAccount: externallyOwnedAccount,
		Factory:                domain.DefaultFactory,
		Salt:                   domain.DefaultSalt,
	})
}

func (u *UseCase) GetByAddress(ctx context.Context, walletAddress string) (*notus.Wallet, error) {
	return u.wallets.GetByAddress(ctx, walletAddress)
}

// Portfolio fetches the balance snapshot and totals it with decimal arithmetic.
// An empty token list yields a zero total.
func (u *UseCase) Portfolio(ctx context.Context, walletAddress string) (*domain.Portfolio, error) {
	p, err := u.wallets.Portfolio(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, t := range p.Tokens {
		total = total.Add(t.BalanceUSD)
	}
	return &domain.Portfolio{
		Tokens:        p.Tokens,
		TotalValueUSD: total,
	}, nil
}

func (u *UseCase) History(ctx context.Context, in notus.WalletHistoryRequest) (*notus.WalletHistory, error) {
	return u.wallets.History(ctx, in)
}

func (u *UseCase) UpdateMetadata(ctx context.Context, walletAddress string, metadata map[string]any) (*notus.Wallet, error) {
	return u.wallets.UpdateMetadata(ctx, walletAddress, metadata)
}
