package usecase

import (
	"context"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/dashboard/domain"
	"github.com/lumapay/luma/src/logger"
	swapdomain "github.com/lumapay/luma/src/swap/domain"
	walletdomain "github.com/lumapay/luma/src/wallet/domain"
	"golang.org/x/sync/errgroup"
)

var _ domain.DashboardUseCase = (*UseCase)(nil)

const recentTransactionCount = 10

// UseCase fans out to the wallet and crypto ports concurrently and assembles
// the overview. One failing branch fails the whole request.
type UseCase struct {
	wallets walletdomain.WalletUseCase
	crypto  swapdomain.CryptoAdapter
	logger  *logger.Logger
}

func NewUseCase(wallets walletdomain.WalletUseCase, crypto swapdomain.CryptoAdapter, logg *logger.Logger) *UseCase {
	return &UseCase{wallets: wallets, crypto: crypto, logger: logg}
}

func (u *UseCase) Overview(ctx context.Context, walletAddress string) (*domain.Overview, error) {
	out := &domain.Overview{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := u.wallets.Portfolio(ctx, walletAddress)
		if err != nil {
			return err
		}
		out.Portfolio = p
		return nil
	})
	g.Go(func() error {
		h, err := u.wallets.History(ctx, notus.WalletHistoryRequest{
			WalletAddress: walletAddress,
			Take:          recentTransactionCount,
		})
		if err != nil {
			return err
		}
		out.RecentTransactions = h.Transactions
		return nil
	})
	g.Go(func() error {
		chains, err := u.crypto.Chains(ctx)
		if err != nil {
			return err
		}
		out.Chains = chains
		return nil
	})

	if err := g.Wait(); err != nil {
		u.logger.Errorf("dashboard overview for %s: %v", walletAddress, err)
		return nil, err
	}
	return out, nil
}
