package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/logger"
	swapdomain "github.com/lumapay/luma/src/swap/domain"
	walletdomain "github.com/lumapay/luma/src/wallet/domain"
	"github.com/shopspring/decimal"
)

type stubWallets struct {
	portfolioErr error
	historyTake  int
}

var _ walletdomain.WalletUseCase = (*stubWallets)(nil)

func (s *stubWallets) Register(ctx context.Context, eoa string) (*notus.Wallet, error) {
	return nil, errors.New("not used")
}

func (s *stubWallets) GetOrCreate(ctx context.Context, eoa string) (*notus.Wallet, error) {
	return nil, errors.New("not used")
}

func (s *stubWallets) Get(ctx context.Context, eoa string) (*notus.Wallet, error) {
	return nil, errors.New("not used")
}

func (s *stubWallets) GetByAddress(ctx context.Context, walletAddress string) (*notus.Wallet, error) {
	return nil, errors.New("not used")
}

func (s *stubWallets) Portfolio(ctx context.Context, walletAddress string) (*walletdomain.Portfolio, error) {
	if s.portfolioErr != nil {
		return nil, s.portfolioErr
	}
	return &walletdomain.Portfolio{TotalValueUSD: decimal.NewFromInt(42)}, nil
}

func (s *stubWallets) History(ctx context.Context, in notus.WalletHistoryRequest) (*notus.WalletHistory, error) {
	s.historyTake = in.Take
	return &notus.WalletHistory{Transactions: []notus.Transaction{{ID: "tx-1"}, {ID: "tx-2"}}}, nil
}

func (s *stubWallets) UpdateMetadata(ctx context.Context, walletAddress string, metadata map[string]any) (*notus.Wallet, error) {
	return nil, errors.New("not used")
}

type stubCrypto struct{}

var _ swapdomain.CryptoAdapter = (*stubCrypto)(nil)

func (s *stubCrypto) Chains(ctx context.Context) ([]notus.Chain, error) {
	return []notus.Chain{{ID: 137, Name: "Polygon"}}, nil
}

func (s *stubCrypto) Tokens(ctx context.Context, chainID int64) ([]notus.Token, error) {
	return nil, errors.New("not used")
}

func (s *stubCrypto) TransferQuote(ctx context.Context, in notus.TransferQuoteRequest) (*notus.Quote, error) {
	return nil, errors.New("not used")
}

func (s *stubCrypto) SwapQuote(ctx context.Context, in notus.SwapQuoteRequest) (*notus.Quote, error) {
	return nil, errors.New("not used")
}

func (s *stubCrypto) Execute(ctx context.Context, in notus.ExecuteUserOpRequest) (*notus.UserOperation, error) {
	return nil, errors.New("not used")
}

func TestOverview(t *testing.T) {
	ctx := context.Background()

	t.Run("AggregatesAllBranches", func(t *testing.T) {
		wallets := &stubWallets{}
		uc := NewUseCase(wallets, &stubCrypto{}, logger.New("dev"))

		out, err := uc.Overview(ctx, "0xsmart")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Portfolio == nil || !out.Portfolio.TotalValueUSD.Equal(decimal.NewFromInt(42)) {
			t.Errorf("portfolio = %+v", out.Portfolio)
		}
		if len(out.RecentTransactions) != 2 {
			t.Errorf("transactions = %d, want 2", len(out.RecentTransactions))
		}
		if len(out.Chains) != 1 || out.Chains[0].ID != 137 {
			t.Errorf("chains = %+v", out.Chains)
		}
		if wallets.historyTake != recentTransactionCount {
			t.Errorf("history take = %d, want %d", wallets.historyTake, recentTransactionCount)
		}
	})

	t.Run("BranchFailureFailsRequest", func(t *testing.T) {
		upstream := &notus.APIError{StatusCode: 500, Message: "boom"}
		wallets := &stubWallets{portfolioErr: upstream}
		uc := NewUseCase(wallets, &stubCrypto{}, logger.New("dev"))

		if _, err := uc.Overview(ctx, "0xsmart"); !errors.Is(err, upstream) {
			t.Fatalf("err = %v, want upstream error", err)
		}
	})
}
