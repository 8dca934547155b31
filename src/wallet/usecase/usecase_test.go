package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/logger"
	"github.com/lumapay/luma/src/wallet/domain"
	"github.com/shopspring/decimal"
)

type stubAdapter struct {
	registerCalls int
	getCalls      int
	wallet        *notus.Wallet
	getErr        error
	portfolio     *notus.Portfolio
}

var _ domain.WalletAdapter = (*stubAdapter)(nil)

func (s *stubAdapter) Register(ctx context.Context, in notus.RegisterWalletRequest) (*notus.Wallet, error) {
	s.registerCalls++
	now := time.Now()
	return &notus.Wallet{WalletAddress: "0xsmart", RegisteredAt: &now}, nil
}

func (s *stubAdapter) Get(ctx context.Context, in notus.GetWalletRequest) (*notus.Wallet, error) {
	s.getCalls++
	return s.wallet, s.getErr
}

func (s *stubAdapter) GetByAddress(ctx context.Context, walletAddress string) (*notus.Wallet, error) {
	return s.wallet, s.getErr
}

func (s *stubAdapter) Portfolio(ctx context.Context, walletAddress string) (*notus.Portfolio, error) {
	return s.portfolio, nil
}

func (s *stubAdapter) History(ctx context.Context, in notus.WalletHistoryRequest) (*notus.WalletHistory, error) {
	return &notus.WalletHistory{}, nil
}

func (s *stubAdapter) UpdateMetadata(ctx context.Context, walletAddress string, metadata map[string]any) (*notus.Wallet, error) {
	return s.wallet, nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("AlreadyRegistered", func(t *testing.T) {
		registered := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		stub := &stubAdapter{wallet: &notus.Wallet{WalletAddress: "0xsmart", RegisteredAt: &registered}}
		uc := NewUseCase(stub, logger.New("dev"))

		_, err := uc.Register(ctx, "0xe0a")
		if !errors.Is(err, ErrAlreadyRegistered) {
			t.Fatalf("err = %v, want ErrAlreadyRegistered", err)
		}
		if stub.registerCalls != 0 {
			t.Errorf("register reached the adapter %d times", stub.registerCalls)
		}
	})

	t.Run("UnregisteredWalletProceeds", func(t *testing.T) {
		stub := &stubAdapter{wallet: &notus.Wallet{WalletAddress: "0xsmart"}}
		uc := NewUseCase(stub, logger.New("dev"))

		w, err := uc.Register(ctx, "0xe0a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.RegisteredAt == nil {
			t.Error("expected registeredAt to be set after registration")
		}
		if stub.registerCalls != 1 {
			t.Errorf("register calls = %d, want 1", stub.registerCalls)
		}
	})

	t.Run("NotFoundProceeds", func(t *testing.T) {
		stub := &stubAdapter{getErr: &notus.APIError{StatusCode: 404, Message: "not found"}}
		uc := NewUseCase(stub, logger.New("dev"))

		if _, err := uc.Register(ctx, "0xe0a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stub.registerCalls != 1 {
			t.Errorf("register calls = %d, want 1", stub.registerCalls)
		}
	})

	t.Run("OtherErrorsPropagate", func(t *testing.T) {
		stub := &stubAdapter{getErr: &notus.APIError{StatusCode: 500, Message: "boom"}}
		uc := NewUseCase(stub, logger.New("dev"))

		if _, err := uc.Register(ctx, "0xe0a"); err == nil {
			t.Fatal("expected error")
		}
		if stub.registerCalls != 0 {
			t.Error("register should not run after an upstream failure")
		}
	})
}

func TestPortfolioTotal(t *testing.T) {
	ctx := context.Background()

	t.Run("SumsBalances", func(t *testing.T) {
		stub := &stubAdapter{portfolio: &notus.Portfolio{Tokens: []notus.Token{
			{Symbol: "USDC", BalanceUSD: decimal.RequireFromString("10.25")},
			{Symbol: "BRZ", BalanceUSD: decimal.RequireFromString("0.01")},
			{Symbol: "WETH", BalanceUSD: decimal.RequireFromString("1999.74")},
		}}}
		uc := NewUseCase(stub, logger.New("dev"))

		p, err := uc.Portfolio(ctx, "0xsmart")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := decimal.RequireFromString("2010.00")
		if !p.TotalValueUSD.Equal(want) {
			t.Errorf("total = %s, want %s", p.TotalValueUSD, want)
		}
	})

	t.Run("EmptyPortfolioIsZero", func(t *testing.T) {
		stub := &stubAdapter{portfolio: &notus.Portfolio{}}
		uc := NewUseCase(stub, logger.New("dev"))

		p, err := uc.Portfolio(ctx, "0xsmart")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.TotalValueUSD.IsZero() {
			t.Errorf("total = %s, want 0", p.TotalValueUSD)
		}
	})
}

func TestGetOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("ExistingRegisteredWallet", func(t *testing.T) {
		registered := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		stub := &stubAdapter{wallet: &notus.Wallet{WalletAddress: "0xsmart", RegisteredAt: &registered}}
		uc := NewUseCase(stub, logger.New("dev"))

		w, err := uc.GetOrCreate(ctx, "0xe0a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.WalletAddress != "0xsmart" {
			t.Errorf("walletAddress = %s", w.WalletAddress)
		}
		if stub.registerCalls != 0 {
			t.Error("register should not run for a registered wallet")
		}
	})

	t.Run("RegistersOnFirstContact", func(t *testing.T) {
		stub := &stubAdapter{wallet: &notus.Wallet{WalletAddress: "0xsmart"}}
		uc := NewUseCase(stub, logger.New("dev"))

		if _, err := uc.GetOrCreate(ctx, "0xe0a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stub.registerCalls != 1 {
			t.Errorf("register calls = %d, want 1", stub.registerCalls)
		}
	})
}
