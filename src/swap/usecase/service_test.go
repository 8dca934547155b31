package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/logger"
	"github.com/lumapay/luma/src/swap/domain"
)

type recordingCrypto struct {
	transferCalls int
	swapCalls     int
	executeCalls  int
}

var _ domain.CryptoAdapter = (*recordingCrypto)(nil)

func (r *recordingCrypto) Chains(ctx context.Context) ([]notus.Chain, error) {
	return []notus.Chain{{ID: 137, Name: "Polygon"}}, nil
}

func (r *recordingCrypto) Tokens(ctx context.Context, chainID int64) ([]notus.Token, error) {
	return nil, nil
}

func (r *recordingCrypto) TransferQuote(ctx context.Context, in notus.TransferQuoteRequest) (*notus.Quote, error) {
	r.transferCalls++
	return &notus.Quote{QuoteID: "q-1"}, nil
}

func (r *recordingCrypto) SwapQuote(ctx context.Context, in notus.SwapQuoteRequest) (*notus.Quote, error) {
	r.swapCalls++
	return &notus.Quote{QuoteID: "q-2"}, nil
}

func (r *recordingCrypto) Execute(ctx context.Context, in notus.ExecuteUserOpRequest) (*notus.UserOperation, error) {
	r.executeCalls++
	return &notus.UserOperation{UserOperationHash: in.UserOperationHash, Status: "PENDING"}, nil
}

func TestTransferQuoteRecipientValidation(t *testing.T) {
	ctx := context.Background()

	valid := "0x" + strings.Repeat("ab", 20)
	bad := []string{"", "0x123", "0x" + strings.Repeat("g", 40), strings.Repeat("a", 42), "0x" + strings.Repeat("a", 39)}

	for _, addr := range bad {
		rec := &recordingCrypto{}
		uc := NewUseCase(rec, logger.New("dev"))
		_, err := uc.TransferQuote(ctx, notus.TransferQuoteRequest{
			WalletAddress: valid, ToAddress: addr, Token: "0xusdc", AmountToSend: "1", ChainID: 137,
		})
		if !errors.Is(err, ErrInvalidRecipient) {
			t.Errorf("addr %q: err = %v, want ErrInvalidRecipient", addr, err)
		}
		if rec.transferCalls != 0 {
			t.Errorf("addr %q: adapter was called", addr)
		}
	}

	rec := &recordingCrypto{}
	uc := NewUseCase(rec, logger.New("dev"))
	if _, err := uc.TransferQuote(ctx, notus.TransferQuoteRequest{
		WalletAddress: valid, ToAddress: valid, Token: "0xusdc", AmountToSend: "1", ChainID: 137,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.transferCalls != 1 {
		t.Errorf("adapter calls = %d, want 1", rec.transferCalls)
	}
}

func TestSwapQuoteSameToken(t *testing.T) {
	ctx := context.Background()

	t.Run("RejectsSameTokenSameChain", func(t *testing.T) {
		rec := &recordingCrypto{}
		uc := NewUseCase(rec, logger.New("dev"))
		_, err := uc.SwapQuote(ctx, notus.SwapQuoteRequest{
			WalletAddress: "0xsmart", TokenIn: "0xUSDC", TokenOut: "0xusdc",
			AmountIn: "5", ChainIDIn: 137, ChainIDOut: 137,
		})
		if !errors.Is(err, ErrSameToken) {
			t.Fatalf("err = %v, want ErrSameToken", err)
		}
		if rec.swapCalls != 0 {
			t.Error("adapter was called")
		}
	})

	t.Run("AllowsSameTokenAcrossChains", func(t *testing.T) {
		rec := &recordingCrypto{}
		uc := NewUseCase(rec, logger.New("dev"))
		if _, err := uc.SwapQuote(ctx, notus.SwapQuoteRequest{
			WalletAddress: "0xsmart", TokenIn: "0xusdc", TokenOut: "0xusdc",
			AmountIn: "5", ChainIDIn: 137, ChainIDOut: 42161,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.swapCalls != 1 {
			t.Errorf("adapter calls = %d, want 1", rec.swapCalls)
		}
	})
}

func TestExecuteQuoteExpiry(t *testing.T) {
	ctx := context.Background()

	t.Run("ExpiredQuoteRejected", func(t *testing.T) {
		rec := &recordingCrypto{}
		uc := NewUseCase(rec, logger.New("dev"))
		_, err := uc.Execute(ctx, domain.ExecuteRequest{
			QuoteID: "q-1", UserOperationHash: "0xhash", Signature: "0xsig",
			ExpiresAt: time.Now().Add(-time.Minute),
		})
		if !errors.Is(err, ErrQuoteExpired) {
			t.Fatalf("err = %v, want ErrQuoteExpired", err)
		}
		if rec.executeCalls != 0 {
			t.Error("adapter was called")
		}
	})

	t.Run("FreshQuoteExecutes", func(t *testing.T) {
		rec := &recordingCrypto{}
		uc := NewUseCase(rec, logger.New("dev"))
		op, err := uc.Execute(ctx, domain.ExecuteRequest{
			QuoteID: "q-1", UserOperationHash: "0xhash", Signature: "0xsig",
			ExpiresAt: time.Now().Add(2 * time.Minute),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if op.UserOperationHash != "0xhash" {
			t.Errorf("hash = %s", op.UserOperationHash)
		}
		if rec.executeCalls != 1 {
			t.Errorf("adapter calls = %d, want 1", rec.executeCalls)
		}
	})
}
