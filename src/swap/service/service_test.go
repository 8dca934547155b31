package service

import (
	"context"
	"testing"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/logger"
	"github.com/lumapay/luma/src/swap/domain"
)

type countingCrypto struct {
	transferCalls int
	swapCalls     int
	executeCalls  int
}

var _ domain.CryptoAdapter = (*countingCrypto)(nil)

func (c *countingCrypto) Chains(ctx context.Context) ([]notus.Chain, error) { return nil, nil }
func (c *countingCrypto) Tokens(ctx context.Context, chainID int64) ([]notus.Token, error) {
	return nil, nil
}
func (c *countingCrypto) TransferQuote(ctx context.Context, in notus.TransferQuoteRequest) (*notus.Quote, error) {
	c.transferCalls++
	return &notus.Quote{}, nil
}
func (c *countingCrypto) SwapQuote(ctx context.Context, in notus.SwapQuoteRequest) (*notus.Quote, error) {
	c.swapCalls++
	return &notus.Quote{}, nil
}
func (c *countingCrypto) Execute(ctx context.Context, in notus.ExecuteUserOpRequest) (*notus.UserOperation, error) {
	c.executeCalls++
	return &notus.UserOperation{}, nil
}

func TestTransferQuoteAmountValidation(t *testing.T) {
	ctx := context.Background()
	base := notus.TransferQuoteRequest{
		WalletAddress: "0xsmart", ToAddress: "0xdead", Token: "0xusdc", ChainID: 137,
	}

	for _, amount := range []string{"", "abc", "0", "-1", "-0.5"} {
		rec := &countingCrypto{}
		svc := NewService(rec, logger.New("dev"))
		in := base
		in.AmountToSend = amount
		if _, err := svc.TransferQuote(ctx, in); err == nil {
			t.Errorf("amount %q: expected error", amount)
		}
		if rec.transferCalls != 0 {
			t.Errorf("amount %q: adapter was called", amount)
		}
	}

	rec := &countingCrypto{}
	svc := NewService(rec, logger.New("dev"))
	in := base
	in.AmountToSend = "12.50"
	if _, err := svc.TransferQuote(ctx, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.transferCalls != 1 {
		t.Errorf("adapter calls = %d, want 1", rec.transferCalls)
	}
}

func TestExecuteRequiredFields(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		in   notus.ExecuteUserOpRequest
	}{
		{"MissingQuoteID", notus.ExecuteUserOpRequest{UserOperationHash: "0xh", Signature: "0xs"}},
		{"MissingHash", notus.ExecuteUserOpRequest{QuoteID: "q", Signature: "0xs"}},
		{"MissingSignature", notus.ExecuteUserOpRequest{QuoteID: "q", UserOperationHash: "0xh"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &countingCrypto{}
			svc := NewService(rec, logger.New("dev"))
			if _, err := svc.Execute(ctx, tc.in); err == nil {
				t.Error("expected error")
			}
			if rec.executeCalls != 0 {
				t.Error("adapter was called")
			}
		})
	}
}
