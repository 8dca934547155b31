package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/logger"
	"github.com/lumapay/luma/src/swap/domain"
)

var _ domain.SwapUseCase = (*UseCase)(nil)

var (
	ErrInvalidRecipient = errors.New("Invalid recipient address format")
	ErrSameToken        = errors.New("Cannot swap a token for itself")
	ErrQuoteExpired     = errors.New("Quote has expired")
)

// UseCase layers the transfer/swap business rules on top of the validated
// service. The rules are pure guard clauses; no state survives a call.
type UseCase struct {
	crypto domain.CryptoAdapter
	logger *logger.Logger
}

func NewUseCase(crypto domain.CryptoAdapter, logg *logger.Logger) *UseCase {
	return &UseCase{crypto: crypto, logger: logg}
}

func (u *UseCase) Chains(ctx context.Context) ([]notus.Chain, error) {
	return u.crypto.Chains(ctx)
}

func (u *UseCase) Tokens(ctx context.Context, chainID int64) ([]notus.Token, error) {
	return u.crypto.Tokens(ctx, chainID)
}

func (u *UseCase) TransferQuote(ctx context.Context, in notus.TransferQuoteRequest) (*notus.Quote, error) {
	if !domain.IsHexAddress(in.ToAddress) {
		return nil, ErrInvalidRecipient
	}
	return u.crypto.TransferQuote(ctx, in)
}

func (u *UseCase) SwapQuote(ctx context.Context, in notus.SwapQuoteRequest) (*notus.Quote, error) {
	if strings.EqualFold(in.TokenIn, in.TokenOut) && in.ChainIDIn == in.ChainIDOut {
		return nil, ErrSameToken
	}
	return u.crypto.SwapQuote(ctx, in)
}

// Execute submits the signed user operation. Quotes are single-use and
// time-bound; a quote past its expiry is refused locally rather than burned on
// a round-trip the API would reject anyway.
func (u *UseCase) Execute(ctx context.Context, in domain.ExecuteRequest) (*notus.UserOperation, error) {
	if !in.ExpiresAt.IsZero() && time.Now().After(in.ExpiresAt) {
		return nil, ErrQuoteExpired
	}
	return u.crypto.Execute(ctx, notus.ExecuteUserOpRequest{
		QuoteID:           in.QuoteID,
		UserOperationHash: in.UserOperationHash,
		Signature:         in.Signature,
	})
}
