package notus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// --- Chains & tokens ---

type Chain struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
}

type chainsEnvelope struct {
	Chains []Chain `json:"chains"`
}

func (c *Client) ListChains(ctx context.Context) ([]Chain, error) {
	env, err := doJSON[chainsEnvelope](c, ctx, http.MethodGet, "/crypto/chains", nil, nil)
	if err != nil {
		return nil, err
	}
	return env.Chains, nil
}

type tokensEnvelope struct {
	Tokens []Token `json:"tokens"`
}

func (c *Client) ListTokens(ctx context.Context, chainID int64) ([]Token, error) {
	q := url.Values{}
	if chainID > 0 {
		q.Set("chainId", fmt.Sprint(chainID))
	}
	env, err := doJSON[tokensEnvelope](c, ctx, http.MethodGet, "/crypto/tokens", q, nil)
	if err != nil {
		return nil, err
	}
	return env.Tokens, nil
}

// --- Quotes ---

// Quote is a time-bound, single-use price/fee commitment. It is consumed exactly
// once by ExecuteUserOperation and never persisted locally.
type Quote struct {
	QuoteID           string          `json:"quoteId"`
	UserOperationHash string          `json:"userOperationHash"`
	AmountIn          decimal.Decimal `json:"amountIn"`
	AmountOut         decimal.Decimal `json:"amountOut"`
	EstimatedFee      decimal.Decimal `json:"estimatedFee"`
	ExpiresAt         time.Time       `json:"expiresAt"`
}

type TransferQuoteRequest struct {
	WalletAddress  string `json:"walletAddress"`
	ToAddress      string `json:"toAddress"`
	Token          string `json:"token"`
	AmountToSend   string `json:"amountToSend"`
	ChainID        int64  `json:"chainId"`
	PayGasFeeToken string `json:"payGasFeeToken,omitempty"`
}

func (c *Client) CreateTransferQuote(ctx context.Context, in TransferQuoteRequest) (*Quote, error) {
	out, err := doJSON[Quote](c, ctx, http.MethodPost, "/crypto/transfer", nil, in)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type SwapQuoteRequest struct {
	WalletAddress  string `json:"walletAddress"`
	TokenIn        string `json:"tokenIn"`
	TokenOut       string `json:"tokenOut"`
	AmountIn       string `json:"amountIn"`
	ChainIDIn      int64  `json:"chainIdIn"`
	ChainIDOut     int64  `json:"chainIdOut"`
	PayGasFeeToken string `json:"payGasFeeToken,omitempty"`
}

func (c *Client) CreateSwapQuote(ctx context.Context, in SwapQuoteRequest) (*Quote, error) {
	out, err := doJSON[Quote](c, ctx, http.MethodPost, "/crypto/swap", nil, in)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// --- User operations ---

// UserOperation is an account-abstraction transaction submitted for execution
// after the user has signed its hash.
type UserOperation struct {
	UserOperationHash string `json:"userOperationHash"`
	TransactionHash   string `json:"transactionHash,omitempty"`
	Status            string `json:"status,omitempty"`
}

type ExecuteUserOpRequest struct {
	QuoteID           string `json:"quoteId"`
	UserOperationHash string `json:"userOperationHash"`
	Signature         string `json:"signature"`
}

func (c *Client) ExecuteUserOperation(ctx context.Context, in ExecuteUserOpRequest) (*UserOperation, error) {
	out, err := doJSON[UserOperation](c, ctx, http.MethodPost, "/crypto/execute-user-op", nil, in)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
