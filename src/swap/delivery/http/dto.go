package http

import (
	"time"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/swap/domain"
	"github.com/shopspring/decimal"
)

// swagger:model ChainsResponse
type ChainsResponse struct {
	Chains []notus.Chain `json:"chains"`
}

// swagger:model TokensResponse
type TokensResponse struct {
	Tokens []notus.Token `json:"tokens"`
}

// TransferQuoteRequestBody is the payload to quote a transfer
// swagger:model TransferQuoteRequestBody
type TransferQuoteRequestBody struct {
	ToAddress      string `json:"toAddress" example:"0xabc..."`
	Token          string `json:"token" example:"0xdef..."`
	AmountToSend   string `json:"amountToSend" example:"12.50"`
	ChainID        int64  `json:"chainId" example:"137"`
	PayGasFeeToken string `json:"payGasFeeToken,omitempty"`
}

func (b TransferQuoteRequestBody) ToRequest(walletAddress string) notus.TransferQuoteRequest {
	return notus.TransferQuoteRequest{
		WalletAddress:  walletAddress,
		ToAddress:      b.ToAddress,
		Token:          b.Token,
		AmountToSend:   b.AmountToSend,
		ChainID:        b.ChainID,
		PayGasFeeToken: b.PayGasFeeToken,
	}
}

// SwapQuoteRequestBody is the payload to quote a swap
// swagger:model SwapQuoteRequestBody
type SwapQuoteRequestBody struct {
	TokenIn        string `json:"tokenIn"`
	TokenOut       string `json:"tokenOut"`
	AmountIn       string `json:"amountIn" example:"100.0"`
	ChainIDIn      int64  `json:"chainIdIn" example:"137"`
	ChainIDOut     int64  `json:"chainIdOut" example:"137"`
	PayGasFeeToken string `json:"payGasFeeToken,omitempty"`
}

func (b SwapQuoteRequestBody) ToRequest(walletAddress string) notus.SwapQuoteRequest {
	return notus.SwapQuoteRequest{
		WalletAddress:  walletAddress,
		TokenIn:        b.TokenIn,
		TokenOut:       b.TokenOut,
		AmountIn:       b.AmountIn,
		ChainIDIn:      b.ChainIDIn,
		ChainIDOut:     b.ChainIDOut,
		PayGasFeeToken: b.PayGasFeeToken,
	}
}

// QuoteResponse returns a time-bound quote
// swagger:model QuoteResponse
type QuoteResponse struct {
	QuoteID           string          `json:"quoteId"`
	UserOperationHash string          `json:"userOperationHash"`
	AmountIn          decimal.Decimal `json:"amountIn"`
	AmountOut         decimal.Decimal `json:"amountOut"`
	EstimatedFee      decimal.Decimal `json:"estimatedFee"`
	ExpiresAt         time.Time       `json:"expiresAt"`
}

func fromQuote(q *notus.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:           q.QuoteID,
		UserOperationHash: q.UserOperationHash,
		AmountIn:          q.AmountIn,
		AmountOut:         q.AmountOut,
		EstimatedFee:      q.EstimatedFee,
		ExpiresAt:         q.ExpiresAt,
	}
}

// ExecuteRequestBody is the payload to execute a signed quote
// swagger:model ExecuteRequestBody
type ExecuteRequestBody struct {
	QuoteID           string    `json:"quoteId"`
	UserOperationHash string    `json:"userOperationHash"`
	Signature         string    `json:"signature"`
	ExpiresAt         time.Time `json:"expiresAt"`
}

func (b ExecuteRequestBody) ToRequest() domain.ExecuteRequest {
	return domain.ExecuteRequest{
		QuoteID:           b.QuoteID,
		UserOperationHash: b.UserOperationHash,
		Signature:         b.Signature,
		ExpiresAt:         b.ExpiresAt,
	}
}

// UserOperationResponse returns the submitted user operation
// swagger:model UserOperationResponse
type UserOperationResponse struct {
	UserOperationHash string `json:"userOperationHash"`
	TransactionHash   string `json:"transactionHash,omitempty"`
	Status            string `json:"status,omitempty"`
}

func fromUserOperation(op *notus.UserOperation) UserOperationResponse {
	return UserOperationResponse{
		UserOperationHash: op.UserOperationHash,
		TransactionHash:   op.TransactionHash,
		Status:            op.Status,
	}
}
