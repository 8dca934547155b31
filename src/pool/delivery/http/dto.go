package http

import (
	"time"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/shopspring/decimal"
)

// swagger:model PoolsResponse
type PoolsResponse struct {
	Pools []notus.Pool `json:"pools"`
}

// swagger:model HistoricalDataResponse
type HistoricalDataResponse struct {
	Points []notus.PoolHistoricalPoint `json:"points"`
}

// CreateLiquidityRequestBody is the payload to quote a new position
// swagger:model CreateLiquidityRequestBody
type CreateLiquidityRequestBody struct {
	ChainID           int64  `json:"chainId" example:"137"`
	PoolID            string `json:"poolId,omitempty"`
	Token0            string `json:"token0"`
	Token1            string `json:"token1"`
	Token0Amount      string `json:"token0Amount" example:"100.0"`
	Token1Amount      string `json:"token1Amount" example:"0.05"`
	MinPrice          string `json:"minPrice"`
	MaxPrice          string `json:"maxPrice"`
	SlippageTolerance *int   `json:"slippageTolerance,omitempty"`
	PayGasFeeToken    string `json:"payGasFeeToken,omitempty"`
}

func (b CreateLiquidityRequestBody) ToRequest(walletAddress string) notus.CreateLiquidityRequest {
	return notus.CreateLiquidityRequest{
		WalletAddress:     walletAddress,
		ChainID:           b.ChainID,
		PoolID:            b.PoolID,
		Token0:            b.Token0,
		Token1:            b.Token1,
		Token0Amount:      b.Token0Amount,
		Token1Amount:      b.Token1Amount,
		MinPrice:          b.MinPrice,
		MaxPrice:          b.MaxPrice,
		SlippageTolerance: b.SlippageTolerance,
		PayGasFeeToken:    b.PayGasFeeToken,
	}
}

// ChangeLiquidityRequestBody is the payload to quote a position change
// swagger:model ChangeLiquidityRequestBody
type ChangeLiquidityRequestBody struct {
	ChainID           int64  `json:"chainId" example:"137"`
	TokenID           string `json:"tokenId"`
	Token0Amount      string `json:"token0Amount,omitempty"`
	Token1Amount      string `json:"token1Amount,omitempty"`
	SlippageTolerance *int   `json:"slippageTolerance,omitempty"`
	PayGasFeeToken    string `json:"payGasFeeToken,omitempty"`
}

func (b ChangeLiquidityRequestBody) ToRequest(walletAddress string) notus.ChangeLiquidityRequest {
	return notus.ChangeLiquidityRequest{
		WalletAddress:     walletAddress,
		ChainID:           b.ChainID,
		TokenID:           b.TokenID,
		Token0Amount:      b.Token0Amount,
		Token1Amount:      b.Token1Amount,
		SlippageTolerance: b.SlippageTolerance,
		PayGasFeeToken:    b.PayGasFeeToken,
	}
}

// CollectFeesRequestBody is the payload to quote a fee collection
// swagger:model CollectFeesRequestBody
type CollectFeesRequestBody struct {
	ChainID        int64  `json:"chainId" example:"137"`
	TokenID        string `json:"tokenId"`
	PayGasFeeToken string `json:"payGasFeeToken,omitempty"`
}

func (b CollectFeesRequestBody) ToRequest(walletAddress string) notus.CollectFeesRequest {
	return notus.CollectFeesRequest{
		WalletAddress:  walletAddress,
		ChainID:        b.ChainID,
		TokenID:        b.TokenID,
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
