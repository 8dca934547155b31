package notus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// --- Liquidity pools ---

type PoolToken struct {
	Address  string          `json:"address"`
	Symbol   string          `json:"symbol"`
	Decimals int             `json:"decimals"`
	PriceUSD decimal.Decimal `json:"priceUsd"`
}

type PoolStats struct {
	Volume24hUSD decimal.Decimal `json:"volume24hUsd"`
	Fees24hUSD   decimal.Decimal `json:"fees24hUsd"`
	APR          decimal.Decimal `json:"apr"`
}

// Pool is a read-only external resource; nothing here is locally mutated.
type Pool struct {
	ID                  string          `json:"id"`
	Address             string          `json:"address"`
	Chain               Chain           `json:"chain"`
	Provider            string          `json:"provider"`
	Fee                 decimal.Decimal `json:"fee"`
	TotalValueLockedUSD decimal.Decimal `json:"totalValueLockedUsd"`
	Tokens              []PoolToken     `json:"tokens"`
	Stats               PoolStats       `json:"stats"`
}

type poolsEnvelope struct {
	Pools []Pool `json:"pools"`
}

type ListPoolsRequest struct {
	Take    int
	Offset  int
	ChainID int64
}

func (c *Client) ListPools(ctx context.Context, in ListPoolsRequest) ([]Pool, error) {
	q := url.Values{}
	if in.Take > 0 {
		q.Set("take", fmt.Sprint(in.Take))
	}
	q.Set("offset", fmt.Sprint(in.Offset))
	if in.ChainID > 0 {
		q.Set("chainId", fmt.Sprint(in.ChainID))
	}
	env, err := doJSON[poolsEnvelope](c, ctx, http.MethodGet, "/liquidity/pools", q, nil)
	if err != nil {
		return nil, err
	}
	return env.Pools, nil
}

func (c *Client) GetPool(ctx context.Context, poolID string) (*Pool, error) {
	p := fmt.Sprintf("/liquidity/pools/%s", url.PathEscape(poolID))
	out, err := doJSON[Pool](c, ctx, http.MethodGet, p, nil, nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type PoolHistoricalPoint struct {
	Date                string          `json:"date"`
	TotalValueLockedUSD decimal.Decimal `json:"totalValueLockedUsd"`
	VolumeUSD           decimal.Decimal `json:"volumeUsd"`
	FeesUSD             decimal.Decimal `json:"feesUsd"`
}

type historicalEnvelope struct {
	Points []PoolHistoricalPoint `json:"points"`
}

func (c *Client) GetPoolHistoricalData(ctx context.Context, poolID string, rangeDays int) ([]PoolHistoricalPoint, error) {
	p := fmt.Sprintf("/liquidity/pools/%s/historical-data", url.PathEscape(poolID))
	q := url.Values{"rangeDays": {fmt.Sprint(rangeDays)}}
	env, err := doJSON[historicalEnvelope](c, ctx, http.MethodGet, p, q, nil)
	if err != nil {
		return nil, err
	}
	return env.Points, nil
}

// --- Liquidity amounts ---

type CreateLiquidityRequest struct {
	WalletAddress     string `json:"walletAddress"`
	ChainID           int64  `json:"chainId"`
	PoolID            string `json:"poolId,omitempty"`
	Token0            string `json:"token0"`
	Token1            string `json:"token1"`
	Token0Amount      string `json:"token0Amount"`
	Token1Amount      string `json:"token1Amount"`
	MinPrice          string `json:"minPrice"`
	MaxPrice          string `json:"maxPrice"`
	SlippageTolerance *int   `json:"slippageTolerance,omitempty"`
	PayGasFeeToken    string `json:"payGasFeeToken,omitempty"`
}

func (c *Client) CreateLiquidity(ctx context.Context, in CreateLiquidityRequest) (*Quote, error) {
	out, err := doJSON[Quote](c, ctx, http.MethodPost, "/liquidity/create", nil, in)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type ChangeLiquidityRequest struct {
	WalletAddress     string `json:"walletAddress"`
	ChainID           int64  `json:"chainId"`
	TokenID           string `json:"tokenId"`
	Token0Amount      string `json:"token0Amount,omitempty"`
	Token1Amount      string `json:"token1Amount,omitempty"`
	SlippageTolerance *int   `json:"slippageTolerance,omitempty"`
	PayGasFeeToken    string `json:"payGasFeeToken,omitempty"`
}

func (c *Client) ChangeLiquidity(ctx context.Context, in ChangeLiquidityRequest) (*Quote, error) {
	out, err := doJSON[Quote](c, ctx, http.MethodPost, "/liquidity/change", nil, in)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type CollectFeesRequest struct {
	WalletAddress  string `json:"walletAddress"`
	ChainID        int64  `json:"chainId"`
	TokenID        string `json:"tokenId"`
	PayGasFeeToken string `json:"payGasFeeToken,omitempty"`
}

func (c *Client) CollectFees(ctx context.Context, in CollectFeesRequest) (*Quote, error) {
	out, err := doJSON[Quote](c, ctx, http.MethodPost, "/liquidity/collect", nil, in)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
