package service

import (
	"context"
	"errors"
	"strings"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/logger"
	"github.com/lumapay/luma/src/pool/domain"
	"github.com/shopspring/decimal"
)

var _ domain.PoolAdapter = (*Service)(nil)

// Service validates pool listing and liquidity parameters before delegating.
type Service struct {
	adapter domain.PoolAdapter
	logger  *logger.Logger
}

func NewService(adapter domain.PoolAdapter, logg *logger.Logger) *Service {
	return &Service{adapter: adapter, logger: logg}
}

func (s *Service) List(ctx context.Context, in notus.ListPoolsRequest) ([]notus.Pool, error) {
	if in.Take < 1 || in.Take > 100 {
		return nil, errors.New("take must be between 1 and 100")
	}
	if in.Offset < 0 {
		return nil, errors.New("offset must not be negative")
	}
	return s.adapter.List(ctx, in)
}

func (s *Service) Get(ctx context.Context, poolID string) (*notus.Pool, error) {
	if poolID == "" {
		return nil, errors.New("poolId is required")
	}
	return s.adapter.Get(ctx, poolID)
}

func (s *Service) HistoricalData(ctx context.Context, poolID string, rangeDays int) ([]notus.PoolHistoricalPoint, error) {
	if poolID == "" {
		return nil, errors.New("poolId is required")
	}
	if rangeDays < 1 || rangeDays > 365 {
		return nil, errors.New("rangeDays must be between 1 and 365")
	}
	return s.adapter.HistoricalData(ctx, poolID, rangeDays)
}

func (s *Service) CreateLiquidity(ctx context.Context, in notus.CreateLiquidityRequest) (*notus.Quote, error) {
	if in.WalletAddress == "" {
		return nil, errors.New("walletAddress is required")
	}
	if in.ChainID <= 0 {
		return nil, errors.New("chainId is required")
	}
	if in.Token0 == "" || in.Token1 == "" {
		return nil, errors.New("token0 and token1 are required")
	}
	if strings.EqualFold(in.Token0, in.Token1) {
		return nil, errors.New("token0 and token1 must be distinct")
	}
	if _, err := positiveDecimal("token0Amount", in.Token0Amount); err != nil {
		return nil, err
	}
	if _, err := positiveDecimal("token1Amount", in.Token1Amount); err != nil {
		return nil, err
	}
	minPrice, err := positiveDecimal("minPrice", in.MinPrice)
	if err != nil {
		return nil, err
	}
	maxPrice, err := positiveDecimal("maxPrice", in.MaxPrice)
	if err != nil {
		return nil, err
	}
	if minPrice.GreaterThanOrEqual(maxPrice) {
		return nil, errors.New("minPrice must be lower than maxPrice")
	}
	if in.SlippageTolerance != nil && (*in.SlippageTolerance < 0 || *in.SlippageTolerance > 100) {
		return nil, errors.New("slippageTolerance must be between 0 and 100")
	}
	return s.adapter.CreateLiquidity(ctx, in)
}

func (s *Service) ChangeLiquidity(ctx context.Context, in notus.ChangeLiquidityRequest) (*notus.Quote, error) {
	if in.WalletAddress == "" {
		return nil, errors.New("walletAddress is required")
	}
	if in.TokenID == "" {
		return nil, errors.New("tokenId is required")
	}
	if in.SlippageTolerance != nil && (*in.SlippageTolerance < 0 || *in.SlippageTolerance > 100) {
		return nil, errors.New("slippageTolerance must be between 0 and 100")
	}
	return s.adapter.ChangeLiquidity(ctx, in)
}

func (s *Service) CollectFees(ctx context.Context, in notus.CollectFeesRequest) (*notus.Quote, error) {
	if in.WalletAddress == "" {
		return nil, errors.New("walletAddress is required")
	}
	if in.TokenID == "" {
		return nil, errors.New("tokenId is required")
	}
	return s.adapter.CollectFees(ctx, in)
}

func positiveDecimal(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, errors.New(field + " is required")
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errors.New(field + " must be a decimal number")
	}
	if d.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.New(field + " must be greater than 0")
	}
	return d, nil
}
