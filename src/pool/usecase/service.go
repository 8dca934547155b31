package usecase

import (
	"context"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/logger"
	"github.com/lumapay/luma/src/pool/domain"
)

var _ domain.PoolUseCase = (*UseCase)(nil)

// Default slippage applied when the caller leaves it unset. Matches the value
// the consumer UI pre-fills.
const defaultSlippageTolerance = 1

// UseCase exposes pool reads and liquidity operations to the delivery layer.
// Pools are external read-only resources; the only local touch is defaulting
// the slippage input.
type UseCase struct {
	pools  domain.PoolAdapter
	logger *logger.Logger
}

func NewUseCase(pools domain.PoolAdapter, logg *logger.Logger) *UseCase {
	return &UseCase{pools: pools, logger: logg}
}

func (u *UseCase) List(ctx context.Context, in notus.ListPoolsRequest) ([]notus.Pool, error) {
	return u.pools.List(ctx, in)
}

func (u *UseCase) Get(ctx context.Context, poolID string) (*notus.Pool, error) {
	return u.pools.Get(ctx, poolID)
}

func (u *UseCase) HistoricalData(ctx context.Context, poolID string, rangeDays int) ([]notus.PoolHistoricalPoint, error) {
	return u.pools.HistoricalData(ctx, poolID, rangeDays)
}

func (u *UseCase) CreateLiquidity(ctx context.Context, in notus.CreateLiquidityRequest) (*notus.Quote, error) {
	if in.SlippageTolerance == nil {
		in.SlippageTolerance = notus.Int(defaultSlippageTolerance)
	}
	return u.pools.CreateLiquidity(ctx, in)
}

func (u *UseCase) ChangeLiquidity(ctx context.Context, in notus.ChangeLiquidityRequest) (*notus.Quote, error) {
	if in.SlippageTolerance == nil {
		in.SlippageTolerance = notus.Int(defaultSlippageTolerance)
	}
	return u.pools.ChangeLiquidity(ctx, in)
}

func (u *UseCase) CollectFees(ctx context.Context, in notus.CollectFeesRequest) (*notus.Quote, error) {
	return u.pools.CollectFees(ctx, in)
}
