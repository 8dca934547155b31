package domain

import (
	"context"

	"github.com/lumapay/luma/src/Infrastructure/notus"
)

// PoolAdapter is the port over the upstream liquidity resource.
type PoolAdapter interface {
	List(ctx context.Context, in notus.ListPoolsRequest) ([]notus.Pool, error)
	Get(ctx context.Context, poolID string) (*notus.Pool, error)
	HistoricalData(ctx context.Context, poolID string, rangeDays int) ([]notus.PoolHistoricalPoint, error)
	CreateLiquidity(ctx context.Context, in notus.CreateLiquidityRequest) (*notus.Quote, error)
	ChangeLiquidity(ctx context.Context, in notus.ChangeLiquidityRequest) (*notus.Quote, error)
	CollectFees(ctx context.Context, in notus.CollectFeesRequest) (*notus.Quote, error)
}

type PoolUseCase interface {
	List(ctx context.Context, in notus.ListPoolsRequest) ([]notus.Pool, error)
	Get(ctx context.Context, poolID string) (*notus.Pool, error)
	HistoricalData(ctx context.Context, poolID string, rangeDays int) ([]notus.PoolHistoricalPoint, error)
	CreateLiquidity(ctx context.Context, in notus.CreateLiquidityRequest) (*notus.Quote, error)
	ChangeLiquidity(ctx context.Context, in notus.ChangeLiquidityRequest) (*notus.Quote, error)
	CollectFees(ctx context.Context, in notus.CollectFeesRequest) (*notus.Quote, error)
}
