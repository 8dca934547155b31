package adapter

import (
	"context"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/pool/domain"
)

var _ domain.PoolAdapter = (*NotusAdapter)(nil)

// NotusAdapter binds the pool port to the notus client.
type NotusAdapter struct {
	client *notus.Client
}

func NewNotusAdapter(client *notus.Client) *NotusAdapter {
	return &NotusAdapter{client: client}
}

func (a *NotusAdapter) List(ctx context.Context, in notus.ListPoolsRequest) ([]notus.Pool, error) {
	return a.client.ListPools(ctx, in)
}

func (a *NotusAdapter) Get(ctx context.Context, poolID string) (*notus.Pool, error) {
	return a.client.GetPool(ctx, poolID)
}

func (a *NotusAdapter) HistoricalData(ctx context.Context, poolID string, rangeDays int) ([]notus.PoolHistoricalPoint, error) {
	return a.client.GetPoolHistoricalData(ctx, poolID, rangeDays)
}

func (a *NotusAdapter) CreateLiquidity(ctx context.Context, in notus.CreateLiquidityRequest) (*notus.Quote, error) {
	return a.client.CreateLiquidity(ctx, in)
}

func (a *NotusAdapter) ChangeLiquidity(ctx context.Context, in notus.ChangeLiquidityRequest) (*notus.Quote, error) {
	return a.client.ChangeLiquidity(ctx, in)
}

func (a *NotusAdapter) CollectFees(ctx context.Context, in notus.CollectFeesRequest) (*notus.Quote, error) {
	return a.client.CollectFees(ctx, in)
}
