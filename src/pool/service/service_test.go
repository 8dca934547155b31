package service

import (
	"context"
	"testing"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/logger"
	"github.com/lumapay/luma/src/pool/domain"
)

type recordingPools struct {
	listCalls       int
	getCalls        int
	historicalCalls int
	createCalls     int
	changeCalls     int
	collectCalls    int
}

var _ domain.PoolAdapter = (*recordingPools)(nil)

func (r *recordingPools) List(ctx context.Context, in notus.ListPoolsRequest) ([]notus.Pool, error) {
	r.listCalls++
	return nil, nil
}

func (r *recordingPools) Get(ctx context.Context, poolID string) (*notus.Pool, error) {
	r.getCalls++
	return &notus.Pool{ID: poolID}, nil
}

func (r *recordingPools) HistoricalData(ctx context.Context, poolID string, rangeDays int) ([]notus.PoolHistoricalPoint, error) {
	r.historicalCalls++
	return nil, nil
}

func (r *recordingPools) CreateLiquidity(ctx context.Context, in notus.CreateLiquidityRequest) (*notus.Quote, error) {
	r.createCalls++
	return &notus.Quote{}, nil
}

func (r *recordingPools) ChangeLiquidity(ctx context.Context, in notus.ChangeLiquidityRequest) (*notus.Quote, error) {
	r.changeCalls++
	return &notus.Quote{}, nil
}

func (r *recordingPools) CollectFees(ctx context.Context, in notus.CollectFeesRequest) (*notus.Quote, error) {
	r.collectCalls++
	return &notus.Quote{}, nil
}

func validCreate() notus.CreateLiquidityRequest {
	return notus.CreateLiquidityRequest{
		WalletAddress: "0xsmart",
		ChainID:       137,
		Token0:        "0xusdc",
		Token1:        "0xweth",
		Token0Amount:  "100",
		Token1Amount:  "0.05",
		MinPrice:      "1500",
		MaxPrice:      "2500",
	}
}

func TestListBounds(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name string
		in   notus.ListPoolsRequest
	}{
		{"TakeZero", notus.ListPoolsRequest{Take: 0}},
		{"TakeTooLarge", notus.ListPoolsRequest{Take: 101}},
		{"NegativeOffset", notus.ListPoolsRequest{Take: 10, Offset: -1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recordingPools{}
			svc := NewService(rec, logger.New("dev"))
			if _, err := svc.List(ctx, tc.in); err == nil {
				t.Error("expected error")
			}
			if rec.listCalls != 0 {
				t.Error("adapter was called")
			}
		})
	}

	rec := &recordingPools{}
	svc := NewService(rec, logger.New("dev"))
	if _, err := svc.List(ctx, notus.ListPoolsRequest{Take: 100, Offset: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.listCalls != 1 {
		t.Errorf("adapter calls = %d, want 1", rec.listCalls)
	}
}

func TestHistoricalRange(t *testing.T) {
	ctx := context.Background()

	for _, days := range []int{0, -1, 366} {
		rec := &recordingPools{}
		svc := NewService(rec, logger.New("dev"))
		if _, err := svc.HistoricalData(ctx, "pool-1", days); err == nil {
			t.Errorf("rangeDays=%d: expected error", days)
		}
		if rec.historicalCalls != 0 {
			t.Errorf("rangeDays=%d: adapter was called", days)
		}
	}

	for _, days := range []int{1, 30, 365} {
		rec := &recordingPools{}
		svc := NewService(rec, logger.New("dev"))
		if _, err := svc.HistoricalData(ctx, "pool-1", days); err != nil {
			t.Errorf("rangeDays=%d: unexpected error: %v", days, err)
		}
	}
}

func TestCreateLiquidityGuards(t *testing.T) {
	ctx := context.Background()

	mutate := []struct {
		name string
		fn   func(*notus.CreateLiquidityRequest)
	}{
		{"SameToken", func(r *notus.CreateLiquidityRequest) { r.Token1 = r.Token0 }},
		{"SameTokenDifferentCase", func(r *notus.CreateLiquidityRequest) { r.Token1 = "0xUSDC" }},
		{"MissingToken1", func(r *notus.CreateLiquidityRequest) { r.Token1 = "" }},
		{"ZeroAmount0", func(r *notus.CreateLiquidityRequest) { r.Token0Amount = "0" }},
		{"NegativeAmount1", func(r *notus.CreateLiquidityRequest) { r.Token1Amount = "-3" }},
		{"MinEqualsMax", func(r *notus.CreateLiquidityRequest) { r.MinPrice, r.MaxPrice = "2000", "2000" }},
		{"MinAboveMax", func(r *notus.CreateLiquidityRequest) { r.MinPrice, r.MaxPrice = "2600", "2500" }},
		{"SlippageTooHigh", func(r *notus.CreateLiquidityRequest) { r.SlippageTolerance = notus.Int(101) }},
		{"SlippageNegative", func(r *notus.CreateLiquidityRequest) { r.SlippageTolerance = notus.Int(-1) }},
	}

	for _, tc := range mutate {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recordingPools{}
			svc := NewService(rec, logger.New("dev"))
			in := validCreate()
			tc.fn(&in)
			if _, err := svc.CreateLiquidity(ctx, in); err == nil {
				t.Error("expected error")
			}
			if rec.createCalls != 0 {
				t.Error("adapter was called")
			}
		})
	}

	t.Run("ValidRequestReachesAdapter", func(t *testing.T) {
		rec := &recordingPools{}
		svc := NewService(rec, logger.New("dev"))
		if _, err := svc.CreateLiquidity(ctx, validCreate()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.createCalls != 1 {
			t.Errorf("adapter calls = %d, want 1", rec.createCalls)
		}
	})
}
