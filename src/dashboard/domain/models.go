package domain

import (
	"context"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	walletdomain "github.com/lumapay/luma/src/wallet/domain"
)

// Overview is the aggregated home screen payload: balances, recent activity
// and the chain catalog in one response.
type Overview struct {
	Portfolio          *walletdomain.Portfolio `json:"portfolio"`
	RecentTransactions []notus.Transaction     `json:"recentTransactions"`
	Chains             []notus.Chain           `json:"chains"`
}

type DashboardUseCase interface {
	Overview(ctx context.Context, walletAddress string) (*Overview, error)
}
