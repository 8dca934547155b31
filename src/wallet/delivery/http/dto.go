package http

import (
	"time"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/wallet/domain"
	"github.com/shopspring/decimal"
)

// WalletResponse is the smart wallet as returned to clients
// swagger:model WalletResponse
type WalletResponse struct {
	ID             string         `json:"id"`
	WalletAddress  string         `json:"walletAddress"`
	Factory        string         `json:"factory"`
	DeployedChains []int64        `json:"deployedChains"`
	RegisteredAt   *time.Time     `json:"registeredAt"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

func fromWallet(w *notus.Wallet) WalletResponse {
	return WalletResponse{
		ID:             w.ID,
		WalletAddress:  w.WalletAddress,
		Factory:        w.Factory,
		DeployedChains: w.DeployedChains,
		RegisteredAt:   w.RegisteredAt,
		Metadata:       w.Metadata,
	}
}

// PortfolioResponse is the balance snapshot with its USD total
// swagger:model PortfolioResponse
type PortfolioResponse struct {
	Tokens        []notus.Token   `json:"tokens"`
	TotalValueUSD decimal.Decimal `json:"totalValueUsd"`
}

func fromPortfolio(p *domain.Portfolio) PortfolioResponse {
	return PortfolioResponse{
		Tokens:        p.Tokens,
		TotalValueUSD: p.TotalValueUSD,
	}
}

// HistoryResponse is one page of past operations
// swagger:model HistoryResponse
type HistoryResponse struct {
	Transactions []notus.Transaction `json:"transactions"`
	NextLastID   string              `json:"nextLastId"`
}

func fromHistory(h *notus.WalletHistory) HistoryResponse {
	return HistoryResponse{
		Transactions: h.Transactions,
		NextLastID:   h.NextLastID,
	}
}

// UpdateMetadataRequestBody replaces the wallet metadata bag
// swagger:model UpdateMetadataRequestBody
type UpdateMetadataRequestBody struct {
	Metadata map[string]any `json:"metadata"`
}
