package notus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// --- Wallets ---

// Wallet is the custodial account-abstraction wallet derived from a user's EOA.
// RegisteredAt transitions from null to a timestamp exactly once per EOA.
// Metadata is an open JSON bag owned by the application.
type Wallet struct {
	ID                 string         `json:"id"`
	WalletAddress      string         `json:"walletAddress"`
	AccountAbstraction string         `json:"accountAbstraction"`
	Factory            string         `json:"factory"`
	Implementation     string         `json:"implementation"`
	DeployedChains     []int64        `json:"deployedChains"`
	Salt               string         `json:"salt"`
	RegisteredAt       *time.Time     `json:"registeredAt"`
	Metadata           map[string]any `json:"metadata,omitempty"`
}

type walletEnvelope struct {
	Wallet Wallet `json:"wallet"`
}

type RegisterWalletRequest struct {
	ExternallyOwnedAccount string `json:"externallyOwnedAccount"`
	Factory                string `json:"factory,omitempty"`
	Salt                   string `json:"salt,omitempty"`
}

func (c *Client) RegisterWallet(ctx context.Context, in RegisterWalletRequest) (*Wallet, error) {
	env, err := doJSON[walletEnvelope](c, ctx, http.MethodPost, "/wallets/register", nil, in)
	if err != nil {
		return nil, err
	}
	return &env.Wallet, nil
}

type GetWalletRequest struct {
	ExternallyOwnedAccount string
	Factory                string
	Salt                   string
}

// GetWallet resolves the smart wallet for an EOA. The wallet address is
// deterministic, so this succeeds even before registration; RegisteredAt stays
// null until RegisterWallet has been called.
func (c *Client) GetWallet(ctx context.Context, in GetWalletRequest) (*Wallet, error) {
	q := url.Values{}
	q.Set("externallyOwnedAccount", in.ExternallyOwnedAccount)
	if in.Factory != "" {
		q.Set("factory", in.Factory)
	}
	if in.Salt != "" {
		q.Set("salt", in.Salt)
	}
	env, err := doJSON[walletEnvelope](c, ctx, http.MethodGet, "/wallets/address", q, nil)
	if err != nil {
		return nil, err
	}
	return &env.Wallet, nil
}

type walletsEnvelope struct {
	Wallets []Wallet `json:"wallets"`
}

type ListWalletsRequest struct {
	Take   int
	Offset int
}

// ListWallets pages through every wallet registered under the project's API key.
func (c *Client) ListWallets(ctx context.Context, in ListWalletsRequest) ([]Wallet, error) {
	q := url.Values{}
	if in.Take > 0 {
		q.Set("take", fmt.Sprint(in.Take))
	}
	q.Set("offset", fmt.Sprint(in.Offset))
	env, err := doJSON[walletsEnvelope](c, ctx, http.MethodGet, "/wallets", q, nil)
	if err != nil {
		return nil, err
	}
	return env.Wallets, nil
}

func (c *Client) GetWalletByAddress(ctx context.Context, walletAddress string) (*Wallet, error) {
	p := fmt.Sprintf("/wallets/%s", url.PathEscape(walletAddress))
	env, err := doJSON[walletEnvelope](c, ctx, http.MethodGet, p, nil, nil)
	if err != nil {
		return nil, err
	}
	return &env.Wallet, nil
}

// UpdateWalletMetadata replaces the wallet metadata bag. Callers are expected to
// have read the current bag and merged their keys into it first.
func (c *Client) UpdateWalletMetadata(ctx context.Context, walletAddress string, metadata map[string]any) (*Wallet, error) {
	p := fmt.Sprintf("/wallets/%s/metadata", url.PathEscape(walletAddress))
	body := map[string]any{"metadata": metadata}
	env, err := doJSON[walletEnvelope](c, ctx, http.MethodPatch, p, nil, body)
	if err != nil {
		return nil, err
	}
	return &env.Wallet, nil
}

// --- Portfolio ---

type Token struct {
	Address          string          `json:"address"`
	Symbol           string          `json:"symbol"`
	Name             string          `json:"name"`
	Decimals         int             `json:"decimals"`
	ChainID          int64           `json:"chainId"`
	LogoURL          string          `json:"logoUrl,omitempty"`
	Balance          string          `json:"balance"`
	BalanceFormatted string          `json:"balanceFormatted"`
	BalanceUSD       decimal.Decimal `json:"balanceUsd"`
}

type Portfolio struct {
	Tokens []Token `json:"tokens"`
}

func (c *Client) GetPortfolio(ctx context.Context, walletAddress string) (*Portfolio, error) {
	p := fmt.Sprintf("/wallets/%s/portfolio", url.PathEscape(walletAddress))
	out, err := doJSON[Portfolio](c, ctx, http.MethodGet, p, nil, nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// --- History ---

type Transaction struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	ChainID         int64           `json:"chainId"`
	WalletAddress   string          `json:"walletAddress"`
	Token           *Token          `json:"token,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	AmountUSD       decimal.Decimal `json:"amountUsd"`
	TransactionHash string          `json:"transactionHash"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// WalletHistory is a reverse-chronological page of past operations, paged with a
// take/lastId cursor.
type WalletHistory struct {
	Transactions []Transaction `json:"transactions"`
	NextLastID   string        `json:"nextLastId"`
}

type WalletHistoryRequest struct {
	WalletAddress string
	Take          int
	LastID        string
}

func (c *Client) GetWalletHistory(ctx context.Context, in WalletHistoryRequest) (*WalletHistory, error) {
	p := fmt.Sprintf("/wallets/%s/history", url.PathEscape(in.WalletAddress))
	q := url.Values{}
	if in.Take > 0 {
		q.Set("take", fmt.Sprint(in.Take))
	}
	if in.LastID != "" {
		q.Set("lastId", in.LastID)
	}
	out, err := doJSON[WalletHistory](c, ctx, http.MethodGet, p, q, nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
