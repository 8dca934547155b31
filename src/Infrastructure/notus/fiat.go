package notus

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// --- Fiat (PIX) deposits and withdrawals ---

type FiatQuote struct {
	QuoteID                 string          `json:"quoteId"`
	AmountToSendInFiat      decimal.Decimal `json:"amountToSendInFiatCurrency"`
	AmountToReceiveInCrypto decimal.Decimal `json:"amountToReceiveInCryptoCurrency"`
	EstimatedFee            decimal.Decimal `json:"estimatedFee"`
	ExpiresAt               time.Time       `json:"expiresAt"`
}

type DepositQuoteRequest struct {
	WalletAddress         string `json:"walletAddress"`
	IndividualID          string `json:"individualId"`
	Amount                string `json:"amountToSendInFiatCurrency"`
	SendFiatCurrency      string `json:"sendFiatCurrency"`
	ReceiveCryptoCurrency string `json:"receiveCryptoCurrency"`
	PaymentMethodToSend   string `json:"paymentMethodToSend"`
	ChainID               int64  `json:"chainId"`
}

func (c *Client) CreateDepositQuote(ctx context.Context, in DepositQuoteRequest) (*FiatQuote, error) {
	out, err := doJSON[FiatQuote](c, ctx, http.MethodPost, "/fiat/deposit/quote", nil, in)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// FiatDepositOrder carries the PIX payment details the user must fulfil before
// the quote expires.
type FiatDepositOrder struct {
	OrderID       string    `json:"orderId"`
	ExpiresAt     time.Time `json:"expiresAt"`
	PixKey        string    `json:"pixKey"`
	QRCodeBase64  string    `json:"base64QrCode"`
	PaymentMethod string    `json:"paymentMethod"`
}

type CreateDepositOrderRequest struct {
	QuoteID       string `json:"quoteId"`
	WalletAddress string `json:"walletAddress"`
	ChainID       int64  `json:"chainId"`
}

func (c *Client) CreateDepositOrder(ctx context.Context, in CreateDepositOrderRequest) (*FiatDepositOrder, error) {
	out, err := doJSON[FiatDepositOrder](c, ctx, http.MethodPost, "/fiat/deposit", nil, in)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type WithdrawQuoteRequest struct {
	WalletAddress          string `json:"walletAddress"`
	IndividualID           string `json:"individualId"`
	Amount                 string `json:"amountToSendInCryptoCurrency"`
	SendCryptoCurrency     string `json:"sendCryptoCurrency"`
	ReceiveFiatCurrency    string `json:"receiveFiatCurrency"`
	PaymentMethodToReceive string `json:"paymentMethodToReceive"`
	PixKey                 string `json:"pixKey"`
	ChainID                int64  `json:"chainId"`
}

func (c *Client) CreateWithdrawQuote(ctx context.Context, in WithdrawQuoteRequest) (*FiatQuote, error) {
	out, err := doJSON[FiatQuote](c, ctx, http.MethodPost, "/fiat/withdraw/quote", nil, in)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// FiatWithdrawOrder references the user operation that must be signed and
// executed to move the crypto leg of the withdrawal.
type FiatWithdrawOrder struct {
	OrderID           string    `json:"orderId"`
	UserOperationHash string    `json:"userOperationHash"`
	ExpiresAt         time.Time `json:"expiresAt"`
}

type CreateWithdrawOrderRequest struct {
	QuoteID       string `json:"quoteId"`
	WalletAddress string `json:"walletAddress"`
	ChainID       int64  `json:"chainId"`
}

func (c *Client) CreateWithdrawOrder(ctx context.Context, in CreateWithdrawOrderRequest) (*FiatWithdrawOrder, error) {
	out, err := doJSON[FiatWithdrawOrder](c, ctx, http.MethodPost, "/fiat/withdraw", nil, in)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
