package http

import (
	"time"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/shopspring/decimal"
)

// DepositQuoteRequestBody is the payload to quote a PIX deposit
// swagger:model DepositQuoteRequestBody
type DepositQuoteRequestBody struct {
	IndividualID          string `json:"individualId"`
	Amount                string `json:"amountToSendInFiatCurrency" example:"100.00"`
	SendFiatCurrency      string `json:"sendFiatCurrency" example:"BRL"`
	ReceiveCryptoCurrency string `json:"receiveCryptoCurrency" example:"USDC"`
	PaymentMethodToSend   string `json:"paymentMethodToSend" example:"PIX"`
	ChainID               int64  `json:"chainId" example:"137"`
}

func (b DepositQuoteRequestBody) ToRequest(walletAddress string) notus.DepositQuoteRequest {
	return notus.DepositQuoteRequest{
		WalletAddress:         walletAddress,
		IndividualID:          b.IndividualID,
		Amount:                b.Amount,
		SendFiatCurrency:      b.SendFiatCurrency,
		ReceiveCryptoCurrency: b.ReceiveCryptoCurrency,
		PaymentMethodToSend:   b.PaymentMethodToSend,
		ChainID:               b.ChainID,
	}
}

// WithdrawQuoteRequestBody is the payload to quote a PIX withdrawal
// swagger:model WithdrawQuoteRequestBody
type WithdrawQuoteRequestBody struct {
	IndividualID           string `json:"individualId"`
	Amount                 string `json:"amountToSendInCryptoCurrency" example:"50.00"`
	SendCryptoCurrency     string `json:"sendCryptoCurrency" example:"USDC"`
	ReceiveFiatCurrency    string `json:"receiveFiatCurrency" example:"BRL"`
	PaymentMethodToReceive string `json:"paymentMethodToReceive" example:"PIX"`
	PixKey                 string `json:"pixKey"`
	ChainID                int64  `json:"chainId" example:"137"`
}

func (b WithdrawQuoteRequestBody) ToRequest(walletAddress string) notus.WithdrawQuoteRequest {
	return notus.WithdrawQuoteRequest{
		WalletAddress:          walletAddress,
		IndividualID:           b.IndividualID,
		Amount:                 b.Amount,
		SendCryptoCurrency:     b.SendCryptoCurrency,
		ReceiveFiatCurrency:    b.ReceiveFiatCurrency,
		PaymentMethodToReceive: b.PaymentMethodToReceive,
		PixKey:                 b.PixKey,
		ChainID:                b.ChainID,
	}
}

// FiatQuoteResponse returns a fiat conversion quote
// swagger:model FiatQuoteResponse
type FiatQuoteResponse struct {
	QuoteID                 string          `json:"quoteId"`
	AmountToSendInFiat      decimal.Decimal `json:"amountToSendInFiatCurrency"`
	AmountToReceiveInCrypto decimal.Decimal `json:"amountToReceiveInCryptoCurrency"`
	EstimatedFee            decimal.Decimal `json:"estimatedFee"`
	ExpiresAt               time.Time       `json:"expiresAt"`
}

func fromFiatQuote(q *notus.FiatQuote) FiatQuoteResponse {
	return FiatQuoteResponse{
		QuoteID:                 q.QuoteID,
		AmountToSendInFiat:      q.AmountToSendInFiat,
		AmountToReceiveInCrypto: q.AmountToReceiveInCrypto,
		EstimatedFee:            q.EstimatedFee,
		ExpiresAt:               q.ExpiresAt,
	}
}

// CreateDepositRequestBody turns an accepted quote into a deposit order
// swagger:model CreateDepositRequestBody
type CreateDepositRequestBody struct {
	QuoteID string `json:"quoteId"`
	ChainID int64  `json:"chainId" example:"137"`
}

// DepositOrderResponse carries the PIX payment details
// swagger:model DepositOrderResponse
type DepositOrderResponse struct {
	OrderID       string    `json:"orderId"`
	ExpiresAt     time.Time `json:"expiresAt"`
	PixKey        string    `json:"pixKey"`
	QRCodeBase64  string    `json:"base64QrCode"`
	PaymentMethod string    `json:"paymentMethod"`
}

func fromDepositOrder(o *notus.FiatDepositOrder) DepositOrderResponse {
	return DepositOrderResponse{
		OrderID:       o.OrderID,
		ExpiresAt:     o.ExpiresAt,
		PixKey:        o.PixKey,
		QRCodeBase64:  o.QRCodeBase64,
		PaymentMethod: o.PaymentMethod,
	}
}

// CreateWithdrawRequestBody turns an accepted quote into a withdrawal order
// swagger:model CreateWithdrawRequestBody
type CreateWithdrawRequestBody struct {
	QuoteID string `json:"quoteId"`
	ChainID int64  `json:"chainId" example:"137"`
}

// WithdrawOrderResponse references the user operation to sign
// swagger:model WithdrawOrderResponse
type WithdrawOrderResponse struct {
	OrderID           string    `json:"orderId"`
	UserOperationHash string    `json:"userOperationHash"`
	ExpiresAt         time.Time `json:"expiresAt"`
}

func fromWithdrawOrder(o *notus.FiatWithdrawOrder) WithdrawOrderResponse {
	return WithdrawOrderResponse{
		OrderID:           o.OrderID,
		UserOperationHash: o.UserOperationHash,
		ExpiresAt:         o.ExpiresAt,
	}
}
