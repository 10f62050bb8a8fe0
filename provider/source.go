package provider

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Source is an interface for getting the daily exchange rates from an external bank API.
// Source takes care of the request, the transport and decoding of the response
//
//go:generate mockgen -source source.go -destination mock_source.go -package provider
type Source interface {
	// FetchDay returns the exchange rates published for the calendar day of the given time
	FetchDay(ctx context.Context, day time.Time) (DayReport, error)
}

// DayReport is the exchange rates of one day as received from the bank
type DayReport struct {
	Date            string         `json:"date"`
	Bank            string         `json:"bank"`
	BaseCurrency    int            `json:"baseCurrency"`
	BaseCurrencyLit string         `json:"baseCurrencyLit"`
	ExchangeRate    []CurrencyRate `json:"exchangeRate"`
}

// CurrencyRate holds the retail and the National Bank rates of one currency.
// Either pair may be missing from the payload
type CurrencyRate struct {
	BaseCurrency   string              `json:"baseCurrency"`
	Currency       string              `json:"currency"`
	SaleRate       decimal.NullDecimal `json:"saleRate"`
	PurchaseRate   decimal.NullDecimal `json:"purchaseRate"`
	SaleRateNB     decimal.NullDecimal `json:"saleRateNB"`
	PurchaseRateNB decimal.NullDecimal `json:"purchaseRateNB"`
}
