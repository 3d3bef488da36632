// Package domain provides definitions of all entities.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrCurrencyNotFound indicates that the currency is not found.
	ErrCurrencyNotFound = errors.New("currency not found")
)

// Currency holds a single exchangeable currency. The symbol is the stable
// identity; the exchange rate relates the currency to the reference unit and
// must be positive.
type Currency struct {
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	ExchangeRate float64 `json:"exchange_rate"`
}

// Price is an amount of some currency. It is never persisted on its own,
// only embedded in an offer.
type Price struct {
	Amount   int64    `json:"amount"`
	Currency Currency `json:"currency"`
}

// ConvertTo converts the price into the target currency, rounding to whole
// units. A nonzero price never converts to zero; a zero price stays zero.
func (p Price) ConvertTo(target Currency) (Price, error) {
	if p.Currency.ExchangeRate <= 0 || target.ExchangeRate <= 0 {
		return Price{}, ErrCurrencyNotFound
	}

	converted := decimal.NewFromInt(p.Amount).
		Mul(decimal.NewFromFloat(target.ExchangeRate)).
		Div(decimal.NewFromFloat(p.Currency.ExchangeRate)).
		Round(0).
		IntPart()

	if converted < 1 && p.Amount >= 1 {
		converted = 1
	}

	return Price{Amount: converted, Currency: target}, nil
}
