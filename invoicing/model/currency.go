package model

import (
	"github.com/shopspring/decimal"
)

// ConversionQuery asks the exchange-rate provider for a conversion between
// two currencies. A non-nil Rate is an explicit override that wins over the
// provider's own rate.
type ConversionQuery struct {
	From string           `json:"from"`
	To   string           `json:"to"`
	Rate *decimal.Decimal `json:"rate,omitempty"`
}

// CurrencyConversion is a resolved exchange rate from one currency to
// another.
type CurrencyConversion struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate decimal.Decimal `json:"rate"`
}

// SameCurrencyConversion returns the identity conversion for a currency.
func SameCurrencyConversion(currency string) CurrencyConversion {
	return CurrencyConversion{From: currency, To: currency, Rate: decimal.NewFromInt(1)}
}

// Convert applies the exchange rate to an amount. The result is not rounded;
// rounding to the target currency's minor unit is the caller's concern.
func (c CurrencyConversion) Convert(amount decimal.Decimal) decimal.Decimal {
	if c.From == c.To {
		return amount
	}
	return amount.Mul(c.Rate)
}

// CurrencyMetadata records the original amount behind a converted one, kept
// on vouchers and transactions for traceability.
type CurrencyMetadata struct {
	OriginalAmount   decimal.Decimal `json:"original_amount"`
	OriginalCurrency string          `json:"original_currency"`
	ExchangeRate     decimal.Decimal `json:"exchange_rate"`
}
