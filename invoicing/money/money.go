// Package money provides the currency-aware arithmetic primitives under the
// proration and allocation engines: rounding to a currency's minor unit,
// percentage-of-amount, and splitting a total into weighted shares that sum
// back exactly.
package money

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// minorUnitDigits lists ISO 4217 currencies whose minor unit is not the
// common two digits.
var minorUnitDigits = map[string]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0,
	"KMF": 0, "KRW": 0, "PYG": 0, "RWF": 0, "UGX": 0, "VND": 0,
	"VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
}

// MinorUnitDigits returns the number of fraction digits in the currency's
// minor unit.
func MinorUnitDigits(currency string) int32 {
	if d, ok := minorUnitDigits[currency]; ok {
		return d
	}
	return 2
}

// Round rounds an amount to the currency's minor unit, half away from zero.
func Round(amount decimal.Decimal, currency string) decimal.Decimal {
	return amount.Round(MinorUnitDigits(currency))
}

// Percentage returns pct percent of amount, unrounded.
func Percentage(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

// Distribute splits total into one rounded share per weight so that the
// shares sum exactly to total. Shares are proportional to their weights; an
// all-zero weight set falls back to an equal split. The rounding leftover,
// if any, is absorbed by the last share.
func Distribute(total decimal.Decimal, weights []decimal.Decimal, currency string) []decimal.Decimal {
	if len(weights) == 0 {
		return nil
	}

	weightSum := decimal.Zero
	for _, w := range weights {
		weightSum = weightSum.Add(w)
	}
	if weightSum.IsZero() {
		equal := decimal.NewFromInt(1)
		weights = make([]decimal.Decimal, len(weights))
		for i := range weights {
			weights[i] = equal
		}
		weightSum = decimal.NewFromInt(int64(len(weights)))
	}

	shares := make([]decimal.Decimal, len(weights))
	allocated := decimal.Zero
	for i, w := range weights {
		shares[i] = Round(total.Mul(w).Div(weightSum), currency)
		allocated = allocated.Add(shares[i])
	}

	leftover := total.Sub(allocated)
	if !leftover.IsZero() {
		shares[len(shares)-1] = shares[len(shares)-1].Add(leftover)
	}
	return shares
}
