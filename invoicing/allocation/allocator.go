// Package allocation converts invoice-line and adjustment fund distributions
// into system-currency allocations and re-zeroes rounding remainders at each
// fan-out point so every split sums exactly to its source amount.
package allocation

import (
	"github.com/shopspring/decimal"

	"github.com/acqware/invoicing/invoicing/model"
	"github.com/acqware/invoicing/invoicing/money"
)

// Allocation is one converted fund share produced for a voucher line.
type Allocation struct {
	FundID         string
	ExpenseClassID *string
	EncumbranceID  *string
	// SourceID is the invoice line id or adjustment id the share came from.
	SourceID string
	// Amount is in the system currency, rounded to its minor unit except for
	// the share that absorbed the remainder.
	Amount decimal.Decimal
}

// Allocate converts every invoice line's and every not-prorated invoice
// adjustment's fund distributions through the given conversion. Within each
// line or adjustment the allocated amounts sum exactly to that source's
// converted total: a negative rounding remainder is taken off the first
// share, a positive one lands on the last.
func Allocate(invoice *model.Invoice, lines []model.InvoiceLine, conv model.CurrencyConversion, systemCurrency string) []Allocation {
	var out []Allocation

	for _, line := range lines {
		if len(line.FundDistributions) == 0 {
			continue
		}
		total := money.Round(conv.Convert(line.Total), systemCurrency)
		out = append(out, allocateDistributions(line.ID, line.FundDistributions, total, conv, systemCurrency)...)
	}

	for _, adj := range invoice.Adjustments {
		if adj.IsProrated() || len(adj.FundDistributions) == 0 {
			continue
		}
		amount := adjustmentAmount(adj, invoice.SubTotal, invoice.Currency)
		total := money.Round(conv.Convert(amount), systemCurrency)
		out = append(out, allocateDistributions(adj.ID, adj.FundDistributions, total, conv, systemCurrency)...)
	}

	return out
}

func allocateDistributions(sourceID string, distributions []model.FundDistribution, total decimal.Decimal, conv model.CurrencyConversion, systemCurrency string) []Allocation {
	shares := make([]Allocation, len(distributions))
	allocated := decimal.Zero
	for i, fd := range distributions {
		var amount decimal.Decimal
		switch fd.DistributionType {
		case model.DistributionTypeAmount:
			amount = money.Round(conv.Convert(fd.Value), systemCurrency)
		default:
			amount = money.Round(money.Percentage(total, fd.Value), systemCurrency)
		}
		shares[i] = Allocation{
			FundID:         fd.FundID,
			ExpenseClassID: fd.ExpenseClassID,
			EncumbranceID:  fd.EncumbranceID,
			SourceID:       sourceID,
			Amount:         amount,
		}
		allocated = allocated.Add(amount)
	}

	remainder := total.Sub(allocated)
	switch {
	case remainder.IsNegative():
		shares[0].Amount = shares[0].Amount.Add(remainder)
	case remainder.IsPositive():
		shares[len(shares)-1].Amount = shares[len(shares)-1].Amount.Add(remainder)
	}
	return shares
}

func adjustmentAmount(adj model.Adjustment, subTotal decimal.Decimal, currency string) decimal.Decimal {
	if adj.Type == model.AdjustmentTypePercentage {
		return money.Round(money.Percentage(subTotal, adj.Value), currency)
	}
	return adj.Value
}
