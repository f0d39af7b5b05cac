// Package proration computes invoice and invoice-line totals and expands
// prorated invoice-level adjustments into derived per-line shares.
package proration

import (
	"github.com/shopspring/decimal"

	"github.com/acqware/invoicing/invoicing/model"
	"github.com/acqware/invoicing/invoicing/money"
)

// Totals is the recomputed financial summary of an invoice.
type Totals struct {
	SubTotal         decimal.Decimal
	AdjustmentsTotal decimal.Decimal
	Total            decimal.Decimal
}

// CalculateTotals computes the invoice subtotal, adjustments total and total
// from the current invoice and line state. It is pure: neither the invoice
// nor the lines are modified.
func CalculateTotals(invoice *model.Invoice, lines []model.InvoiceLine) Totals {
	inv := *invoice
	copied := make([]*model.InvoiceLine, len(lines))
	for i := range lines {
		line := lines[i]
		line.Adjustments = append([]model.Adjustment(nil), lines[i].Adjustments...)
		copied[i] = &line
	}
	return recalculate(&inv, copied)
}

// RecalculateTotals recomputes totals and derived adjustment shares in place
// on the invoice and its lines, and reports whether any of them changed.
// Callers use the report to decide whether a persisted update is needed.
func RecalculateTotals(invoice *model.Invoice, lines []*model.InvoiceLine) bool {
	before := snapshot(invoice, lines)
	recalculate(invoice, lines)
	return before != snapshot(invoice, lines)
}

func recalculate(invoice *model.Invoice, lines []*model.InvoiceLine) Totals {
	applyProratedAdjustments(invoice, lines)

	subTotal := decimal.Zero
	lineAdjustments := decimal.Zero
	for _, line := range lines {
		recalculateLine(line, invoice.Currency)
		subTotal = subTotal.Add(line.SubTotal)
		lineAdjustments = lineAdjustments.Add(line.AdjustmentsTotal)
	}

	adjustmentsTotal := lineAdjustments
	for _, adj := range invoice.Adjustments {
		if adj.IsProrated() {
			// Prorated adjustments surface through the derived line shares
			// counted above; with no lines they have no target and
			// contribute nothing.
			continue
		}
		adjustmentsTotal = adjustmentsTotal.Add(adjustmentAmount(adj, subTotal, invoice.Currency))
	}

	invoice.SubTotal = subTotal
	invoice.AdjustmentsTotal = adjustmentsTotal
	invoice.Total = money.Round(subTotal.Add(adjustmentsTotal), invoice.Currency)

	return Totals{SubTotal: invoice.SubTotal, AdjustmentsTotal: invoice.AdjustmentsTotal, Total: invoice.Total}
}

// applyProratedAdjustments regenerates every derived line-level adjustment
// from the invoice's current prorated adjustments. Stale shares, including
// those of adjustments that were deleted or switched back to NotProrated,
// are dropped as part of the regeneration, which also makes re-proration
// idempotent.
func applyProratedAdjustments(invoice *model.Invoice, lines []*model.InvoiceLine) {
	for _, line := range lines {
		kept := line.Adjustments[:0]
		for _, adj := range line.Adjustments {
			if adj.AdjustmentID == nil {
				kept = append(kept, adj)
			}
		}
		line.Adjustments = kept
	}

	if len(lines) == 0 {
		return
	}

	subTotal := decimal.Zero
	for _, line := range lines {
		subTotal = subTotal.Add(line.SubTotal)
	}

	for i := range invoice.Adjustments {
		adj := invoice.Adjustments[i]
		if !adj.IsProrated() {
			continue
		}

		value := money.Round(adjustmentAmount(adj, subTotal, invoice.Currency), invoice.Currency)
		shares := money.Distribute(value, prorationWeights(adj.Prorate, lines), invoice.Currency)

		parentID := adj.ID
		for j, line := range lines {
			line.Adjustments = append(line.Adjustments, model.Adjustment{
				AdjustmentID:      &parentID,
				Description:       adj.Description,
				Type:              model.AdjustmentTypeAmount,
				Prorate:           model.ProrateNotProrated,
				Value:             shares[j],
				FundDistributions: adj.FundDistributions,
			})
		}
	}
}

func recalculateLine(line *model.InvoiceLine, currency string) {
	total := decimal.Zero
	for _, adj := range line.Adjustments {
		total = total.Add(adjustmentAmount(adj, line.SubTotal, currency))
	}
	line.AdjustmentsTotal = total
	line.Total = money.Round(line.SubTotal.Add(total), currency)
}

// adjustmentAmount resolves an adjustment to a monetary value. Percentage
// adjustments resolve against base: the invoice subtotal for invoice-level
// ones, the line subtotal for line-local ones.
func adjustmentAmount(adj model.Adjustment, base decimal.Decimal, currency string) decimal.Decimal {
	switch adj.Type {
	case model.AdjustmentTypePercentage:
		return money.Round(money.Percentage(base, adj.Value), currency)
	default:
		return adj.Value
	}
}

func prorationWeights(prorate model.Prorate, lines []*model.InvoiceLine) []decimal.Decimal {
	weights := make([]decimal.Decimal, len(lines))
	for i, line := range lines {
		switch prorate {
		case model.ProrateByAmount:
			weights[i] = line.SubTotal
		case model.ProrateByQuantity:
			weights[i] = decimal.NewFromInt(int64(line.Quantity))
		default: // ByLine
			weights[i] = decimal.NewFromInt(1)
		}
	}
	return weights
}

// snapshot flattens the values RecalculateTotals is allowed to change into a
// comparable string.
func snapshot(invoice *model.Invoice, lines []*model.InvoiceLine) string {
	s := invoice.SubTotal.String() + "|" + invoice.AdjustmentsTotal.String() + "|" + invoice.Total.String()
	for _, line := range lines {
		s += "|" + line.ID + ":" + line.AdjustmentsTotal.String() + ":" + line.Total.String()
		for _, adj := range line.Adjustments {
			if adj.AdjustmentID != nil {
				s += ":" + *adj.AdjustmentID + "=" + adj.Value.String()
			}
		}
	}
	return s
}
