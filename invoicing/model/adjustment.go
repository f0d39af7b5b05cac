package model

import (
	"github.com/shopspring/decimal"
)

// Adjustment is a discretionary charge or discount attached to an invoice or
// to an invoice line. A line-level adjustment with a non-nil AdjustmentID is a
// derived share of an invoice-level prorated adjustment: always Amount-typed,
// NotProrated, and regenerated by the proration engine rather than edited.
type Adjustment struct {
	ID                string             `json:"id,omitempty"`
	AdjustmentID      *string            `json:"adjustment_id,omitempty"`
	Description       string             `json:"description"`
	Type              AdjustmentType     `json:"type"`
	Prorate           Prorate            `json:"prorate"`
	Value             decimal.Decimal    `json:"value"`
	FundDistributions []FundDistribution `json:"fund_distributions,omitempty"`
}

type AdjustmentType string

const (
	AdjustmentTypeAmount     AdjustmentType = "amount"
	AdjustmentTypePercentage AdjustmentType = "percentage"
)

type Prorate string

const (
	ProrateNotProrated Prorate = "not_prorated"
	ProrateByLine      Prorate = "by_line"
	ProrateByAmount    Prorate = "by_amount"
	ProrateByQuantity  Prorate = "by_quantity"
)

// IsProrated reports whether the adjustment is distributed across lines.
func (a Adjustment) IsProrated() bool {
	return a.Prorate == ProrateByLine || a.Prorate == ProrateByAmount || a.Prorate == ProrateByQuantity
}
