package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceLine struct {
	ID                 string             `json:"id"`
	InvoiceID          string             `json:"invoice_id"`
	PoLineID           *string            `json:"po_line_id,omitempty"`
	Description        string             `json:"description,omitempty"`
	Quantity           int                `json:"quantity"`
	SubTotal           decimal.Decimal    `json:"sub_total"`
	Adjustments        []Adjustment       `json:"adjustments,omitempty"`
	AdjustmentsTotal   decimal.Decimal    `json:"adjustments_total"`
	Total              decimal.Decimal    `json:"total"`
	FundDistributions  []FundDistribution `json:"fund_distributions,omitempty"`
	ReleaseEncumbrance bool               `json:"release_encumbrance"`
	Status             InvoiceLineStatus  `json:"invoice_line_status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type InvoiceLineStatus string

const (
	InvoiceLineStatusOpen      InvoiceLineStatus = "open"
	InvoiceLineStatusReviewed  InvoiceLineStatus = "reviewed"
	InvoiceLineStatusApproved  InvoiceLineStatus = "approved"
	InvoiceLineStatusPaid      InvoiceLineStatus = "paid"
	InvoiceLineStatusCancelled InvoiceLineStatus = "cancelled"
)

// FundDistribution assigns part of a monetary amount to an accounting fund,
// either as a fixed amount or as a percentage of the owning total.
type FundDistribution struct {
	FundID           string           `json:"fund_id"`
	ExpenseClassID   *string          `json:"expense_class_id,omitempty"`
	DistributionType DistributionType `json:"distribution_type"`
	Value            decimal.Decimal  `json:"value"`
	EncumbranceID    *string          `json:"encumbrance_id,omitempty"`
}

type DistributionType string

const (
	DistributionTypeAmount     DistributionType = "amount"
	DistributionTypePercentage DistributionType = "percentage"
)
