package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID               string           `json:"id"`
	Status           InvoiceStatus    `json:"status"`
	Currency         string           `json:"currency"`
	ExchangeRate     *decimal.Decimal `json:"exchange_rate,omitempty"`
	VendorID         string           `json:"vendor_id"`
	FiscalYearID     string           `json:"fiscal_year_id,omitempty"`
	BatchGroupID     string           `json:"batch_group_id,omitempty"`
	Adjustments      []Adjustment     `json:"adjustments,omitempty"`
	SubTotal         decimal.Decimal  `json:"sub_total"`
	AdjustmentsTotal decimal.Decimal  `json:"adjustments_total"`
	Total            decimal.Decimal  `json:"total"`
	AcqUnitIDs       []string         `json:"acq_unit_ids,omitempty"`
	ExportToAccounting bool           `json:"export_to_accounting"`
	ApprovalDate     *time.Time       `json:"approval_date,omitempty"`
	ApprovedBy       *string          `json:"approved_by,omitempty"`
	PaymentDate      *time.Time       `json:"payment_date,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type InvoiceStatus string

const (
	InvoiceStatusOpen      InvoiceStatus = "open"
	InvoiceStatusReviewed  InvoiceStatus = "reviewed"
	InvoiceStatusApproved  InvoiceStatus = "approved"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// CanBeApproved reports whether the invoice is in a status from which
// approval is allowed.
func (s InvoiceStatus) CanBeApproved() bool {
	return s == InvoiceStatusOpen || s == InvoiceStatusReviewed
}

// CanBeCancelled reports whether the invoice is in a status from which
// cancellation is allowed.
func (s InvoiceStatus) CanBeCancelled() bool {
	return s == InvoiceStatusApproved || s == InvoiceStatusPaid
}
