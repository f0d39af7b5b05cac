package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher is the one-per-invoice financial document created on first
// approval and refreshed on re-approval.
type Voucher struct {
	ID                 string          `json:"id,omitempty"`
	InvoiceID          string          `json:"invoice_id"`
	VoucherNumber      string          `json:"voucher_number,omitempty"`
	VoucherNumberPrefix string         `json:"voucher_number_prefix,omitempty"`
	VoucherDate        time.Time       `json:"voucher_date"`
	Status             VoucherStatus   `json:"status"`
	InvoiceCurrency    string          `json:"invoice_currency"`
	SystemCurrency     string          `json:"system_currency"`
	ExchangeRate       decimal.Decimal `json:"exchange_rate"`
	ExportToAccounting bool            `json:"export_to_accounting"`
	BatchGroupID       string          `json:"batch_group_id,omitempty"`
	VendorID           string          `json:"vendor_id"`
	AccountingCode     *string         `json:"accounting_code,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	AcqUnitIDs         []string        `json:"acq_unit_ids,omitempty"`
}

type VoucherStatus string

const (
	VoucherStatusAwaitingPayment VoucherStatus = "awaiting_payment"
	VoucherStatusPaid            VoucherStatus = "paid"
	VoucherStatusCancelled       VoucherStatus = "cancelled"
)

type VoucherLine struct {
	ID                    string             `json:"id,omitempty"`
	VoucherID             string             `json:"voucher_id"`
	Amount                decimal.Decimal    `json:"amount"`
	ExternalAccountNumber string             `json:"external_account_number,omitempty"`
	FundDistributions     []FundDistribution `json:"fund_distributions"`
	SourceIDs             []string           `json:"source_ids,omitempty"`
}
