package model

import (
	"github.com/shopspring/decimal"
)

// Transaction is a finance-service record. Its lifecycle is owned by the
// external finance service; this engine only creates, cancels and unreleases
// through the transaction client.
type Transaction struct {
	ID                  string           `json:"id,omitempty"`
	Type                TransactionType  `json:"transaction_type"`
	Amount              decimal.Decimal  `json:"amount"`
	Currency            string           `json:"currency"`
	FiscalYearID        string           `json:"fiscal_year_id"`
	FromFundID          string           `json:"from_fund_id,omitempty"`
	ExpenseClassID      *string          `json:"expense_class_id,omitempty"`
	SourceInvoiceID     string           `json:"source_invoice_id,omitempty"`
	SourceInvoiceLineID *string          `json:"source_invoice_line_id,omitempty"`
	Encumbrance         *EncumbranceData `json:"encumbrance,omitempty"`
	IdempotencyKey      string           `json:"idempotency_key,omitempty"`
}

type TransactionType string

const (
	TransactionTypeEncumbrance    TransactionType = "encumbrance"
	TransactionTypePendingPayment TransactionType = "pending_payment"
	TransactionTypePayment        TransactionType = "payment"
	TransactionTypeCredit         TransactionType = "credit"
)

// EncumbranceData carries the encumbrance sub-state of an Encumbrance-typed
// transaction.
type EncumbranceData struct {
	SourcePoLineID        string            `json:"source_po_line_id"`
	Status                EncumbranceStatus `json:"status"`
	AmountExpended        decimal.Decimal   `json:"amount_expended"`
	AmountCredited        decimal.Decimal   `json:"amount_credited"`
	AmountAwaitingPayment decimal.Decimal   `json:"amount_awaiting_payment"`
}

type EncumbranceStatus string

const (
	EncumbranceStatusReleased   EncumbranceStatus = "released"
	EncumbranceStatusUnreleased EncumbranceStatus = "unreleased"
	EncumbranceStatusPending    EncumbranceStatus = "pending"
)

// Untouched reports whether no financial activity has occurred against the
// encumbrance since it was released. Only such encumbrances may be
// resurrected when a paid invoice is cancelled.
func (e *EncumbranceData) Untouched() bool {
	return e.AmountExpended.IsZero() && e.AmountCredited.IsZero() && e.AmountAwaitingPayment.IsZero()
}

// PendingPaymentKey builds the deterministic idempotency key stamped on a
// pending payment so the finance service can dedupe a retried creation.
func PendingPaymentKey(invoiceID, invoiceLineID, fundID string, expenseClassID *string) string {
	key := invoiceID + "/" + invoiceLineID + "/" + fundID
	if expenseClassID != nil {
		key += "/" + *expenseClassID
	}
	return key
}
