package workflow

import (
	"github.com/acqware/invoicing/invoicing/model"
)

const (
	// Signal names
	PayInvoiceSignalName    = "pay-invoice"
	CancelInvoiceSignalName = "cancel-invoice"
)

// PayInvoiceSignal asks the lifecycle workflow to settle the approved
// invoice.
type PayInvoiceSignal struct {
	PaidBy string `json:"paid_by,omitempty"`
}

// CancelInvoiceSignal asks the lifecycle workflow to cancel the invoice. The
// optional override forces the reverted PO-line payment status instead of the
// reconciler's own decision.
type CancelInvoiceSignal struct {
	CancelledBy                 string               `json:"cancelled_by,omitempty"`
	PoLinePaymentStatusOverride *model.PaymentStatus `json:"po_line_payment_status_override,omitempty"`
}
