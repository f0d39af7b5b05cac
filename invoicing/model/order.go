package model

type PoLine struct {
	ID              string        `json:"id"`
	PurchaseOrderID string        `json:"purchase_order_id"`
	Number          string        `json:"po_line_number,omitempty"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
}

type PaymentStatus string

const (
	PaymentStatusAwaitingPayment    PaymentStatus = "awaiting_payment"
	PaymentStatusPartiallyPaid      PaymentStatus = "partially_paid"
	PaymentStatusFullyPaid          PaymentStatus = "fully_paid"
	PaymentStatusOngoing            PaymentStatus = "ongoing"
	PaymentStatusPaymentNotRequired PaymentStatus = "payment_not_required"
)

// Frozen reports whether the payment status is one the reconciler must never
// overwrite.
func (s PaymentStatus) Frozen() bool {
	return s == PaymentStatusOngoing || s == PaymentStatusPaymentNotRequired
}

type PurchaseOrder struct {
	ID             string      `json:"id"`
	WorkflowStatus OrderStatus `json:"workflow_status"`
}

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusOpen    OrderStatus = "open"
	OrderStatusClosed  OrderStatus = "closed"
)
