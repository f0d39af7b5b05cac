// Package lifecycle sequences invoice approval, payment and cancellation as
// multi-step sagas over the external collaborator services, with explicit
// compensation for failures past the pending-payment commit point.
package lifecycle

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/acqware/invoicing/invoicing/allocation"
	"github.com/acqware/invoicing/invoicing/business/orderline"
	"github.com/acqware/invoicing/invoicing/client"
	"github.com/acqware/invoicing/invoicing/config"
	"github.com/acqware/invoicing/invoicing/model"
	"github.com/acqware/invoicing/invoicing/proration"
)

//go:generate mockgen -destination=../../mocks/business/lifecycle/business.go -package=lifecyclemock github.com/acqware/invoicing/invoicing/business/lifecycle Business

type Business interface {
	// ApproveInvoice drives the approval saga. On failure after pending
	// payments were created, the created transactions are rolled back
	// before the original error is returned.
	ApproveInvoice(ctx context.Context, invoice *model.Invoice, lines []*model.InvoiceLine, approvedBy string) error

	// PayInvoice converts the invoice's pending payments into payments and
	// credits, marks the voucher paid and reconciles linked PO lines.
	PayInvoice(ctx context.Context, invoice *model.Invoice, lines []*model.InvoiceLine) error

	// CancelInvoice cancels an approved or paid invoice: transactions,
	// lines, voucher, selective encumbrance unrelease, PO-line
	// reconciliation.
	CancelInvoice(ctx context.Context, invoice *model.Invoice, lines []*model.InvoiceLine, poLineStatusOverride *model.PaymentStatus) error

	// RecalculateTotals recomputes invoice and line totals in place and
	// reports whether anything changed.
	RecalculateTotals(invoice *model.Invoice, lines []*model.InvoiceLine) bool

	// ValidateFundDistributions checks a distribution set against its total.
	ValidateFundDistributions(req allocation.ValidateRequest) error
}

type business struct {
	clients    client.Clients
	cfg        config.Config
	reconciler *orderline.Reconciler
	log        zerolog.Logger

	now func() time.Time
}

func NewBusiness(clients client.Clients, cfg config.Config, log zerolog.Logger) Business {
	return &business{
		clients:    clients,
		cfg:        cfg,
		reconciler: orderline.NewReconciler(clients.Orders, clients.Invoices, cfg.IDsChunkSize, log),
		log:        log,
		now:        time.Now,
	}
}

func (b *business) RecalculateTotals(invoice *model.Invoice, lines []*model.InvoiceLine) bool {
	return proration.RecalculateTotals(invoice, lines)
}

func (b *business) ValidateFundDistributions(req allocation.ValidateRequest) error {
	return allocation.ValidateFundDistributions(req)
}

func derefLines(lines []*model.InvoiceLine) []model.InvoiceLine {
	out := make([]model.InvoiceLine, len(lines))
	for i, line := range lines {
		out[i] = *line
	}
	return out
}
