// Package orderline recomputes the payment status of purchase-order lines
// after an invoice is paid or cancelled, based on the full set of invoice
// lines touching each PO line across invoices.
package orderline

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/acqware/invoicing/invoicing/client"
	"github.com/acqware/invoicing/invoicing/model"
)

// Reconciler drives PO-line payment-status updates. All id-list lookups are
// chunked to the configured size and reassembled before any decision is
// made.
type Reconciler struct {
	orders    client.Orders
	invoices  client.Invoices
	chunkSize int
	log       zerolog.Logger
}

func NewReconciler(orders client.Orders, invoices client.Invoices, chunkSize int, log zerolog.Logger) *Reconciler {
	return &Reconciler{orders: orders, invoices: invoices, chunkSize: chunkSize, log: log}
}

// ReconcileAfterPayment updates linked PO lines after an invoice payment:
// FullyPaid when any paying line releases its encumbrance, PartiallyPaid
// otherwise. Ongoing and PaymentNotRequired lines are never overwritten.
func (r *Reconciler) ReconcileAfterPayment(ctx context.Context, lines []*model.InvoiceLine) error {
	grouped := groupByPoLine(lines)
	if len(grouped) == 0 {
		return nil
	}

	poLines, err := client.FetchChunked(ctx, lo.Keys(grouped), r.chunkSize, r.orders.GetPoLinesByIDs)
	if err != nil {
		return err
	}

	var changed []model.PoLine
	for _, poLine := range poLines {
		if poLine.PaymentStatus.Frozen() {
			continue
		}
		status := model.PaymentStatusPartiallyPaid
		for _, line := range grouped[poLine.ID] {
			if line.ReleaseEncumbrance {
				status = model.PaymentStatusFullyPaid
				break
			}
		}
		if poLine.PaymentStatus != status {
			poLine.PaymentStatus = status
			changed = append(changed, poLine)
		}
	}
	return r.updatePoLines(ctx, changed)
}

// ReconcileAfterCancellation reverts the payment status of PO lines that
// were marked paid because of the now-cancelled invoice. With an override
// status the candidates are set to it directly; otherwise the decision looks
// at every other still-paid invoice in the same fiscal year touching the
// same PO line.
func (r *Reconciler) ReconcileAfterCancellation(ctx context.Context, invoice *model.Invoice, lines []*model.InvoiceLine, override *model.PaymentStatus) error {
	grouped := groupByPoLine(lines)
	candidateIDs := make([]string, 0, len(grouped))
	for id, group := range grouped {
		for _, line := range group {
			if line.ReleaseEncumbrance {
				candidateIDs = append(candidateIDs, id)
				break
			}
		}
	}
	if len(candidateIDs) == 0 {
		return nil
	}

	poLines, err := client.FetchChunked(ctx, candidateIDs, r.chunkSize, func(ctx context.Context, ids []string) ([]model.PoLine, error) {
		return r.orders.GetPoLinesByIDsWithPaymentStatuses(ctx, ids, []model.PaymentStatus{
			model.PaymentStatusFullyPaid,
			model.PaymentStatusPartiallyPaid,
		})
	})
	if err != nil {
		return err
	}
	if len(poLines) == 0 {
		return nil
	}

	if override != nil {
		var changed []model.PoLine
		for _, poLine := range poLines {
			if poLine.PaymentStatus == *override {
				continue
			}
			poLine.PaymentStatus = *override
			changed = append(changed, poLine)
		}
		return r.updatePoLines(ctx, changed)
	}

	otherLines, err := r.paidLinesOfOtherInvoices(ctx, invoice, lo.Map(poLines, func(p model.PoLine, _ int) string { return p.ID }))
	if err != nil {
		return err
	}

	var changed []model.PoLine
	for _, poLine := range poLines {
		others := otherLines[poLine.ID]
		status := poLine.PaymentStatus
		switch {
		case len(others) == 0:
			status = model.PaymentStatusAwaitingPayment
		case !lo.SomeBy(others, func(l model.InvoiceLine) bool { return l.ReleaseEncumbrance }):
			status = model.PaymentStatusPartiallyPaid
		}
		if status != poLine.PaymentStatus {
			poLine.PaymentStatus = status
			changed = append(changed, poLine)
		}
	}
	return r.updatePoLines(ctx, changed)
}

// paidLinesOfOtherInvoices finds invoice lines of other, still-Paid invoices
// in the cancelled invoice's fiscal year referencing the given PO lines,
// grouped by PO line id.
func (r *Reconciler) paidLinesOfOtherInvoices(ctx context.Context, invoice *model.Invoice, poLineIDs []string) (map[string][]model.InvoiceLine, error) {
	candidateLines, err := client.FetchChunked(ctx, poLineIDs, r.chunkSize, r.invoices.GetInvoiceLinesByPoLineIDs)
	if err != nil {
		return nil, err
	}

	otherLines := lo.Filter(candidateLines, func(l model.InvoiceLine, _ int) bool {
		return l.InvoiceID != invoice.ID
	})
	if len(otherLines) == 0 {
		return nil, nil
	}

	invoiceIDs := lo.Uniq(lo.Map(otherLines, func(l model.InvoiceLine, _ int) string { return l.InvoiceID }))
	invoices, err := client.FetchChunked(ctx, invoiceIDs, r.chunkSize, r.invoices.GetInvoicesByIDs)
	if err != nil {
		return nil, err
	}

	paid := make(map[string]struct{}, len(invoices))
	for _, inv := range invoices {
		if inv.Status == model.InvoiceStatusPaid && inv.FiscalYearID == invoice.FiscalYearID {
			paid[inv.ID] = struct{}{}
		}
	}

	out := make(map[string][]model.InvoiceLine)
	for _, line := range otherLines {
		if _, ok := paid[line.InvoiceID]; !ok {
			continue
		}
		if line.PoLineID != nil {
			out[*line.PoLineID] = append(out[*line.PoLineID], line)
		}
	}
	return out, nil
}

func (r *Reconciler) updatePoLines(ctx context.Context, changed []model.PoLine) error {
	if len(changed) == 0 {
		return nil
	}
	for _, chunk := range lo.Chunk(changed, r.chunkSize) {
		if err := r.orders.UpdatePoLines(ctx, chunk); err != nil {
			return err
		}
	}
	r.log.Debug().Int("po_lines", len(changed)).Msg("updated po line payment statuses")
	return nil
}

func groupByPoLine(lines []*model.InvoiceLine) map[string][]*model.InvoiceLine {
	out := make(map[string][]*model.InvoiceLine)
	for _, line := range lines {
		if line.PoLineID == nil {
			continue
		}
		out[*line.PoLineID] = append(out[*line.PoLineID], line)
	}
	return out
}
