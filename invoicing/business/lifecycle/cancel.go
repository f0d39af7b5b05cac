package lifecycle

import (
	"context"

	"github.com/acqware/invoicing/invoicing/client"
	"github.com/acqware/invoicing/invoicing/errs"
	"github.com/acqware/invoicing/invoicing/model"
)

// CancelInvoice voids an approved or paid invoice: its transactions are
// batch-cancelled, its lines and voucher marked cancelled, encumbrances that
// were released by this invoice and remain untouched are resurrected, and the
// linked PO lines are reconciled. A failed transaction cancellation is fatal;
// partial cancellation is never attempted.
func (b *business) CancelInvoice(ctx context.Context, invoice *model.Invoice, lines []*model.InvoiceLine, poLineStatusOverride *model.PaymentStatus) error {
	if !invoice.Status.CanBeCancelled() {
		return errs.WithDetail(errs.ErrCannotCancelInvoice, "status", string(invoice.Status))
	}

	wc, err := b.buildWorkflowContext(ctx, invoice, lines)
	if err != nil {
		return err
	}
	if err := validateBudgets(wc.holders); err != nil {
		return err
	}

	txs, err := b.clients.Transactions.GetTransactionsByInvoiceID(ctx, invoice.ID)
	if err != nil {
		return err
	}
	var cancelIDs []string
	for _, tx := range txs {
		switch tx.Type {
		case model.TransactionTypePendingPayment, model.TransactionTypePayment, model.TransactionTypeCredit:
			cancelIDs = append(cancelIDs, tx.ID)
		}
	}
	if len(cancelIDs) > 0 {
		if err := b.clients.Transactions.CancelTransactions(ctx, cancelIDs); err != nil {
			return errs.Wrap(errs.ErrCancelTransactions, err)
		}
	}

	invoice.Status = model.InvoiceStatusCancelled
	for _, line := range lines {
		line.Status = model.InvoiceLineStatusCancelled
	}
	if err := b.clients.Invoices.UpdateInvoiceLines(ctx, derefLines(lines)); err != nil {
		return err
	}

	voucher, err := b.clients.Vouchers.GetVoucherByInvoiceID(ctx, invoice.ID)
	if err != nil {
		return err
	}
	if voucher != nil {
		voucher.Status = model.VoucherStatusCancelled
		if err := b.clients.Vouchers.UpdateVoucher(ctx, *voucher); err != nil {
			return err
		}
	}

	if err := b.unreleaseEncumbrances(ctx, lines, wc.fiscalYearID()); err != nil {
		return err
	}

	return b.reconciler.ReconcileAfterCancellation(ctx, invoice, lines, poLineStatusOverride)
}

// unreleaseEncumbrances resurrects the encumbrances this invoice released,
// behind a multi-guard filter: only lines that released their encumbrance,
// only PO lines of still-Open orders, and only encumbrance transactions that
// are Released with zero expended, credited and awaiting amounts. An
// encumbrance with any financial activity since release must never be
// unreleased.
func (b *business) unreleaseEncumbrances(ctx context.Context, lines []*model.InvoiceLine, fiscalYearID string) error {
	if fiscalYearID == "" {
		return nil
	}
	var poLineIDs []string
	for _, line := range lines {
		if line.ReleaseEncumbrance && line.PoLineID != nil {
			poLineIDs = append(poLineIDs, *line.PoLineID)
		}
	}
	if len(poLineIDs) == 0 {
		return nil
	}

	statuses := []model.PaymentStatus{
		model.PaymentStatusAwaitingPayment,
		model.PaymentStatusPartiallyPaid,
		model.PaymentStatusFullyPaid,
		model.PaymentStatusOngoing,
		model.PaymentStatusPaymentNotRequired,
	}
	poLines, err := client.FetchChunked(ctx, poLineIDs, b.cfg.IDsChunkSize,
		func(ctx context.Context, ids []string) ([]model.PoLine, error) {
			return b.clients.Orders.GetPoLinesByIDsWithPaymentStatuses(ctx, ids, statuses)
		})
	if err != nil {
		return err
	}
	if len(poLines) == 0 {
		return nil
	}

	orderIDs := make([]string, 0, len(poLines))
	for _, pl := range poLines {
		orderIDs = append(orderIDs, pl.PurchaseOrderID)
	}
	orders, err := client.FetchChunked(ctx, orderIDs, b.cfg.IDsChunkSize, b.clients.Orders.GetPurchaseOrdersByIDs)
	if err != nil {
		return err
	}
	openOrders := make(map[string]bool, len(orders))
	for _, po := range orders {
		openOrders[po.ID] = po.WorkflowStatus == model.OrderStatusOpen
	}
	var openPoLineIDs []string
	for _, pl := range poLines {
		if openOrders[pl.PurchaseOrderID] {
			openPoLineIDs = append(openPoLineIDs, pl.ID)
		}
	}
	if len(openPoLineIDs) == 0 {
		return nil
	}

	encumbrances, err := client.FetchChunked(ctx, openPoLineIDs, b.cfg.IDsChunkSize,
		func(ctx context.Context, ids []string) ([]model.Transaction, error) {
			return b.clients.Transactions.GetEncumbrancesByPoLineIDs(ctx, ids, fiscalYearID)
		})
	if err != nil {
		return err
	}
	var unreleaseIDs []string
	for _, tx := range encumbrances {
		if tx.Encumbrance == nil {
			continue
		}
		if tx.Encumbrance.Status == model.EncumbranceStatusReleased && tx.Encumbrance.Untouched() {
			unreleaseIDs = append(unreleaseIDs, tx.ID)
		}
	}
	if len(unreleaseIDs) == 0 {
		return nil
	}
	b.log.Info().Int("count", len(unreleaseIDs)).Msg("unreleasing encumbrances after invoice cancellation")
	return b.clients.Transactions.UnreleaseEncumbrances(ctx, unreleaseIDs)
}
