package lifecycle

import (
	"context"

	"github.com/acqware/invoicing/invoicing/allocation"
	"github.com/acqware/invoicing/invoicing/errs"
	"github.com/acqware/invoicing/invoicing/model"
)

// PayInvoice settles an approved invoice: the pending payments created at
// approval are corrected for rounding drift and converted into payment and
// credit transactions, the voucher is marked paid, and the linked PO lines
// are reconciled.
func (b *business) PayInvoice(ctx context.Context, invoice *model.Invoice, lines []*model.InvoiceLine) error {
	if invoice.Status != model.InvoiceStatusApproved {
		return errs.WithDetail(errs.ErrCannotPayInvoice, "status", string(invoice.Status))
	}
	now := b.now()
	invoice.PaymentDate = &now

	wc, err := b.buildWorkflowContext(ctx, invoice, lines)
	if err != nil {
		return err
	}

	existing, err := b.clients.Transactions.GetTransactionsByInvoiceID(ctx, invoice.ID)
	if err != nil {
		return err
	}
	var pendings []*model.Transaction
	for i := range existing {
		if existing[i].Type == model.TransactionTypePendingPayment {
			pendings = append(pendings, &existing[i])
		}
	}

	// Exchange rates may have moved since approval; re-zero each line's
	// transactions against its freshly converted total before settling.
	allocation.CorrectTransactions(derefLines(lines), pendings, wc.conversion, wc.systemCurrency)

	if len(pendings) > 0 {
		if _, err := b.clients.Transactions.CreateTransactions(ctx, settle(pendings)); err != nil {
			return err
		}
	}

	voucher, err := b.clients.Vouchers.GetVoucherByInvoiceID(ctx, invoice.ID)
	if err != nil {
		return err
	}
	if voucher == nil {
		return errs.WithDetail(errs.ErrVoucherNotFound, "invoice_id", invoice.ID)
	}
	voucher.Status = model.VoucherStatusPaid
	if err := b.clients.Vouchers.UpdateVoucher(ctx, *voucher); err != nil {
		return err
	}

	invoice.Status = model.InvoiceStatusPaid
	for _, line := range lines {
		line.Status = model.InvoiceLineStatusPaid
	}
	if err := b.clients.Invoices.UpdateInvoiceLines(ctx, derefLines(lines)); err != nil {
		return err
	}

	return b.reconciler.ReconcileAfterPayment(ctx, lines)
}

// settle derives the settlement transaction for each pending payment: a
// Payment for a non-negative amount, a Credit carrying the magnitude for a
// negative one.
func settle(pendings []*model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(pendings))
	for _, p := range pendings {
		tx := model.Transaction{
			Type:                model.TransactionTypePayment,
			Amount:              p.Amount,
			Currency:            p.Currency,
			FiscalYearID:        p.FiscalYearID,
			FromFundID:          p.FromFundID,
			ExpenseClassID:      p.ExpenseClassID,
			SourceInvoiceID:     p.SourceInvoiceID,
			SourceInvoiceLineID: p.SourceInvoiceLineID,
			IdempotencyKey:      p.IdempotencyKey + "/settlement",
		}
		if p.Amount.IsNegative() {
			tx.Type = model.TransactionTypeCredit
			tx.Amount = p.Amount.Neg()
		}
		out = append(out, tx)
	}
	return out
}
