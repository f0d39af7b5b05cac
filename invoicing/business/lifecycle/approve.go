package lifecycle

import (
	"context"
	"errors"

	"github.com/acqware/invoicing/invoicing/allocation"
	"github.com/acqware/invoicing/invoicing/client"
	"github.com/acqware/invoicing/invoicing/errs"
	"github.com/acqware/invoicing/invoicing/model"
	"github.com/acqware/invoicing/invoicing/proration"
)

// ApproveInvoice runs the approval saga:
//
//  1. status and line guards, before any collaborator call
//  2. vendor organization check
//  3. totals recalculation and per-line fund-distribution validation
//  4. fund/ledger/budget/fiscal-year resolution into holders
//  5. budget and expense-class precondition checks
//  6. encumbrance linking onto the line fund distributions
//  7. pending-payment creation — the commit point
//  8. voucher preparation and line persistence, rolled back on failure by
//     deleting the transactions created in step 7
func (b *business) ApproveInvoice(ctx context.Context, invoice *model.Invoice, lines []*model.InvoiceLine, approvedBy string) error {
	if !invoice.Status.CanBeApproved() {
		return errs.WithDetail(errs.ErrCannotApproveInvoice, "status", string(invoice.Status))
	}
	if len(lines) == 0 {
		return errs.WithDetail(errs.ErrNoInvoiceLines, "invoice_id", invoice.ID)
	}
	if err := validateAdjustmentIDs(invoice); err != nil {
		return err
	}

	now := b.now()
	invoice.ApprovalDate = &now
	invoice.ApprovedBy = &approvedBy

	org, err := b.clients.Organizations.GetOrganization(ctx, invoice.VendorID)
	if err != nil {
		return err
	}
	if org == nil {
		return errs.WithDetail(errs.ErrOrgNotFound, "organization_id", invoice.VendorID)
	}
	if !org.IsVendor {
		return errs.WithDetail(errs.ErrOrgIsNotVendor, "organization_id", org.ID)
	}

	if changed := proration.RecalculateTotals(invoice, lines); changed {
		b.log.Info().Str("invoice_id", invoice.ID).Msg("invoice totals recalculated during approval")
	}
	for _, line := range lines {
		if err := allocation.ValidateFundDistributions(allocation.ValidateRequest{
			SubTotal:          line.SubTotal,
			Currency:          invoice.Currency,
			FundDistributions: line.FundDistributions,
			Adjustments:       line.Adjustments,
		}); err != nil {
			var e *errs.Error
			if errors.As(err, &e) {
				return errs.WithDetail(e, "invoice_line_id", line.ID)
			}
			return err
		}
	}

	wc, err := b.buildWorkflowContext(ctx, invoice, lines)
	if err != nil {
		return err
	}
	if err := validateBudgets(wc.holders); err != nil {
		return err
	}
	if err := b.validateExpenseClasses(ctx, wc.holders); err != nil {
		return err
	}
	if err := b.linkEncumbrances(ctx, lines, wc.fiscalYearID()); err != nil {
		return err
	}

	allocations := allocation.Allocate(invoice, derefLines(lines), wc.conversion, wc.systemCurrency)
	created, err := b.clients.Transactions.CreateTransactions(ctx, buildPendingPayments(invoice, lines, allocations, wc))
	if err != nil {
		return err
	}

	// Past the commit point: any failure below must compensate by deleting
	// the pending payments just created.
	if err := b.prepareVoucher(ctx, invoice, org, wc, allocations); err != nil {
		return b.rollbackPendingPayments(ctx, created, err)
	}

	invoice.Status = model.InvoiceStatusApproved
	for _, line := range lines {
		line.Status = model.InvoiceLineStatusApproved
	}
	if err := b.clients.Invoices.UpdateInvoiceLines(ctx, derefLines(lines)); err != nil {
		return b.rollbackPendingPayments(ctx, created, err)
	}
	return nil
}

// validateAdjustmentIDs rejects an invoice carrying two adjustments with the
// same non-empty id, which would make derived line shares ambiguous.
func validateAdjustmentIDs(invoice *model.Invoice) error {
	seen := make(map[string]struct{}, len(invoice.Adjustments))
	for _, adj := range invoice.Adjustments {
		if adj.ID == "" {
			continue
		}
		if _, ok := seen[adj.ID]; ok {
			return errs.WithDetail(errs.ErrDuplicateAdjustmentID, "adjustment_id", adj.ID)
		}
		seen[adj.ID] = struct{}{}
	}
	return nil
}

func validateBudgets(holders []*model.WorkflowDataHolder) error {
	for _, h := range holders {
		if h.Budget == nil {
			return errs.WithDetail(errs.ErrBudgetNotFound, "fund_id", h.FundDistribution.FundID)
		}
		if h.Budget.Status != model.BudgetStatusActive {
			err := errs.WithDetail(errs.ErrBudgetNotActive, "fund_id", h.FundDistribution.FundID)
			return errs.WithDetail(err, "budget_status", string(h.Budget.Status))
		}
	}
	return nil
}

// validateExpenseClasses checks that every expense class referenced by a fund
// distribution exists and is active.
func (b *business) validateExpenseClasses(ctx context.Context, holders []*model.WorkflowDataHolder) error {
	var ids []string
	for _, h := range holders {
		if h.FundDistribution.ExpenseClassID != nil {
			ids = append(ids, *h.FundDistribution.ExpenseClassID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	classes, err := client.FetchChunked(ctx, ids, b.cfg.IDsChunkSize, b.clients.Finance.GetExpenseClassesByIDs)
	if err != nil {
		return err
	}
	byID := make(map[string]model.ExpenseClass, len(classes))
	for _, ec := range classes {
		byID[ec.ID] = ec
	}
	for _, h := range holders {
		if h.FundDistribution.ExpenseClassID == nil {
			continue
		}
		ec, ok := byID[*h.FundDistribution.ExpenseClassID]
		if !ok || ec.Status != model.ExpenseClassStatusActive {
			return errs.WithDetail(errs.ErrExpenseClassNotActive, "expense_class_id", *h.FundDistribution.ExpenseClassID)
		}
	}
	return nil
}

// linkEncumbrances stamps the id of the matching encumbrance transaction onto
// each line fund distribution, keyed by (PO line, fund) in the invoice's
// fiscal year, and persists lines whose links changed. Distributions without
// a matching encumbrance stay unlinked.
func (b *business) linkEncumbrances(ctx context.Context, lines []*model.InvoiceLine, fiscalYearID string) error {
	if fiscalYearID == "" {
		return nil
	}
	var poLineIDs []string
	for _, line := range lines {
		if line.PoLineID != nil {
			poLineIDs = append(poLineIDs, *line.PoLineID)
		}
	}
	if len(poLineIDs) == 0 {
		return nil
	}
	encumbrances, err := client.FetchChunked(ctx, poLineIDs, b.cfg.IDsChunkSize,
		func(ctx context.Context, ids []string) ([]model.Transaction, error) {
			return b.clients.Transactions.GetEncumbrancesByPoLineIDs(ctx, ids, fiscalYearID)
		})
	if err != nil {
		return err
	}
	byKey := make(map[string]string, len(encumbrances))
	for _, tx := range encumbrances {
		if tx.Encumbrance == nil {
			continue
		}
		byKey[tx.Encumbrance.SourcePoLineID+"/"+tx.FromFundID] = tx.ID
	}
	linked := false
	for _, line := range lines {
		if line.PoLineID == nil {
			continue
		}
		for i := range line.FundDistributions {
			if id, ok := byKey[*line.PoLineID+"/"+line.FundDistributions[i].FundID]; ok {
				encumbranceID := id
				line.FundDistributions[i].EncumbranceID = &encumbranceID
				linked = true
			}
		}
	}
	if !linked {
		return nil
	}
	return b.clients.Invoices.UpdateInvoiceLines(ctx, derefLines(lines))
}

// buildPendingPayments turns the converted allocations into pending-payment
// transactions, each stamped with a deterministic idempotency key so a
// retried approval cannot double-create.
func buildPendingPayments(invoice *model.Invoice, lines []*model.InvoiceLine, allocations []allocation.Allocation, wc *workflowContext) []model.Transaction {
	lineIDs := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		lineIDs[line.ID] = struct{}{}
	}

	txs := make([]model.Transaction, 0, len(allocations))
	for _, a := range allocations {
		var sourceLineID *string
		if _, ok := lineIDs[a.SourceID]; ok {
			id := a.SourceID
			sourceLineID = &id
		}
		txs = append(txs, model.Transaction{
			Type:                model.TransactionTypePendingPayment,
			Amount:              a.Amount,
			Currency:            wc.systemCurrency,
			FiscalYearID:        wc.fiscalYearID(),
			FromFundID:          a.FundID,
			ExpenseClassID:      a.ExpenseClassID,
			SourceInvoiceID:     invoice.ID,
			SourceInvoiceLineID: sourceLineID,
			IdempotencyKey:      model.PendingPaymentKey(invoice.ID, a.SourceID, a.FundID, a.ExpenseClassID),
		})
	}
	return txs
}

// rollbackPendingPayments compensates a failed post-commit step by deleting
// the pending payments created earlier in the same approval. The original
// failure is always the one returned; a failed rollback is reported alongside
// it, never instead of it.
func (b *business) rollbackPendingPayments(ctx context.Context, created []model.Transaction, original error) error {
	ids := make([]string, 0, len(created))
	for _, tx := range created {
		ids = append(ids, tx.ID)
	}
	if err := b.clients.Transactions.DeleteTransactions(ctx, ids); err != nil {
		b.log.Error().Err(err).Msg("pending payment rollback failed, transactions may be orphaned")
		return &errs.RollbackError{Original: original, Rollback: err}
	}
	return original
}
