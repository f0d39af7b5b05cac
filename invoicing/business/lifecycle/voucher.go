package lifecycle

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acqware/invoicing/invoicing/allocation"
	"github.com/acqware/invoicing/invoicing/model"
)

// prepareVoucher creates or refreshes the invoice's voucher and replaces its
// lines with the current allocations. Re-approval reuses the existing voucher
// record and its voucher number; only the financial snapshot is rewritten.
func (b *business) prepareVoucher(ctx context.Context, invoice *model.Invoice, org *model.Organization, wc *workflowContext, allocations []allocation.Allocation) error {
	voucher, err := b.clients.Vouchers.GetVoucherByInvoiceID(ctx, invoice.ID)
	if err != nil {
		return err
	}
	isNew := voucher == nil
	if isNew {
		prefix, err := b.clients.Configuration.GetVoucherNumberPrefix(ctx)
		if err != nil {
			return err
		}
		voucher = &model.Voucher{InvoiceID: invoice.ID, VoucherNumberPrefix: prefix}
	}

	total := decimal.Zero
	for _, a := range allocations {
		total = total.Add(a.Amount)
	}

	voucher.VoucherDate = b.now()
	voucher.Status = model.VoucherStatusAwaitingPayment
	voucher.InvoiceCurrency = invoice.Currency
	voucher.SystemCurrency = wc.systemCurrency
	voucher.ExchangeRate = wc.conversion.Rate
	voucher.ExportToAccounting = invoice.ExportToAccounting
	voucher.BatchGroupID = invoice.BatchGroupID
	voucher.VendorID = invoice.VendorID
	voucher.AccountingCode = org.AccountingCode
	voucher.AcqUnitIDs = invoice.AcqUnitIDs
	voucher.Amount = total

	if isNew {
		created, err := b.clients.Vouchers.CreateVoucher(ctx, *voucher)
		if err != nil {
			return err
		}
		voucher.ID = created.ID
	} else if err := b.clients.Vouchers.UpdateVoucher(ctx, *voucher); err != nil {
		return err
	}

	return b.clients.Vouchers.ReplaceVoucherLines(ctx, voucher.ID, buildVoucherLines(voucher, org, allocations))
}

// buildVoucherLines groups the allocations by fund, one voucher line per fund
// in first-seen order, each carrying the amount-typed distributions and the
// invoice line or adjustment ids the money came from.
func buildVoucherLines(voucher *model.Voucher, org *model.Organization, allocations []allocation.Allocation) []model.VoucherLine {
	var order []string
	byFund := make(map[string][]allocation.Allocation)
	for _, a := range allocations {
		if _, ok := byFund[a.FundID]; !ok {
			order = append(order, a.FundID)
		}
		byFund[a.FundID] = append(byFund[a.FundID], a)
	}

	var accountNumber string
	if org.AccountingCode != nil {
		accountNumber = *org.AccountingCode
	}

	lines := make([]model.VoucherLine, 0, len(order))
	for _, fundID := range order {
		group := byFund[fundID]
		line := model.VoucherLine{
			ID:                    uuid.NewString(),
			VoucherID:             voucher.ID,
			ExternalAccountNumber: accountNumber,
		}
		seenSources := make(map[string]struct{}, len(group))
		for _, a := range group {
			line.Amount = line.Amount.Add(a.Amount)
			line.FundDistributions = append(line.FundDistributions, model.FundDistribution{
				FundID:           a.FundID,
				ExpenseClassID:   a.ExpenseClassID,
				DistributionType: model.DistributionTypeAmount,
				Value:            a.Amount,
				EncumbranceID:    a.EncumbranceID,
			})
			if _, ok := seenSources[a.SourceID]; !ok {
				seenSources[a.SourceID] = struct{}{}
				line.SourceIDs = append(line.SourceIDs, a.SourceID)
			}
		}
		lines = append(lines, line)
	}
	return lines
}
