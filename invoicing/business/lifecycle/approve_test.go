package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acqware/invoicing/invoicing/errs"
	"github.com/acqware/invoicing/invoicing/model"
)

func TestApproveInvoiceGuards(t *testing.T) {
	testCases := []struct {
		name        string
		invoice     *model.Invoice
		lines       []*model.InvoiceLine
		expectedErr error
	}{
		{
			name:        "already_approved",
			invoice:     testInvoice(model.InvoiceStatusApproved),
			lines:       []*model.InvoiceLine{testLine()},
			expectedErr: errs.ErrCannotApproveInvoice,
		},
		{
			name:        "already_paid",
			invoice:     testInvoice(model.InvoiceStatusPaid),
			lines:       []*model.InvoiceLine{testLine()},
			expectedErr: errs.ErrCannotApproveInvoice,
		},
		{
			name:        "cancelled",
			invoice:     testInvoice(model.InvoiceStatusCancelled),
			lines:       []*model.InvoiceLine{testLine()},
			expectedErr: errs.ErrCannotApproveInvoice,
		},
		{
			name:        "no_lines",
			invoice:     testInvoice(model.InvoiceStatusOpen),
			lines:       nil,
			expectedErr: errs.ErrNoInvoiceLines,
		},
		{
			name: "duplicate_adjustment_id",
			invoice: func() *model.Invoice {
				inv := testInvoice(model.InvoiceStatusOpen)
				inv.Adjustments = []model.Adjustment{
					{ID: "adj-1", Type: model.AdjustmentTypeAmount, Prorate: model.ProrateNotProrated, Value: dec("1")},
					{ID: "adj-1", Type: model.AdjustmentTypeAmount, Prorate: model.ProrateNotProrated, Value: dec("2")},
				}
				return inv
			}(),
			lines:       []*model.InvoiceLine{testLine()},
			expectedErr: errs.ErrDuplicateAdjustmentID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// No expectations set: a guard failure must not touch any
			// collaborator.
			e := newEnv(t)

			err := e.biz.ApproveInvoice(context.Background(), tc.invoice, tc.lines, "admin")

			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestApproveInvoiceVendorChecks(t *testing.T) {
	testCases := []struct {
		name        string
		org         *model.Organization
		expectedErr error
	}{
		{
			name:        "organization_missing",
			org:         nil,
			expectedErr: errs.ErrOrgNotFound,
		},
		{
			name:        "organization_not_a_vendor",
			org:         &model.Organization{ID: "org-1", IsVendor: false},
			expectedErr: errs.ErrOrgIsNotVendor,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv(t)
			e.orgs.EXPECT().GetOrganization(gomock.Any(), "org-1").Return(tc.org, nil)

			err := e.biz.ApproveInvoice(context.Background(), testInvoice(model.InvoiceStatusOpen), []*model.InvoiceLine{testLine()}, "admin")

			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestApproveInvoice(t *testing.T) {
	e := newEnv(t)
	invoice := testInvoice(model.InvoiceStatusOpen)
	line := testLine()
	line.PoLineID = lo.ToPtr("po-1")

	e.orgs.EXPECT().
		GetOrganization(gomock.Any(), "org-1").
		Return(&model.Organization{ID: "org-1", IsVendor: true, AccountingCode: lo.ToPtr("ACC-9")}, nil)
	e.expectFinanceGraph()
	e.transactions.EXPECT().
		GetEncumbrancesByPoLineIDs(gomock.Any(), []string{"po-1"}, "fy-1").
		Return([]model.Transaction{{
			ID:         "enc-1",
			Type:       model.TransactionTypeEncumbrance,
			FromFundID: "fund-1",
			Encumbrance: &model.EncumbranceData{
				SourcePoLineID: "po-1",
				Status:         model.EncumbranceStatusUnreleased,
			},
		}}, nil)

	var createdPending []model.Transaction
	e.transactions.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []model.Transaction) ([]model.Transaction, error) {
			createdPending = txs
			return []model.Transaction{{ID: "tx-1"}}, nil
		})

	e.vouchers.EXPECT().GetVoucherByInvoiceID(gomock.Any(), "inv-1").Return(nil, nil)
	e.configuration.EXPECT().GetVoucherNumberPrefix(gomock.Any()).Return("VO", nil)

	var createdVoucher model.Voucher
	e.vouchers.EXPECT().
		CreateVoucher(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v model.Voucher) (*model.Voucher, error) {
			createdVoucher = v
			v.ID = "voucher-1"
			return &v, nil
		})

	var voucherLines []model.VoucherLine
	e.vouchers.EXPECT().
		ReplaceVoucherLines(gomock.Any(), "voucher-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, lines []model.VoucherLine) error {
			voucherLines = lines
			return nil
		})

	// Lines are persisted twice: once with the freshly linked encumbrances,
	// once with the approved statuses at the end.
	var persistedLines [][]model.InvoiceLine
	e.invoices.EXPECT().
		UpdateInvoiceLines(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lines []model.InvoiceLine) error {
			persistedLines = append(persistedLines, lines)
			return nil
		}).Times(2)

	err := e.biz.ApproveInvoice(context.Background(), invoice, []*model.InvoiceLine{line}, "admin")
	require.NoError(t, err)

	assert.Equal(t, model.InvoiceStatusApproved, invoice.Status)
	require.NotNil(t, invoice.ApprovalDate)
	assert.Equal(t, testTime, *invoice.ApprovalDate)
	require.NotNil(t, invoice.ApprovedBy)
	assert.Equal(t, "admin", *invoice.ApprovedBy)
	assert.True(t, invoice.Total.Equal(dec("100")))

	require.Len(t, createdPending, 1)
	pending := createdPending[0]
	assert.Equal(t, model.TransactionTypePendingPayment, pending.Type)
	assert.True(t, pending.Amount.Equal(dec("100")))
	assert.Equal(t, "USD", pending.Currency)
	assert.Equal(t, "fy-1", pending.FiscalYearID)
	assert.Equal(t, "fund-1", pending.FromFundID)
	assert.Equal(t, "inv-1", pending.SourceInvoiceID)
	require.NotNil(t, pending.SourceInvoiceLineID)
	assert.Equal(t, "line-1", *pending.SourceInvoiceLineID)
	assert.Equal(t, "inv-1/line-1/fund-1", pending.IdempotencyKey)

	assert.Equal(t, "inv-1", createdVoucher.InvoiceID)
	assert.Equal(t, model.VoucherStatusAwaitingPayment, createdVoucher.Status)
	assert.Equal(t, "VO", createdVoucher.VoucherNumberPrefix)
	assert.Equal(t, "USD", createdVoucher.InvoiceCurrency)
	assert.Equal(t, "USD", createdVoucher.SystemCurrency)
	assert.True(t, createdVoucher.ExchangeRate.Equal(dec("1")))
	assert.True(t, createdVoucher.Amount.Equal(dec("100")))
	assert.True(t, createdVoucher.ExportToAccounting)
	require.NotNil(t, createdVoucher.AccountingCode)
	assert.Equal(t, "ACC-9", *createdVoucher.AccountingCode)

	require.Len(t, voucherLines, 1)
	assert.True(t, voucherLines[0].Amount.Equal(dec("100")))
	assert.Equal(t, "ACC-9", voucherLines[0].ExternalAccountNumber)
	assert.Equal(t, []string{"line-1"}, voucherLines[0].SourceIDs)
	require.Len(t, voucherLines[0].FundDistributions, 1)
	fd := voucherLines[0].FundDistributions[0]
	assert.Equal(t, "fund-1", fd.FundID)
	assert.Equal(t, model.DistributionTypeAmount, fd.DistributionType)
	assert.True(t, fd.Value.Equal(dec("100")))
	require.NotNil(t, fd.EncumbranceID)
	assert.Equal(t, "enc-1", *fd.EncumbranceID)

	require.Len(t, persistedLines, 2)
	require.Len(t, persistedLines[0], 1)
	assert.Equal(t, model.InvoiceLineStatusOpen, persistedLines[0][0].Status)
	require.NotNil(t, persistedLines[0][0].FundDistributions[0].EncumbranceID)
	assert.Equal(t, "enc-1", *persistedLines[0][0].FundDistributions[0].EncumbranceID)

	final := persistedLines[1]
	require.Len(t, final, 1)
	assert.Equal(t, model.InvoiceLineStatusApproved, final[0].Status)
	require.NotNil(t, final[0].FundDistributions[0].EncumbranceID)
	assert.Equal(t, "enc-1", *final[0].FundDistributions[0].EncumbranceID)
}

func TestApproveInvoiceBudgetNotActive(t *testing.T) {
	e := newEnv(t)
	e.orgs.EXPECT().
		GetOrganization(gomock.Any(), "org-1").
		Return(&model.Organization{ID: "org-1", IsVendor: true}, nil)
	e.finance.EXPECT().
		GetFundsByIDs(gomock.Any(), []string{"fund-1"}).
		Return([]model.Fund{{ID: "fund-1", LedgerID: "ledger-1"}}, nil)
	e.finance.EXPECT().
		GetLedgersByIDs(gomock.Any(), []string{"ledger-1"}).
		Return([]model.Ledger{{ID: "ledger-1"}}, nil)
	e.finance.EXPECT().
		GetFiscalYear(gomock.Any(), "fy-1").
		Return(&model.FiscalYear{ID: "fy-1", Currency: "USD"}, nil)
	e.finance.EXPECT().
		GetBudgetsByFundIDs(gomock.Any(), []string{"fund-1"}, "fy-1").
		Return([]model.Budget{{ID: "budget-1", FundID: "fund-1", Status: model.BudgetStatusFrozen}}, nil)

	err := e.biz.ApproveInvoice(context.Background(), testInvoice(model.InvoiceStatusOpen), []*model.InvoiceLine{testLine()}, "admin")

	assert.ErrorIs(t, err, errs.ErrBudgetNotActive)
}

func TestApproveInvoiceInactiveExpenseClass(t *testing.T) {
	e := newEnv(t)
	line := testLine()
	line.FundDistributions[0].ExpenseClassID = lo.ToPtr("ec-1")

	e.orgs.EXPECT().
		GetOrganization(gomock.Any(), "org-1").
		Return(&model.Organization{ID: "org-1", IsVendor: true}, nil)
	e.expectFinanceGraph()
	e.finance.EXPECT().
		GetExpenseClassesByIDs(gomock.Any(), []string{"ec-1"}).
		Return([]model.ExpenseClass{{ID: "ec-1", Status: "inactive"}}, nil)

	err := e.biz.ApproveInvoice(context.Background(), testInvoice(model.InvoiceStatusOpen), []*model.InvoiceLine{line}, "admin")

	assert.ErrorIs(t, err, errs.ErrExpenseClassNotActive)
}

func TestApproveInvoiceRollsBackPendingPayments(t *testing.T) {
	voucherErr := errors.New("voucher service unavailable")
	rollbackErr := errors.New("delete rejected")

	testCases := []struct {
		name          string
		rollbackFails bool
	}{
		{name: "rollback_succeeds_original_error_returned"},
		{name: "rollback_fails_both_errors_reported", rollbackFails: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv(t)
			e.orgs.EXPECT().
				GetOrganization(gomock.Any(), "org-1").
				Return(&model.Organization{ID: "org-1", IsVendor: true}, nil)
			e.expectFinanceGraph()
			e.transactions.EXPECT().
				CreateTransactions(gomock.Any(), gomock.Any()).
				Return([]model.Transaction{{ID: "tx-1"}, {ID: "tx-2"}}, nil)
			e.vouchers.EXPECT().
				GetVoucherByInvoiceID(gomock.Any(), "inv-1").
				Return(nil, voucherErr)

			// The compensation must target exactly the created transactions
			// and run exactly once.
			del := e.transactions.EXPECT().
				DeleteTransactions(gomock.Any(), []string{"tx-1", "tx-2"}).
				Times(1)
			if tc.rollbackFails {
				del.Return(rollbackErr)
			} else {
				del.Return(nil)
			}

			err := e.biz.ApproveInvoice(context.Background(), testInvoice(model.InvoiceStatusOpen), []*model.InvoiceLine{testLine()}, "admin")

			if tc.rollbackFails {
				var rbErr *errs.RollbackError
				require.ErrorAs(t, err, &rbErr)
				assert.Equal(t, voucherErr, rbErr.Original)
				assert.Equal(t, rollbackErr, rbErr.Rollback)
				assert.ErrorIs(t, err, voucherErr)
			} else {
				assert.Equal(t, voucherErr, err)
			}
		})
	}
}

func TestApproveInvoiceInvalidFundDistributions(t *testing.T) {
	e := newEnv(t)
	line := testLine()
	line.FundDistributions[0].Value = dec("60") // only 60% of a 100 subtotal

	e.orgs.EXPECT().
		GetOrganization(gomock.Any(), "org-1").
		Return(&model.Organization{ID: "org-1", IsVendor: true}, nil)

	err := e.biz.ApproveInvoice(context.Background(), testInvoice(model.InvoiceStatusOpen), []*model.InvoiceLine{line}, "admin")

	assert.ErrorIs(t, err, errs.ErrFundDistributionsSum)
}
