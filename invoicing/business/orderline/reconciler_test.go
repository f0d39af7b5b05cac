package orderline

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acqware/invoicing/invoicing/logging"
	clientmock "github.com/acqware/invoicing/invoicing/mocks/client"
	"github.com/acqware/invoicing/invoicing/model"
)

type reconcilerEnv struct {
	orders   *clientmock.MockOrders
	invoices *clientmock.MockInvoices
	r        *Reconciler
}

func newReconcilerEnv(t *testing.T, chunkSize int) *reconcilerEnv {
	ctrl := gomock.NewController(t)
	e := &reconcilerEnv{
		orders:   clientmock.NewMockOrders(ctrl),
		invoices: clientmock.NewMockInvoices(ctrl),
	}
	e.r = NewReconciler(e.orders, e.invoices, chunkSize, logging.Nop())
	return e
}

func invoiceLine(id, poLineID string, release bool) *model.InvoiceLine {
	line := &model.InvoiceLine{ID: id, InvoiceID: "inv-1", SubTotal: decimal.NewFromInt(10)}
	if poLineID != "" {
		line.PoLineID = &poLineID
	}
	line.ReleaseEncumbrance = release
	return line
}

func TestReconcileAfterPayment(t *testing.T) {
	testCases := []struct {
		name           string
		lines          []*model.InvoiceLine
		poLine         model.PoLine
		expectedStatus model.PaymentStatus
		expectUpdate   bool
	}{
		{
			name:           "release_line_marks_fully_paid",
			lines:          []*model.InvoiceLine{invoiceLine("l1", "po-1", true)},
			poLine:         model.PoLine{ID: "po-1", PaymentStatus: model.PaymentStatusAwaitingPayment},
			expectedStatus: model.PaymentStatusFullyPaid,
			expectUpdate:   true,
		},
		{
			name:           "no_release_marks_partially_paid",
			lines:          []*model.InvoiceLine{invoiceLine("l1", "po-1", false)},
			poLine:         model.PoLine{ID: "po-1", PaymentStatus: model.PaymentStatusAwaitingPayment},
			expectedStatus: model.PaymentStatusPartiallyPaid,
			expectUpdate:   true,
		},
		{
			name: "any_release_line_wins",
			lines: []*model.InvoiceLine{
				invoiceLine("l1", "po-1", false),
				invoiceLine("l2", "po-1", true),
			},
			poLine:         model.PoLine{ID: "po-1", PaymentStatus: model.PaymentStatusAwaitingPayment},
			expectedStatus: model.PaymentStatusFullyPaid,
			expectUpdate:   true,
		},
		{
			name:         "ongoing_never_overwritten",
			lines:        []*model.InvoiceLine{invoiceLine("l1", "po-1", true)},
			poLine:       model.PoLine{ID: "po-1", PaymentStatus: model.PaymentStatusOngoing},
			expectUpdate: false,
		},
		{
			name:         "payment_not_required_never_overwritten",
			lines:        []*model.InvoiceLine{invoiceLine("l1", "po-1", false)},
			poLine:       model.PoLine{ID: "po-1", PaymentStatus: model.PaymentStatusPaymentNotRequired},
			expectUpdate: false,
		},
		{
			name:         "already_at_target_status",
			lines:        []*model.InvoiceLine{invoiceLine("l1", "po-1", true)},
			poLine:       model.PoLine{ID: "po-1", PaymentStatus: model.PaymentStatusFullyPaid},
			expectUpdate: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newReconcilerEnv(t, 15)
			e.orders.EXPECT().
				GetPoLinesByIDs(gomock.Any(), []string{"po-1"}).
				Return([]model.PoLine{tc.poLine}, nil)
			if tc.expectUpdate {
				e.orders.EXPECT().
					UpdatePoLines(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, poLines []model.PoLine) error {
						require.Len(t, poLines, 1)
						assert.Equal(t, tc.expectedStatus, poLines[0].PaymentStatus)
						return nil
					})
			}

			err := e.r.ReconcileAfterPayment(context.Background(), tc.lines)
			assert.NoError(t, err)
		})
	}
}

func TestReconcileAfterPaymentNoPoLines(t *testing.T) {
	e := newReconcilerEnv(t, 15)

	err := e.r.ReconcileAfterPayment(context.Background(), []*model.InvoiceLine{invoiceLine("l1", "", true)})

	assert.NoError(t, err)
}

func TestReconcileAfterCancellationOverride(t *testing.T) {
	e := newReconcilerEnv(t, 15)
	invoice := &model.Invoice{ID: "inv-1", Status: model.InvoiceStatusCancelled, FiscalYearID: "fy-1"}
	lines := []*model.InvoiceLine{invoiceLine("l1", "po-1", true)}

	e.orders.EXPECT().
		GetPoLinesByIDsWithPaymentStatuses(gomock.Any(), []string{"po-1"}, gomock.Any()).
		Return([]model.PoLine{
			{ID: "po-1", PaymentStatus: model.PaymentStatusFullyPaid},
		}, nil)
	e.orders.EXPECT().
		UpdatePoLines(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, poLines []model.PoLine) error {
			require.Len(t, poLines, 1)
			assert.Equal(t, model.PaymentStatusOngoing, poLines[0].PaymentStatus)
			return nil
		})

	err := e.r.ReconcileAfterCancellation(context.Background(), invoice, lines, lo.ToPtr(model.PaymentStatusOngoing))
	assert.NoError(t, err)
}

func TestReconcileAfterCancellationNoCandidates(t *testing.T) {
	e := newReconcilerEnv(t, 15)
	invoice := &model.Invoice{ID: "inv-1", FiscalYearID: "fy-1"}

	// No line released its encumbrance, so no PO line is a candidate and no
	// collaborator is queried.
	err := e.r.ReconcileAfterCancellation(context.Background(), invoice, []*model.InvoiceLine{invoiceLine("l1", "po-1", false)}, nil)

	assert.NoError(t, err)
}

func TestReconcileAfterCancellationDecision(t *testing.T) {
	otherPaid := func(release bool) model.InvoiceLine {
		return model.InvoiceLine{ID: "other-l1", InvoiceID: "inv-2", PoLineID: lo.ToPtr("po-1"), ReleaseEncumbrance: release}
	}

	testCases := []struct {
		name           string
		otherLines     []model.InvoiceLine
		otherInvoices  []model.Invoice
		expectedStatus model.PaymentStatus
		expectUpdate   bool
	}{
		{
			name:           "no_other_invoices_reverts_to_awaiting",
			expectedStatus: model.PaymentStatusAwaitingPayment,
			expectUpdate:   true,
		},
		{
			name:           "other_paid_without_release_reverts_to_partially_paid",
			otherLines:     []model.InvoiceLine{otherPaid(false)},
			otherInvoices:  []model.Invoice{{ID: "inv-2", Status: model.InvoiceStatusPaid, FiscalYearID: "fy-1"}},
			expectedStatus: model.PaymentStatusPartiallyPaid,
			expectUpdate:   true,
		},
		{
			name:          "other_paid_with_release_leaves_status",
			otherLines:    []model.InvoiceLine{otherPaid(true)},
			otherInvoices: []model.Invoice{{ID: "inv-2", Status: model.InvoiceStatusPaid, FiscalYearID: "fy-1"}},
			expectUpdate:  false,
		},
		{
			name:           "other_invoice_in_different_fiscal_year_ignored",
			otherLines:     []model.InvoiceLine{otherPaid(true)},
			otherInvoices:  []model.Invoice{{ID: "inv-2", Status: model.InvoiceStatusPaid, FiscalYearID: "fy-2"}},
			expectedStatus: model.PaymentStatusAwaitingPayment,
			expectUpdate:   true,
		},
		{
			name:           "other_invoice_not_paid_ignored",
			otherLines:     []model.InvoiceLine{otherPaid(true)},
			otherInvoices:  []model.Invoice{{ID: "inv-2", Status: model.InvoiceStatusApproved, FiscalYearID: "fy-1"}},
			expectedStatus: model.PaymentStatusAwaitingPayment,
			expectUpdate:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newReconcilerEnv(t, 15)
			invoice := &model.Invoice{ID: "inv-1", Status: model.InvoiceStatusCancelled, FiscalYearID: "fy-1"}
			lines := []*model.InvoiceLine{invoiceLine("l1", "po-1", true)}

			e.orders.EXPECT().
				GetPoLinesByIDsWithPaymentStatuses(gomock.Any(), []string{"po-1"}, gomock.Any()).
				Return([]model.PoLine{{ID: "po-1", PaymentStatus: model.PaymentStatusFullyPaid}}, nil)
			e.invoices.EXPECT().
				GetInvoiceLinesByPoLineIDs(gomock.Any(), []string{"po-1"}).
				Return(tc.otherLines, nil)
			if len(tc.otherLines) > 0 {
				e.invoices.EXPECT().
					GetInvoicesByIDs(gomock.Any(), []string{"inv-2"}).
					Return(tc.otherInvoices, nil)
			}
			if tc.expectUpdate {
				e.orders.EXPECT().
					UpdatePoLines(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, poLines []model.PoLine) error {
						require.Len(t, poLines, 1)
						assert.Equal(t, tc.expectedStatus, poLines[0].PaymentStatus)
						return nil
					})
			}

			err := e.r.ReconcileAfterCancellation(context.Background(), invoice, lines, nil)
			assert.NoError(t, err)
		})
	}
}

func TestReconcileAfterPaymentChunksLookups(t *testing.T) {
	e := newReconcilerEnv(t, 2)
	lines := []*model.InvoiceLine{
		invoiceLine("l1", "po-1", false),
		invoiceLine("l2", "po-2", false),
		invoiceLine("l3", "po-3", false),
	}

	// Three ids with chunk size two means two lookups, and the decision runs
	// over the reassembled set.
	e.orders.EXPECT().
		GetPoLinesByIDs(gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ context.Context, ids []string) ([]model.PoLine, error) {
			out := make([]model.PoLine, len(ids))
			for i, id := range ids {
				out[i] = model.PoLine{ID: id, PaymentStatus: model.PaymentStatusAwaitingPayment}
			}
			return out, nil
		})
	e.orders.EXPECT().
		GetPoLinesByIDs(gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ context.Context, ids []string) ([]model.PoLine, error) {
			return []model.PoLine{{ID: ids[0], PaymentStatus: model.PaymentStatusAwaitingPayment}}, nil
		})
	e.orders.EXPECT().
		UpdatePoLines(gomock.Any(), gomock.Len(2)).
		Return(nil)
	e.orders.EXPECT().
		UpdatePoLines(gomock.Any(), gomock.Len(1)).
		Return(nil)

	err := e.r.ReconcileAfterPayment(context.Background(), lines)
	assert.NoError(t, err)
}
