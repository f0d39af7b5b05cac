package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	lifecyclemock "github.com/acqware/invoicing/invoicing/mocks/business/lifecycle"
	"github.com/acqware/invoicing/invoicing/model"
)

func newWorkflowEnv(t *testing.T) (*testsuite.TestWorkflowEnvironment, *lifecyclemock.MockBusiness) {
	ctrl := gomock.NewController(t)
	mockBiz := lifecyclemock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(ApproveInvoiceActivity)
	env.RegisterActivity(PayInvoiceActivity)
	env.RegisterActivity(CancelInvoiceActivity)
	return env, mockBiz
}

func workflowParams() InvoiceLifecycleParams {
	return InvoiceLifecycleParams{
		Invoice:    model.Invoice{ID: "inv-1", Status: model.InvoiceStatusOpen, Currency: "USD", VendorID: "org-1"},
		Lines:      []model.InvoiceLine{{ID: "line-1", InvoiceID: "inv-1"}},
		ApprovedBy: "admin",
	}
}

func TestInvoiceLifecycleWorkflow_PayThenWindowElapses(t *testing.T) {
	env, mockBiz := newWorkflowEnv(t)

	mockBiz.EXPECT().
		ApproveInvoice(gomock.Any(), gomock.Any(), gomock.Any(), "admin").
		DoAndReturn(func(_ context.Context, invoice *model.Invoice, lines []*model.InvoiceLine, _ string) error {
			invoice.Status = model.InvoiceStatusApproved
			for _, line := range lines {
				line.Status = model.InvoiceLineStatusApproved
			}
			return nil
		}).Times(1)
	// The second pay signal arrives after settlement and must be ignored.
	mockBiz.EXPECT().
		PayInvoice(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, invoice *model.Invoice, lines []*model.InvoiceLine) error {
			invoice.Status = model.InvoiceStatusPaid
			return nil
		}).Times(1)

	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(PayInvoiceSignalName, PayInvoiceSignal{PaidBy: "admin"})
	}, time.Minute)
	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(PayInvoiceSignalName, PayInvoiceSignal{PaidBy: "admin"})
	}, 2*time.Minute)

	env.ExecuteWorkflow(InvoiceLifecycle, workflowParams())
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestInvoiceLifecycleWorkflow_CancelAfterApproval(t *testing.T) {
	env, mockBiz := newWorkflowEnv(t)
	override := lo.ToPtr(model.PaymentStatusOngoing)

	mockBiz.EXPECT().
		ApproveInvoice(gomock.Any(), gomock.Any(), gomock.Any(), "admin").
		DoAndReturn(func(_ context.Context, invoice *model.Invoice, _ []*model.InvoiceLine, _ string) error {
			invoice.Status = model.InvoiceStatusApproved
			return nil
		}).Times(1)
	mockBiz.EXPECT().
		CancelInvoice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, invoice *model.Invoice, _ []*model.InvoiceLine, got *model.PaymentStatus) error {
			require.NotNil(t, got)
			assert.Equal(t, *override, *got)
			invoice.Status = model.InvoiceStatusCancelled
			return nil
		}).Times(1)

	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(CancelInvoiceSignalName, CancelInvoiceSignal{
			CancelledBy:                 "admin",
			PoLinePaymentStatusOverride: override,
		})
	}, time.Minute)

	env.ExecuteWorkflow(InvoiceLifecycle, workflowParams())
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestInvoiceLifecycleWorkflow_CancelAfterPayment(t *testing.T) {
	env, mockBiz := newWorkflowEnv(t)

	mockBiz.EXPECT().
		ApproveInvoice(gomock.Any(), gomock.Any(), gomock.Any(), "admin").
		DoAndReturn(func(_ context.Context, invoice *model.Invoice, _ []*model.InvoiceLine, _ string) error {
			invoice.Status = model.InvoiceStatusApproved
			return nil
		}).Times(1)
	mockBiz.EXPECT().
		PayInvoice(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, invoice *model.Invoice, _ []*model.InvoiceLine) error {
			invoice.Status = model.InvoiceStatusPaid
			return nil
		}).Times(1)
	mockBiz.EXPECT().
		CancelInvoice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, invoice *model.Invoice, _ []*model.InvoiceLine, _ *model.PaymentStatus) error {
			invoice.Status = model.InvoiceStatusCancelled
			return nil
		}).Times(1)

	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(PayInvoiceSignalName, PayInvoiceSignal{})
	}, time.Minute)
	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(CancelInvoiceSignalName, CancelInvoiceSignal{CancelledBy: "admin"})
	}, time.Hour)

	env.ExecuteWorkflow(InvoiceLifecycle, workflowParams())
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestInvoiceLifecycleWorkflow_ApprovalFailureEndsWorkflow(t *testing.T) {
	env, mockBiz := newWorkflowEnv(t)

	mockBiz.EXPECT().
		ApproveInvoice(gomock.Any(), gomock.Any(), gomock.Any(), "admin").
		Return(errors.New("budget is not active")).
		AnyTimes()

	env.ExecuteWorkflow(InvoiceLifecycle, workflowParams())
	require.True(t, env.IsWorkflowCompleted())
	err := env.GetWorkflowError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "budget is not active")
}
