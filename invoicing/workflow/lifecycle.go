package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/acqware/invoicing/invoicing/model"
)

// DefaultCancellationWindow bounds how long a paid invoice stays cancellable
// through its workflow before the workflow completes.
const DefaultCancellationWindow = 30 * 24 * time.Hour

// InvoiceLifecycleParams contains parameters for starting the invoice
// lifecycle workflow.
type InvoiceLifecycleParams struct {
	Invoice    model.Invoice       `json:"invoice"`
	Lines      []model.InvoiceLine `json:"lines"`
	ApprovedBy string              `json:"approved_by"`
	// CancellationWindow overrides DefaultCancellationWindow when positive.
	CancellationWindow time.Duration `json:"cancellation_window,omitempty"`
}

// InvoiceLifecycle drives one invoice from approval to settlement. The
// approval saga runs first; the workflow then waits on pay and cancel
// signals, executing the matching activity. Cancellation ends the workflow
// immediately; payment arms the cancellation window, after which the
// workflow completes with the invoice paid.
func InvoiceLifecycle(ctx workflow.Context, params InvoiceLifecycleParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting invoice lifecycle workflow", "invoiceID", params.Invoice.ID, "approvedBy", params.ApprovedBy)

	state := LifecycleState{Invoice: params.Invoice, Lines: params.Lines}
	approved, err := approveInvoice(ctx, state, params.ApprovedBy)
	if err != nil {
		logger.Error("Failed to approve invoice", "invoiceID", params.Invoice.ID, "error", err)
		return err
	}
	state = *approved

	window := params.CancellationWindow
	if window <= 0 {
		window = DefaultCancellationWindow
	}

	payCh := workflow.GetSignalChannel(ctx, PayInvoiceSignalName)
	cancelCh := workflow.GetSignalChannel(ctx, CancelInvoiceSignalName)

	done := false
	var retention workflow.Future

	for !done {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(payCh, func(c workflow.ReceiveChannel, more bool) {
			var signal PayInvoiceSignal
			c.Receive(ctx, &signal)
			if state.Invoice.Status != model.InvoiceStatusApproved {
				logger.Warn("Ignoring pay signal, invoice not approved", "invoiceID", state.Invoice.ID, "status", state.Invoice.Status)
				return
			}
			logger.Info("Received pay invoice signal", "invoiceID", state.Invoice.ID, "paidBy", signal.PaidBy)

			paid, err := payInvoice(ctx, state)
			if err != nil {
				logger.Error("Failed to pay invoice", "invoiceID", state.Invoice.ID, "error", err)
				return
			}
			state = *paid
			retention = workflow.NewTimer(ctx, window)
			logger.Info("Successfully paid invoice", "invoiceID", state.Invoice.ID)
		})

		selector.AddReceive(cancelCh, func(c workflow.ReceiveChannel, more bool) {
			var signal CancelInvoiceSignal
			c.Receive(ctx, &signal)
			logger.Info("Received cancel invoice signal", "invoiceID", state.Invoice.ID, "cancelledBy", signal.CancelledBy)

			cancelled, err := cancelInvoice(ctx, state, signal.PoLinePaymentStatusOverride)
			if err != nil {
				logger.Error("Failed to cancel invoice", "invoiceID", state.Invoice.ID, "error", err)
				return
			}
			state = *cancelled
			done = true
			logger.Info("Successfully cancelled invoice", "invoiceID", state.Invoice.ID)
		})

		if retention != nil {
			selector.AddFuture(retention, func(f workflow.Future) {
				logger.Info("Cancellation window elapsed, completing workflow", "invoiceID", state.Invoice.ID)
				done = true
			})
		}

		selector.Select(ctx)
	}

	logger.Info("Invoice lifecycle workflow completed", "invoiceID", state.Invoice.ID, "status", state.Invoice.Status)
	return nil
}

// approveInvoice executes the ApproveInvoice activity
func approveInvoice(ctx workflow.Context, state LifecycleState, approvedBy string) (*LifecycleState, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	var out LifecycleState
	if err := workflow.ExecuteActivity(activityCtx, ApproveInvoiceActivity, state, approvedBy).Get(ctx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// payInvoice executes the PayInvoice activity
func payInvoice(ctx workflow.Context, state LifecycleState) (*LifecycleState, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	var out LifecycleState
	if err := workflow.ExecuteActivity(activityCtx, PayInvoiceActivity, state).Get(ctx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// cancelInvoice executes the CancelInvoice activity
func cancelInvoice(ctx workflow.Context, state LifecycleState, override *model.PaymentStatus) (*LifecycleState, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    1 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	var out LifecycleState
	if err := workflow.ExecuteActivity(activityCtx, CancelInvoiceActivity, state, override).Get(ctx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
