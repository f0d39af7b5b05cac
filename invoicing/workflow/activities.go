package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/acqware/invoicing/invoicing/business/lifecycle"
	"github.com/acqware/invoicing/invoicing/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	Lifecycle lifecycle.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(biz lifecycle.Business) {
	activityDeps = &ActivityDependencies{
		Lifecycle: biz,
	}
}

// LifecycleState is the invoice and its lines as one activity left them,
// passed back to the workflow and into the next activity.
type LifecycleState struct {
	Invoice model.Invoice       `json:"invoice"`
	Lines   []model.InvoiceLine `json:"lines"`
}

func (s *LifecycleState) linePointers() []*model.InvoiceLine {
	out := make([]*model.InvoiceLine, len(s.Lines))
	for i := range s.Lines {
		out[i] = &s.Lines[i]
	}
	return out
}

// ApproveInvoiceActivity runs the approval saga for the invoice in the state.
func ApproveInvoiceActivity(ctx context.Context, state LifecycleState, approvedBy string) (*LifecycleState, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing approve invoice activity", "invoiceID", state.Invoice.ID, "approvedBy", approvedBy)

	if activityDeps == nil || activityDeps.Lifecycle == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	lines := state.linePointers()
	if err := activityDeps.Lifecycle.ApproveInvoice(ctx, &state.Invoice, lines, approvedBy); err != nil {
		logger.Error("Failed to approve invoice", "invoiceID", state.Invoice.ID, "error", err)
		return nil, err
	}

	logger.Info("Successfully approved invoice", "invoiceID", state.Invoice.ID)
	return &state, nil
}

// PayInvoiceActivity settles the approved invoice in the state.
func PayInvoiceActivity(ctx context.Context, state LifecycleState) (*LifecycleState, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing pay invoice activity", "invoiceID", state.Invoice.ID)

	if activityDeps == nil || activityDeps.Lifecycle == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	lines := state.linePointers()
	if err := activityDeps.Lifecycle.PayInvoice(ctx, &state.Invoice, lines); err != nil {
		logger.Error("Failed to pay invoice", "invoiceID", state.Invoice.ID, "error", err)
		return nil, err
	}

	logger.Info("Successfully paid invoice", "invoiceID", state.Invoice.ID)
	return &state, nil
}

// CancelInvoiceActivity cancels the invoice in the state, optionally forcing
// the reverted PO-line payment status.
func CancelInvoiceActivity(ctx context.Context, state LifecycleState, override *model.PaymentStatus) (*LifecycleState, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing cancel invoice activity", "invoiceID", state.Invoice.ID)

	if activityDeps == nil || activityDeps.Lifecycle == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	lines := state.linePointers()
	if err := activityDeps.Lifecycle.CancelInvoice(ctx, &state.Invoice, lines, override); err != nil {
		logger.Error("Failed to cancel invoice", "invoiceID", state.Invoice.ID, "error", err)
		return nil, err
	}

	logger.Info("Successfully cancelled invoice", "invoiceID", state.Invoice.ID)
	return &state, nil
}
