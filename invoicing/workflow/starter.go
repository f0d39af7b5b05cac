package workflow

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"

	"github.com/acqware/invoicing/invoicing/errs"
)

var validate = validator.New()

// startParams is what the starter validates before touching Temporal.
type startParams struct {
	InvoiceID  string `validate:"required"`
	ApprovedBy string `validate:"required"`
	Lines      int    `validate:"min=1"`
}

// Starter launches and signals invoice lifecycle workflows. One workflow per
// invoice; re-starting an already-running lifecycle is benign.
type Starter struct {
	temporal  client.Client
	taskQueue string
	log       zerolog.Logger
}

func NewStarter(c client.Client, taskQueue string, log zerolog.Logger) *Starter {
	return &Starter{temporal: c, taskQueue: taskQueue, log: log}
}

// WorkflowID returns the deterministic workflow id for an invoice, shared by
// start and signal paths.
func WorkflowID(invoiceID string) string {
	return fmt.Sprintf("invoice-lifecycle-%s", invoiceID)
}

// StartLifecycle starts the lifecycle workflow for an invoice, beginning with
// approval. An AlreadyStarted response means another caller won the race and
// is not an error.
func (s *Starter) StartLifecycle(ctx context.Context, params InvoiceLifecycleParams) error {
	if err := validate.Struct(startParams{
		InvoiceID:  params.Invoice.ID,
		ApprovedBy: params.ApprovedBy,
		Lines:      len(params.Lines),
	}); err != nil {
		return errs.Wrap(errs.New(errs.InvalidArgument, "invalid lifecycle start parameters"), err)
	}

	workflowID := WorkflowID(params.Invoice.ID)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: s.taskQueue,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, InvoiceLifecycle, params)
	if err != nil {
		// Distinguish AlreadyStarted (benign) vs real failure
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			s.log.Info().Str("invoice_id", params.Invoice.ID).Str("workflow_id", workflowID).Msg("lifecycle workflow already started")
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}

// SignalPayment asks a running lifecycle workflow to settle its invoice.
func (s *Starter) SignalPayment(ctx context.Context, invoiceID string, signal PayInvoiceSignal) error {
	return s.temporal.SignalWorkflow(ctx, WorkflowID(invoiceID), "", PayInvoiceSignalName, signal)
}

// SignalCancellation asks a running lifecycle workflow to cancel its invoice.
func (s *Starter) SignalCancellation(ctx context.Context, invoiceID string, signal CancelInvoiceSignal) error {
	return s.temporal.SignalWorkflow(ctx, WorkflowID(invoiceID), "", CancelInvoiceSignalName, signal)
}

// NewWorker builds a Temporal worker with the lifecycle workflow and its
// activities registered.
func NewWorker(c client.Client, taskQueue string) worker.Worker {
	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(InvoiceLifecycle)
	w.RegisterActivity(ApproveInvoiceActivity)
	w.RegisterActivity(PayInvoiceActivity)
	w.RegisterActivity(CancelInvoiceActivity)
	return w
}
