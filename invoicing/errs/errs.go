// Package errs defines the structured error type used across the invoicing
// engine. Every user-visible failure carries a code, a human-readable message
// and enough entity ids to reproduce the failing record without raw
// collaborator responses.
package errs

import (
	"errors"
	"fmt"
)

type Code string

const (
	InvalidArgument    Code = "invalid_argument"
	NotFound           Code = "not_found"
	FailedPrecondition Code = "failed_precondition"
	AlreadyExists      Code = "already_exists"
	Internal           Code = "internal"
	Unavailable        Code = "unavailable"
)

type Error struct {
	Code    Code
	Message string
	Details map[string]string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches errors by code so callers can compare against the sentinel
// values below without caring about attached details.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New creates an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a cause to a copy of err. The copy keeps err's code, message
// and details so sentinel matching via errors.Is still works.
func Wrap(err *Error, cause error) *Error {
	out := *err
	out.cause = cause
	return &out
}

// WithDetail returns a copy of err with an extra detail attached.
func WithDetail(err *Error, key, value string) *Error {
	out := *err
	out.Details = make(map[string]string, len(err.Details)+1)
	for k, v := range err.Details {
		out.Details[k] = v
	}
	out.Details[key] = value
	return &out
}

// Domain sentinels. Compare with errors.Is.
var (
	ErrNoInvoiceLines         = New(FailedPrecondition, "invoice has no lines to approve")
	ErrOrgNotFound            = New(NotFound, "vendor organization not found")
	ErrOrgIsNotVendor         = New(FailedPrecondition, "organization is not a vendor")
	ErrBudgetNotFound         = New(NotFound, "budget not found for fund")
	ErrBudgetNotActive        = New(FailedPrecondition, "budget is not active")
	ErrFundNotFound           = New(NotFound, "fund not found")
	ErrLedgerNotFound         = New(NotFound, "ledger not found")
	ErrFiscalYearNotFound     = New(NotFound, "fiscal year not found")
	ErrExpenseClassNotActive  = New(FailedPrecondition, "expense class is not active")
	ErrDuplicateAdjustmentID  = New(InvalidArgument, "duplicate adjustment id")
	ErrCannotApproveInvoice   = New(FailedPrecondition, "invoice status does not allow approval")
	ErrCannotPayInvoice       = New(FailedPrecondition, "invoice status does not allow payment")
	ErrCannotCancelInvoice    = New(FailedPrecondition, "invoice status does not allow cancellation")
	ErrVoucherNotFound        = New(NotFound, "voucher not found for invoice")
	ErrCancelTransactions     = New(Internal, "failed to cancel invoice transactions")
	ErrFundDistributionsEmpty = New(InvalidArgument, "fund distributions are required for a non-zero total")
	ErrFundDistributionsSum   = New(InvalidArgument, "fund distributions do not sum to the total")
	ErrDuplicateFundDistribution = New(InvalidArgument, "duplicate fund distribution")
)

// RollbackError pairs the original saga failure with a failed compensation.
// The rollback failure must never silently replace or be swallowed by the
// original error.
type RollbackError struct {
	Original error
	Rollback error
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("pending payment rollback failed: %v (original failure: %v)", e.Rollback, e.Original)
}

func (e *RollbackError) Unwrap() error {
	return e.Original
}
