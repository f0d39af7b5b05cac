// Package client declares the contracts of the external services the
// invoicing engine depends on. All persistence and protocol concerns live
// behind these interfaces; the engine treats every call as a suspension
// point and holds no lock across one.
package client

import (
	"context"

	"github.com/acqware/invoicing/invoicing/model"
)

//go:generate mockgen -destination=../mocks/client/clients.go -package=clientmock github.com/acqware/invoicing/invoicing/client Organizations,Finance,Transactions,Vouchers,Orders,Invoices,Configuration,Exchange

// Organizations looks up vendor organizations.
type Organizations interface {
	GetOrganization(ctx context.Context, id string) (*model.Organization, error)
}

// Finance resolves the fund/ledger/fiscal-year/budget graph. Batch lookups
// accept id lists already bounded to the configured chunk size.
type Finance interface {
	GetFundsByIDs(ctx context.Context, ids []string) ([]model.Fund, error)
	GetLedgersByIDs(ctx context.Context, ids []string) ([]model.Ledger, error)
	GetFiscalYear(ctx context.Context, id string) (*model.FiscalYear, error)
	GetCurrentFiscalYear(ctx context.Context, ledgerID string) (*model.FiscalYear, error)
	GetBudgetsByFundIDs(ctx context.Context, fundIDs []string, fiscalYearID string) ([]model.Budget, error)
	GetExpenseClassesByIDs(ctx context.Context, ids []string) ([]model.ExpenseClass, error)
}

// Transactions creates and mutates finance transactions. The finance service
// owns their read-modify-write discipline; this engine only issues the calls.
type Transactions interface {
	CreateTransactions(ctx context.Context, txs []model.Transaction) ([]model.Transaction, error)
	DeleteTransactions(ctx context.Context, ids []string) error
	CancelTransactions(ctx context.Context, ids []string) error
	UnreleaseEncumbrances(ctx context.Context, ids []string) error
	GetTransactionsByInvoiceID(ctx context.Context, invoiceID string) ([]model.Transaction, error)
	GetEncumbrancesByPoLineIDs(ctx context.Context, poLineIDs []string, fiscalYearID string) ([]model.Transaction, error)
}

// Vouchers persists the per-invoice voucher and its lines.
type Vouchers interface {
	// GetVoucherByInvoiceID returns (nil, nil) when the invoice has no
	// voucher yet.
	GetVoucherByInvoiceID(ctx context.Context, invoiceID string) (*model.Voucher, error)
	CreateVoucher(ctx context.Context, voucher model.Voucher) (*model.Voucher, error)
	UpdateVoucher(ctx context.Context, voucher model.Voucher) error
	ReplaceVoucherLines(ctx context.Context, voucherID string, lines []model.VoucherLine) error
}

// Orders reads and batch-updates purchase-order lines and their orders.
type Orders interface {
	GetPoLinesByIDs(ctx context.Context, ids []string) ([]model.PoLine, error)
	GetPoLinesByIDsWithPaymentStatuses(ctx context.Context, ids []string, statuses []model.PaymentStatus) ([]model.PoLine, error)
	GetPurchaseOrdersByIDs(ctx context.Context, ids []string) ([]model.PurchaseOrder, error)
	UpdatePoLines(ctx context.Context, lines []model.PoLine) error
}

// Invoices is the storage side of the invoice domain itself: persisting
// updated lines and searching lines across invoices.
type Invoices interface {
	UpdateInvoiceLines(ctx context.Context, lines []model.InvoiceLine) error
	GetInvoiceLinesByPoLineIDs(ctx context.Context, poLineIDs []string) ([]model.InvoiceLine, error)
	GetInvoicesByIDs(ctx context.Context, ids []string) ([]model.Invoice, error)
}

// Configuration reads tenant configuration.
type Configuration interface {
	GetSystemCurrency(ctx context.Context) (string, error)
	GetVoucherNumberPrefix(ctx context.Context) (string, error)
}

// Exchange resolves currency conversions. A query with a non-nil rate is an
// explicit override the provider must honor.
type Exchange interface {
	Resolve(ctx context.Context, query model.ConversionQuery) (model.CurrencyConversion, error)
}

// Clients bundles every collaborator for injection into the business layer.
type Clients struct {
	Organizations Organizations
	Finance       Finance
	Transactions  Transactions
	Vouchers      Vouchers
	Orders        Orders
	Invoices      Invoices
	Configuration Configuration
	Exchange      Exchange
}
