package lifecycle

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/acqware/invoicing/invoicing/business/orderline"
	"github.com/acqware/invoicing/invoicing/client"
	"github.com/acqware/invoicing/invoicing/config"
	"github.com/acqware/invoicing/invoicing/logging"
	clientmock "github.com/acqware/invoicing/invoicing/mocks/client"
	"github.com/acqware/invoicing/invoicing/model"
)

var testTime = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// env wires a business instance against strict mocks of every collaborator.
// A call with no matching expectation fails the test, which is what the
// guard tests rely on to prove no collaborator is touched.
type env struct {
	orgs          *clientmock.MockOrganizations
	finance       *clientmock.MockFinance
	transactions  *clientmock.MockTransactions
	vouchers      *clientmock.MockVouchers
	orders        *clientmock.MockOrders
	invoices      *clientmock.MockInvoices
	configuration *clientmock.MockConfiguration
	exchange      *clientmock.MockExchange

	biz *business
}

func newEnv(t *testing.T) *env {
	ctrl := gomock.NewController(t)
	e := &env{
		orgs:          clientmock.NewMockOrganizations(ctrl),
		finance:       clientmock.NewMockFinance(ctrl),
		transactions:  clientmock.NewMockTransactions(ctrl),
		vouchers:      clientmock.NewMockVouchers(ctrl),
		orders:        clientmock.NewMockOrders(ctrl),
		invoices:      clientmock.NewMockInvoices(ctrl),
		configuration: clientmock.NewMockConfiguration(ctrl),
		exchange:      clientmock.NewMockExchange(ctrl),
	}
	clients := client.Clients{
		Organizations: e.orgs,
		Finance:       e.finance,
		Transactions:  e.transactions,
		Vouchers:      e.vouchers,
		Orders:        e.orders,
		Invoices:      e.invoices,
		Configuration: e.configuration,
		Exchange:      e.exchange,
	}
	cfg := config.Default()
	e.biz = &business{
		clients:    clients,
		cfg:        cfg,
		reconciler: orderline.NewReconciler(e.orders, e.invoices, cfg.IDsChunkSize, logging.Nop()),
		log:        logging.Nop(),
		now:        func() time.Time { return testTime },
	}
	return e
}

func testInvoice(status model.InvoiceStatus) *model.Invoice {
	return &model.Invoice{
		ID:                 "inv-1",
		Status:             status,
		Currency:           "USD",
		VendorID:           "org-1",
		FiscalYearID:       "fy-1",
		BatchGroupID:       "bg-1",
		ExportToAccounting: true,
	}
}

func testLine() *model.InvoiceLine {
	return &model.InvoiceLine{
		ID:        "line-1",
		InvoiceID: "inv-1",
		Quantity:  1,
		SubTotal:  dec("100"),
		Total:     dec("100"),
		Status:    model.InvoiceLineStatusOpen,
		FundDistributions: []model.FundDistribution{
			{FundID: "fund-1", DistributionType: model.DistributionTypePercentage, Value: dec("100")},
		},
	}
}

// expectFinanceGraph wires the happy-path fund/ledger/fiscal-year/budget
// resolution for an invoice touching only fund-1.
func (e *env) expectFinanceGraph() {
	e.finance.EXPECT().
		GetFundsByIDs(gomock.Any(), []string{"fund-1"}).
		Return([]model.Fund{{ID: "fund-1", LedgerID: "ledger-1"}}, nil)
	e.finance.EXPECT().
		GetLedgersByIDs(gomock.Any(), []string{"ledger-1"}).
		Return([]model.Ledger{{ID: "ledger-1", FiscalYearOneID: "fy-1"}}, nil)
	e.finance.EXPECT().
		GetFiscalYear(gomock.Any(), "fy-1").
		Return(&model.FiscalYear{ID: "fy-1", Currency: "USD"}, nil)
	e.finance.EXPECT().
		GetBudgetsByFundIDs(gomock.Any(), []string{"fund-1"}, "fy-1").
		Return([]model.Budget{{ID: "budget-1", FundID: "fund-1", FiscalYearID: "fy-1", Status: model.BudgetStatusActive}}, nil)
}
