package lifecycle

import (
	"context"

	"github.com/acqware/invoicing/invoicing/client"
	"github.com/acqware/invoicing/invoicing/errs"
	"github.com/acqware/invoicing/invoicing/model"
)

// workflowContext carries everything one lifecycle pass resolved about the
// invoice: the per-distribution holders, the conversion into the system
// currency and the fiscal year the money moves in.
type workflowContext struct {
	holders        []*model.WorkflowDataHolder
	conversion     model.CurrencyConversion
	systemCurrency string
	fiscalYear     *model.FiscalYear
}

func (wc *workflowContext) fiscalYearID() string {
	if wc.fiscalYear == nil {
		return ""
	}
	return wc.fiscalYear.ID
}

// buildWorkflowContext resolves the fund/ledger/budget/fiscal-year graph for
// every fund distribution on the invoice in one pass. Lookups are chunked and
// fetched concurrently; results are reassembled into per-distribution holders
// before any decision is made.
func (b *business) buildWorkflowContext(ctx context.Context, invoice *model.Invoice, lines []*model.InvoiceLine) (*workflowContext, error) {
	sources := collectDistributionSources(invoice, lines)

	fundIDs := make([]string, 0, len(sources))
	for _, src := range sources {
		fundIDs = append(fundIDs, src.fd.FundID)
	}

	funds, err := client.FetchChunkedConcurrent(ctx, fundIDs, b.cfg.IDsChunkSize, b.cfg.FetchConcurrency, b.clients.Finance.GetFundsByIDs)
	if err != nil {
		return nil, err
	}
	fundsByID := make(map[string]*model.Fund, len(funds))
	for i := range funds {
		fundsByID[funds[i].ID] = &funds[i]
	}
	for _, src := range sources {
		if _, ok := fundsByID[src.fd.FundID]; !ok {
			return nil, errs.WithDetail(errs.ErrFundNotFound, "fund_id", src.fd.FundID)
		}
	}

	ledgerIDs := make([]string, 0, len(funds))
	for _, fund := range funds {
		ledgerIDs = append(ledgerIDs, fund.LedgerID)
	}
	ledgers, err := client.FetchChunkedConcurrent(ctx, ledgerIDs, b.cfg.IDsChunkSize, b.cfg.FetchConcurrency, b.clients.Finance.GetLedgersByIDs)
	if err != nil {
		return nil, err
	}
	ledgersByID := make(map[string]*model.Ledger, len(ledgers))
	for i := range ledgers {
		ledgersByID[ledgers[i].ID] = &ledgers[i]
	}
	for _, fund := range funds {
		if _, ok := ledgersByID[fund.LedgerID]; !ok {
			return nil, errs.WithDetail(errs.ErrLedgerNotFound, "ledger_id", fund.LedgerID)
		}
	}

	fiscalYear, err := b.resolveFiscalYear(ctx, invoice, sources, fundsByID)
	if err != nil {
		return nil, err
	}

	budgetsByFund := make(map[string]*model.Budget)
	if fiscalYear != nil && len(fundIDs) > 0 {
		budgets, err := client.FetchChunkedConcurrent(ctx, fundIDs, b.cfg.IDsChunkSize, b.cfg.FetchConcurrency,
			func(ctx context.Context, ids []string) ([]model.Budget, error) {
				return b.clients.Finance.GetBudgetsByFundIDs(ctx, ids, fiscalYear.ID)
			})
		if err != nil {
			return nil, err
		}
		for i := range budgets {
			budgetsByFund[budgets[i].FundID] = &budgets[i]
		}
		for _, src := range sources {
			if _, ok := budgetsByFund[src.fd.FundID]; !ok {
				return nil, errs.WithDetail(errs.ErrBudgetNotFound, "fund_id", src.fd.FundID)
			}
		}
	}

	systemCurrency, err := b.resolveSystemCurrency(ctx, fiscalYear)
	if err != nil {
		return nil, err
	}
	conversion, err := b.resolveConversion(ctx, invoice, systemCurrency)
	if err != nil {
		return nil, err
	}

	holders := make([]*model.WorkflowDataHolder, 0, len(sources))
	for _, src := range sources {
		fund := fundsByID[src.fd.FundID]
		holders = append(holders, &model.WorkflowDataHolder{
			Invoice:          invoice,
			InvoiceLine:      src.line,
			Adjustment:       src.adj,
			FundDistribution: src.fd,
			Fund:             fund,
			Ledger:           ledgersByID[fund.LedgerID],
			Budget:           budgetsByFund[src.fd.FundID],
			FiscalYear:       fiscalYear,
			Conversion:       conversion,
		})
	}

	return &workflowContext{
		holders:        holders,
		conversion:     conversion,
		systemCurrency: systemCurrency,
		fiscalYear:     fiscalYear,
	}, nil
}

type distributionSource struct {
	line *model.InvoiceLine
	adj  *model.Adjustment
	fd   model.FundDistribution
}

// collectDistributionSources flattens the invoice into one entry per fund
// distribution, line distributions first, then the distributions of
// not-prorated invoice adjustments. Prorated adjustments already live on the
// lines as derived shares and must not be double-counted here.
func collectDistributionSources(invoice *model.Invoice, lines []*model.InvoiceLine) []distributionSource {
	var sources []distributionSource
	for _, line := range lines {
		for _, fd := range line.FundDistributions {
			sources = append(sources, distributionSource{line: line, fd: fd})
		}
	}
	for i := range invoice.Adjustments {
		adj := &invoice.Adjustments[i]
		if adj.IsProrated() {
			continue
		}
		for _, fd := range adj.FundDistributions {
			sources = append(sources, distributionSource{adj: adj, fd: fd})
		}
	}
	return sources
}

// resolveFiscalYear prefers the fiscal year pinned on the invoice; otherwise
// it asks the ledger of the first referenced fund for its current one. An
// invoice with no distributions at all has no fiscal year to resolve.
func (b *business) resolveFiscalYear(ctx context.Context, invoice *model.Invoice, sources []distributionSource, fundsByID map[string]*model.Fund) (*model.FiscalYear, error) {
	if invoice.FiscalYearID != "" {
		fy, err := b.clients.Finance.GetFiscalYear(ctx, invoice.FiscalYearID)
		if err != nil {
			return nil, err
		}
		if fy == nil {
			return nil, errs.WithDetail(errs.ErrFiscalYearNotFound, "fiscal_year_id", invoice.FiscalYearID)
		}
		return fy, nil
	}
	if len(sources) == 0 {
		return nil, nil
	}
	ledgerID := fundsByID[sources[0].fd.FundID].LedgerID
	fy, err := b.clients.Finance.GetCurrentFiscalYear(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	if fy == nil {
		return nil, errs.WithDetail(errs.ErrFiscalYearNotFound, "ledger_id", ledgerID)
	}
	return fy, nil
}

// resolveSystemCurrency takes the fiscal year's currency when one resolved,
// falling back to the tenant configuration and finally the configured default.
func (b *business) resolveSystemCurrency(ctx context.Context, fiscalYear *model.FiscalYear) (string, error) {
	if fiscalYear != nil && fiscalYear.Currency != "" {
		return fiscalYear.Currency, nil
	}
	currency, err := b.clients.Configuration.GetSystemCurrency(ctx)
	if err != nil {
		return "", err
	}
	if currency == "" {
		currency = b.cfg.SystemCurrencyFallback
	}
	return currency, nil
}

func (b *business) resolveConversion(ctx context.Context, invoice *model.Invoice, systemCurrency string) (model.CurrencyConversion, error) {
	if invoice.Currency == systemCurrency {
		return model.SameCurrencyConversion(invoice.Currency), nil
	}
	return b.clients.Exchange.Resolve(ctx, model.ConversionQuery{
		From: invoice.Currency,
		To:   systemCurrency,
		Rate: invoice.ExchangeRate,
	})
}
