package model

// WorkflowDataHolder is the ephemeral per-(invoice line x fund distribution)
// aggregate used by one lifecycle pass. It is built fresh on every invocation
// and never persisted or shared between invocations.
type WorkflowDataHolder struct {
	Invoice          *Invoice
	InvoiceLine      *InvoiceLine // nil for adjustment-level holders
	Adjustment       *Adjustment  // nil for line-level holders
	FundDistribution FundDistribution
	Fund             *Fund
	Ledger           *Ledger
	Budget           *Budget
	FiscalYear       *FiscalYear
	Conversion       CurrencyConversion

	// ExistingTransaction is the pending payment already on file for this
	// distribution, NewTransaction the one this pass creates or converts.
	ExistingTransaction *Transaction
	NewTransaction      *Transaction
}

// SourceLineID returns the owning invoice line id, or empty for
// adjustment-level holders.
func (h *WorkflowDataHolder) SourceLineID() string {
	if h.InvoiceLine == nil {
		return ""
	}
	return h.InvoiceLine.ID
}
