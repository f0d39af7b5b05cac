package model

import (
	"github.com/shopspring/decimal"
)

type Fund struct {
	ID       string `json:"id"`
	Code     string `json:"code,omitempty"`
	Name     string `json:"name,omitempty"`
	LedgerID string `json:"ledger_id"`
	Status   string `json:"fund_status,omitempty"`
}

type Ledger struct {
	ID              string `json:"id"`
	Name            string `json:"name,omitempty"`
	FiscalYearOneID string `json:"fiscal_year_one_id"`
	Status          string `json:"ledger_status,omitempty"`
}

type FiscalYear struct {
	ID       string `json:"id"`
	Code     string `json:"code,omitempty"`
	Currency string `json:"currency"`
}

type Budget struct {
	ID           string          `json:"id"`
	FundID       string          `json:"fund_id"`
	FiscalYearID string          `json:"fiscal_year_id"`
	Name         string          `json:"name,omitempty"`
	Status       BudgetStatus    `json:"budget_status"`
	Allocated    decimal.Decimal `json:"allocated"`
	Available    decimal.Decimal `json:"available"`
}

type BudgetStatus string

const (
	BudgetStatusActive   BudgetStatus = "active"
	BudgetStatusFrozen   BudgetStatus = "frozen"
	BudgetStatusPlanned  BudgetStatus = "planned"
	BudgetStatusClosed   BudgetStatus = "closed"
	BudgetStatusInactive BudgetStatus = "inactive"
)

type ExpenseClass struct {
	ID     string `json:"id"`
	Code   string `json:"code,omitempty"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status"`
}

// ExpenseClassStatusActive is the only status under which an expense class
// may be referenced by a fund distribution at approval time.
const ExpenseClassStatusActive = "active"
