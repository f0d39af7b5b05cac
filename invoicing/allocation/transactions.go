package allocation

import (
	"github.com/shopspring/decimal"

	"github.com/acqware/invoicing/invoicing/model"
	"github.com/acqware/invoicing/invoicing/money"
)

// CorrectTransactions re-zeroes rounding drift on already-created pending
// payment transactions, per invoice line: the line's converted total is
// compared with the sum of its transactions' amounts and the signed
// remainder is pushed onto the first transaction (negative remainder) or the
// last one (positive). Credit-typed transactions carry their magnitude with
// an inverted sign, so they flip once when summed against a zero expected
// total and again when chosen as the remainder target.
//
// Transactions are modified in place. Transactions not attributable to one
// of the given lines are left untouched.
func CorrectTransactions(lines []model.InvoiceLine, transactions []*model.Transaction, conv model.CurrencyConversion, systemCurrency string) {
	byLine := make(map[string][]*model.Transaction, len(lines))
	for _, tx := range transactions {
		if tx.SourceInvoiceLineID == nil {
			continue
		}
		byLine[*tx.SourceInvoiceLineID] = append(byLine[*tx.SourceInvoiceLineID], tx)
	}

	for _, line := range lines {
		group := byLine[line.ID]
		if len(group) == 0 {
			continue
		}

		expected := money.Round(conv.Convert(line.Total), systemCurrency)

		actual := decimal.Zero
		for _, tx := range group {
			amount := tx.Amount
			// A zero-value line holding a credit adjustment must net to
			// zero, not go negative.
			if expected.IsZero() && tx.Type == model.TransactionTypeCredit {
				amount = amount.Neg()
			}
			actual = actual.Add(amount)
		}

		remainder := expected.Sub(actual)
		if remainder.IsZero() {
			continue
		}

		target := group[len(group)-1]
		if remainder.IsNegative() {
			target = group[0]
		}
		if target.Type == model.TransactionTypeCredit {
			target.Amount = target.Amount.Sub(remainder)
		} else {
			target.Amount = target.Amount.Add(remainder)
		}
	}
}
