package allocation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/acqware/invoicing/invoicing/errs"
	"github.com/acqware/invoicing/invoicing/model"
	"github.com/acqware/invoicing/invoicing/money"
)

var validate = validator.New()

// ValidateRequest is the input to ValidateFundDistributions: the financial
// summary of an invoice or line whose distribution set should be checked
// before it is persisted.
type ValidateRequest struct {
	SubTotal          decimal.Decimal          `json:"sub_total"`
	Currency          string                   `json:"currency" validate:"required,len=3,alpha"`
	FundDistributions []model.FundDistribution `json:"fund_distributions"`
	Adjustments       []model.Adjustment       `json:"adjustments"`
}

// ValidateFundDistributions checks that the request's fund distributions
// fully and exactly cover its total: no duplicates, a non-empty set for a
// non-zero total, and amounts plus resolved percentages summing to the total
// to within what remainder correction can absorb (half a minor unit).
func ValidateFundDistributions(req ValidateRequest) error {
	if err := validate.Struct(req); err != nil {
		return errs.Wrap(errs.New(errs.InvalidArgument, "invalid fund distribution request"), err)
	}

	total := req.SubTotal
	for _, adj := range req.Adjustments {
		if adj.IsProrated() {
			continue
		}
		total = total.Add(adjustmentAmount(adj, req.SubTotal, req.Currency))
	}
	total = money.Round(total, req.Currency)

	if len(req.FundDistributions) == 0 {
		if total.IsZero() {
			return nil
		}
		return errs.ErrFundDistributionsEmpty
	}

	seen := make(map[string]struct{}, len(req.FundDistributions))
	covered := decimal.Zero
	for _, fd := range req.FundDistributions {
		key := fd.FundID
		if fd.ExpenseClassID != nil {
			key += "/" + *fd.ExpenseClassID
		}
		if _, dup := seen[key]; dup {
			return errs.WithDetail(errs.ErrDuplicateFundDistribution, "fund_id", fd.FundID)
		}
		seen[key] = struct{}{}

		if fd.DistributionType == model.DistributionTypeAmount {
			covered = covered.Add(fd.Value)
		} else {
			covered = covered.Add(money.Percentage(total, fd.Value))
		}
	}

	// Anything below half a minor unit is rounding noise the allocator's
	// remainder correction absorbs; anything above means the set does not
	// cover the total.
	tolerance := decimal.New(5, -money.MinorUnitDigits(req.Currency)-1)
	if total.Sub(covered).Abs().GreaterThanOrEqual(tolerance) {
		return errs.WithDetail(errs.ErrFundDistributionsSum,
			"remaining", fmt.Sprintf("%s %s", total.Sub(covered), req.Currency))
	}
	return nil
}
