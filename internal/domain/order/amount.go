package order

import (
	"github.com/shopspring/decimal"

	"payconnect/internal/pkg/errs"
)

// FormatAmount renders a charge amount as the fixed-point two-decimal
// string the processor contract requires. Non-positive amounts are
// rejected before any upstream call is made.
func FormatAmount(amount float64) (string, error) {
	d := decimal.NewFromFloat(amount)
	if d.LessThanOrEqual(decimal.Zero) {
		return "", errs.Mark(errs.Newf("amount must be positive, got %s", d), errs.ErrValidation)
	}
	return d.StringFixed(2), nil
}
