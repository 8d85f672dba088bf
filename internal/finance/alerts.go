package finance

import (
	"github.com/shopspring/decimal"
)

// DailyLimitThreshold is the share of the daily limit that triggers an alert.
var DailyLimitThreshold = decimal.RequireFromString("0.8")

// DailyLimitReached reports whether today's spending has consumed at least
// 80% of the daily limit.
func DailyLimitReached(spent, limit decimal.Decimal) bool {
	if !limit.IsPositive() {
		return false
	}

	return spent.GreaterThanOrEqual(limit.Mul(DailyLimitThreshold))
}

// BudgetOverrun returns by how much spending exceeds the budget and whether
// it does at all.
func BudgetOverrun(spent, budget decimal.Decimal) (decimal.Decimal, bool) {
	if spent.LessThanOrEqual(budget) {
		return decimal.Zero, false
	}

	return spent.Sub(budget), true
}
