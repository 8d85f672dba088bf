package finance

import (
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	// Weights of the two factors in the composite score.
	savingsRateWeight     = decimal.RequireFromString("0.4")
	budgetAdherenceWeight = decimal.RequireFromString("0.6")

	// neutralAdherence is used when no budget is set for the month.
	neutralAdherence = decimal.NewFromInt(50)
)

// HealthFactors is the result of a health score computation.
type HealthFactors struct {
	Score           int             // Composite score, always in [0, 100]
	SavingsRate     decimal.Decimal // Percentage of income not spent. Negative when expenses exceed income.
	BudgetAdherence decimal.Decimal // How far spending stays below the budget, floored at 0.
}

// ComputeHealthScore computes the composite financial health score from the
// month's income, expense and optional budget.
//
// The savings rate is 0 when there is no income, not an error. A missing
// budget yields the neutral adherence of 50. The savings rate itself is not
// clamped before weighting, only the final score is.
func ComputeHealthScore(income, expense decimal.Decimal, budget *decimal.Decimal) HealthFactors {
	savingsRate := decimal.Zero
	if income.IsPositive() {
		savingsRate = income.Sub(expense).Div(income).Mul(hundred)
	}

	budgetAdherence := neutralAdherence
	if budget != nil {
		budgetAdherence = hundred.Sub(expense.Div(*budget).Mul(hundred))
		if budgetAdherence.IsNegative() {
			budgetAdherence = decimal.Zero
		}
	}

	raw := savingsRate.Mul(savingsRateWeight).Add(budgetAdherence.Mul(budgetAdherenceWeight))

	score := int(raw.Round(0).IntPart())
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	return HealthFactors{
		Score:           score,
		SavingsRate:     savingsRate,
		BudgetAdherence: budgetAdherence,
	}
}
