package advisor

import (
	"github.com/chandran2006/saveup-backend/internal/finance"
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/shopspring/decimal"
)

// fallbackCategory is reported as the top category when the user has no
// categorized expenses yet.
const fallbackCategory = "food"

// Context is the financial situation the advisor personalizes answers with.
type Context struct {
	Income      decimal.Decimal
	Expense     decimal.Decimal
	TopCategory string
}

// NewContext derives an advisor context from a transaction history.
func NewContext(transactions []models.Transaction) Context {
	return Context{
		Income:      finance.TotalByType(transactions, models.TransactionTypeIncome),
		Expense:     finance.TotalByType(transactions, models.TransactionTypeExpense),
		TopCategory: finance.TopCategory(transactions, fallbackCategory),
	}
}

// Derived placeholder values, all computed from income and expense:
//
//	savings   = 20% of income, the suggested monthly saving
//	budget    = 110% of current spending, the suggested budget
//	emergency = six months of expenses
//	sip       = half of the suggested saving
func (c Context) savings() decimal.Decimal {
	return c.Income.Mul(decimal.RequireFromString("0.2")).Round(0)
}

func (c Context) suggestedBudget() decimal.Decimal {
	return c.Expense.Mul(decimal.RequireFromString("1.1")).Round(0)
}

func (c Context) emergencyFund() decimal.Decimal {
	return c.Expense.Mul(decimal.NewFromInt(6))
}

func (c Context) sip() decimal.Decimal {
	return c.savings().Mul(decimal.RequireFromString("0.5")).Round(0)
}

func (c Context) savingsRate() decimal.Decimal {
	if !c.Income.IsPositive() {
		return decimal.Zero
	}

	return c.Income.Sub(c.Expense).Div(c.Income).Mul(decimal.NewFromInt(100))
}

// healthStatus tiers the savings rate at 20% and 10%.
func (c Context) healthStatus() string {
	rate := c.savingsRate()

	switch {
	case rate.GreaterThanOrEqual(decimal.NewFromInt(20)):
		return "Good"
	case rate.GreaterThanOrEqual(decimal.NewFromInt(10)):
		return "Fair"
	default:
		return "Needs Improvement"
	}
}
