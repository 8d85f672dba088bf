// Package finance implements the calculations behind the dashboard:
// transaction aggregation, the financial health score, spending
// predictions and alert thresholds.
//
// All functions are pure. Amounts are decimals, so every sum is
// independent of the order of the input transactions.
package finance

import (
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/chandran2006/saveup-backend/internal/types"
	"github.com/shopspring/decimal"
)

// MonthlySums holds the accumulated income and expense amounts of one month.
type MonthlySums struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// TotalByType returns the sum of the amounts of all transactions with the
// given type. An empty transaction list sums to zero.
func TotalByType(transactions []models.Transaction, transactionType models.TransactionType) decimal.Decimal {
	sum := decimal.Zero

	for _, t := range transactions {
		if t.Type == transactionType {
			sum = sum.Add(t.Amount)
		}
	}

	return sum
}

// GroupByCategory returns the summed expense amount per category.
// Income transactions are ignored.
func GroupByCategory(transactions []models.Transaction) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		if t.Type != models.TransactionTypeExpense {
			continue
		}

		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	return sums
}

// GroupByMonth returns the accumulated income and expense sums per month.
func GroupByMonth(transactions []models.Transaction) map[types.Month]MonthlySums {
	sums := make(map[types.Month]MonthlySums)

	for _, t := range transactions {
		month := types.MonthOf(t.Date)
		monthly := sums[month]

		switch t.Type {
		case models.TransactionTypeIncome:
			monthly.Income = monthly.Income.Add(t.Amount)
		case models.TransactionTypeExpense:
			monthly.Expense = monthly.Expense.Add(t.Amount)
		}

		sums[month] = monthly
	}

	return sums
}

// TopCategory returns the category with the highest summed expense amount.
// The fallback is returned when there are no categorized expenses.
func TopCategory(transactions []models.Transaction, fallback string) string {
	top := fallback
	max := decimal.Zero
	first := true

	for category, sum := range GroupByCategory(transactions) {
		// Resolve ties by name so that the result does not depend on
		// map iteration order
		if first || sum.GreaterThan(max) || (sum.Equal(max) && category < top) {
			top = category
			max = sum
			first = false
		}
	}

	return top
}
