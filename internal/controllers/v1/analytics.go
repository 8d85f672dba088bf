package v1

import (
	"net/http"
	"sort"
	"time"

	"github.com/chandran2006/saveup-backend/internal/finance"
	"github.com/chandran2006/saveup-backend/internal/httputil"
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/chandran2006/saveup-backend/internal/types"
	su_uuid "github.com/chandran2006/saveup-backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterAnalyticsRoutes registers the routes for analytics with
// the RouterGroup that is passed.
func RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/health-score", OptionsHealthScore)
	r.GET("/health-score", GetHealthScore)

	r.OPTIONS("/predictions", OptionsPredictions)
	r.GET("/predictions", GetPredictions)

	r.OPTIONS("/insights", OptionsInsights)
	r.GET("/insights", GetInsights)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics/health-score [options]
func OptionsHealthScore(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics/predictions [options]
func OptionsPredictions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics/insights [options]
func OptionsInsights(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Financial health score
// @Description	Computes the financial health score of a user for a month, stores it and returns it. An existing score for the same user and month is overwritten.
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	HealthScoreResponse
// @Failure		400		{object}	HealthScoreResponse
// @Failure		500		{object}	HealthScoreResponse
// @Param			userId	query		string	true	"ID of the user"
// @Param			month	query		string	false	"The month, formatted as YYYY-MM. Defaults to the current month."
// @Router			/v1/analytics/health-score [get]
func GetHealthScore(c *gin.Context) {
	var query HealthScoreQuery
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, HealthScoreResponse{
			Error: &s,
		})
		return
	}

	if query.UserID == su_uuid.Nil {
		s := errUserIDParameter.Error()
		c.JSON(http.StatusBadRequest, HealthScoreResponse{
			Error: &s,
		})
		return
	}

	month := query.Month
	if month.IsZero() {
		month = types.MonthOf(time.Now().In(time.UTC))
	}

	transactions, err := transactionsInMonth(query.UserID, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HealthScoreResponse{Error: &e})
		return
	}

	income := finance.TotalByType(transactions, models.TransactionTypeIncome)
	expense := finance.TotalByType(transactions, models.TransactionTypeExpense)

	var budgetAmount *decimal.Decimal
	budget, found, err := models.BudgetForMonth(models.DB, query.UserID.UUID, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HealthScoreResponse{Error: &e})
		return
	}
	if found {
		budgetAmount = &budget.Amount
	}

	factors := finance.ComputeHealthScore(income, expense, budgetAmount)

	score := models.FinancialScore{
		UserID:          query.UserID.UUID,
		Month:           month,
		Score:           factors.Score,
		SavingsRate:     factors.SavingsRate,
		BudgetAdherence: factors.BudgetAdherence,
	}
	if err := score.Upsert(models.DB); err != nil {
		e := err.Error()
		c.JSON(status(err), HealthScoreResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, HealthScoreResponse{
		Data: &HealthScore{
			UserID:          query.UserID.UUID,
			Month:           month,
			Score:           factors.Score,
			SavingsRate:     factors.SavingsRate,
			BudgetAdherence: factors.BudgetAdherence,
			Income:          income,
			Expense:         expense,
		},
	})
}

// @Summary		Spending predictions
// @Description	Predicts the next month's spending per category from the user's full history. Every computation appends new prediction records, earlier ones are kept.
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	PredictionsResponse
// @Failure		400		{object}	PredictionsResponse
// @Failure		500		{object}	PredictionsResponse
// @Param			userId	query		string	true	"ID of the user"
// @Router			/v1/analytics/predictions [get]
func GetPredictions(c *gin.Context) {
	var query PredictionsQuery
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PredictionsResponse{
			Error: &s,
		})
		return
	}

	if query.UserID == su_uuid.Nil {
		s := errUserIDParameter.Error()
		c.JSON(http.StatusBadRequest, PredictionsResponse{
			Error: &s,
		})
		return
	}

	transactions, err := transactionsForUser(models.DB, models.Transaction{UserID: query.UserID.UUID})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PredictionsResponse{Error: &e})
		return
	}

	month := types.MonthOf(time.Now().In(time.UTC)).AddDate(0, 1)
	predictions := finance.PredictSpending(transactions)

	data := make([]SpendingPrediction, 0, len(predictions))
	for _, prediction := range predictions {
		model := models.SpendingPrediction{
			UserID:          query.UserID.UUID,
			Month:           month,
			Category:        prediction.Category,
			PredictedAmount: prediction.Amount,
			Confidence:      prediction.Confidence,
		}

		if err := models.DB.Create(&model).Error; err != nil {
			e := err.Error()
			c.JSON(status(err), PredictionsResponse{Error: &e})
			return
		}

		data = append(data, newSpendingPrediction(model))
	}

	c.JSON(http.StatusOK, PredictionsResponse{
		Data: data,
	})
}

// @Summary		Spending insights
// @Description	Returns the monthly income/expense trend, per-month averages and the top expense categories of a user.
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	InsightsResponse
// @Failure		400		{object}	InsightsResponse
// @Failure		500		{object}	InsightsResponse
// @Param			userId	query		string	true	"ID of the user"
// @Router			/v1/analytics/insights [get]
func GetInsights(c *gin.Context) {
	var query InsightsQuery
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InsightsResponse{
			Error: &s,
		})
		return
	}

	if query.UserID == su_uuid.Nil {
		s := errUserIDParameter.Error()
		c.JSON(http.StatusBadRequest, InsightsResponse{
			Error: &s,
		})
		return
	}

	transactions, err := transactionsForUser(models.DB, models.Transaction{UserID: query.UserID.UUID})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InsightsResponse{Error: &e})
		return
	}

	monthly := finance.GroupByMonth(transactions)

	trend := make([]MonthlyTrend, 0, len(monthly))
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for month, sums := range monthly {
		trend = append(trend, MonthlyTrend{
			Month:   month,
			Income:  sums.Income,
			Expense: sums.Expense,
			Savings: sums.Income.Sub(sums.Expense),
		})

		totalIncome = totalIncome.Add(sums.Income)
		totalExpense = totalExpense.Add(sums.Expense)
	}

	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Month.Before(trend[j].Month)
	})

	averageIncome := decimal.Zero
	averageExpense := decimal.Zero
	if len(trend) > 0 {
		months := decimal.NewFromInt(int64(len(trend)))
		averageIncome = totalIncome.Div(months).Round(2)
		averageExpense = totalExpense.Div(months).Round(2)
	}

	categories := make([]CategorySum, 0)
	for category, amount := range finance.GroupByCategory(transactions) {
		categories = append(categories, CategorySum{Category: category, Amount: amount})
	}

	// Highest spending first, ties resolved by name
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Amount.Equal(categories[j].Amount) {
			return categories[i].Category < categories[j].Category
		}
		return categories[i].Amount.GreaterThan(categories[j].Amount)
	})

	if len(categories) > 5 {
		categories = categories[:5]
	}

	c.JSON(http.StatusOK, InsightsResponse{
		Data: &Insights{
			Trend:          trend,
			AverageIncome:  averageIncome,
			AverageExpense: averageExpense,
			TopCategories:  categories,
		},
	})
}

// transactionsInMonth returns the transactions of a user within one month.
func transactionsInMonth(userID su_uuid.UUID, month types.Month) ([]models.Transaction, error) {
	start := time.Time(month)
	end := time.Time(month.AddDate(0, 1))

	var transactions []models.Transaction
	err := models.DB.
		Where(&models.Transaction{UserID: userID.UUID}).
		Where("transactions.date >= date(?)", start).
		Where("transactions.date < date(?)", end).
		Find(&transactions).Error

	return transactions, err
}
