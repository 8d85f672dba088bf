package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/chandran2006/saveup-backend/internal/finance"
	"github.com/chandran2006/saveup-backend/internal/httputil"
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/chandran2006/saveup-backend/internal/types"
	su_uuid "github.com/chandran2006/saveup-backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// alertPrinter formats the overspent amount with grouped thousands,
// matching the notification texts users already know.
var alertPrinter = message.NewPrinter(language.English)

// RegisterAlertRoutes registers the routes for alerts with
// the RouterGroup that is passed.
func RegisterAlertRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/check", OptionsAlertCheck)
	r.POST("/check", CheckAlerts)
}

type AlertCheckQuery struct {
	UserID su_uuid.UUID `form:"userId"` // ID of the user to check alerts for
}

type AlertCheckResponse struct {
	Error *string        `json:"error" example:"the userId parameter must be set"` // The error, if any occurred
	Data  []Notification `json:"data"`                                             // The notifications created by this check
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Alerts
// @Success		204
// @Router			/v1/alerts/check [options]
func OptionsAlertCheck(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Check alerts
// @Description	Evaluates the budget-exceeded and daily-limit checks for a user and creates notifications for every alert that fires. The budget check is skipped while an unread budget notification exists; the daily limit fires at 80% of the limit.
// @Tags			Alerts
// @Produce		json
// @Success		200		{object}	AlertCheckResponse
// @Failure		400		{object}	AlertCheckResponse
// @Failure		500		{object}	AlertCheckResponse
// @Param			userId	query		string	true	"ID of the user"
// @Router			/v1/alerts/check [post]
func CheckAlerts(c *gin.Context) {
	var query AlertCheckQuery
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AlertCheckResponse{
			Error: &s,
		})
		return
	}

	if query.UserID == su_uuid.Nil {
		s := errUserIDParameter.Error()
		c.JSON(http.StatusBadRequest, AlertCheckResponse{
			Error: &s,
		})
		return
	}

	created := make([]Notification, 0)

	budgetNotification, err := checkBudgetExceeded(query.UserID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertCheckResponse{Error: &e})
		return
	}
	if budgetNotification != nil {
		created = append(created, newNotification(c, *budgetNotification))
	}

	limitNotification, err := checkDailyLimit(query.UserID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertCheckResponse{Error: &e})
		return
	}
	if limitNotification != nil {
		created = append(created, newNotification(c, *limitNotification))
	}

	c.JSON(http.StatusOK, AlertCheckResponse{
		Data: created,
	})
}

// checkBudgetExceeded creates a budget-exceeded notification when the
// user's spending in the current month exceeds the month's budget.
//
// While an unread budget-exceeded notification exists, no new one is
// created so that users are not flooded with the same alert.
func checkBudgetExceeded(userID su_uuid.UUID) (*models.Notification, error) {
	month := types.MonthOf(time.Now().In(time.UTC))

	budget, found, err := models.BudgetForMonth(models.DB, userID.UUID, month)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	transactions, err := transactionsInMonth(userID, month)
	if err != nil {
		return nil, err
	}

	spent := finance.TotalByType(transactions, models.TransactionTypeExpense)

	exceeded, over := finance.BudgetOverrun(spent, budget.Amount)
	if !over {
		return nil, nil
	}

	unread, err := models.HasUnread(models.DB, userID.UUID, models.NotificationTypeBudgetExceeded)
	if err != nil {
		return nil, err
	}
	if unread {
		return nil, nil
	}

	notification := models.Notification{
		UserID: userID.UUID,
		Type:   models.NotificationTypeBudgetExceeded,
		Title:  "Budget Exceeded",
		Message: alertPrinter.Sprintf(
			"You have exceeded your monthly budget by ₹%d. Consider reviewing your expenses.",
			exceeded.Round(0).IntPart(),
		),
	}

	if err := models.DB.Create(&notification).Error; err != nil {
		return nil, err
	}

	return &notification, nil
}

// checkDailyLimit creates a daily-limit notification when today's spending
// has consumed at least 80% of the user's active daily limit.
func checkDailyLimit(userID su_uuid.UUID) (*models.Notification, error) {
	limit, found, err := models.ActiveDailyLimit(models.DB, userID.UUID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	spent, err := spentToday(userID)
	if err != nil {
		return nil, err
	}

	if !finance.DailyLimitReached(spent, limit.LimitAmount) {
		return nil, nil
	}

	notification := models.Notification{
		UserID:  userID.UUID,
		Type:    models.NotificationTypeDailyLimit,
		Title:   "Daily Limit Alert",
		Message: fmt.Sprintf("You've spent ₹%s of your ₹%s daily limit", spent, limit.LimitAmount),
	}

	if err := models.DB.Create(&notification).Error; err != nil {
		return nil, err
	}

	return &notification, nil
}

// spentToday sums the expense transactions of a user for the current day.
func spentToday(userID su_uuid.UUID) (decimal.Decimal, error) {
	now := time.Now().In(time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var transactions []models.Transaction
	err := models.DB.
		Where(&models.Transaction{UserID: userID.UUID, Type: models.TransactionTypeExpense}).
		Where("transactions.date >= date(?)", today).
		Where("transactions.date < date(?)", today.AddDate(0, 0, 1)).
		Find(&transactions).Error
	if err != nil {
		return decimal.Zero, err
	}

	return finance.TotalByType(transactions, models.TransactionTypeExpense), nil
}
