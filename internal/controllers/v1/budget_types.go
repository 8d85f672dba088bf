package v1

import (
	"fmt"

	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/chandran2006/saveup-backend/internal/types"
	su_uuid "github.com/chandran2006/saveup-backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	UserID uuid.UUID       `json:"userId" example:"d27b71b1-f9a7-44b5-bcad-aa2f4f7c05c9"`      // ID of the user owning the budget
	Month  types.Month     `json:"month" example:"2024-01-01T00:00:00Z"`                       // The month the budget is set for
	Amount decimal.Decimal `json:"amount" example:"35000" minimum:"0.00000001" multipleOf:"0.00000001"` // The spending ceiling for the month
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		UserID: editable.UserID,
		Month:  editable.Month,
		Amount: editable.Amount,
	}
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/d430d7c3-d14c-4712-9336-ee56965a6673"` // The budget itself
}

// Budget is the API representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			UserID: model.UserID,
			Month:  model.Month,
			Amount: model.Amount,
		},
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created Budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget
	Data  *Budget `json:"data"`                                                          // The Budget data, if creation was successful
}

type BudgetQueryFilter struct {
	UserID su_uuid.UUID `form:"userId"`                  // ID of the user
	Month  types.Month  `form:"month"`                   // The month the budget is set for
	Offset uint         `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit  int          `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() (models.Budget, error) {
	return BudgetEditable{
		UserID: f.UserID.UUID,
		Month:  f.Month,
	}.model(), nil
}
