package v1

import (
	"net/http"

	"github.com/chandran2006/saveup-backend/internal/finance"
	"github.com/chandran2006/saveup-backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterPredictRoutes registers the routes for the stateless prediction
// endpoint with the RouterGroup that is passed.
func RegisterPredictRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPredictSpending)
	r.POST("", PredictSpending)
}

type PredictSpendingRequest struct {
	Transactions []TransactionData `json:"transactions"` // The transaction history to predict from
}

// PredictedSpending is one predicted per-category amount.
type PredictedSpending struct {
	Category   string          `json:"category" example:"food"`    // The predicted category
	Amount     decimal.Decimal `json:"amount" example:"10000"`     // The predicted amount
	Confidence decimal.Decimal `json:"confidence" example:"0.75"`  // The confidence of the prediction
}

type PredictSpendingResponse struct {
	Predictions []PredictedSpending `json:"predictions"` // One prediction per category with expense history
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Predictions
// @Success		204
// @Router			/api/predict/spending [options]
func OptionsPredictSpending(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Predict spending
// @Description	Predicts the next month's spending per category from the transaction history sent in the request body. Nothing is stored, this is the stateless variant of the predictions analytics endpoint.
// @Tags			Predictions
// @Accept			json
// @Produce		json
// @Success		200		{object}	PredictSpendingResponse
// @Failure		400		{object}	httpError
// @Param			request	body		PredictSpendingRequest	true	"Prediction request"
// @Router			/api/predict/spending [post]
func PredictSpending(c *gin.Context) {
	var request PredictSpendingRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	predictions := finance.PredictSpending(transactionModels(request.Transactions))

	data := make([]PredictedSpending, 0, len(predictions))
	for _, prediction := range predictions {
		data = append(data, PredictedSpending{
			Category:   prediction.Category,
			Amount:     prediction.Amount,
			Confidence: prediction.Confidence,
		})
	}

	c.JSON(http.StatusOK, PredictSpendingResponse{
		Predictions: data,
	})
}
