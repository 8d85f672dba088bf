package v1

import (
	"io"
	"net/http"
	"time"

	"github.com/chandran2006/saveup-backend/internal/httputil"
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/chandran2006/saveup-backend/internal/ocr"
	su_uuid "github.com/chandran2006/saveup-backend/internal/uuid"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var ocrClient ocr.Client

// RegisterReceiptRoutes registers the routes for receipt scanning with
// the RouterGroup that is passed.
func RegisterReceiptRoutes(r *gin.RouterGroup, client ocr.Client) {
	ocrClient = client

	r.OPTIONS("", OptionsReceiptScan)
	r.POST("", ScanReceipt)
}

type ReceiptScanResponse struct {
	Amount      decimal.Decimal `json:"amount" example:"45.99"`            // The amount guessed from the receipt
	Category    string          `json:"category" example:"groceries"`      // The category assigned by the match rules
	Description string          `json:"description" example:"Receipt scan"` // A description
	Date        string          `json:"date" example:"2024-01-15"`         // The date guessed from the receipt
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Receipts
// @Success		204
// @Router			/api/receipt/scan [options]
func OptionsReceiptScan(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Scan receipt
// @Description	Sends a receipt image to the OCR service and extracts amount, date and category from the recognized text. The scan is stored for the user when a userId form field is sent. A failed OCR call is surfaced as an error.
// @Tags			Receipts
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ReceiptScanResponse
// @Failure		400		{object}	httpError
// @Failure		502		{object}	httpError
// @Param			image	formData	file	true	"The receipt image"
// @Param			userId	formData	string	false	"ID of the user owning the receipt"
// @Router			/api/receipt/scan [post]
func ScanReceipt(c *gin.Context) {
	formFile, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errNoFilePost.Error()})
		return
	}

	var userID su_uuid.UUID
	if err := userID.UnmarshalParam(c.PostForm("userId")); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	file, err := formFile.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}
	defer func() { _ = file.Close() }()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	text, err := ocrClient.Recognize(c.Request.Context(), image, formFile.Filename)
	if err != nil {
		receiptScans.WithLabelValues(scanOutcomeError).Inc()
		log.Error().
			Str("request-id", requestid.Get(c)).
			Err(err).
			Msg("OCR service call failed")
		c.JSON(http.StatusBadGateway, httpError{Error: err.Error()})
		return
	}

	rules, err := models.MatchRulesOrdered(models.DB)
	if err != nil {
		receiptScans.WithLabelValues(scanOutcomeError).Inc()
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	result := ocr.Extract(text, rules)

	// Store the scan when it can be attributed to a user
	if userID != su_uuid.Nil {
		receipt := models.Receipt{
			UserID:      userID.UUID,
			Amount:      result.Amount,
			Category:    result.Category,
			Description: result.Description,
			Date:        result.Date,
			RawText:     text,
		}

		if err := models.DB.Create(&receipt).Error; err != nil {
			receiptScans.WithLabelValues(scanOutcomeError).Inc()
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}
	}

	receiptScans.WithLabelValues(scanOutcomeOK).Inc()
	c.JSON(http.StatusOK, ReceiptScanResponse{
		Amount:      result.Amount,
		Category:    result.Category,
		Description: result.Description,
		Date:        result.Date.Format(time.DateOnly),
	})
}
