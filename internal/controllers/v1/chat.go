package v1

import (
	"fmt"
	"net/http"

	"github.com/chandran2006/saveup-backend/internal/advisor"
	"github.com/chandran2006/saveup-backend/internal/ai"
	"github.com/chandran2006/saveup-backend/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	aiClient    ai.Client
	chatAdvisor = advisor.New()
)

// RegisterChatRoutes registers the routes for the AI chat with
// the RouterGroup that is passed.
func RegisterChatRoutes(r *gin.RouterGroup, client ai.Client) {
	aiClient = client

	r.OPTIONS("", OptionsChat)
	r.POST("", Chat)
}

// ChatContext is the financial data the frontend sends along with a
// chat message.
type ChatContext struct {
	Transactions []TransactionData `json:"transactions"` // The user's transaction history
	Budgets      []BudgetData      `json:"budgets"`      // The user's budgets
}

type ChatRequest struct {
	Message string      `json:"message" example:"How much should I save each month?"` // The user's question
	Context ChatContext `json:"context"`                                              // The user's financial data
	UserID  string      `json:"userId" example:"d27b71b1-f9a7-44b5-bcad-aa2f4f7c05c9"` // ID of the user
}

type ChatResponse struct {
	Response string `json:"response" example:"A good rule of thumb is the 50/30/20 rule"` // The generated advice
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AI
// @Success		204
// @Router			/api/ai/chat [options]
func OptionsChat(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		AI chat
// @Description	Generates financial advice for a free-text question. The question and a summary of the user's data are forwarded to the configured AI service; when that fails, the built-in knowledge base answers instead, and a generic data summary is the last resort. This endpoint never fails because the AI service is unreachable.
// @Tags			AI
// @Accept			json
// @Produce		json
// @Success		200		{object}	ChatResponse
// @Failure		400		{object}	httpError
// @Param			request	body		ChatRequest	true	"Chat request"
// @Router			/api/ai/chat [post]
func Chat(c *gin.Context) {
	var request ChatRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	transactions := transactionModels(request.Context.Transactions)
	advisorContext := advisor.NewContext(transactions)

	systemPrompt := fmt.Sprintf(
		"You are a financial advisor. User has %d transactions. Total income: %s Total expense: %s",
		len(request.Context.Transactions), advisorContext.Income, advisorContext.Expense,
	)

	response, err := aiClient.Advise(c.Request.Context(), systemPrompt, request.Message)
	if err == nil {
		chatResponses.WithLabelValues(chatSourceRemote).Inc()
		c.JSON(http.StatusOK, ChatResponse{Response: response})
		return
	}

	log.Info().
		Str("request-id", requestid.Get(c)).
		Err(err).
		Msg("AI service unavailable, using knowledge base")

	if answer, ok := chatAdvisor.Respond(request.Message, advisorContext); ok {
		chatResponses.WithLabelValues(chatSourceFallback).Inc()
		c.JSON(http.StatusOK, ChatResponse{Response: answer})
		return
	}

	chatResponses.WithLabelValues(chatSourceSummary).Inc()
	c.JSON(http.StatusOK, ChatResponse{Response: advisor.Summary(advisorContext)})
}
