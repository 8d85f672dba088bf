package v1

import (
	"net/http"

	"github.com/chandran2006/saveup-backend/internal/httputil"
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Transactions  string `json:"transactions" example:"https://example.com/api/v1/transactions"`           // URL of Transaction collection endpoint
	Budgets       string `json:"budgets" example:"https://example.com/api/v1/budgets"`                     // URL of Budget collection endpoint
	Notifications string `json:"notifications" example:"https://example.com/api/v1/notifications"`         // URL of Notification collection endpoint
	DailyLimits   string `json:"dailyLimits" example:"https://example.com/api/v1/daily-limits"`            // URL of DailyLimit collection endpoint
	MatchRules    string `json:"matchRules" example:"https://example.com/api/v1/match-rules"`              // URL of Match Rule collection endpoint
	HealthScore   string `json:"healthScore" example:"https://example.com/api/v1/analytics/health-score"`  // URL of the health score endpoint
	Predictions   string `json:"predictions" example:"https://example.com/api/v1/analytics/predictions"`   // URL of the predictions endpoint
	Insights      string `json:"insights" example:"https://example.com/api/v1/analytics/insights"`         // URL of the insights endpoint
	Alerts        string `json:"alerts" example:"https://example.com/api/v1/alerts/check"`                 // URL of the alert check endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Transactions:  url + "/v1/transactions",
			Budgets:       url + "/v1/budgets",
			Notifications: url + "/v1/notifications",
			DailyLimits:   url + "/v1/daily-limits",
			MatchRules:    url + "/v1/match-rules",
			HealthScore:   url + "/v1/analytics/health-score",
			Predictions:   url + "/v1/analytics/predictions",
			Insights:      url + "/v1/analytics/insights",
			Alerts:        url + "/v1/alerts/check",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
