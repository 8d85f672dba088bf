package v1

import (
	"fmt"

	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/gin-gonic/gin"
)

type MatchRuleEditable struct {
	Priority uint   `json:"priority" example:"1" default:"0"`           // The priority of the match rule
	Match    string `json:"match" example:"*SUPERMART*" default:""`     // The glob pattern to match the receipt text against
	Category string `json:"category" example:"groceries" default:""`    // The category a matching receipt is assigned
}

// model returns the database resource for the API representation of the editable fields
func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		Priority: editable.Priority,
		Match:    editable.Match,
		Category: editable.Category,
	}
}

type MatchRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/match-rules/d430d7c3-d14c-4712-9336-ee56965a6673"` // The match rule itself
}

// MatchRule is the API representation of a MatchRule.
type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
	Links MatchRuleLinks `json:"links"`
}

// newMatchRule returns the API representation of the resource
func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := c.GetString(string(models.DBContextURL))

	return MatchRule{
		DefaultModel: model.DefaultModel,
		MatchRuleEditable: MatchRuleEditable{
			Priority: model.Priority,
			Match:    model.Match,
			Category: model.Category,
		},
		Links: MatchRuleLinks{
			Self: fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
		},
	}
}

type MatchRuleListResponse struct {
	Data       []MatchRule `json:"data"`                                                          // List of match rules
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MatchRuleCreateResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []MatchRuleResponse `json:"data"`                                                          // List of created MatchRules
}

func (m *MatchRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, MatchRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MatchRuleResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this match rule
	Data  *MatchRule `json:"data"`                                                          // The MatchRule data, if creation was successful
}

type MatchRuleQueryFilter struct {
	Priority uint   `form:"priority"`                   // Filter by priority
	Match    string `form:"match" filterField:"false"`  // Filter by match containing this string
	Category string `form:"category"`                   // Filter by category
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first MatchRule returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of MatchRules to return. Defaults to 50.
}

func (f MatchRuleQueryFilter) model() (models.MatchRule, error) {
	return MatchRuleEditable{
		Priority: f.Priority,
		Category: f.Category,
	}.model(), nil
}
