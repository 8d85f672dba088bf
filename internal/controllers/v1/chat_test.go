package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	v1 "github.com/chandran2006/saveup-backend/internal/controllers/v1"
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/chandran2006/saveup-backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChatContext() v1.ChatContext {
	return v1.ChatContext{
		Transactions: []v1.TransactionData{
			{
				Type:   models.TransactionTypeIncome,
				Amount: decimal.NewFromInt(100000),
				Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				Type:     models.TransactionTypeExpense,
				Amount:   decimal.NewFromInt(80000),
				Category: "food",
				Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}

func (suite *TestSuiteStandard) TestChatKnowledgeBaseFallback() {
	// No API key is configured, so the knowledge base answers
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/ai/chat", v1.ChatRequest{
		Message: "How much should I save?",
		Context: testChatContext(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChatResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Contains(suite.T(), response.Response, "50/30/20")
	assert.Contains(suite.T(), response.Response, "₹100,000")
	assert.Contains(suite.T(), response.Response, "₹20,000")
}

func (suite *TestSuiteStandard) TestChatSummaryFallback() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/ai/chat", v1.ChatRequest{
		Message: "Tell me a joke",
		Context: testChatContext(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChatResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Contains(suite.T(), response.Response, "AI service is offline")
	assert.Contains(suite.T(), response.Response, "₹80,000")
}

func (suite *TestSuiteStandard) TestChatRemote() {
	var systemPrompt string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.Nil(suite.T(), json.NewDecoder(r.Body).Decode(&body))
		require.Len(suite.T(), body.Messages, 2)
		systemPrompt = body.Messages[0].Content

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Spend less than you earn."}}]}`))
	}))
	defer server.Close()

	suite.T().Setenv("OPENAI_API_KEY", "test-key")
	suite.T().Setenv("OPENAI_BASE_URL", server.URL)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/ai/chat", v1.ChatRequest{
		Message: "How do I get rich?",
		Context: testChatContext(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChatResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Spend less than you earn.", response.Response)
	assert.Contains(suite.T(), systemPrompt, "User has 2 transactions")
	assert.Contains(suite.T(), systemPrompt, "Total income: 100000")
}

// A failing AI service must not surface as an error to the client.
func (suite *TestSuiteStandard) TestChatRemoteErrorFallsBack() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	suite.T().Setenv("OPENAI_API_KEY", "test-key")
	suite.T().Setenv("OPENAI_BASE_URL", server.URL)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/ai/chat", v1.ChatRequest{
		Message: "How much should I save?",
		Context: testChatContext(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChatResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), response.Response, "50/30/20")
}

func (suite *TestSuiteStandard) TestChatInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/ai/chat", `{ "message": broken`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestChatOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/api/ai/chat", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}
