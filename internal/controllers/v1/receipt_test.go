package v1_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/chandran2006/saveup-backend/internal/controllers/v1"
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/chandran2006/saveup-backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// receiptUpload builds a multipart body with an "image" file and the given
// extra form fields. The returned header map carries the content type.
func receiptUpload(t *testing.T, fields map[string]string) (*bytes.Buffer, map[string]string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", "receipt.jpg")
	require.Nil(t, err)
	_, err = part.Write([]byte("not really a JPEG"))
	require.Nil(t, err)

	for name, value := range fields {
		require.Nil(t, writer.WriteField(name, value))
	}

	require.Nil(t, writer.Close())

	return &buf, map[string]string{"Content-Type": writer.FormDataContentType()}
}

// ocrServer serves a fixed OCR result for every upload.
func ocrServer(text string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"text": text})
	}))
}

func (suite *TestSuiteStandard) TestReceiptScan() {
	server := ocrServer("SUPERMART\nTOTAL $45.99\nDATE 01/15/24")
	defer server.Close()
	suite.T().Setenv("OCR_API_URL", server.URL)

	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		Match:    "*MART*",
		Category: "groceries",
	})

	body, headers := receiptUpload(suite.T(), nil)
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/receipt/scan", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReceiptScanResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), decimal.RequireFromString("45.99").Equal(response.Amount), "amount is %s", response.Amount)
	assert.Equal(suite.T(), "groceries", response.Category)
	assert.Equal(suite.T(), "Receipt scan", response.Description)
	assert.Equal(suite.T(), "2024-01-15", response.Date)
}

// TestReceiptScanStores verifies that scans with a userId form field are
// persisted and anonymous scans are not.
func (suite *TestSuiteStandard) TestReceiptScanStores() {
	server := ocrServer("SUPERMART\nTOTAL $45.99\nDATE 01/15/24")
	defer server.Close()
	suite.T().Setenv("OCR_API_URL", server.URL)

	userID := uuid.New()

	body, headers := receiptUpload(suite.T(), map[string]string{"userId": userID.String()})
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/receipt/scan", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var receipts []models.Receipt
	require.Nil(suite.T(), models.DB.Where("user_id = ?", userID).Find(&receipts).Error)
	require.Len(suite.T(), receipts, 1)
	assert.True(suite.T(), decimal.RequireFromString("45.99").Equal(receipts[0].Amount))
	assert.Contains(suite.T(), receipts[0].RawText, "SUPERMART")

	// Anonymous scan
	body, headers = receiptUpload(suite.T(), nil)
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/api/receipt/scan", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Receipt{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestReceiptScanNoFile() {
	suite.T().Setenv("OCR_API_URL", "http://example.com")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/receipt/scan", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "you must send an image file to this endpoint", response.Error)
}

func (suite *TestSuiteStandard) TestReceiptScanInvalidUserID() {
	suite.T().Setenv("OCR_API_URL", "http://example.com")

	body, headers := receiptUpload(suite.T(), map[string]string{"userId": "NotAUUID"})
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/receipt/scan", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestReceiptScanServiceError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()
	suite.T().Setenv("OCR_API_URL", server.URL)

	body, headers := receiptUpload(suite.T(), nil)
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/receipt/scan", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadGateway)
}

func (suite *TestSuiteStandard) TestReceiptScanNotConfigured() {
	body, headers := receiptUpload(suite.T(), nil)
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/receipt/scan", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadGateway)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "no OCR service is configured", response.Error)
}

func (suite *TestSuiteStandard) TestReceiptScanOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/api/receipt/scan", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}
