// Package ocr sends receipt images to a remote OCR service and turns the
// recognized text into structured expense data.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"
)

// ErrNotConfigured is returned when no OCR service URL is set.
var ErrNotConfigured = errors.New("no OCR service is configured")

// Client recognizes the text on a receipt image.
type Client interface {
	Recognize(ctx context.Context, image []byte, filename string) (string, error)
}

// Config holds the settings for the OCR service.
type Config struct {
	URL     string        // endpoint accepting a multipart "image" upload
	APIKey  string        // optional, sent as the "apikey" header
	Timeout time.Duration // defaults to 30s
}

// FromEnv reads the client configuration from the environment.
func FromEnv() Config {
	return Config{
		URL:    os.Getenv("OCR_API_URL"),
		APIKey: os.Getenv("OCR_API_KEY"),
	}
}

// httpClient implements Client against a service that accepts a multipart
// image upload and responds with {"text": "..."}.
type httpClient struct {
	client *http.Client
	url    string
	apiKey string
}

// NewClient creates an OCR client. The URL may be empty; every call then
// fails with ErrNotConfigured.
func NewClient(cfg Config) Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &httpClient{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type ocrResponse struct {
	Text string `json:"text"`
}

func (c *httpClient) Recognize(ctx context.Context, image []byte, filename string) (string, error) {
	if c.url == "" {
		return "", ErrNotConfigured
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart body: %w", err)
	}

	if _, err := part.Write(image); err != nil {
		return "", fmt.Errorf("failed to write image data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OCR service error (status %d): %s", resp.StatusCode, string(body))
	}

	var response ocrResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return response.Text, nil
}
