// Package statusclient calls the transaction status API.
package statusclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/txprogress-backend/internal/model"
)

const (
	// StatusPath is the status endpoint served by the API gateway.
	StatusPath     = "/api/eth-tx-status"
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 4 << 10
)

// TransportError reports a failed or unusable status API response.
type TransportError struct {
	// StatusCode is zero when no response was received.
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	msg := "status api"
	if e.StatusCode != 0 {
		msg += " returned " + strconv.Itoa(e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client fetches status reports over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a status API client. A non-positive timeout selects 30s.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("status api base url is empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse status api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported status api scheme %q", u.Scheme)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

// Fetch requests the status of txHash against target confirmations. Every failure is a
// *TransportError.
func (c *Client) Fetch(ctx context.Context, txHash string, target uint64) (*model.TxStatusReport, error) {
	params := url.Values{}
	params.Set("txHash", txHash)
	params.Set("targetConfirmations", strconv.FormatUint(target, 10))
	params.Set("t", strconv.FormatInt(c.now().UnixMilli(), 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+StatusPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &TransportError{Message: "create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	var report model.TxStatusReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Message: "decode report", Err: err}
	}
	if err := report.Validate(); err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Message: "invalid report", Err: err}
	}
	return &report, nil
}

func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return ""
	}
	var payload errorResponse
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}
