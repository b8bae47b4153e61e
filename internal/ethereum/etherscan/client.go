// Package etherscan implements an ethereum.Caller over the Etherscan V2 proxy module.
package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/ratelimit"
)

const (
	// DefaultBaseURL is the Etherscan V2 multichain endpoint.
	DefaultBaseURL = "https://api.etherscan.io/v2/api"
	// DefaultRPS matches the Etherscan free tier limit.
	DefaultRPS = 5
)

type proxyError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type proxyResponse struct {
	Result  json.RawMessage `json:"result"`
	Error   *proxyError     `json:"error"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
}

// Config configures an Etherscan client.
type Config struct {
	BaseURL string
	APIKey  string
	ChainID string
	RPS     int
	Timeout time.Duration
}

// Client calls JSON-RPC methods through the Etherscan proxy module.
type Client struct {
	baseURL    string
	apiKey     string
	chainID    string
	httpClient *http.Client
	rl         ratelimit.Limiter
}

// NewClient constructs an Etherscan client. A non-positive RPS disables throttling.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parse etherscan url: %w", err)
	}
	if strings.TrimSpace(cfg.ChainID) == "" {
		return nil, errors.New("etherscan chain id is required")
	}

	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    base,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		chainID:    strings.TrimSpace(cfg.ChainID),
		httpClient: &http.Client{Timeout: timeout},
		rl:         rl,
	}, nil
}

// Call maps method onto a proxy action. Transaction methods take the hash as their only argument.
func (c *Client) Call(ctx context.Context, method string, args ...any) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("chainid", c.chainID)
	params.Set("module", "proxy")
	params.Set("action", method)
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	}

	switch method {
	case "eth_getTransactionReceipt", "eth_getTransactionByHash":
		if len(args) != 1 {
			return nil, fmt.Errorf("%s expects a transaction hash", method)
		}
		hash, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("%s expects a string hash, got %T", method, args[0])
		}
		params.Set("txhash", hash)
	case "eth_blockNumber":
	default:
		return nil, fmt.Errorf("method %s not supported by etherscan proxy", method)
	}

	c.rl.Take()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("etherscan returned status %d", resp.StatusCode)
	}

	var payload proxyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("%s: rpc error %d: %s", method, payload.Error.Code, payload.Error.Message)
	}
	if payload.Status == "0" {
		return nil, fmt.Errorf("%s: %s: %s", method, payload.Message, resultText(payload.Result))
	}
	return payload.Result, nil
}

func resultText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
