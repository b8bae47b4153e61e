// Package rpcnode implements an ethereum.Caller against an Ethereum JSON-RPC node.
package rpcnode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/ethereum/go-ethereum/rpc"
)

// Client forwards calls to a go-ethereum rpc.Client.
type Client struct {
	rpc *rpc.Client
}

// Dial connects to the node at rawURL (http, https, ws or wss).
func Dial(ctx context.Context, rawURL string) (*Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	switch parsed.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("rpc url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("rpc url missing host")
	}

	c, err := rpc.DialContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc node: %w", err)
	}
	return &Client{rpc: c}, nil
}

// Call executes the JSON-RPC method and returns the raw result.
func (c *Client) Call(ctx context.Context, method string, args ...any) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.rpc.CallContext(ctx, &raw, method, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return raw, nil
}

// Close releases the underlying connection.
func (c *Client) Close() {
	c.rpc.Close()
}
