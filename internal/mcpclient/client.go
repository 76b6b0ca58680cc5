// Package mcpclient is a small JSON-RPC client for the HTTP transport,
// used by the mcp-call CLI and by integration tests.
package mcpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/linkscout/linkedin-mcp-server/internal/protocol"
)

// defaultTimeout leaves room for a full scraping run, which can take
// minutes.
const defaultTimeout = 5 * time.Minute

// Client issues JSON-RPC calls to an MCP server over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	counter    uint64
}

// NewClient builds a client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) nextID() any {
	return atomic.AddUint64(&c.counter, 1)
}

func (c *Client) do(ctx context.Context, method string, params any) (protocol.Response, error) {
	var resp protocol.Response

	payload := protocol.Request{
		JSONRPC: protocol.Version,
		ID:      c.nextID(),
		Method:  method,
		Params:  mustRaw(params),
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return resp, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(buf))
	if err != nil {
		return resp, fmt.Errorf("build http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return resp, fmt.Errorf("call mcp server: %w", err)
	}
	defer httpResp.Body.Close()

	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return resp, fmt.Errorf("decode response (status %d): %w", httpResp.StatusCode, err)
	}

	if resp.Error != nil {
		return resp, resp.Error
	}

	return resp, nil
}

// Initialize performs the MCP handshake and returns the server identity.
func (c *Client) Initialize(ctx context.Context) (protocol.InitializeResult, error) {
	resp, err := c.do(ctx, "initialize", map[string]any{})
	if err != nil {
		return protocol.InitializeResult{}, err
	}
	var result protocol.InitializeResult
	if err := decodeResult(resp.Result, &result); err != nil {
		return protocol.InitializeResult{}, err
	}
	return result, nil
}

// Ping checks that the server answers.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, "ping", map[string]any{})
	return err
}

// ListTools fetches the advertised tools from the MCP server.
func (c *Client) ListTools(ctx context.Context) ([]protocol.ToolDescriptor, error) {
	resp, err := c.do(ctx, "tools/list", map[string]any{})
	if err != nil {
		return nil, err
	}
	var result protocol.ListResult
	if err := decodeResult(resp.Result, &result); err != nil {
		return nil, err
	}
	return result.Tools, nil
}

// CallTool invokes a tool and returns the structured result.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (protocol.CallResult, error) {
	resp, err := c.do(ctx, "tools/call", protocol.CallParams{Name: name, Args: mustRaw(args)})
	if err != nil {
		return protocol.CallResult{}, err
	}
	var result protocol.CallResult
	if err := decodeResult(resp.Result, &result); err != nil {
		return protocol.CallResult{}, err
	}
	return result, nil
}

// decodeResult re-marshals the untyped result into the expected shape.
func decodeResult(result any, into any) error {
	buf, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := json.Unmarshal(buf, into); err != nil {
		return fmt.Errorf("unmarshal result: %w", err)
	}
	return nil
}

func mustRaw(v any) json.RawMessage {
	if v == nil {
		return json.RawMessage(`null`)
	}
	b, _ := json.Marshal(v)
	return json.RawMessage(b)
}
