// Package httpapi implements parley.Service over the chatbot backend's
// JSON HTTP API.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mpasternak/parley"
)

// Interface compliance check.
var _ parley.Service = (*Client)(nil)

const defaultTimeout = 60 * time.Second

// Client talks to the chatbot backend.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. Default has a 60s timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpc = c }
}

// New creates a Client for the backend at baseURL (e.g. "http://localhost:8000").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// historyEntry is the wire shape of one recorded exchange entry.
type historyEntry struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type historyResponse struct {
	History []historyEntry `json:"history"`
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response  string   `json:"response"`
	SessionID string   `json:"session_id"`
	Timestamp string   `json:"timestamp"`
	ToolsUsed []string `json:"tools_used"`
}

type toolsResponse struct {
	Tools []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"tools"`
	Count int `json:"count"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Services struct {
		Redis    string `json:"redis"`
		MCP      string `json:"mcp"`
		MCPTools int    `json:"mcp_tools"`
		AIModel  string `json:"ai_model"`
	} `json:"services"`
}

// History returns the recorded exchanges for a session in server order.
// Entries with role "user" map to SenderUser; any other role maps to
// SenderAssistant. Unparseable timestamps leave the entry in place with a
// zero time rather than dropping it.
func (c *Client) History(ctx context.Context, sessionID string) ([]parley.Message, error) {
	var body historyResponse
	if err := c.get(ctx, "/api/history/"+url.PathEscape(sessionID), &body); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	msgs := make([]parley.Message, len(body.History))
	for i, e := range body.History {
		sender := parley.SenderAssistant
		if e.Role == "user" {
			sender = parley.SenderUser
		}
		ts, _ := time.Parse(time.RFC3339, e.Timestamp)
		msgs[i] = parley.Message{Text: e.Content, Sender: sender, Timestamp: ts}
	}
	return msgs, nil
}

// Chat submits a user message and returns the assistant's reply. A reply
// without a parseable timestamp is stamped at receipt time.
func (c *Client) Chat(ctx context.Context, sessionID, message string) (parley.Reply, error) {
	payload, err := json.Marshal(chatRequest{Message: message, SessionID: sessionID})
	if err != nil {
		return parley.Reply{}, fmt.Errorf("chat: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return parley.Reply{}, fmt.Errorf("chat: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var body chatResponse
	if err := c.do(req, &body); err != nil {
		return parley.Reply{}, fmt.Errorf("chat: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, body.Timestamp)
	if err != nil {
		ts = time.Now()
	}
	return parley.Reply{Text: body.Response, Timestamp: ts, ToolsUsed: body.ToolsUsed}, nil
}

// ClearSession deletes the backend's state for a session.
func (c *Client) ClearSession(ctx context.Context, sessionID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+"/api/session/"+url.PathEscape(sessionID), nil)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Tools lists the backend's available tools.
func (c *Client) Tools(ctx context.Context) ([]parley.ToolInfo, error) {
	var body toolsResponse
	if err := c.get(ctx, "/api/tools", &body); err != nil {
		return nil, fmt.Errorf("tools: %w", err)
	}
	tools := make([]parley.ToolInfo, len(body.Tools))
	for i, t := range body.Tools {
		tools[i] = parley.ToolInfo{Name: t.Name, Description: t.Description}
	}
	return tools, nil
}

// Health reports the backend's component status.
func (c *Client) Health(ctx context.Context) (parley.Health, error) {
	var body healthResponse
	if err := c.get(ctx, "/health", &body); err != nil {
		return parley.Health{}, fmt.Errorf("health: %w", err)
	}
	return parley.Health{
		Status:    body.Status,
		Model:     body.Services.AIModel,
		MCP:       body.Services.MCP,
		Redis:     body.Services.Redis,
		ToolCount: body.Services.MCPTools,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// do executes a request, checks for a success status, and decodes the JSON
// body into out when out is non-nil.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body for context; backends return JSON
		// error details but anything past 1KB is noise.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: %s: %s", parley.ErrStatus, resp.Status, bytes.TrimSpace(snippet))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
