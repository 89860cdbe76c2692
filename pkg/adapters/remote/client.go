package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/ariadne/internal/logging"
	"github.com/aretw0/ariadne/pkg/domain"
	"github.com/aretw0/ariadne/pkg/observability"
)

// DefaultTimeout bounds every gateway call. Exceeding it is treated exactly
// like a network failure: no retry, no backoff, the caller's branch is
// abandoned.
const DefaultTimeout = 3 * time.Second

// Client talks to a maze authority over HTTP. It implements ports.Gateway.
//
// The endpoint strings handed to Discover and Move are the capability tokens
// from the authority's previous response; the client resolves them against
// its base URL and never constructs them itself.
type Client struct {
	base    string
	maze    string
	httpc   *http.Client
	logger  *slog.Logger
	metrics *observability.GatewayMetrics
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (e.g. for tests).
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithTimeout overrides the per-call budget.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpc.Timeout = timeout
	}
}

// WithMaze names the layout requested on session start. Empty means the
// authority's default.
func WithMaze(maze string) Option {
	return func(c *Client) {
		c.maze = maze
	}
}

// WithLogger sets the operational logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics enables Prometheus instrumentation of gateway calls.
func WithMetrics(metrics *observability.GatewayMetrics) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

// New creates a gateway client for the authority at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base:   strings.TrimRight(baseURL, "/"),
		httpc:  &http.Client{Timeout: DefaultTimeout},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type startRequest struct {
	Player string `json:"player"`
	Maze   string `json:"maze,omitempty"`
}

type moveRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type discoverResponse struct {
	Cells []domain.Cell `json:"cells"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Start begins a new session for the player.
func (c *Client) Start(ctx context.Context, player string) (*domain.Update, error) {
	started := time.Now()
	update, err := c.postUpdate(ctx, "/api/start", startRequest{Player: player, Maze: c.maze})
	c.observe("start", started, err)
	return update, err
}

// Discover lists the cells visible from the agent's current position.
func (c *Client) Discover(ctx context.Context, endpoint string) ([]domain.Cell, error) {
	started := time.Now()

	var out discoverResponse
	err := c.do(ctx, http.MethodGet, endpoint, nil, &out)
	c.observe("discover", started, err)
	if err != nil {
		return nil, err
	}
	return out.Cells, nil
}

// Move relocates the agent to the target cell.
func (c *Client) Move(ctx context.Context, endpoint string, target domain.Coordinate) (*domain.Update, error) {
	started := time.Now()
	update, err := c.postUpdate(ctx, endpoint, moveRequest{X: target.X, Y: target.Y})
	c.observe("move", started, err)
	return update, err
}

func (c *Client) postUpdate(ctx context.Context, endpoint string, body any) (*domain.Update, error) {
	var update domain.Update
	if err := c.do(ctx, http.MethodPost, endpoint, body, &update); err != nil {
		return nil, err
	}
	return &update, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("gateway rejected %s %s: %s", method, endpoint, apiErr.Error)
		}
		return fmt.Errorf("gateway rejected %s %s: %s", method, endpoint, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) observe(op string, started time.Time, err error) {
	if err != nil {
		c.logger.Warn("gateway call failed", "op", op, "err", err)
	}
	if c.metrics != nil {
		c.metrics.Observe(op, time.Since(started), err)
	}
}
