package translator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultUserAgent = "Mozilla/5.0"
	DefaultTimeout   = 10 * time.Second

	maxErrorBody = 256
)

// Client issues one lookup per call against a Youdao profile. It holds no
// per-query state and is safe for concurrent use.
type Client struct {
	builder   *Builder
	parser    *Parser
	userAgent string
	client    *http.Client
}

func NewClient(builder *Builder, parser *Parser, cfg ServiceConfig) *Client {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		builder:   builder,
		parser:    parser,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string {
	return c.builder.Profile.Name
}

// Lookup fetches and parses the results for query. The context is checked
// right before the request is sent and right after the body is read, so a
// cancelled cycle never returns a stale response.
func (c *Client) Lookup(ctx context.Context, query string) ([]Result, error) {
	apiURL, ok := c.builder.Build(query)
	if !ok {
		return nil, ErrEmptyQuery
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrNetwork, err)
	}
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: request failed: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrNetwork, resp.StatusCode, truncate(string(body), maxErrorBody))
	}

	return c.parser.Parse(body)
}

func truncate(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n]) + "..."
}
