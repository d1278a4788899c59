package search

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sandevgo/advogado/internal/core"
	"github.com/sandevgo/advogado/pkg/log"
	"golang.org/x/net/html"
)

const (
	DefaultBaseURL    = "https://html.duckduckgo.com/html/"
	DefaultTimeout    = 10 * time.Second
	DefaultMaxResults = 3

	maxResponseSize = 2 << 20
)

var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1",
}

// Client queries the DuckDuckGo HTML endpoint. It never returns errors: any
// failure means "no web context".
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxResults int
	userAgents []string
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSpace(baseURL)
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout <= 0 {
			return
		}
		hc := &http.Client{}
		if c.httpClient != nil {
			*hc = *c.httpClient
		}
		hc.Timeout = timeout
		c.httpClient = hc
	}
}

func WithMaxResults(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxResults = n
		}
	}
}

func WithUserAgents(agents ...string) Option {
	return func(c *Client) {
		if len(agents) > 0 {
			c.userAgents = agents
		}
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		maxResults: DefaultMaxResults,
		userAgents: defaultUserAgents,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ core.Searcher = (*Client)(nil)

// Search returns up to maxResults lines of "title: snippet [Fonte: source]".
func (c *Client) Search(ctx context.Context, question string) (string, bool) {
	logger := log.FromCtx(ctx).With().Str("component", "search").Logger()

	query := BuildQuery(question)
	results, err := c.fetch(ctx, query)
	if err != nil {
		logger.Warn().Err(err).Str("query", query).Msg("web search failed")
		return "", false
	}
	if len(results) == 0 {
		logger.Debug().Str("query", query).Msg("web search returned no results")
		return "", false
	}

	logger.Debug().Str("query", query).Int("results", len(results)).Msg("web search succeeded")
	return Format(results), true
}

func (c *Client) fetch(ctx context.Context, query string) ([]core.SearchResult, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid search url: %w", err)
	}
	params := u.Query()
	params.Set("q", query)
	params.Set("kl", "br-pt")
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent())
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to parse results page: %w", err)
	}

	return ParseResults(doc, c.maxResults), nil
}

func (c *Client) userAgent() string {
	return c.userAgents[rand.IntN(len(c.userAgents))]
}

func Format(results []core.SearchResult) string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("%s: %s [Fonte: %s]", r.Title, r.Snippet, r.Source))
	}
	return strings.Join(lines, "\n")
}
