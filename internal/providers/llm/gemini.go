package llm

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sandevgo/advogado/internal/core"
	"github.com/sandevgo/advogado/pkg/conv"
	"github.com/sandevgo/advogado/pkg/log"
	"github.com/sandevgo/advogado/pkg/retry"
)

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel   = "gemini-1.5-flash-latest"
	DefaultGeminiTimeout = 30 * time.Second
)

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

var defaultGeneration = generationConfig{
	Temperature:     0.7,
	TopK:            40,
	TopP:            0.95,
	MaxOutputTokens: 1024,
}

// KeyReader returns the API key, or false when none is configured.
type KeyReader func() (string, bool)

type Gemini struct {
	baseProvider
	keys    KeyReader
	policy  *retry.Policy
	persona string
}

type Option func(*Gemini)

func WithBaseURL(baseURL string) Option {
	return func(g *Gemini) {
		if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
			g.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithModel(model string) Option {
	return func(g *Gemini) {
		if model = strings.TrimSpace(model); model != "" {
			g.model = model
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(g *Gemini) {
		g.client = client
	}
}

// WithTimeout sets the per-attempt timeout on a copy of the current client,
// so a client passed to WithHTTPClient is never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(g *Gemini) {
		if timeout <= 0 {
			return
		}
		c := &http.Client{}
		if g.client != nil {
			*c = *g.client
		}
		c.Timeout = timeout
		g.client = c
	}
}

// WithRetryPolicy overrides the attempt budget and backoff. Which errors are
// retried is not configurable.
func WithRetryPolicy(p retry.Policy) Option {
	return func(g *Gemini) {
		p.Retryable = isRetryable
		g.policy = &p
	}
}

func WithPersona(persona string) Option {
	return func(g *Gemini) {
		g.persona = persona
	}
}

func NewGemini(keys KeyReader, opts ...Option) (*Gemini, error) {
	if keys == nil {
		return nil, errors.New("llm: key reader must not be nil")
	}

	policy := retry.NewDefaultPolicy()
	policy.Retryable = isRetryable

	g := &Gemini{
		baseProvider: newBaseProvider(DefaultGeminiBaseURL, DefaultGeminiModel, DefaultGeminiTimeout),
		keys:         keys,
		policy:       policy,
		persona:      Persona,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

var _ core.LLM = (*Gemini)(nil)

func (g *Gemini) Query(ctx context.Context, question string, history []core.Turn, web *core.WebContext) core.Completion {
	logger := log.FromCtx(ctx).With().Str("component", "gemini").Str("model", g.model).Logger()

	apiKey, ok := g.keys()
	if !ok || strings.TrimSpace(apiKey) == "" {
		logger.Warn().Msg("gemini api key is not configured")
		return core.Failed(core.FailureConfigurationMissing, errors.New("llm: api key is not configured"))
	}

	req := generateRequest{
		Contents:         buildContents(g.persona, question, history, web),
		GenerationConfig: defaultGeneration,
	}
	path := "/models/" + g.model + ":generateContent"
	query := url.Values{"key": []string{apiKey}}

	attempts := 0
	var resp generateResponse
	err := retry.NewRetrier(g.policy).Do(ctx, func() error {
		attempts++
		resp = generateResponse{}
		err := g.postJSON(ctx, path, query, req, &resp)
		if err != nil && isRetryable(err) {
			logger.Warn().Err(redact(err)).Int("attempt", attempts).Msg("gemini request failed, retrying")
		}
		return err
	})
	if err != nil {
		kind := classify(err)
		logger.Error().Err(redact(err)).Int("attempts", attempts).Str("kind", kind.String()).Msg("gemini request failed")
		return core.Failed(kind, redact(err))
	}

	text := firstText(resp)
	if text == "" {
		logger.Warn().Msg("gemini returned no candidates")
		return core.Failed(core.FailureEmptyCompletion, errors.New("llm: empty completion"))
	}

	logger.Debug().Int("attempts", attempts).Int("chars", len(text)).Msg("gemini answered")
	return core.Completion{Text: conv.StripBold(text)}
}

func firstText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// isRetryable accepts connection failures and timeouts only.
func isRetryable(err error) bool {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return false
	}
	return !errors.Is(err, context.Canceled)
}

func classify(err error) core.FailureKind {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusTooManyRequests, http.StatusBadRequest, http.StatusRequestEntityTooLarge:
			return core.FailureProviderOverloaded
		default:
			return core.FailureProviderError
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return core.FailureTimeout
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return core.FailureTimeout
		}
		return core.FailureTransientNetwork
	}

	if errors.Is(err, context.Canceled) {
		return core.FailureTransientNetwork
	}

	return core.FailureProviderError
}

// redact drops the request URL, which carries the API key, from transport errors.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
