package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash-exp"
)

// Ensure Gemini implements Generator.
var _ Generator = (*Gemini)(nil)

// Gemini implements Generator using the Google Generative Language API.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *retryablehttp.Client
}

// Option configures the Gemini client.
type Option func(*Gemini)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(g *Gemini) {
		g.baseURL = strings.TrimRight(url, "/")
	}
}

func WithModel(model string) Option {
	return func(g *Gemini) {
		if model != "" {
			g.model = model
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(g *Gemini) {
		if d > 0 {
			g.client.HTTPClient.Timeout = d
		}
	}
}

// WithRetries sets the number of retries after the first attempt.
func WithRetries(n int) Option {
	return func(g *Gemini) {
		g.client.RetryMax = n
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(g *Gemini) {
		g.client.Logger = log
	}
}

func NewGemini(apiKey string, opts ...Option) *Gemini {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.RetryMax = 1
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = 30 * time.Second

	g := &Gemini{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		client:  rc,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Configured reports whether a real API key is set.
func (g *Gemini) Configured() bool {
	return g.apiKey != "" && g.apiKey != placeholderKey
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends prompt to the model. Without an API key it returns
// MockResponse and never touches the network.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if !g.Configured() {
		return MockResponse(prompt), nil
	}

	reqJSON, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, reqJSON)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// The key stays out of the URL, which the retry client logs.
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var apiResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from API")
	}

	var sb strings.Builder
	for _, p := range apiResp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
