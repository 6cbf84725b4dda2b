package commentary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vovakirdan/neon-paddle/internal/config"
)

// DefaultEndpoint is the generateContent API base used when the config does
// not name one.
const DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"

// ErrNoAPIKey is returned by NewHTTPCommentator without a key.
var ErrNoAPIKey = errors.New("commentary: API key is required")

// HTTPCommentator asks a generateContent-style model endpoint for commentary.
type HTTPCommentator struct {
	endpoint string
	model    string
	apiKey   string
	gen      generationConfig
	client   *http.Client
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// NewHTTPCommentator creates a client for cfg authenticated with apiKey.
func NewHTTPCommentator(cfg config.CommentaryConfig, apiKey string) (*HTTPCommentator, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 4 * time.Second
	}

	return &HTTPCommentator{
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    cfg.Model,
		apiKey:   apiKey,
		gen: generationConfig{
			Temperature:     cfg.Temperature,
			TopP:            cfg.TopP,
			MaxOutputTokens: cfg.MaxTokens,
		},
		client: &http.Client{Timeout: timeout},
	}, nil
}

// Comment implements Commentator. An empty candidate list yields "" and no
// error; the Dispatcher substitutes its fallback line.
func (h *HTTPCommentator) Comment(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: BuildPrompt(req)}}}},
		GenerationConfig: h.gen,
	})
	if err != nil {
		return "", fmt.Errorf("commentary: encode request: %w", err)
	}

	u := fmt.Sprintf("%s/models/%s:generateContent", h.endpoint, url.PathEscape(h.model))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("commentary: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", h.apiKey)

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("commentary: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("commentary: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("commentary: decode response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return "", nil
	}
	var b strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String()), nil
}
