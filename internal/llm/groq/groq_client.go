package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"

	"superclaims/internal/config"
	"superclaims/internal/llm"
	"superclaims/internal/port"
)

const (
	apiURL = "https://api.groq.com/openai/v1/chat/completions"

	// Llama follows JSON instructions well even without response_format.
	systemPrompt = "Return ONLY valid JSON. No explanation, no text outside JSON."
)

// Client implements port.StructuredClient using Groq's OpenAI-compatible
// Chat Completions API.
type Client struct {
	apiKey     string
	model      string
	endpoint   string
	attempts   uint
	httpClient *http.Client
}

// NewClient creates a Groq-backed structured client from a provider config.
func NewClient(cfg *config.LLMProviderConfig) *Client {
	return newClient(cfg, apiURL)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.LLMProviderConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.LLMProviderConfig, endpoint string) *Client {
	model := cfg.DefaultModel
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}
	attempts := uint(cfg.MaxRetries)
	if attempts == 0 {
		attempts = 3
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		model:      model,
		endpoint:   endpoint,
		attempts:   attempts,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Factory adapts NewClient to the provider registry signature.
func Factory(cfg *config.LLMProviderConfig) (port.StructuredClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq provider requires an api key")
	}
	return NewClient(cfg), nil
}

func (c *Client) Call(ctx context.Context, prompt string) (map[string]any, error) {
	return retry.DoWithData(
		func() (map[string]any, error) {
			return c.callOnce(ctx, prompt)
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
}

func (c *Client) callOnce(ctx context.Context, prompt string) (map[string]any, error) {
	reqBody := map[string]any{
		"model":       c.model,
		"temperature": 0,
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": prompt},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("marshaling request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling groq API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("groq API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 500))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := llm.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return nil, retry.Unrecoverable(llm.NewRateLimitError("groq", baseErr, retryAfter))
		}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, retry.Unrecoverable(baseErr)
		}
		return nil, baseErr
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API: no choices")
	}

	return llm.DecodeObject(parsed.Choices[0].Message.Content), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
