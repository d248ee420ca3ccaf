// Package groq implements the llm.Invoker interface on Groq's
// OpenAI-compatible chat completions API. Groq serves text-only models
// here, so image parts are dropped; it sits at the tail of the fallback
// chain for when the Gemini quota is gone.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"product-agent/internal/llm"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

type Engine struct {
	apiKey      string
	model       string
	temperature float32
	baseURL     string
	httpc       *http.Client
}

func New(apiKey, model string, temperature float32) *Engine {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 120 * time.Second,
		IdleConnTimeout:       90 * time.Second,
	}
	return &Engine{
		apiKey:      strings.TrimSpace(apiKey),
		model:       strings.TrimSpace(model),
		temperature: temperature,
		baseURL:     defaultBaseURL,
		httpc:       &http.Client{Transport: tr},
	}
}

// WithBaseURL overrides the API endpoint (tests point it at a local server).
func (e *Engine) WithBaseURL(u string) *Engine {
	if u != "" {
		e.baseURL = strings.TrimRight(u, "/")
	}
	return e
}

func (e *Engine) Name() string  { return "groq" }
func (e *Engine) Model() string { return e.model }

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error,omitempty"`
}

func (e *Engine) Generate(ctx context.Context, req llm.Request) (string, error) {
	if e.apiKey == "" {
		return "", errors.New("GROQ_API_KEY is empty")
	}

	body, err := json.Marshal(chatRequest{
		Model:       e.model,
		Messages:    []chatMessage{{Role: "user", Content: req.Prompt}},
		Temperature: e.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("groq: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("groq: create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+e.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.httpc.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("groq %s: %w", e.model, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("groq %s: read response: %w", e.model, err)
	}

	// Non-2xx bodies carry the upstream error text; it must survive into
	// the returned error so rate-limit classification can see markers
	// like "rate limit" or a retryDelay hint.
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq %s: status %d: %s", e.model, resp.StatusCode, truncate(raw, 500))
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("groq %s: bad response JSON: %w", e.model, err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("groq %s: %s", e.model, out.Error.Message)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("groq %s: empty response", e.model)
	}
	return out.Choices[0].Message.Content, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
