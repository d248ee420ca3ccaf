// Package gemini implements the llm.Invoker interface on the Google
// Gemini API. It handles both text and vision input.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"product-agent/internal/llm"
)

type Engine struct {
	apiKey      string
	model       string
	temperature float32
}

func New(apiKey, model string, temperature float32) *Engine {
	return &Engine{
		apiKey:      strings.TrimSpace(apiKey),
		model:       strings.TrimSpace(model),
		temperature: temperature,
	}
}

func (e *Engine) Name() string  { return "gemini" }
func (e *Engine) Model() string { return e.model }

// Generate executes one completion call. The model is instructed to
// answer with a JSON MIME type; photos are attached as inline blobs
// ahead of the prompt text.
func (e *Engine) Generate(ctx context.Context, req llm.Request) (string, error) {
	if e.apiKey == "" {
		return "", errors.New("GOOGLE_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.model)
	if m == nil {
		return "", fmt.Errorf("gemini: model %q is nil", e.model)
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(e.temperature),
		ResponseMIMEType: "application/json",
	}

	parts := make([]genai.Part, 0, len(req.Images)+1)
	for _, img := range req.Images {
		parts = append(parts, &genai.Blob{MIMEType: img.MIME, Data: img.Data})
	}
	parts = append(parts, genai.Text(req.Prompt))

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", e.model, err)
	}
	txt := firstText(resp)
	if strings.TrimSpace(txt) == "" {
		return "", fmt.Errorf("gemini %s: empty response", e.model)
	}
	return txt, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
