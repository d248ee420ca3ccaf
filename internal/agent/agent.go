// Package agent wires the analysis pipeline end to end: prompt
// construction, model invocation with retry and fallback, response
// extraction, form reconciliation and validation.
package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"product-agent/internal/config"
	"product-agent/internal/extract"
	"product-agent/internal/form"
	"product-agent/internal/imaging"
	"product-agent/internal/llm"
	"product-agent/internal/llm/gemini"
	"product-agent/internal/llm/groq"
	"product-agent/internal/prompt"
	"product-agent/internal/validate"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the final outcome of one analysis run.
type Result struct {
	Status      string            `json:"status"`
	ProductForm *form.ProductForm `json:"product_form,omitempty"`
	Warnings    []string          `json:"warnings,omitempty"`
	Errors      []string          `json:"errors,omitempty"`
}

// Agent runs the pipeline against an ordered chain of model backends.
type Agent struct {
	chain []llm.Invoker
	log   zerolog.Logger
}

// New builds the default chain from settings: primary Gemini, fallback
// Gemini, then Groq when a key is configured.
func New(cfg *config.Settings, log zerolog.Logger) *Agent {
	chain := []llm.Invoker{
		gemini.New(cfg.GoogleAPIKey, cfg.GoogleModel, cfg.Temperature),
		gemini.New(cfg.GoogleAPIKey, cfg.GoogleModelFallback, cfg.Temperature),
	}
	if cfg.GroqAPIKey != "" {
		chain = append(chain, groq.New(cfg.GroqAPIKey, cfg.GroqModel, cfg.Temperature))
	}
	return &Agent{chain: chain, log: log}
}

// NewWithChain builds an agent over an explicit invoker chain.
func NewWithChain(chain []llm.Invoker, log zerolog.Logger) *Agent {
	return &Agent{chain: chain, log: log}
}

// Analyze turns a free-text description plus optional photos into a
// validated product form. It never returns a Go error: failures are
// reported through Result.Status and Result.Errors so callers always
// get a renderable outcome.
func (a *Agent) Analyze(ctx context.Context, imagePaths []string, description string) Result {
	log := a.log.With().Str("session", uuid.NewString()).Logger()
	log.Info().Int("images", len(imagePaths)).Int("description_len", len(description)).Msg("analysis started")

	var images []imaging.Image
	for _, p := range imagePaths {
		img, err := imaging.Load(p)
		if err != nil {
			log.Warn().Str("path", p).Err(err).Msg("image skipped")
			continue
		}
		images = append(images, img)
	}

	req := llm.Request{
		Prompt: prompt.Render(prompt.CategoryTypesDescription(), description),
		Images: images,
	}

	var doc map[string]any
	_, model, err := llm.InvokeWithFallback(ctx, log, a.chain, req, func(text string) bool {
		doc = extract.JSON(text)
		return doc != nil
	})
	if err != nil {
		log.Error().Err(err).Msg("analysis failed")
		return Result{Status: StatusError, Errors: []string{describeFailure(err)}}
	}
	log.Info().Str("model", model).Msg("model response parsed")

	pf, warnings := form.Reconcile(form.Document(doc))

	res := validate.Validate(pf.Document())
	if pf.Name == "" {
		if name, ok := res.Form["name"].(string); ok {
			pf.Name = name
		}
	}

	out := Result{
		ProductForm: pf,
		Warnings:    append(warnings, res.Warnings...),
		Errors:      res.Errors,
	}
	out.Status = StatusSuccess
	log.Info().
		Bool("valid", res.Valid).
		Int("warnings", len(out.Warnings)).
		Int("errors", len(out.Errors)).
		Msg("analysis finished")
	return out
}

func describeFailure(err error) string {
	switch {
	case llm.IsRateLimit(err):
		return "API kota limiti aşıldı. Lütfen birkaç dakika sonra tekrar deneyin."
	case errors.Is(err, llm.ErrUnparseable):
		return "LLM yanıtından geçerli JSON çıkarılamadı"
	default:
		return fmt.Sprintf("Analiz hatası: %v", err)
	}
}
