package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-agent/internal/llm"
)

type scriptedInvoker struct {
	model string
	text  string
	err   error
	calls int
}

func (s *scriptedInvoker) Name() string  { return "scripted" }
func (s *scriptedInvoker) Model() string { return s.model }

func (s *scriptedInvoker) Generate(_ context.Context, _ llm.Request) (string, error) {
	s.calls++
	return s.text, s.err
}

const modelOutput = "```json\n" + `{
    "category_name": "Kazanlar",
    "product_type_value": "tencere_kazan",
    "name": "Tencere Kazan",
    "purchase_price": null,
    "sale_price": null,
    "extra_specs": {
        "capacity_liters": 100,
        "energy_type": "Gazlı"
    }
}` + "\n```"

func TestAnalyzeSuccess(t *testing.T) {
	inv := &scriptedInvoker{model: "m1", text: modelOutput}
	a := NewWithChain([]llm.Invoker{inv}, zerolog.Nop())

	res := a.Analyze(context.Background(), nil, "100 litre gazlı tencere kazan, paslanmaz")

	assert.Equal(t, StatusSuccess, res.Status)
	require.NotNil(t, res.ProductForm)
	assert.Equal(t, "Kazanlar", res.ProductForm.CategoryName)
	assert.Equal(t, "tencere_kazan", res.ProductForm.ProductTypeValue)
	assert.Equal(t, "Tencere Kazan", res.ProductForm.Name)
	assert.Equal(t, map[string]any{
		"capacity_liters": json.Number("100"),
		"energy_type":     "Gazlı",
	}, res.ProductForm.ExtraSpecs)

	// Missing prices default to zero with one warning each.
	assert.Equal(t, 0, res.ProductForm.PurchasePrice)
	assert.Equal(t, 0, res.ProductForm.SalePrice)
	assert.Contains(t, res.Warnings, "Alış fiyatı belirtilmemiş - 0 olarak ayarlandı")
	assert.Contains(t, res.Warnings, "Satış fiyatı belirtilmemiş - 0 olarak ayarlandı")
	assert.Empty(t, res.Errors)
}

func TestAnalyzeSynthesizesName(t *testing.T) {
	// Mikserler has no form template, so the brand spec survives
	// reconciliation and feeds the synthesized name.
	inv := &scriptedInvoker{model: "m1", text: `{
		"category_name": "Mikserler",
		"product_type_value": "planet_mikser",
		"name": "",
		"extra_specs": {"brand": "Öztiryakiler"}
	}`}
	a := NewWithChain([]llm.Invoker{inv}, zerolog.Nop())

	res := a.Analyze(context.Background(), nil, "marka mikser")

	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, "Öztiryakiler planet_mikser", res.ProductForm.Name)
}

func TestAnalyzeFallsBackOnUnparseableOutput(t *testing.T) {
	bad := &scriptedInvoker{model: "m1", text: "I cannot answer in JSON, sorry."}
	good := &scriptedInvoker{model: "m2", text: modelOutput}
	a := NewWithChain([]llm.Invoker{bad, good}, zerolog.Nop())

	res := a.Analyze(context.Background(), nil, "kazan")

	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, 1, bad.calls)
	assert.Equal(t, 1, good.calls)
}

func TestAnalyzeAllUnparseable(t *testing.T) {
	inv := &scriptedInvoker{model: "m1", text: "no json"}
	a := NewWithChain([]llm.Invoker{inv}, zerolog.Nop())

	res := a.Analyze(context.Background(), nil, "kazan")

	assert.Equal(t, StatusError, res.Status)
	assert.Nil(t, res.ProductForm)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "LLM yanıtından geçerli JSON çıkarılamadı", res.Errors[0])
}

func TestAnalyzeQuotaExhausted(t *testing.T) {
	inv := &scriptedInvoker{model: "m1", err: errors.New("429 quota exceeded")}
	a := NewWithChain([]llm.Invoker{inv}, zerolog.Nop())

	// The cancelled context skips the real backoff between attempts.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := a.Analyze(ctx, nil, "kazan")

	assert.Equal(t, StatusError, res.Status)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "API kota limiti aşıldı. Lütfen birkaç dakika sonra tekrar deneyin.", res.Errors[0])
}

func TestAnalyzeOtherFailure(t *testing.T) {
	inv := &scriptedInvoker{model: "m1", err: errors.New("connection refused")}
	a := NewWithChain([]llm.Invoker{inv}, zerolog.Nop())

	res := a.Analyze(context.Background(), nil, "kazan")

	assert.Equal(t, StatusError, res.Status)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "Analiz hatası")
	assert.Contains(t, res.Errors[0], "connection refused")
}

func TestAnalyzeSkipsMissingImages(t *testing.T) {
	inv := &scriptedInvoker{model: "m1", text: modelOutput}
	a := NewWithChain([]llm.Invoker{inv}, zerolog.Nop())

	res := a.Analyze(context.Background(), []string{"/nonexistent/photo.jpg"}, "kazan")

	assert.Equal(t, StatusSuccess, res.Status)
}

func TestAnalyzeValidationErrorsReported(t *testing.T) {
	inv := &scriptedInvoker{model: "m1", text: `{
		"category_name": "Kazanlar",
		"name": "Kazan",
		"purchase_price": -5,
		"sale_price": 200,
		"status": "kaput"
	}`}
	a := NewWithChain([]llm.Invoker{inv}, zerolog.Nop())

	res := a.Analyze(context.Background(), nil, "kazan")

	// A form is still produced; problems surface in Errors for review.
	assert.Equal(t, StatusSuccess, res.Status)
	require.NotNil(t, res.ProductForm)
	assert.ElementsMatch(t, []string{
		"purchase_price negatif olamaz",
		"Geçersiz status değeri: 'kaput'. Geçerli: working, broken, repair",
	}, res.Errors)
}
