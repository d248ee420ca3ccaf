package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackFirstModelWins(t *testing.T) {
	stubSleep(t)
	primary := &fakeInvoker{model: "primary", steps: []step{{text: `{"ok":true}`}}}
	backup := &fakeInvoker{model: "backup", steps: []step{{text: "unused"}}}

	text, model, err := InvokeWithFallback(context.Background(), zerolog.Nop(),
		[]Invoker{primary, backup}, testReq, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, text)
	assert.Equal(t, "primary", model)
	assert.Equal(t, 0, backup.calls)
}

func TestFallbackAdvancesOnQuota(t *testing.T) {
	stubSleep(t)
	rateErr := errors.New("429 quota exceeded")
	primary := &fakeInvoker{model: "primary", steps: []step{{err: rateErr}, {err: rateErr}}}
	backup := &fakeInvoker{model: "backup", steps: []step{{text: `{"ok":true}`}}}

	text, model, err := InvokeWithFallback(context.Background(), zerolog.Nop(),
		[]Invoker{primary, backup}, testReq, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, text)
	assert.Equal(t, "backup", model)
	assert.Equal(t, maxAttemptsPerModel, primary.calls)
}

func TestFallbackAdvancesOnRejectedOutput(t *testing.T) {
	stubSleep(t)
	primary := &fakeInvoker{model: "primary", steps: []step{{text: "not json at all"}}}
	backup := &fakeInvoker{model: "backup", steps: []step{{text: `{"ok":true}`}}}

	accept := func(s string) bool { return strings.HasPrefix(s, "{") }
	text, model, err := InvokeWithFallback(context.Background(), zerolog.Nop(),
		[]Invoker{primary, backup}, testReq, accept)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, text)
	assert.Equal(t, "backup", model)
}

func TestFallbackNonQuotaErrorStopsImmediately(t *testing.T) {
	stubSleep(t)
	boom := errors.New("connection refused")
	primary := &fakeInvoker{model: "primary", steps: []step{{err: boom}}}
	backup := &fakeInvoker{model: "backup", steps: []step{{text: "never"}}}

	_, _, err := InvokeWithFallback(context.Background(), zerolog.Nop(),
		[]Invoker{primary, backup}, testReq, nil)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "primary")
	assert.Equal(t, 0, backup.calls)
}

func TestFallbackChainExhausted(t *testing.T) {
	stubSleep(t)
	rateErr := errors.New("429 quota exceeded")
	first := &fakeInvoker{model: "m1", steps: []step{{err: rateErr}, {err: rateErr}}}
	second := &fakeInvoker{model: "m2", steps: []step{{err: rateErr}, {err: rateErr}}}

	_, _, err := InvokeWithFallback(context.Background(), zerolog.Nop(),
		[]Invoker{first, second}, testReq, nil)
	require.Error(t, err)
	assert.True(t, IsRateLimit(err))
	assert.Contains(t, err.Error(), "m2")
	assert.Equal(t, maxAttemptsPerModel, first.calls)
	assert.Equal(t, maxAttemptsPerModel, second.calls)
}

func TestFallbackAllUnparseable(t *testing.T) {
	stubSleep(t)
	first := &fakeInvoker{model: "m1", steps: []step{{text: "garbage"}}}
	second := &fakeInvoker{model: "m2", steps: []step{{text: "more garbage"}}}

	accept := func(string) bool { return false }
	_, _, err := InvokeWithFallback(context.Background(), zerolog.Nop(),
		[]Invoker{first, second}, testReq, accept)
	require.ErrorIs(t, err, ErrUnparseable)
	assert.Contains(t, err.Error(), "m2")
}

func TestFallbackEmptyChain(t *testing.T) {
	_, _, err := InvokeWithFallback(context.Background(), zerolog.Nop(), nil, testReq, nil)
	require.Error(t, err)
}
