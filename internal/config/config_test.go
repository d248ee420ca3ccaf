package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "k")
	t.Setenv("GOOGLE_MODEL", "")
	t.Setenv("GOOGLE_MODEL_FALLBACK", "")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("GROQ_MODEL", "")
	t.Setenv("AGENT_TEMPERATURE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.GoogleAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.GoogleModel)
	assert.Equal(t, "gemini-2.0-flash", cfg.GoogleModelFallback)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.GroqModel)
	assert.InDelta(t, 0.1, cfg.Temperature, 1e-6)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "k")
	t.Setenv("GOOGLE_MODEL", "gemini-other")
	t.Setenv("AGENT_TEMPERATURE", "0.7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini-other", cfg.GoogleModel)
	assert.InDelta(t, 0.7, cfg.Temperature, 1e-6)
}

func TestLoadMissingKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
}

func TestLoadBadTemperature(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "k")
	t.Setenv("AGENT_TEMPERATURE", "hot")
	_, err := Load()
	require.Error(t, err)
}
