// Package config loads process-wide settings once at startup. The
// resulting Settings value is immutable and passed explicitly to the
// components that need it; nothing reads the environment after Load.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds everything the pipeline needs from the environment.
type Settings struct {
	GoogleAPIKey        string
	GoogleModel         string
	GoogleModelFallback string

	// Groq is the text-only tail of the fallback chain; optional.
	GroqAPIKey string
	GroqModel  string

	Temperature float32
}

// Load reads settings from the environment, after a best-effort load of
// a local .env file.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	s := &Settings{
		GoogleAPIKey:        os.Getenv("GOOGLE_API_KEY"),
		GoogleModel:         getEnv("GOOGLE_MODEL", "gemini-2.5-flash"),
		GoogleModelFallback: getEnv("GOOGLE_MODEL_FALLBACK", "gemini-2.0-flash"),
		GroqAPIKey:          os.Getenv("GROQ_API_KEY"),
		GroqModel:           getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		Temperature:         0.1,
	}

	if raw := os.Getenv("AGENT_TEMPERATURE"); raw != "" {
		t, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return nil, fmt.Errorf("bad AGENT_TEMPERATURE %q: %w", raw, err)
		}
		s.Temperature = float32(t)
	}

	if s.GoogleAPIKey == "" {
		return nil, fmt.Errorf("missing required env GOOGLE_API_KEY")
	}
	return s, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
