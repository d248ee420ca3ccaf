package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrUnparseable marks a traversal that ended because no model in the
// chain produced output the caller could parse.
var ErrUnparseable = errors.New("no model produced parseable output")

// InvokeWithFallback tries each model in chain, in order, until one
// yields a response that accept approves. Two conditions advance to the
// next model: an exhausted in-model retry budget on quota errors, or
// output that accept rejects. Any other failure propagates immediately,
// since retrying a non-quota error on a different model is not the
// designed recovery path.
//
// accept may be nil, in which case any non-error response wins. The
// returned model name identifies the successful entry.
func InvokeWithFallback(ctx context.Context, log zerolog.Logger, chain []Invoker, req Request, accept func(text string) bool) (string, string, error) {
	if len(chain) == 0 {
		return "", "", errors.New("empty model chain")
	}

	var lastErr error
	for _, inv := range chain {
		log.Info().Str("provider", inv.Name()).Str("model", inv.Model()).Msg("trying model")

		text, err := InvokeWithRetry(ctx, log, inv, req)
		if err != nil {
			if IsRateLimit(err) {
				log.Warn().Str("model", inv.Model()).Err(err).Msg("model quota exhausted, advancing")
				lastErr = err
				continue
			}
			return "", "", fmt.Errorf("model %s: %w", inv.Model(), err)
		}

		if accept != nil && !accept(text) {
			log.Warn().Str("model", inv.Model()).Msg("response not parseable, advancing")
			lastErr = fmt.Errorf("model %s: %w", inv.Model(), ErrUnparseable)
			continue
		}

		log.Info().Str("model", inv.Model()).Msg("model succeeded")
		return text, inv.Model(), nil
	}

	last := chain[len(chain)-1]
	return "", "", fmt.Errorf("all models exhausted, last was %s: %w", last.Model(), lastErr)
}
