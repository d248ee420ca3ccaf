package llm

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/api/googleapi"
)

// Free-tier quota limits differ per model, so a model that trips 429 is
// retried briefly on the same model and then abandoned in favor of the
// next one in the chain.
const (
	// maxAttemptsPerModel bounds the in-model retry budget.
	maxAttemptsPerModel = 2

	defaultRetryDelay = 8 * time.Second
	backoffMargin     = 2 * time.Second
	minBackoff        = 5 * time.Second
	maxBackoff        = 60 * time.Second
)

// sleep waits out a backoff period or the context, whichever ends
// first. Swapped out by tests.
var sleep = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var rateLimitMarkers = []string{
	"resource_exhausted",
	"429",
	"rate limit",
	"quota exceeded",
}

// IsRateLimit reports whether err represents a quota/rate-limit
// condition, either a Google API 429 or any of the known markers in the
// error text.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == 429 {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range rateLimitMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

var (
	retryInRe    = regexp.MustCompile(`(?i)retry\s+in\s+([\d.]+)s`)
	retryDelayRe = regexp.MustCompile(`"retryDelay":\s*"(\d+)s"`)
)

// retryDelayFrom extracts the wait the upstream suggested in its error
// text, falling back to defaultRetryDelay.
func retryDelayFrom(errText string) time.Duration {
	if m := retryInRe.FindStringSubmatch(errText); m != nil {
		if secs, err := strconv.ParseFloat(m[1], 64); err == nil {
			return time.Duration(secs * float64(time.Second))
		}
	}
	if m := retryDelayRe.FindStringSubmatch(errText); m != nil {
		if secs, err := strconv.Atoi(m[1]); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultRetryDelay
}

// backoffWait computes the actual wait before the next attempt: the
// suggested delay plus a safety margin, clamped to [minBackoff, maxBackoff].
func backoffWait(err error) time.Duration {
	wait := retryDelayFrom(err.Error()) + backoffMargin
	if wait < minBackoff {
		wait = minBackoff
	}
	if wait > maxBackoff {
		wait = maxBackoff
	}
	return wait
}

// InvokeWithRetry runs one model with the bounded in-model retry budget.
// Only rate-limit failures are retried: a non-quota error is presumed
// futile to repeat and returns immediately. The backoff between attempts
// blocks the calling goroutine; a context that expires mid-backoff ends
// the retry budget early and the last model error is returned.
func InvokeWithRetry(ctx context.Context, log zerolog.Logger, inv Invoker, req Request) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttemptsPerModel; attempt++ {
		text, err := inv.Generate(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if IsRateLimit(err) && attempt < maxAttemptsPerModel {
			wait := backoffWait(err)
			log.Warn().
				Str("provider", inv.Name()).
				Str("model", inv.Model()).
				Int("attempt", attempt).
				Int("max_attempts", maxAttemptsPerModel).
				Dur("wait", wait).
				Msg("rate limit hit, backing off")
			if sleep(ctx, wait) != nil {
				return "", lastErr
			}
			continue
		}
		return "", err
	}
	return "", lastErr
}
