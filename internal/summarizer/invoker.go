package summarizer

import (
	"context"
	"time"

	"github.com/luminameet/meetingflow/internal/fault"
)

// Invoke generates the summary with the primary model first, toggling to
// the fallback model before each transient retry. Fatal provider errors
// surface immediately; exhausting the budget surfaces the last transient
// error.
func (s *implInvoker) Invoke(ctx context.Context, req Request) (string, error) {
	active := s.primaryModel
	var lastErr error

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		s.logger.Debug(ctx, "Generating summary with model %s (attempt %d)", active, attempt+1)

		text, err := s.gen.generate(ctx, active, req)
		if err == nil {
			s.logger.Info(ctx, "Summary generated (%d chars)", len(text))
			return text, nil
		}

		classified := fault.ClassifyProvider("summarizer.invoke", err)
		if !fault.IsTransient(classified) {
			return "", classified
		}
		lastErr = classified

		if attempt == s.maxRetries {
			break
		}

		next := s.toggle(active)
		s.logger.Warn(ctx, "Model %s rate limited or overloaded, retrying with %s in %s: %v",
			active, next, s.retryDelay, err)
		active = next

		select {
		case <-time.After(s.retryDelay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	return "", lastErr
}

func (s *implInvoker) toggle(model string) string {
	if model == s.primaryModel {
		return s.fallbackModel
	}
	return s.primaryModel
}
