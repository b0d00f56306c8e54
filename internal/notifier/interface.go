package notifier

import (
	"context"
	"time"
)

// Notifier delivers a finished summary to a recipient. Fire-and-forget
// from the pipeline's perspective: it is invoked by the caller after a
// run completes, never by the orchestrator itself.
type Notifier interface {
	SendSummary(ctx context.Context, recipient, title, summaryText string, at time.Time) error
}
