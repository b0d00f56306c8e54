package notifier

import (
	"context"
	"time"

	"github.com/luminameet/meetingflow/internal/logger"
)

type logNotifier struct {
	logger logger.Logger
}

// NewLog creates a Notifier that records deliveries in the log. Outbound
// email is handled by an external collaborator; this implementation keeps
// the contract exercised without a mail dependency.
func NewLog(log logger.Logger) Notifier {
	return &logNotifier{logger: log}
}

func (n *logNotifier) SendSummary(ctx context.Context, recipient, title, summaryText string, at time.Time) error {
	n.logger.Info(ctx, "Summary %q (%d chars, %s) queued for delivery to %s",
		title, len(summaryText), at.Format(time.RFC3339), recipient)
	return nil
}
