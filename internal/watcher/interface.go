package watcher

import (
	"context"

	"github.com/luminameet/meetingflow/internal/orchestrator"
)

// Watcher monitors the inbox directory for dropped recordings
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// RunHandler receives the assembled input for one meeting run
type RunHandler func(ctx context.Context, in orchestrator.Input) error
