package orchestrator

import (
	"context"
	"errors"

	"github.com/luminameet/meetingflow/internal/meeting"
	"github.com/luminameet/meetingflow/internal/resolver"
)

// ErrNoInput rejects a run that carries no audio, notes, or sources.
// Raised before any provider call is made.
var ErrNoInput = errors.New("meeting data (audio, notes, or files) is required")

// Input is everything one orchestration run consumes.
type Input struct {
	OwnerID string

	// AudioPath is an optional local recording to transcribe.
	AudioPath string

	// Notes are the user's manual notes, possibly empty.
	Notes string

	// Sources are the content attachments, in the order the provider
	// should receive them.
	Sources []resolver.Source

	// TransientPaths are local files owned by this run, removed exactly
	// once on every exit path.
	TransientPaths []string
}

// Orchestrator sequences one end-to-end run: transcribe, aggregate,
// summarize, extract title, persist, clean up. It is the only component
// aware of the pipeline order, and the sole translator from internal
// fault kinds to a caller-facing failure.
type Orchestrator interface {
	// Run executes the pipeline. On success it returns the persisted
	// artifact plus the non-fatal warnings the run survived. On fatal
	// error no artifact is persisted; transient files are cleaned up
	// either way.
	Run(ctx context.Context, in Input) (*meeting.Artifact, []meeting.Warning, error)
}
