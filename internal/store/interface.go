package store

import (
	"context"
	"errors"

	"github.com/luminameet/meetingflow/internal/meeting"
)

// ErrNotFound is returned when no meeting exists for the given id.
var ErrNotFound = errors.New("meeting not found")

// Store persists meeting artifacts. Ownership authorization is enforced
// by the caller, not here.
type Store interface {
	// Create saves the artifact, minting an id and stamping CreatedAt
	// when unset, and returns the stored id.
	Create(ctx context.Context, a *meeting.Artifact) (string, error)

	// ListByOwner returns the owner's meetings, most recent first.
	ListByOwner(ctx context.Context, ownerID string) ([]*meeting.Artifact, error)

	// GetByID returns one meeting or ErrNotFound.
	GetByID(ctx context.Context, id string) (*meeting.Artifact, error)

	Close() error
}
