package meeting

import "time"

// Artifact is the saved outcome of one orchestration run.
// It is assembled exactly once per successful run and never read back
// by the pipeline itself.
type Artifact struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Title      string    `json:"title"`
	Transcript string    `json:"transcript,omitempty"`
	UserNotes  string    `json:"user_notes,omitempty"`
	SourceURLs []string  `json:"source_urls"`
	Summary    string    `json:"summary"`
	CreatedAt  time.Time `json:"created_at"`
}

// Warning records a non-fatal failure the run survived, so callers can
// see which sources were dropped or which best-effort steps failed
// without digging through logs.
type Warning struct {
	Stage  string
	Detail string
}
