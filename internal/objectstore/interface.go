package objectstore

import "context"

// Uploader pushes local bytes to shared object storage and returns a
// public URL. It is a best-effort collaborator: callers downgrade upload
// failures to warnings and fall back to the local bytes.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, mimeType string) (string, error)
}
