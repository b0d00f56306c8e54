package transcriber

import "context"

// Transcriber drives the speech-to-text provider's job lifecycle
type Transcriber interface {
	// Submit uploads raw audio bytes and returns the provider's audio URL.
	// Upload transport errors are fatal; there is no retry at this layer.
	Submit(ctx context.Context, audio []byte) (string, error)

	// Transcribe creates a transcription job for the uploaded audio and
	// polls until the job reaches a terminal state, returning the
	// transcript text on completion.
	Transcribe(ctx context.Context, audioURL string) (string, error)
}
