// Package fault defines the pipeline's error taxonomy. Every fallible
// operation returns an error tagged with a Kind so that transient-vs-fatal
// decisions are made on the type, not on message text. Provider message
// sniffing is confined to classify.go.
package fault

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindUnknown is the zero value for errors that carry no kind.
	KindUnknown Kind = iota

	// KindConfiguration covers missing or invalid provider credentials
	// and other setup problems. Fatal, never retried.
	KindConfiguration

	// KindUpload covers transport failures submitting audio or pushing
	// to object storage. Fatal for the sub-step; object storage callers
	// downgrade it to a warning.
	KindUpload

	// KindSourceResolution covers unreachable or unsupported content
	// sources. Always non-fatal; the source is dropped.
	KindSourceResolution

	// KindTranscriptionFailed means the speech provider reported a
	// terminal error status. Non-fatal to the run.
	KindTranscriptionFailed

	// KindTransientProvider covers quota and overload signatures from
	// the generative provider. Retried up to the budget.
	KindTransientProvider

	// KindFatalProvider covers every other generative provider failure.
	KindFatalProvider

	// KindPollTimeout means the transcription poll loop exceeded its
	// configured maximum duration.
	KindPollTimeout
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindUpload:
		return "upload"
	case KindSourceResolution:
		return "source_resolution"
	case KindTranscriptionFailed:
		return "transcription_failed"
	case KindTransientProvider:
		return "transient_provider"
	case KindFatalProvider:
		return "fatal_provider"
	case KindPollTimeout:
		return "poll_timeout"
	default:
		return "unknown"
	}
}

// Error tags an underlying error with a Kind and the operation that
// produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a tagged error from a message
func New(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap tags an existing error. Returns nil if err is nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the Kind from anywhere in err's chain,
// or KindUnknown if none is tagged.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// IsTransient reports whether err should be retried
func IsTransient(err error) bool {
	return KindOf(err) == KindTransientProvider
}
