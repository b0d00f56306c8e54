package resolver

import "context"

// SourceKind discriminates where a content source's bytes live
type SourceKind int

const (
	KindRemote SourceKind = iota
	KindLocal
)

// Source is a reference to binary material (image or PDF) to include in
// a multimodal summarization request. Immutable once constructed.
type Source struct {
	Kind    SourceKind
	Locator string
}

// Part is a resolved content unit ready to be sent inline to the
// generative provider.
type Part struct {
	MIMEType string
	Data     []byte
}

// Resolver fetches and gates content sources. Resolution failures are
// non-fatal: a failed source yields nil, never an aborted batch.
type Resolver interface {
	// Resolve returns the encoded part for one source, or nil if the
	// source is unreachable or its mime type is unsupported.
	Resolve(ctx context.Context, src Source) *Part

	// ResolveAll resolves sources with bounded concurrency. Result order
	// always matches source order, since the order attachments reach the
	// provider is an observable contract. Failed sources are dropped from
	// the part list and their locators returned for the caller's warning
	// accumulator.
	ResolveAll(ctx context.Context, sources []Source) (parts []*Part, dropped []string)
}
