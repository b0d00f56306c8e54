package fault

import "strings"

// transientMarkers are the status-style signatures the generative provider
// emits when it is rate limited or overloaded. This list is the only place
// provider error text is inspected.
var transientMarkers = []string{
	"429",
	"quota",
	"503",
	"overloaded",
	"RESOURCE_EXHAUSTED",
	"UNAVAILABLE",
}

// ClassifyProvider translates a generative provider error into the
// taxonomy: quota/overload signatures are transient, everything else
// (auth failures, malformed requests) is fatal.
func ClassifyProvider(op string, err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return Wrap(KindTransientProvider, op, err)
		}
	}

	return Wrap(KindFatalProvider, op, err)
}
