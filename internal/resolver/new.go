package resolver

import (
	"net/http"

	"github.com/luminameet/meetingflow/internal/logger"
)

type implResolver struct {
	httpClient *http.Client
	logger     logger.Logger
	// concurrency is the fan-out width for ResolveAll; 1 means
	// sequential resolution in source order
	concurrency int
}

// New creates a Resolver with the given fan-out width
func New(httpClient *http.Client, log logger.Logger, concurrency int) Resolver {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &implResolver{
		httpClient:  httpClient,
		logger:      log,
		concurrency: concurrency,
	}
}
