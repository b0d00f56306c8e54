package transcriber

import (
	"net/http"
	"time"

	"github.com/luminameet/meetingflow/internal/config"
	"github.com/luminameet/meetingflow/internal/logger"
)

type implTranscriber struct {
	httpClient   *http.Client
	logger       logger.Logger
	baseURL      string
	apiKey       string
	speechModels []string
	pollInterval time.Duration
	// maxPollDuration bounds the poll loop; zero means poll forever
	maxPollDuration time.Duration
}

// New creates a Transcriber for the AssemblyAI-style job API
func New(cfg config.AssemblyAIConfig, httpClient *http.Client, log logger.Logger) Transcriber {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &implTranscriber{
		httpClient:      httpClient,
		logger:          log,
		baseURL:         cfg.BaseURL,
		apiKey:          cfg.APIKey,
		speechModels:    cfg.SpeechModels,
		pollInterval:    cfg.PollInterval.Std(),
		maxPollDuration: cfg.MaxPollDuration.Std(),
	}
}
