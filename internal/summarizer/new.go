package summarizer

import (
	"context"
	"time"

	"google.golang.org/genai"

	"github.com/luminameet/meetingflow/internal/config"
	"github.com/luminameet/meetingflow/internal/fault"
	"github.com/luminameet/meetingflow/internal/logger"
)

type implInvoker struct {
	gen           generator
	logger        logger.Logger
	primaryModel  string
	fallbackModel string
	maxRetries    int
	retryDelay    time.Duration
}

// New creates an Invoker backed by the Gemini API
func New(ctx context.Context, cfg config.GeminiConfig, log logger.Logger) (Invoker, error) {
	if cfg.APIKey == "" {
		return nil, fault.New(fault.KindConfiguration, "summarizer.new", "gemini api key is missing")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fault.Wrap(fault.KindConfiguration, "summarizer.new", err)
	}

	return newWithGenerator(&genaiGenerator{client: client}, cfg, log), nil
}

func newWithGenerator(gen generator, cfg config.GeminiConfig, log logger.Logger) Invoker {
	return &implInvoker{
		gen:           gen,
		logger:        log,
		primaryModel:  cfg.PrimaryModel,
		fallbackModel: cfg.FallbackModel,
		maxRetries:    cfg.MaxRetries,
		retryDelay:    cfg.RetryDelay.Std(),
	}
}
