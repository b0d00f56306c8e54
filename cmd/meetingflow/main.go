package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/luminameet/meetingflow/internal/config"
	"github.com/luminameet/meetingflow/internal/logger"
	"github.com/luminameet/meetingflow/internal/notifier"
	"github.com/luminameet/meetingflow/internal/objectstore"
	"github.com/luminameet/meetingflow/internal/orchestrator"
	"github.com/luminameet/meetingflow/internal/resolver"
	"github.com/luminameet/meetingflow/internal/store"
	"github.com/luminameet/meetingflow/internal/summarizer"
	"github.com/luminameet/meetingflow/internal/transcriber"
	"github.com/luminameet/meetingflow/internal/watcher"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meetingflow Summarization Pipeline")
	log.Info(ctx, "========================================")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	st, err := store.New(store.Options{Dir: cfg.Paths.Store})
	if err != nil {
		log.Error(ctx, "Failed to open meeting store: %v", err)
		os.Exit(1)
	}
	defer st.Close()

	inv, err := summarizer.New(ctx, cfg.Gemini, log)
	if err != nil {
		log.Error(ctx, "Failed to create summarizer: %v", err)
		os.Exit(1)
	}

	tr := transcriber.New(cfg.AssemblyAI, nil, log)
	res := resolver.New(nil, log, cfg.Performance.ResolveConcurrency)
	uploader := newUploader(cfg)
	if uploader == nil {
		log.Warn(ctx, "Object storage not configured; provider parts will use local bytes")
	}

	orch := orchestrator.New(tr, res, inv, st, uploader, log, cfg.Paths.Export)
	notify := notifier.NewLog(log)

	handler := func(ctx context.Context, in orchestrator.Input) error {
		artifact, warnings, err := orch.Run(ctx, in)
		if err != nil {
			return err
		}
		for _, w := range warnings {
			log.Warn(ctx, "Run warning [%s]: %s", w.Stage, w.Detail)
		}
		if cfg.Ingest.Notify != "" {
			if err := notify.SendSummary(ctx, cfg.Ingest.Notify, artifact.Title, artifact.Summary, artifact.CreatedAt); err != nil {
				log.Warn(ctx, "Notification failed: %v", err)
			}
		}
		return nil
	}

	w, err := watcher.New(cfg.Paths.Inbox, cfg.Paths.Temp, cfg.Ingest.Owner, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Meetingflow is ready!")
	log.Info(ctx, "Inbox:  %s", cfg.Paths.Inbox)
	log.Info(ctx, "Export: %s", cfg.Paths.Export)
	log.Info(ctx, "Models: %s (fallback %s)", cfg.Gemini.PrimaryModel, cfg.Gemini.FallbackModel)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Meetingflow stopped")
}

// newUploader builds the optional S3 collaborator; nil when unconfigured
func newUploader(cfg *config.Config) objectstore.Uploader {
	if cfg.Storage.Bucket == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.Storage.Region,
		Credentials: aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     cfg.Storage.AccessKey,
				SecretAccessKey: cfg.Storage.SecretKey,
			}, nil
		}),
	}
	if cfg.Storage.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
	}

	return objectstore.NewS3(s3.New(opts), cfg.Storage.Bucket, cfg.Storage.PublicBaseURL)
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Inbox,
		cfg.Paths.Temp,
		cfg.Paths.Export,
		cfg.Paths.Store,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
