package orchestrator

import (
	"os"

	"github.com/luminameet/meetingflow/internal/logger"
	"github.com/luminameet/meetingflow/internal/objectstore"
	"github.com/luminameet/meetingflow/internal/resolver"
	"github.com/luminameet/meetingflow/internal/store"
	"github.com/luminameet/meetingflow/internal/summarizer"
	"github.com/luminameet/meetingflow/internal/transcriber"
)

type implOrchestrator struct {
	transcriber transcriber.Transcriber
	resolver    resolver.Resolver
	invoker     summarizer.Invoker
	store       store.Store
	// uploader is optional; nil means no object storage is configured
	// and local bytes feed the provider parts directly
	uploader  objectstore.Uploader
	logger    logger.Logger
	exportDir string

	// removeFile is swapped by tests to observe cleanup
	removeFile func(string) error
}

// New creates an Orchestrator. uploader may be nil; exportDir may be
// empty to disable docx export.
func New(
	tr transcriber.Transcriber,
	res resolver.Resolver,
	inv summarizer.Invoker,
	st store.Store,
	up objectstore.Uploader,
	log logger.Logger,
	exportDir string,
) Orchestrator {
	return &implOrchestrator{
		transcriber: tr,
		resolver:    res,
		invoker:     inv,
		store:       st,
		uploader:    up,
		logger:      log,
		exportDir:   exportDir,
		removeFile:  os.Remove,
	}
}
