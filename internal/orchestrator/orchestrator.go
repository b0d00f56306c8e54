package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/luminameet/meetingflow/internal/exporter"
	"github.com/luminameet/meetingflow/internal/meeting"
	"github.com/luminameet/meetingflow/internal/resolver"
	"github.com/luminameet/meetingflow/internal/summarizer"
)

// Run executes the pipeline for one meeting. Transcription and object
// storage are best-effort enhancements: their failures become warnings
// and the run continues. Summarization and persistence failures are
// fatal; no artifact survives them.
func (o *implOrchestrator) Run(ctx context.Context, in Input) (*meeting.Artifact, []meeting.Warning, error) {
	started := time.Now()
	var warnings []meeting.Warning
	warn := func(stage, format string, args ...interface{}) {
		detail := fmt.Sprintf(format, args...)
		o.logger.Warn(ctx, "%s: %s", stage, detail)
		warnings = append(warnings, meeting.Warning{Stage: stage, Detail: detail})
	}

	defer o.cleanup(ctx, in.TransientPaths)

	if in.AudioPath == "" && in.Notes == "" && len(in.Sources) == 0 {
		return nil, warnings, ErrNoInput
	}

	o.logger.Info(ctx, "Starting meeting run for owner %s (audio=%v, notes=%v, sources=%d)",
		in.OwnerID, in.AudioPath != "", in.Notes != "", len(in.Sources))

	transcript := o.transcribeAudio(ctx, in.AudioPath, warn)

	sources, sourceURLs := o.publishSources(ctx, in.Sources, warn)

	parts, dropped := o.resolver.ResolveAll(ctx, sources)
	for _, locator := range dropped {
		warn("resolve", "source dropped: %s", locator)
	}

	req := summarizer.BuildRequest(transcript, in.Notes, parts)
	summary, err := o.invoker.Invoke(ctx, req)
	if err != nil {
		return nil, warnings, fmt.Errorf("summarize meeting: %w", err)
	}

	artifact := &meeting.Artifact{
		OwnerID:    in.OwnerID,
		Title:      summarizer.ExtractTitle(summary),
		Transcript: transcript,
		UserNotes:  in.Notes,
		SourceURLs: sourceURLs,
		Summary:    summary,
		CreatedAt:  time.Now().UTC(),
	}

	id, err := o.store.Create(ctx, artifact)
	if err != nil {
		return nil, warnings, fmt.Errorf("save meeting: %w", err)
	}

	o.exportSummary(ctx, artifact, warn)

	o.logger.Info(ctx, "Meeting %s (%q) completed in %s with %d warnings",
		id, artifact.Title, time.Since(started).Round(time.Millisecond), len(warnings))

	return artifact, warnings, nil
}

// transcribeAudio runs the speech-to-text job for the recording, if any.
// Every failure here is downgraded to a warning: transcription enhances
// the summary but never blocks it.
func (o *implOrchestrator) transcribeAudio(ctx context.Context, audioPath string, warn func(string, string, ...interface{})) string {
	if audioPath == "" {
		return ""
	}

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		warn("transcribe", "read audio %s: %v", audioPath, err)
		return ""
	}

	audioURL, err := o.transcriber.Submit(ctx, audio)
	if err != nil {
		warn("transcribe", "upload audio: %v", err)
		return ""
	}

	text, err := o.transcriber.Transcribe(ctx, audioURL)
	if err != nil {
		warn("transcribe", "transcription failed, continuing without transcript: %v", err)
		return ""
	}

	return text
}

// publishSources pushes local sources to object storage when an uploader
// is configured, rewriting them to their public URLs so provider parts
// and the persisted artifact reference shared storage. Upload failures
// keep the local source as-is.
func (o *implOrchestrator) publishSources(ctx context.Context, in []resolver.Source, warn func(string, string, ...interface{})) ([]resolver.Source, []string) {
	sources := make([]resolver.Source, 0, len(in))
	var urls []string

	for _, src := range in {
		if src.Kind == resolver.KindRemote {
			sources = append(sources, src)
			urls = append(urls, src.Locator)
			continue
		}

		if o.uploader == nil {
			sources = append(sources, src)
			continue
		}

		data, err := os.ReadFile(src.Locator)
		if err != nil {
			warn("storage", "read %s for upload: %v", src.Locator, err)
			sources = append(sources, src)
			continue
		}

		key := "sources/" + uuid.NewString() + filepath.Ext(src.Locator)
		url, err := o.uploader.Upload(ctx, key, data, mimeForUpload(src.Locator))
		if err != nil {
			warn("storage", "upload %s failed, using local bytes: %v", src.Locator, err)
			sources = append(sources, src)
			continue
		}

		sources = append(sources, resolver.Source{Kind: resolver.KindRemote, Locator: url})
		urls = append(urls, url)
	}

	return sources, urls
}

func (o *implOrchestrator) exportSummary(ctx context.Context, a *meeting.Artifact, warn func(string, string, ...interface{})) {
	if o.exportDir == "" {
		return
	}
	path := filepath.Join(o.exportDir, a.ID+".docx")
	if err := exporter.Export(a.Title, a.Summary, path, a.CreatedAt); err != nil {
		warn("export", "write %s: %v", path, err)
		return
	}
	o.logger.Info(ctx, "Summary exported: %s", path)
}

// cleanup removes the run's transient files. Deferred from Run, so it
// executes exactly once on every exit path.
func (o *implOrchestrator) cleanup(ctx context.Context, paths []string) {
	for _, p := range paths {
		if err := o.removeFile(p); err != nil && !os.IsNotExist(err) {
			o.logger.Warn(ctx, "Failed to remove transient file %s: %v", p, err)
		} else {
			o.logger.Debug(ctx, "Removed transient file: %s", p)
		}
	}
}

func mimeForUpload(path string) string {
	ext := filepath.Ext(path)
	if ext == ".pdf" {
		return "application/pdf"
	}
	if len(ext) > 1 {
		return "image/" + ext[1:]
	}
	return "application/octet-stream"
}
