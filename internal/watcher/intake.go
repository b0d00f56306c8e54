package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luminameet/meetingflow/internal/orchestrator"
	"github.com/luminameet/meetingflow/internal/resolver"
)

// Sidecar naming convention next to a recording "standup.wav":
//
//	standup.notes.txt     manual notes (file contents)
//	standup.sources.txt   remote sources, one URL per line
//	standup.attachments/  local image/PDF attachments
//
// intake stages the recording and attachments into the temp directory so
// the run owns transient copies, and assembles the orchestrator input.
func (w *implWatcher) intake(ctx context.Context, audioPath string) (orchestrator.Input, error) {
	base := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	in := orchestrator.Input{OwnerID: w.owner}

	staged, err := w.stage(audioPath)
	if err != nil {
		return in, fmt.Errorf("stage recording: %w", err)
	}
	in.AudioPath = staged
	in.TransientPaths = append(in.TransientPaths, staged)

	notesPath := base + ".notes.txt"
	if notes, err := os.ReadFile(notesPath); err == nil {
		in.Notes = strings.TrimSpace(string(notes))
		in.TransientPaths = append(in.TransientPaths, notesPath)
	}

	sourcesPath := base + ".sources.txt"
	if list, err := os.ReadFile(sourcesPath); err == nil {
		for _, line := range strings.Split(string(list), "\n") {
			url := strings.TrimSpace(line)
			if url == "" {
				continue
			}
			in.Sources = append(in.Sources, resolver.Source{Kind: resolver.KindRemote, Locator: url})
		}
		in.TransientPaths = append(in.TransientPaths, sourcesPath)
	}

	attachmentsDir := base + ".attachments"
	if entries, err := os.ReadDir(attachmentsDir); err == nil {
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			staged, err := w.stage(filepath.Join(attachmentsDir, e.Name()))
			if err != nil {
				w.logger.Warn(ctx, "Skipping attachment %s: %v", e.Name(), err)
				continue
			}
			in.Sources = append(in.Sources, resolver.Source{Kind: resolver.KindLocal, Locator: staged})
			in.TransientPaths = append(in.TransientPaths, staged)
		}
		// The emptied directory is transient too.
		in.TransientPaths = append(in.TransientPaths, attachmentsDir)
	}

	return in, nil
}

// stage moves a dropped file into the temp directory so re-drops of the
// same name cannot race an in-flight run.
func (w *implWatcher) stage(path string) (string, error) {
	dest := filepath.Join(w.tempDir, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return "", err
	}
	return dest, nil
}
