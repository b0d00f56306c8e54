package resolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Resolve fetches one source and gates it by mime type. Any failure is
// logged and converted to nil so one bad source never aborts the batch.
func (r *implResolver) Resolve(ctx context.Context, src Source) *Part {
	var (
		data []byte
		mime string
		err  error
	)

	switch src.Kind {
	case KindRemote:
		data, mime, err = r.fetchRemote(ctx, src.Locator)
	case KindLocal:
		data, mime, err = r.readLocal(src.Locator)
	default:
		err = fmt.Errorf("unknown source kind %d", src.Kind)
	}

	if err != nil {
		r.logger.Warn(ctx, "Dropping source %s: %v", src.Locator, err)
		return nil
	}

	if !supportedMIME(mime) {
		r.logger.Warn(ctx, "Skipping unsupported mime-type %q for %s", mime, src.Locator)
		return nil
	}

	return &Part{MIMEType: mime, Data: data}
}

// ResolveAll fans out resolution over a channel semaphore and reassembles
// results by source index, so output order equals input order for every
// concurrency width. Failed sources are dropped from the returned list.
func (r *implResolver) ResolveAll(ctx context.Context, sources []Source) ([]*Part, []string) {
	if len(sources) == 0 {
		return nil, nil
	}

	resolved := make([]*Part, len(sources))
	sem := make(chan struct{}, r.concurrency)
	var wg sync.WaitGroup

	for i, src := range sources {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			defer func() { <-sem }()
			resolved[i] = r.Resolve(ctx, src)
		}(i, src)
	}
	wg.Wait()

	parts := make([]*Part, 0, len(sources))
	var dropped []string
	for i, p := range resolved {
		if p == nil {
			dropped = append(dropped, sources[i].Locator)
			continue
		}
		parts = append(parts, p)
	}
	return parts, dropped
}

func (r *implResolver) fetchRemote(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("fetch returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return data, resp.Header.Get("Content-Type"), nil
}

func (r *implResolver) readLocal(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return data, mimeFromExtension(path), nil
}

// mimeFromExtension infers a mime type from the file extension the way
// the upload layer names files: pdf maps to application/pdf, everything
// else is assumed to be an image of that extension.
func mimeFromExtension(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "pdf" {
		return "application/pdf"
	}
	return "image/" + ext
}

// supportedMIME gates parts to what the generative provider accepts
// inline: images and PDFs.
func supportedMIME(mime string) bool {
	return strings.Contains(mime, "image") || strings.Contains(mime, "pdf")
}
