package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/luminameet/meetingflow/internal/fault"
)

// Job statuses reported by the provider. A job is terminal at
// completed or error.
const (
	statusQueued     = "queued"
	statusProcessing = "processing"
	statusCompleted  = "completed"
	statusError      = "error"
)

type uploadResponse struct {
	UploadURL string `json:"upload_url"`
}

type createJobRequest struct {
	AudioURL          string   `json:"audio_url"`
	LanguageDetection bool     `json:"language_detection"`
	SpeechModels      []string `json:"speech_models"`
}

type jobResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Text   string `json:"text"`
	Error  string `json:"error"`
}

// Submit uploads raw audio bytes to the provider's upload endpoint.
func (t *implTranscriber) Submit(ctx context.Context, audio []byte) (string, error) {
	t.logger.Info(ctx, "Uploading audio to transcription provider (%d bytes)", len(audio))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/upload", bytes.NewReader(audio))
	if err != nil {
		return "", fault.Wrap(fault.KindUpload, "transcriber.submit", err)
	}
	req.Header.Set("authorization", t.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	var out uploadResponse
	if err := t.do(req, &out); err != nil {
		return "", fault.Wrap(fault.KindUpload, "transcriber.submit", err)
	}
	if out.UploadURL == "" {
		return "", fault.New(fault.KindUpload, "transcriber.submit", "provider returned no upload_url")
	}

	t.logger.Info(ctx, "Audio upload complete: %s", out.UploadURL)
	return out.UploadURL, nil
}

// Transcribe creates the job and polls until terminal state.
func (t *implTranscriber) Transcribe(ctx context.Context, audioURL string) (string, error) {
	id, err := t.createJob(ctx, audioURL)
	if err != nil {
		return "", err
	}

	t.logger.Info(ctx, "Transcription job created: %s", id)
	return t.awaitResult(ctx, id)
}

func (t *implTranscriber) createJob(ctx context.Context, audioURL string) (string, error) {
	body, err := json.Marshal(createJobRequest{
		AudioURL:          audioURL,
		LanguageDetection: true,
		SpeechModels:      t.speechModels,
	})
	if err != nil {
		return "", fault.Wrap(fault.KindUpload, "transcriber.create", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/transcript", bytes.NewReader(body))
	if err != nil {
		return "", fault.Wrap(fault.KindUpload, "transcriber.create", err)
	}
	req.Header.Set("authorization", t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	var out jobResponse
	if err := t.do(req, &out); err != nil {
		return "", fault.Wrap(fault.KindUpload, "transcriber.create", err)
	}
	if out.ID == "" {
		return "", fault.New(fault.KindUpload, "transcriber.create", "provider returned no job id")
	}

	return out.ID, nil
}

// awaitResult polls the job status endpoint at the configured interval
// until the job completes or errors. With no max poll duration configured
// the loop is bounded only by the caller's context.
func (t *implTranscriber) awaitResult(ctx context.Context, id string) (string, error) {
	var deadline time.Time
	if t.maxPollDuration > 0 {
		deadline = time.Now().Add(t.maxPollDuration)
	}

	for {
		job, err := t.pollJob(ctx, id)
		if err != nil {
			return "", err
		}

		switch job.Status {
		case statusCompleted:
			t.logger.Info(ctx, "Transcription completed: %s", id)
			return job.Text, nil
		case statusError:
			return "", fault.New(fault.KindTranscriptionFailed, "transcriber.poll",
				"transcription failed: %s", job.Error)
		}

		if !deadline.IsZero() && time.Now().After(deadline) {
			return "", fault.New(fault.KindPollTimeout, "transcriber.poll",
				"job %s still %s after %s", id, job.Status, t.maxPollDuration)
		}

		t.logger.Debug(ctx, "Job %s status: %s, waiting %s", id, job.Status, t.pollInterval)

		select {
		case <-time.After(t.pollInterval):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

func (t *implTranscriber) pollJob(ctx context.Context, id string) (*jobResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/transcript/"+id, nil)
	if err != nil {
		return nil, fault.Wrap(fault.KindUpload, "transcriber.poll", err)
	}
	req.Header.Set("authorization", t.apiKey)

	var out jobResponse
	if err := t.do(req, &out); err != nil {
		return nil, fault.Wrap(fault.KindUpload, "transcriber.poll", err)
	}
	return &out, nil
}

// do executes the request and decodes a JSON response, treating any
// non-2xx status as an error carrying the response body.
func (t *implTranscriber) do(req *http.Request, out interface{}) error {
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	return json.Unmarshal(body, out)
}
