package transcriber

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/luminameet/meetingflow/internal/config"
	"github.com/luminameet/meetingflow/internal/fault"
	"github.com/luminameet/meetingflow/internal/logger"
)

func newTestTranscriber(t *testing.T, baseURL string, maxPoll time.Duration) Transcriber {
	t.Helper()
	return New(config.AssemblyAIConfig{
		APIKey:          "test-key",
		BaseURL:         baseURL,
		SpeechModels:    []string{"universal-3-pro", "universal-2"},
		PollInterval:    config.Duration(time.Millisecond),
		MaxPollDuration: config.Duration(maxPoll),
	}, nil, logger.New("error"))
}

func TestSubmit(t *testing.T) {
	var gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("authorization")
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(map[string]string{"upload_url": "https://cdn.example/audio/1"})
	}))
	defer srv.Close()

	tr := newTestTranscriber(t, srv.URL, 0)
	url, err := tr.Submit(context.Background(), []byte("audio-bytes"))
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if url != "https://cdn.example/audio/1" {
		t.Errorf("Submit() = %q", url)
	}
	if gotAuth != "test-key" {
		t.Errorf("authorization header = %q", gotAuth)
	}
	if string(gotBody) != "audio-bytes" {
		t.Errorf("uploaded body = %q", gotBody)
	}
}

func TestSubmitTransportErrorIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := newTestTranscriber(t, srv.URL, 0)
	_, err := tr.Submit(context.Background(), []byte("x"))
	if err == nil {
		t.Fatal("Submit() expected error")
	}
	if fault.KindOf(err) != fault.KindUpload {
		t.Errorf("kind = %v, want KindUpload", fault.KindOf(err))
	}
}

// scriptedServer serves job creation plus a fixed sequence of poll
// responses, counting the polls it answered.
func scriptedServer(t *testing.T, polls []jobResponse) (*httptest.Server, *int) {
	t.Helper()
	pollCount := new(int)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /transcript", func(w http.ResponseWriter, r *http.Request) {
		var req createJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode create request: %v", err)
		}
		if req.AudioURL == "" {
			t.Error("create request missing audio_url")
		}
		if len(req.SpeechModels) == 0 {
			t.Error("create request missing speech_models")
		}
		json.NewEncoder(w).Encode(jobResponse{ID: "job-1", Status: "queued"})
	})
	mux.HandleFunc("GET /transcript/job-1", func(w http.ResponseWriter, r *http.Request) {
		i := *pollCount
		if i >= len(polls) {
			i = len(polls) - 1
		}
		*pollCount++
		json.NewEncoder(w).Encode(polls[i])
	})
	return httptest.NewServer(mux), pollCount
}

func TestTranscribePollsUntilCompleted(t *testing.T) {
	srv, pollCount := scriptedServer(t, []jobResponse{
		{ID: "job-1", Status: statusProcessing},
		{ID: "job-1", Status: statusProcessing},
		{ID: "job-1", Status: statusCompleted, Text: "Hello team"},
	})
	defer srv.Close()

	tr := newTestTranscriber(t, srv.URL, 0)
	text, err := tr.Transcribe(context.Background(), "https://cdn.example/audio/1")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "Hello team" {
		t.Errorf("Transcribe() = %q, want %q", text, "Hello team")
	}
	if *pollCount != 3 {
		t.Errorf("polls = %d, want 3", *pollCount)
	}
}

func TestTranscribeProviderError(t *testing.T) {
	srv, _ := scriptedServer(t, []jobResponse{
		{ID: "job-1", Status: statusError, Error: "audio file is corrupted"},
	})
	defer srv.Close()

	tr := newTestTranscriber(t, srv.URL, 0)
	_, err := tr.Transcribe(context.Background(), "https://cdn.example/audio/1")
	if err == nil {
		t.Fatal("Transcribe() expected error")
	}
	if fault.KindOf(err) != fault.KindTranscriptionFailed {
		t.Errorf("kind = %v, want KindTranscriptionFailed", fault.KindOf(err))
	}
	if !strings.Contains(err.Error(), "audio file is corrupted") {
		t.Errorf("error %q does not carry provider detail", err)
	}
}

func TestTranscribePollTimeout(t *testing.T) {
	srv, _ := scriptedServer(t, []jobResponse{
		{ID: "job-1", Status: statusProcessing},
	})
	defer srv.Close()

	tr := newTestTranscriber(t, srv.URL, 5*time.Millisecond)
	_, err := tr.Transcribe(context.Background(), "https://cdn.example/audio/1")
	if err == nil {
		t.Fatal("Transcribe() expected timeout error")
	}
	if fault.KindOf(err) != fault.KindPollTimeout {
		t.Errorf("kind = %v, want KindPollTimeout", fault.KindOf(err))
	}
}

func TestTranscribeContextCancelled(t *testing.T) {
	srv, _ := scriptedServer(t, []jobResponse{
		{ID: "job-1", Status: statusProcessing},
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	tr := newTestTranscriber(t, srv.URL, 0)
	_, err := tr.Transcribe(ctx, "https://cdn.example/audio/1")
	if err == nil {
		t.Fatal("Transcribe() expected error after cancellation")
	}
}
