package fault

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	base := New(KindUpload, "transcriber.submit", "connection reset")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"tagged error", base, KindUpload},
		{"wrapped tagged error", fmt.Errorf("run: %w", base), KindUpload},
		{"untagged error", errors.New("boom"), KindUnknown},
		{"nested wrap keeps outermost kind", Wrap(KindFatalProvider, "invoke", base), KindFatalProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(KindUpload, "op", nil); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestClassifyProvider(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"rate limited", errors.New("googleapi: Error 429: rate limit exceeded"), KindTransientProvider},
		{"quota exhausted", errors.New("generate content: quota exceeded for model"), KindTransientProvider},
		{"service unavailable", errors.New("rpc error: code = 503"), KindTransientProvider},
		{"model overloaded", errors.New("the model is overloaded, try again later"), KindTransientProvider},
		{"resource exhausted", errors.New("rpc error: RESOURCE_EXHAUSTED"), KindTransientProvider},
		{"invalid api key", errors.New("API key not valid. Please pass a valid API key"), KindFatalProvider},
		{"malformed request", errors.New("invalid argument: contents must not be empty"), KindFatalProvider},
		{"auth failure", errors.New("PERMISSION_DENIED: caller does not have permission"), KindFatalProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyProvider("summarizer.invoke", tt.err)
			if KindOf(got) != tt.want {
				t.Errorf("ClassifyProvider() kind = %v, want %v", KindOf(got), tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Error("ClassifyProvider() lost the underlying error")
			}
		})
	}
}

func TestClassifyProviderNil(t *testing.T) {
	if err := ClassifyProvider("op", nil); err != nil {
		t.Errorf("ClassifyProvider(nil) = %v, want nil", err)
	}
}
