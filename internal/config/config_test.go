package config

import (
	"os"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		AssemblyAI: AssemblyAIConfig{APIKey: "aai-key"},
		Gemini:     GeminiConfig{APIKey: "gm-key"},
		Paths: PathsConfig{
			Inbox:  "data/inbox",
			Export: "data/export",
			Store:  "data/store",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing assemblyai key",
			mutate:  func(c *Config) { c.AssemblyAI.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "missing gemini key",
			mutate:  func(c *Config) { c.Gemini.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "missing inbox",
			mutate:  func(c *Config) { c.Paths.Inbox = "" },
			wantErr: true,
		},
		{
			name:    "missing store",
			mutate:  func(c *Config) { c.Paths.Store = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.AssemblyAI.BaseURL != "https://api.assemblyai.com/v2" {
		t.Errorf("BaseURL = %q", cfg.AssemblyAI.BaseURL)
	}
	if cfg.AssemblyAI.PollInterval.Std() != 3*time.Second {
		t.Errorf("PollInterval = %v", cfg.AssemblyAI.PollInterval)
	}
	if cfg.AssemblyAI.MaxPollDuration != 0 {
		t.Errorf("MaxPollDuration = %v, want unbounded default", cfg.AssemblyAI.MaxPollDuration)
	}
	if len(cfg.AssemblyAI.SpeechModels) != 2 {
		t.Errorf("SpeechModels = %v", cfg.AssemblyAI.SpeechModels)
	}
	if cfg.Gemini.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d", cfg.Gemini.MaxRetries)
	}
	if cfg.Gemini.RetryDelay.Std() != 5*time.Second {
		t.Errorf("RetryDelay = %v", cfg.Gemini.RetryDelay)
	}
	if cfg.Gemini.PrimaryModel == cfg.Gemini.FallbackModel {
		t.Errorf("primary and fallback default to the same model %q", cfg.Gemini.PrimaryModel)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %d", cfg.Performance.MaxConcurrent)
	}
	if cfg.Performance.ResolveConcurrency != 1 {
		t.Errorf("ResolveConcurrency = %d", cfg.Performance.ResolveConcurrency)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
assemblyai:
  api_key: "aai-test"
  poll_interval: 100ms

gemini:
  api_key: "gm-test"
  primary_model: "gemini-2.0-flash"
  fallback_model: "gemini-2.5-flash"

paths:
  inbox: "data/inbox"
  export: "data/export"
  store: "data/store"

logging:
  level: "debug"
`
	if _, err := tmpfile.WriteString(content); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AssemblyAI.APIKey != "aai-test" {
		t.Errorf("APIKey = %q", cfg.AssemblyAI.APIKey)
	}
	if cfg.AssemblyAI.PollInterval.Std() != 100*time.Millisecond {
		t.Errorf("PollInterval = %v", cfg.AssemblyAI.PollInterval)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does/not/exist.yaml"); err == nil {
		t.Error("Load() expected error for missing file")
	}
}
