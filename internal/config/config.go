package config

import (
	"fmt"
	"time"
)

type Config struct {
	AssemblyAI  AssemblyAIConfig  `yaml:"assemblyai"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Storage     StorageConfig     `yaml:"storage"`
	Ingest      IngestConfig      `yaml:"ingest"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

// IngestConfig describes how dropped files are attributed. The inbox has
// no session layer, so every ingested meeting belongs to the configured
// owner.
type IngestConfig struct {
	Owner string `yaml:"owner"`
	// Notify, when set, receives each finished summary.
	Notify string `yaml:"notify"`
}

type AssemblyAIConfig struct {
	APIKey       string   `yaml:"api_key"`
	BaseURL      string   `yaml:"base_url"`
	SpeechModels []string `yaml:"speech_models"`
	PollInterval Duration `yaml:"poll_interval"`
	// MaxPollDuration bounds the transcription poll loop.
	// Zero means unbounded, which matches the provider's guidance for
	// long recordings.
	MaxPollDuration Duration `yaml:"max_poll_duration"`
}

type GeminiConfig struct {
	APIKey        string   `yaml:"api_key"`
	PrimaryModel  string   `yaml:"primary_model"`
	FallbackModel string   `yaml:"fallback_model"`
	MaxRetries    int      `yaml:"max_retries"`
	RetryDelay    Duration `yaml:"retry_delay"`
}

type PathsConfig struct {
	Inbox  string `yaml:"inbox"`
	Temp   string `yaml:"temp"`
	Export string `yaml:"export"`
	Store  string `yaml:"store"`
}

// StorageConfig configures the optional S3 object storage collaborator.
// When Bucket is empty the pipeline falls back to inline local bytes.
type StorageConfig struct {
	Bucket        string `yaml:"bucket"`
	Region        string `yaml:"region"`
	Endpoint      string `yaml:"endpoint"`
	AccessKey     string `yaml:"access_key"`
	SecretKey     string `yaml:"secret_key"`
	PublicBaseURL string `yaml:"public_base_url"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent      int `yaml:"max_concurrent"`
	ResolveConcurrency int `yaml:"resolve_concurrency"`
}

func (c *Config) Validate() error {
	if c.AssemblyAI.APIKey == "" {
		return fmt.Errorf("assemblyai.api_key is required")
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required")
	}
	if c.Paths.Inbox == "" {
		return fmt.Errorf("paths.inbox is required")
	}
	if c.Paths.Export == "" {
		return fmt.Errorf("paths.export is required")
	}
	if c.Paths.Store == "" {
		return fmt.Errorf("paths.store is required")
	}

	if c.AssemblyAI.BaseURL == "" {
		c.AssemblyAI.BaseURL = "https://api.assemblyai.com/v2"
	}
	if len(c.AssemblyAI.SpeechModels) == 0 {
		c.AssemblyAI.SpeechModels = []string{"universal-3-pro", "universal-2"}
	}
	if c.AssemblyAI.PollInterval == 0 {
		c.AssemblyAI.PollInterval = Duration(3 * time.Second)
	}
	if c.Gemini.PrimaryModel == "" {
		c.Gemini.PrimaryModel = "gemini-2.0-flash"
	}
	if c.Gemini.FallbackModel == "" {
		c.Gemini.FallbackModel = "gemini-2.5-flash"
	}
	if c.Gemini.MaxRetries == 0 {
		c.Gemini.MaxRetries = 3
	}
	if c.Gemini.RetryDelay == 0 {
		c.Gemini.RetryDelay = Duration(5 * time.Second)
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Ingest.Owner == "" {
		c.Ingest.Owner = "local"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.ResolveConcurrency == 0 {
		c.Performance.ResolveConcurrency = 1
	}

	return nil
}
