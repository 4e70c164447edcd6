package config

import (
	"os"
	"testing"
	"time"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "UPLOAD_DIR", "MAX_UPLOAD_SIZE", "STORAGE_TYPE", "STT_PROVIDER",
		"LLM_PROVIDER", "OPENAI_API_KEY", "SHUTDOWN_TIMEOUT", "HOST")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "3001" {
		t.Errorf("port = %q, want 3001", cfg.Server.Port)
	}
	if cfg.Upload.MaxSize != 100*1024*1024 {
		t.Errorf("max size = %d, want 100MiB", cfg.Upload.MaxSize)
	}
	if cfg.Upload.Dir != "uploads" {
		t.Errorf("upload dir = %q", cfg.Upload.Dir)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.AI.STTProvider != STTProviderOpenAI || cfg.AI.LLMProvider != LLMProviderOpenAI {
		t.Errorf("providers = %q/%q", cfg.AI.STTProvider, cfg.AI.LLMProvider)
	}
	if cfg.OpenAI.APIKey != "" {
		t.Errorf("expected empty credential, got %q", cfg.OpenAI.APIKey)
	}
}

func TestLoad_Overrides(t *testing.T) {
	unsetEnv(t, "HOST", "STORAGE_TYPE", "STT_PROVIDER")
	t.Setenv("PORT", "9000")
	t.Setenv("LLM_PROVIDER", "GROQ")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MAX_UPLOAD_SIZE", "1024")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GetServerAddr() != "0.0.0.0:9000" {
		t.Errorf("addr = %q", cfg.GetServerAddr())
	}
	if cfg.AI.LLMProvider != LLMProviderGroq {
		t.Errorf("llm provider = %q, want groq", cfg.AI.LLMProvider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.OpenAI.APIKey)
	}
	if cfg.Upload.MaxSize != 1024 {
		t.Errorf("max size = %d", cfg.Upload.MaxSize)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Upload:  UploadConfig{Dir: "uploads", MaxSize: 1},
			Storage: StorageConfig{Type: StorageTypeLocal},
			AI:      AIConfig{STTProvider: STTProviderOpenAI, LLMProvider: LLMProviderOpenAI},
			Cleanup: CleanupConfig{Workers: 1, Buffer: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"unknown storage", func(c *Config) { c.Storage.Type = "s3" }, true},
		{"minio without bucket", func(c *Config) { c.Storage.Type = StorageTypeMinIO }, true},
		{"unknown stt", func(c *Config) { c.AI.STTProvider = "deepgram" }, true},
		{"unknown llm", func(c *Config) { c.AI.LLMProvider = "claude" }, true},
		{"gemini", func(c *Config) { c.AI.LLMProvider = LLMProviderGemini }, false},
		{"zero size", func(c *Config) { c.Upload.MaxSize = 0 }, true},
		{"no workers", func(c *Config) { c.Cleanup.Workers = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
