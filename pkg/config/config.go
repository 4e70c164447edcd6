package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Storage backends for the scratch store
const (
	StorageTypeLocal = "local"
	StorageTypeMinIO = "minio"
)

// Speech-to-text providers
const (
	STTProviderOpenAI     = "openai"
	STTProviderAssemblyAI = "assemblyai"
)

// Language-model providers
const (
	LLMProviderOpenAI = "openai"
	LLMProviderGroq   = "groq"
	LLMProviderGemini = "gemini"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Storage  StorageConfig
	OpenAI   OpenAIConfig
	Assembly AssemblyAIConfig
	Groq     GroqConfig
	Gemini   GeminiConfig
	AI       AIConfig
	Cleanup  CleanupConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"3001"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigin   string        `envconfig:"ALLOWED_ORIGIN" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	Version         string        `envconfig:"APP_VERSION" default:"1.0.0"`
}

// UploadConfig holds upload validation limits
type UploadConfig struct {
	Dir                 string `envconfig:"UPLOAD_DIR" default:"uploads"`
	MaxSize             int64  `envconfig:"MAX_UPLOAD_SIZE" default:"104857600"`
	MaxTranscriptLength int    `envconfig:"MAX_TRANSCRIPT_LENGTH" default:"50000"`
}

// StorageConfig holds scratch storage configuration
type StorageConfig struct {
	Type            string `envconfig:"STORAGE_TYPE" default:"local"` // "local" or "minio"
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-uploads"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
	Region          string `envconfig:"STORAGE_REGION" default:"us-east-1"`
}

// OpenAIConfig holds the combined speech-to-text / language-model credential
type OpenAIConfig struct {
	APIKey  string `envconfig:"OPENAI_API_KEY"`
	BaseURL string `envconfig:"OPENAI_BASE_URL"`
}

// AssemblyAIConfig holds AssemblyAI configuration
type AssemblyAIConfig struct {
	APIKey  string `envconfig:"ASSEMBLYAI_API_KEY"`
	BaseURL string `envconfig:"ASSEMBLYAI_BASE_URL"`
}

// GroqConfig holds Groq configuration
type GroqConfig struct {
	APIKey  string `envconfig:"GROQ_API_KEY"`
	BaseURL string `envconfig:"GROQ_API_URL" default:"https://api.groq.com/openai/v1"`
}

// GeminiConfig holds Gemini configuration
type GeminiConfig struct {
	APIKey string `envconfig:"GEMINI_API_KEY"`
}

// AIConfig selects providers and models
type AIConfig struct {
	STTProvider string `envconfig:"STT_PROVIDER" default:"openai"`
	STTModel    string `envconfig:"STT_MODEL"`
	LLMProvider string `envconfig:"LLM_PROVIDER" default:"openai"`
	LLMModel    string `envconfig:"LLM_MODEL"`
}

// CleanupConfig sizes the deferred deletion queue
type CleanupConfig struct {
	Workers int `envconfig:"CLEANUP_WORKERS" default:"2"`
	Buffer  int `envconfig:"CLEANUP_BUFFER" default:"64"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.Storage.Type = strings.ToLower(cfg.Storage.Type)
	cfg.AI.STTProvider = strings.ToLower(cfg.AI.STTProvider)
	cfg.AI.LLMProvider = strings.ToLower(cfg.AI.LLMProvider)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration.
// Missing credentials are not an error: they surface per request.
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case StorageTypeLocal:
		if c.Upload.Dir == "" {
			return fmt.Errorf("UPLOAD_DIR is required for local storage")
		}
	case StorageTypeMinIO:
		if c.Storage.BucketName == "" {
			return fmt.Errorf("STORAGE_BUCKET is required for minio storage")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_TYPE %q", c.Storage.Type)
	}

	switch c.AI.STTProvider {
	case STTProviderOpenAI, STTProviderAssemblyAI:
	default:
		return fmt.Errorf("unsupported STT_PROVIDER %q", c.AI.STTProvider)
	}

	switch c.AI.LLMProvider {
	case LLMProviderOpenAI, LLMProviderGroq, LLMProviderGemini:
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q", c.AI.LLMProvider)
	}

	if c.Upload.MaxSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}
	if c.Cleanup.Workers <= 0 {
		return fmt.Errorf("CLEANUP_WORKERS must be positive")
	}
	if c.Cleanup.Buffer < 0 {
		return fmt.Errorf("CLEANUP_BUFFER must not be negative")
	}
	return nil
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
