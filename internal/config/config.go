package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the symptomdesk server.
type Config struct {
	Server    ServerConfig
	AI        AIConfig
	Directory DirectoryConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
}

type ServerConfig struct {
	Port int
	Env  string
}

type AIConfig struct {
	Provider       string
	Temperature    float32
	MaxTokens      int
	RequestTimeout time.Duration
	Groq           GroqConfig
	OpenAI         OpenAIConfig
}

type GroqConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type DirectoryConfig struct {
	Source  string
	CSVPath string
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	URL             string
	RateLimitPerMin int
}

type AuthConfig struct {
	// APIKeyHash is a bcrypt hash of the inbound service key. Empty disables
	// bearer auth on the API.
	APIKeyHash string
}

var validProviders = map[string]bool{
	"groq":   true,
	"openai": true,
}

var validDirectorySources = map[string]bool{
	"builtin":  true,
	"csv":      true,
	"postgres": true,
}

// Temperature bounds for the completion call. Analysis output should lean
// deterministic, so values outside this window are clamped back into it.
const (
	minTemperature = 0.2
	maxTemperature = 0.5
)

// Load reads configuration from environment variables and returns a validated
// Config. Returns an error with a descriptive message if any required value is
// missing or invalid; a missing backend API key aborts startup.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("SYMPTOMDESK_PORT", 8080),
			Env:  envString("SYMPTOMDESK_ENV", "development"),
		},
		AI: AIConfig{
			Provider:       envString("AI_PROVIDER", "groq"),
			Temperature:    envFloat32("AI_TEMPERATURE", 0.2),
			MaxTokens:      envInt("AI_MAX_COMPLETION_TOKENS", 1024),
			RequestTimeout: envDurationSecs("AI_REQUEST_TIMEOUT_SECS", 60*time.Second),
			Groq: GroqConfig{
				APIKey:  os.Getenv("GROQ_API_KEY"),
				Model:   envString("GROQ_MODEL", "llama-3.3-70b-versatile"),
				BaseURL: envString("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			},
			OpenAI: OpenAIConfig{
				APIKey: os.Getenv("OPENAI_API_KEY"),
				Model:  envString("OPENAI_MODEL", "gpt-4o-mini"),
			},
		},
		Directory: DirectoryConfig{
			Source:  envString("DIRECTORY_SOURCE", "builtin"),
			CSVPath: os.Getenv("DIRECTORY_CSV_PATH"),
		},
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    envInt("DATABASE_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    envInt("DATABASE_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: envDuration("DATABASE_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL:             os.Getenv("REDIS_URL"),
			RateLimitPerMin: envInt("RATE_LIMIT_PER_MIN", 60),
		},
		Auth: AuthConfig{
			APIKeyHash: os.Getenv("SYMPTOMDESK_API_KEY_HASH"),
		},
	}

	if cfg.AI.Temperature < minTemperature {
		cfg.AI.Temperature = minTemperature
	}
	if cfg.AI.Temperature > maxTemperature {
		cfg.AI.Temperature = maxTemperature
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if !validProviders[c.AI.Provider] {
		return fmt.Errorf("AI_PROVIDER must be one of groq, openai; got %q", c.AI.Provider)
	}
	if c.AI.Provider == "groq" && c.AI.Groq.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required when AI_PROVIDER is groq")
	}
	if c.AI.Provider == "openai" && c.AI.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when AI_PROVIDER is openai")
	}
	if !strings.HasPrefix(c.AI.Groq.BaseURL, "http://") && !strings.HasPrefix(c.AI.Groq.BaseURL, "https://") {
		return fmt.Errorf("GROQ_BASE_URL must start with http:// or https://, got %q", c.AI.Groq.BaseURL)
	}
	if c.AI.MaxTokens <= 0 {
		return fmt.Errorf("AI_MAX_COMPLETION_TOKENS must be positive, got %d", c.AI.MaxTokens)
	}

	if !validDirectorySources[c.Directory.Source] {
		return fmt.Errorf("DIRECTORY_SOURCE must be one of builtin, csv, postgres; got %q", c.Directory.Source)
	}
	if c.Directory.Source == "csv" && c.Directory.CSVPath == "" {
		return fmt.Errorf("DIRECTORY_CSV_PATH is required when DIRECTORY_SOURCE is csv")
	}
	if c.Directory.Source == "postgres" && c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required when DIRECTORY_SOURCE is postgres")
	}

	return nil
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func envFloat32(key string, defaultVal float32) float32 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return defaultVal
	}
	return float32(f)
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

func envDurationSecs(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	secs, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}
