// Package conf loads application configuration from the environment.
// Missing or invalid required values are fatal at startup, never at
// runtime.
package conf

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AI provider selection values.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config represents application configuration.
type Config struct {
	// OwnerID is the single authorized admin identity.
	OwnerID int64

	// Telegram tokens for the two planes.
	UserBotToken    string
	ControlBotToken string

	// AI provider configuration.
	AIProvider    string
	GeminiAPIKey  string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	AITimeout     time.Duration

	// Settings persistence.
	SettingsDBPath string

	// Optional locale overrides file.
	LocalesPath string

	// Debug mode.
	Debug bool
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	ownerID, _ := strconv.ParseInt(os.Getenv("OWNER_ID"), 10, 64)

	dbPath := os.Getenv("SETTINGS_DB_PATH")
	if dbPath == "" {
		homeDir, _ := os.UserHomeDir()
		dbPath = filepath.Join(homeDir, ".afk-responder", "settings.db")
	}

	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = ProviderGemini
	}

	aiTimeout := 30 * time.Second
	if val := os.Getenv("AI_TIMEOUT_SECONDS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			aiTimeout = time.Duration(parsed) * time.Second
		}
	}

	return &Config{
		OwnerID:         ownerID,
		UserBotToken:    os.Getenv("USER_BOT_TOKEN"),
		ControlBotToken: os.Getenv("CONTROL_BOT_TOKEN"),
		AIProvider:      provider,
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:     os.Getenv("OPENAI_MODEL"),
		AITimeout:       aiTimeout,
		SettingsDBPath:  dbPath,
		LocalesPath:     os.Getenv("LOCALES_PATH"),
		Debug:           os.Getenv("DEBUG") == "true",
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.OwnerID == 0 {
		return &ConfigError{Field: "OWNER_ID", Message: "required"}
	}
	if c.UserBotToken == "" {
		return &ConfigError{Field: "USER_BOT_TOKEN", Message: "required"}
	}
	if c.ControlBotToken == "" {
		return &ConfigError{Field: "CONTROL_BOT_TOKEN", Message: "required"}
	}
	switch c.AIProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return &ConfigError{Field: "GEMINI_API_KEY", Message: "required for AI_PROVIDER=gemini"}
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return &ConfigError{Field: "OPENAI_API_KEY", Message: "required for AI_PROVIDER=openai"}
		}
	default:
		return &ConfigError{Field: "AI_PROVIDER", Message: "must be gemini or openai"}
	}
	return nil
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
