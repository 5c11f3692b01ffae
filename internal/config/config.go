package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
	Unsplash UnsplashConfig `mapstructure:"unsplash"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// LLMConfig contains all generative-backend integration settings.
type LLMConfig struct {
	GeminiAPIKey    string `mapstructure:"gemini_api_key"    validate:"required"`
	ModelName       string `mapstructure:"model_name"        validate:"required"`
	MaxOutputTokens int    `mapstructure:"max_output_tokens" validate:"gte=0"`
}

// UnsplashConfig contains the image-search integration settings. An empty
// access key is valid: image enrichment degrades to theme-default
// backgrounds.
type UnsplashConfig struct {
	AccessKey string `mapstructure:"access_key"`
}
