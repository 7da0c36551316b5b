package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values, loaded once at startup.
type Config struct {
	SerpAPIKey     string        `mapstructure:"SERPAPI_API_KEY"`
	SerpAPIBaseURL string        `mapstructure:"SERPAPI_BASE_URL"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`

	// Transport is "stdio" (MCP over stdin/stdout) or "http" (REST API).
	Transport string `mapstructure:"TRANSPORT"`
	HTTPAddr  string `mapstructure:"HTTP_ADDR"`

	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	envFileFound bool
}

// Load reads configuration from a .env file (if present) and the process
// environment. A missing .env file is not an error.
func Load() (Config, error) {
	envFileFound := godotenv.Load() == nil

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERPAPI_API_KEY", "")
	v.SetDefault("SERPAPI_BASE_URL", "https://serpapi.com/search")
	v.SetDefault("REQUEST_TIMEOUT", 30*time.Second)
	v.SetDefault("TRANSPORT", "stdio")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	// AutomaticEnv alone does not populate Unmarshal; bind each key explicitly.
	for _, key := range []string{
		"SERPAPI_API_KEY",
		"SERPAPI_BASE_URL",
		"REQUEST_TIMEOUT",
		"TRANSPORT",
		"HTTP_ADDR",
		"ENV",
		"LOG_LEVEL",
	} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.envFileFound = envFileFound
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// EnvFileFound reports whether a .env file was loaded, for startup diagnostics.
func (c Config) EnvFileFound() bool {
	return c.envFileFound
}
