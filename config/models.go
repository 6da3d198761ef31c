package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Pipeline  PipelineConfig  `mapstructure:"pipeline"`
	GitHub    GitHubConfig    `mapstructure:"github"`
	YandexGPT YandexGPTConfig `mapstructure:"yandex_gpt"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.GitHub.Token == "" {
		return errors.New("github.token is required (GITHUB_TOKEN)")
	}
	if c.YandexGPT.APIKey == "" {
		return errors.New("yandex_gpt.api_key is required (YANDEX_GPT_API_KEY)")
	}
	if c.YandexGPT.FolderID == "" {
		return errors.New("yandex_gpt.folder_id is required (YANDEX_GPT_FOLDER_ID)")
	}
	if c.GitHub.CommitsPageSize <= 0 || c.GitHub.CommitsPageSize > 100 {
		return errors.New("github.commits_page_size must be between 1 and 100")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// PipelineConfig contains release pipeline defaults.
type PipelineConfig struct {
	DefaultBranch string `mapstructure:"default_branch"`
}

// GitHubConfig describes access to the GitHub REST API.
type GitHubConfig struct {
	Token           string        `mapstructure:"token"`
	BaseURL         string        `mapstructure:"base_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
	RateLimit       float64       `mapstructure:"rate_limit"`
	RateBurst       int           `mapstructure:"rate_burst"`
	CommitsPageSize int           `mapstructure:"commits_page_size"`
}

// YandexGPTConfig describes access to the YandexGPT completion API.
type YandexGPTConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	FolderID    string        `mapstructure:"folder_id"`
	URL         string        `mapstructure:"url"`
	Model       string        `mapstructure:"model"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	RateLimit   float64       `mapstructure:"rate_limit"`
	RateBurst   int           `mapstructure:"rate_burst"`
}

// ModelURI returns the gpt:// URI of the configured model.
func (y YandexGPTConfig) ModelURI() string {
	return fmt.Sprintf("gpt://%s/%s", y.FolderID, y.Model)
}
