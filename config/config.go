// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	return load(envFile)
}

func load(path string) (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(path); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("http.request_timeout", 5*time.Minute)

	v.SetDefault("pipeline.default_branch", "main")

	v.SetDefault("github.base_url", "https://api.github.com")
	v.SetDefault("github.timeout", 30*time.Second)
	v.SetDefault("github.rate_limit", 10.0)
	v.SetDefault("github.rate_burst", 5)
	v.SetDefault("github.commits_page_size", 50)

	v.SetDefault("yandex_gpt.url", "https://llm.api.cloud.yandex.net/foundationModels/v1/completion")
	v.SetDefault("yandex_gpt.model", "yandexgpt-lite")
	v.SetDefault("yandex_gpt.timeout", 60*time.Second)
	v.SetDefault("yandex_gpt.temperature", 0.3)
	v.SetDefault("yandex_gpt.max_tokens", 2000)
	v.SetDefault("yandex_gpt.rate_limit", 1.0)
	v.SetDefault("yandex_gpt.rate_burst", 2)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"pipeline.default_branch",
		"github.token",
		"github.base_url",
		"github.timeout",
		"github.rate_limit",
		"github.rate_burst",
		"github.commits_page_size",
		"yandex_gpt.api_key",
		"yandex_gpt.folder_id",
		"yandex_gpt.url",
		"yandex_gpt.model",
		"yandex_gpt.timeout",
		"yandex_gpt.temperature",
		"yandex_gpt.max_tokens",
		"yandex_gpt.rate_limit",
		"yandex_gpt.rate_burst",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
