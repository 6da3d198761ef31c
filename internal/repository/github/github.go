// Package github implements the repository gateway against the GitHub REST API.
package github

import (
	"github.com/lomakinroman97/release-orchestrator-server/config"
	"github.com/lomakinroman97/release-orchestrator-server/internal/transport/http/client"

	"go.uber.org/zap"
)

const apiVersion = "2022-11-28"

// GitHub talks to one GitHub (or GitHub Enterprise) API endpoint.
type GitHub struct {
	log      *zap.SugaredLogger
	api      *client.Client
	pageSize int
}

// New creates a GitHub gateway from its configuration.
func New(log *zap.SugaredLogger, cfg config.GitHubConfig) *GitHub {
	pageSize := cfg.CommitsPageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	api := client.New(client.Config{
		BaseURL: cfg.BaseURL,
		Headers: map[string]string{
			"Authorization":        "Bearer " + cfg.Token,
			"Accept":               "application/vnd.github+json",
			"X-GitHub-Api-Version": apiVersion,
		},
		Timeout:   cfg.Timeout,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
	})

	return &GitHub{
		log:      log.Named("repo.github"),
		api:      api,
		pageSize: pageSize,
	}
}
