// Package repository provides factory for hosting platform gateways.
package repository

import (
	"context"
	"fmt"

	"github.com/lomakinroman97/release-orchestrator-server/config"
	"github.com/lomakinroman97/release-orchestrator-server/internal/repository/github"

	"go.uber.org/zap"
)

// Repository aggregates all gateway interfaces.
type Repository interface {
	TagInterface
	CommitInterface
	ReleaseInterface
}

// New constructs gateway backend by name.
func New(_ context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "github":
		return github.New(log, cfg.GitHub), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
