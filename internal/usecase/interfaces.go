package usecase

import (
	"context"

	"github.com/lomakinroman97/release-orchestrator-server/internal/entities"
)

// ReleaseUsecaseInterface abstracts the release pipeline for delivery layer.
type ReleaseUsecaseInterface interface {
	// Schedule starts a run in the background and returns without waiting.
	Schedule(ctx context.Context, req entities.ReleaseRequest) *entities.Task
	// RunSync runs the pipeline to completion and returns its true result.
	RunSync(ctx context.Context, req entities.ReleaseRequest) entities.PipelineResult
}

// LifecycleInterface lets the process drain scheduled runs on shutdown.
type LifecycleInterface interface {
	Wait(ctx context.Context) error
}
