package usecase

import (
	"context"

	"github.com/lomakinroman97/release-orchestrator-server/internal/repository"
	"github.com/lomakinroman97/release-orchestrator-server/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ReleaseUsecaseInterface
	LifecycleInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	notes domain.NotesGenerator,
	defaultBranch string,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, notes, defaultBranch)
}
