package domain

import (
	"context"
	"sync"

	"github.com/lomakinroman97/release-orchestrator-server/internal/entities"
	"github.com/lomakinroman97/release-orchestrator-server/internal/repository"

	"go.uber.org/zap"
)

// NotesGenerator produces release notes. It cannot fail.
type NotesGenerator interface {
	Generate(ctx context.Context, commits []entities.Commit, version string) string
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx           context.Context
	log           *zap.SugaredLogger
	repo          repository.Repository
	notes         NotesGenerator
	defaultBranch string

	locks *keyedMutex
	runs  sync.WaitGroup
	newID func() string
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	notes NotesGenerator,
	defaultBranch string,
) *Usecase {
	if defaultBranch == "" {
		defaultBranch = entities.DefaultBranch
	}
	return &Usecase{
		ctx:           ctx,
		log:           log.Named("pipeline"),
		repo:          repo,
		notes:         notes,
		defaultBranch: defaultBranch,
		locks:         newKeyedMutex(),
		newID:         newPipelineID,
	}
}
