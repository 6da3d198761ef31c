// Package notes turns a set of commits into Markdown release notes.
package notes

import (
	"context"

	"github.com/lomakinroman97/release-orchestrator-server/internal/entities"
	"github.com/lomakinroman97/release-orchestrator-server/internal/llm"

	"go.uber.org/zap"
)

// Generator writes release notes with a generative backend and falls back to
// a fixed template when the backend gives nothing usable.
type Generator struct {
	log       *zap.SugaredLogger
	completer llm.Completer
}

// New creates a Generator backed by completer.
func New(log *zap.SugaredLogger, completer llm.Completer) *Generator {
	return &Generator{
		log:       log.Named("notes"),
		completer: completer,
	}
}

// Generate always returns Markdown mentioning version.
func (g *Generator) Generate(ctx context.Context, commits []entities.Commit, version string) string {
	res := g.completer.Complete(ctx, BuildPrompt(commits, version))
	if text, ok := res.Text(); ok {
		g.log.Infow("release notes generated", "version", version, "bytes", len(text))
		return text
	}

	g.log.Warnw("using fallback release notes", "version", version, "reason", res.Reason(), "detail", res.String())
	return Fallback(commits, version)
}
