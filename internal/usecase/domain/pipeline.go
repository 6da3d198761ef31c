// Package domain contains application services orchestrating the release pipeline.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/lomakinroman97/release-orchestrator-server/internal/entities"
	"github.com/lomakinroman97/release-orchestrator-server/internal/versioning"

	"go.uber.org/zap"
)

const (
	msgCompleted = "Release pipeline completed successfully"
	msgFailed    = "Release pipeline failed: "
)

// RunSync runs the pipeline and blocks until it finishes. Cancelling ctx
// does not stop a run that has started.
func (u *Usecase) RunSync(ctx context.Context, req entities.ReleaseRequest) entities.PipelineResult {
	return u.run(context.WithoutCancel(ctx), u.newID(), req)
}

// run never fails: every error and panic becomes a failed result.
func (u *Usecase) run(ctx context.Context, id string, req entities.ReleaseRequest) (res entities.PipelineResult) {
	log := u.log.With("pipeline_id", id, "repository", req.Repository)

	defer func() {
		if r := recover(); r != nil {
			log.Errorw("release pipeline panicked", "panic", r)
			res = entities.Failed(fmt.Sprintf("%s%v", msgFailed, r), id)
		}
	}()

	version, err := u.release(ctx, log, req)
	if err != nil {
		log.Errorw("release pipeline failed", "error", err)
		return entities.Failed(msgFailed+err.Error(), id)
	}

	log.Infow("release pipeline completed", "version", version)
	return entities.Succeeded(msgCompleted, version, id)
}

func (u *Usecase) release(ctx context.Context, log *zap.SugaredLogger, req entities.ReleaseRequest) (string, error) {
	repo, err := entities.ParseRepoRef(req.Repository)
	if err != nil {
		return "", err
	}
	branch := req.BranchOrDefault(u.defaultBranch)

	unlock := u.locks.Lock(strings.ToLower(repo.Path()))
	defer unlock()

	log.Infow("starting release pipeline", "branch", branch)

	lastTag, hasTag, err := u.repo.LatestTag(ctx, repo)
	tagKnown := err == nil
	if !tagKnown {
		log.Warnw("last tag lookup failed, treating repository as untagged", "error", err)
		lastTag, hasTag = "", false
	}

	commits, err := u.repo.CommitsAfter(ctx, repo, lastTag, branch)
	if err != nil {
		return "", fmt.Errorf("resolve commits: %w", err)
	}
	log.Infow("found new commits", "count", len(commits), "since", tagLabel(lastTag, hasTag))

	version, err := resolveVersion(req.ForceVersion, lastTag)
	if err != nil {
		return "", err
	}
	log.Infow("resolved version", "version", version, "last_tag", lastTag, "forced", req.ForceVersion != nil)

	releaseNotes := u.notes.Generate(ctx, commits, version)

	if err := u.checkTagUnchanged(ctx, log, repo, lastTag, hasTag, tagKnown); err != nil {
		return "", err
	}

	info := entities.ReleaseInfo{
		Version:      version,
		ReleaseNotes: releaseNotes,
		Commits:      commits,
		TargetBranch: branch,
	}
	if err := u.repo.Publish(ctx, repo, info); err != nil {
		return "", err
	}
	log.Infow("published release", "tag", info.TagName())
	return version, nil
}

// checkTagUnchanged re-reads the last tag before publishing. A failed read on
// either side is not a change, so the check is skipped.
func (u *Usecase) checkTagUnchanged(
	ctx context.Context,
	log *zap.SugaredLogger,
	repo entities.RepoRef,
	lastTag string,
	hasTag, tagKnown bool,
) error {
	if !tagKnown {
		log.Warnw("skipping last tag re-check, initial lookup failed")
		return nil
	}

	current, found, err := u.repo.LatestTag(ctx, repo)
	if err != nil {
		log.Warnw("skipping last tag re-check, lookup failed", "error", err)
		return nil
	}
	if current != lastTag || found != hasTag {
		return fmt.Errorf("%w: was %q, now %q", entities.ErrTagMoved, tagLabel(lastTag, hasTag), tagLabel(current, found))
	}
	return nil
}

// resolveVersion prefers a forced version, which is only checked for shape.
func resolveVersion(forced *string, lastTag string) (string, error) {
	if forced != nil {
		if v := strings.TrimSpace(*forced); v != "" {
			if _, err := versioning.Parse(v); err != nil {
				return "", fmt.Errorf("forced version: %w", err)
			}
			return strings.TrimPrefix(v, "v"), nil
		}
	}
	return versioning.NextVersion(lastTag), nil
}

func tagLabel(tag string, ok bool) string {
	if !ok {
		return "none"
	}
	return tag
}
