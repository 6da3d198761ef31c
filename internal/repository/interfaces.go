// Package repository contains the interfaces of the hosting platform gateway.
package repository

import (
	"context"

	"github.com/lomakinroman97/release-orchestrator-server/internal/entities"
)

// TagInterface resolves the last published release tag.
type TagInterface interface {
	// LastTag returns the newest tag without its leading "v". ok is false when
	// there is no tag or the lookup failed.
	LastTag(ctx context.Context, repo entities.RepoRef) (tag string, ok bool)
	// LatestTag returns the newest tag name as the platform stores it. found
	// is false when the repository has no tags; err reports a failed lookup.
	LatestTag(ctx context.Context, repo entities.RepoRef) (name string, found bool, err error)
}

// CommitInterface resolves the commits that a new release would contain.
type CommitInterface interface {
	// CommitsSince returns commits on branch after the last tag, or the most
	// recent branch commits when there is no tag. Fetch failures yield an
	// empty slice; only malformed commit data is returned as an error.
	CommitsSince(ctx context.Context, repo entities.RepoRef, branch string) ([]entities.Commit, error)
	// CommitsAfter is CommitsSince with the tag already resolved by the
	// caller. An empty tag lists the most recent branch commits.
	CommitsAfter(ctx context.Context, repo entities.RepoRef, tag, branch string) ([]entities.Commit, error)
}

// ReleaseInterface publishes releases.
type ReleaseInterface interface {
	Publish(ctx context.Context, repo entities.RepoRef, info entities.ReleaseInfo) error
}
