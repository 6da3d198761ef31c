package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/lomakinroman97/release-orchestrator-server/internal/entities"
)

// LastTag returns the newest tag name with a leading "v" removed. Lookup
// failures are logged and reported as no tag.
func (g *GitHub) LastTag(ctx context.Context, repo entities.RepoRef) (string, bool) {
	name, found, err := g.LatestTag(ctx, repo)
	if err != nil {
		g.log.Warnw("failed to get last tag", "repo", repo.Path(), "error", err)
		return "", false
	}
	if !found {
		return "", false
	}
	return strings.TrimPrefix(name, "v"), true
}

// LatestTag returns the tag name exactly as GitHub stores it.
func (g *GitHub) LatestTag(ctx context.Context, repo entities.RepoRef) (string, bool, error) {
	path := fmt.Sprintf("repos/%s/tags", repo.Path())
	resp, err := g.api.Get(ctx, path, url.Values{"per_page": {"1"}})
	if err != nil {
		return "", false, fmt.Errorf("list tags of %s: %w", repo.Path(), err)
	}

	var tags []tagResponse
	if err := resp.JSON(&tags); err != nil {
		return "", false, fmt.Errorf("decode tags of %s: %w", repo.Path(), err)
	}
	if len(tags) == 0 || tags[0].Name == "" {
		g.log.Infow("no tags found", "repo", repo.Path())
		return "", false, nil
	}
	return tags[0].Name, true, nil
}
