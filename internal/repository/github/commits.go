package github

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/lomakinroman97/release-orchestrator-server/internal/entities"
)

// CommitsSince returns the commits on branch that are not reachable from the
// last tag. Without a tag it returns the most recent commits of the branch.
func (g *GitHub) CommitsSince(ctx context.Context, repo entities.RepoRef, branch string) ([]entities.Commit, error) {
	tag, _, err := g.LatestTag(ctx, repo)
	if err != nil {
		g.log.Warnw("failed to get last tag", "repo", repo.Path(), "error", err)
	}
	return g.CommitsAfter(ctx, repo, tag, branch)
}

// CommitsAfter returns the commits on branch that are not reachable from tag,
// or the most recent commits of the branch when tag is empty.
func (g *GitHub) CommitsAfter(ctx context.Context, repo entities.RepoRef, tag, branch string) ([]entities.Commit, error) {
	var raw []commitResponse
	if tag != "" {
		g.log.Infow("getting commits since tag", "repo", repo.Path(), "tag", tag, "branch", branch)
		raw = g.commitsBetween(ctx, repo, tag, branch)
	} else {
		g.log.Infow("getting commits from branch", "repo", repo.Path(), "branch", branch)
		raw = g.branchCommits(ctx, repo, branch)
	}

	commits := make([]entities.Commit, 0, len(raw))
	for _, c := range raw {
		commit, err := entities.NewCommit(c.SHA, c.Commit.Message, c.Commit.Author.Name, c.Commit.Author.Date)
		if err != nil {
			return nil, fmt.Errorf("commits of %s: %w", repo.Path(), err)
		}
		commits = append(commits, commit)
	}

	g.log.Infow("commits resolved", "repo", repo.Path(), "count", len(commits))
	return commits, nil
}

func (g *GitHub) commitsBetween(ctx context.Context, repo entities.RepoRef, base, head string) []commitResponse {
	path := fmt.Sprintf("repos/%s/compare/%s...%s", repo.Path(), url.PathEscape(base), url.PathEscape(head))
	resp, err := g.api.Get(ctx, path, nil)
	if err != nil {
		g.log.Warnw("failed to compare refs", "repo", repo.Path(), "base", base, "head", head, "error", err)
		return nil
	}

	var cmp compareResponse
	if err := resp.JSON(&cmp); err != nil {
		g.log.Warnw("failed to decode comparison", "repo", repo.Path(), "error", err)
		return nil
	}
	return cmp.Commits
}

func (g *GitHub) branchCommits(ctx context.Context, repo entities.RepoRef, branch string) []commitResponse {
	path := fmt.Sprintf("repos/%s/commits", repo.Path())
	query := url.Values{
		"sha":      {branch},
		"per_page": {strconv.Itoa(g.pageSize)},
	}
	resp, err := g.api.Get(ctx, path, query)
	if err != nil {
		g.log.Warnw("failed to get commits from branch", "repo", repo.Path(), "branch", branch, "error", err)
		return nil
	}

	var commits []commitResponse
	if err := resp.JSON(&commits); err != nil {
		g.log.Warnw("failed to decode branch commits", "repo", repo.Path(), "error", err)
		return nil
	}
	return commits
}
