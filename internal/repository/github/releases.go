package github

import (
	"context"
	"errors"
	"fmt"

	"github.com/lomakinroman97/release-orchestrator-server/internal/entities"
	"github.com/lomakinroman97/release-orchestrator-server/internal/transport/http/client"
)

// Publish creates a non-draft, non-prerelease release tagged v<version>.
func (g *GitHub) Publish(ctx context.Context, repo entities.RepoRef, info entities.ReleaseInfo) error {
	body := createReleaseRequest{
		TagName:         info.TagName(),
		TargetCommitish: info.TargetBranch,
		Name:            info.Title(),
		Body:            info.ReleaseNotes,
	}

	resp, err := g.api.Post(ctx, fmt.Sprintf("repos/%s/releases", repo.Path()), body)
	if err != nil {
		var httpErr *client.HTTPError
		if errors.As(err, &httpErr) {
			g.log.Errorw("github rejected release", "repo", repo.Path(), "tag", body.TagName,
				"status", httpErr.StatusCode, "body", httpErr.Body)
			return fmt.Errorf("%w: create GitHub release %s: %d - %s",
				entities.ErrPublishFailed, body.TagName, httpErr.StatusCode, httpErr.Body)
		}
		g.log.Errorw("failed to create release", "repo", repo.Path(), "tag", body.TagName, "error", err)
		return fmt.Errorf("%w: create GitHub release %s: %v", entities.ErrPublishFailed, body.TagName, err)
	}

	var created releaseResponse
	if err := resp.JSON(&created); err != nil {
		g.log.Warnw("release created but response was not decodable", "repo", repo.Path(), "error", err)
	}
	g.log.Infow("release created", "repo", repo.Path(), "tag", body.TagName, "id", created.ID, "url", created.HTMLURL)
	return nil
}
