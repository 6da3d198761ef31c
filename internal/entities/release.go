// Package entities contains core business entities.
package entities

// DefaultBranch is used when a request does not name a branch.
const DefaultBranch = "main"

// ReleaseRequest is the input of a single pipeline run.
type ReleaseRequest struct {
	Repository   string
	Branch       string
	ForceVersion *string
}

// BranchOrDefault returns the requested branch or fallback when it is empty.
func (r ReleaseRequest) BranchOrDefault(fallback string) string {
	if r.Branch != "" {
		return r.Branch
	}
	if fallback != "" {
		return fallback
	}
	return DefaultBranch
}

// ReleaseInfo is everything needed to publish a release.
type ReleaseInfo struct {
	Version      string
	ReleaseNotes string
	Commits      []Commit
	TargetBranch string
}

// TagName returns the tag the release is published under.
func (r ReleaseInfo) TagName() string {
	return "v" + r.Version
}

// Title returns the human-readable release name.
func (r ReleaseInfo) Title() string {
	return "Release v" + r.Version
}
