// Package entities contains core business entities.
package entities

import (
	"fmt"
	"strings"
)

// RepoRef identifies a repository on the hosting platform.
type RepoRef struct {
	Owner string
	Name  string
}

// Path returns the owner/name form used in API paths.
func (r RepoRef) Path() string {
	return r.Owner + "/" + r.Name
}

func (r RepoRef) String() string {
	return r.Path()
}

var repoPrefixes = []string{"https://", "http://", "www.", "github.com/"}

// ParseRepoRef accepts owner/name, host/owner/name or a full https URL. Any
// host that looks like a domain is dropped, so GitHub Enterprise URLs work.
func ParseRepoRef(raw string) (RepoRef, error) {
	s := strings.TrimSpace(raw)
	for _, p := range repoPrefixes {
		s = strings.TrimPrefix(s, p)
	}
	s = strings.TrimSuffix(strings.TrimSuffix(s, "/"), ".git")

	parts := strings.Split(s, "/")
	if len(parts) == 3 && strings.Contains(parts[0], ".") {
		parts = parts[1:]
	}
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepoRef{}, fmt.Errorf("%w: repository %q must look like owner/name", ErrInvalidArgument, raw)
	}
	return RepoRef{Owner: parts[0], Name: parts[1]}, nil
}
