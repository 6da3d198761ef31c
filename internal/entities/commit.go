// Package entities contains core business entities.
package entities

import "fmt"

// ShortSHALength is the length of the abbreviated commit identifier.
const ShortSHALength = 8

// Commit is a single change collected for a release.
type Commit struct {
	SHA     string
	Message string
	Author  string
	Date    string
}

// NewCommit builds a Commit, abbreviating the full identifier.
func NewCommit(fullSHA, message, author, date string) (Commit, error) {
	short, err := ShortSHA(fullSHA)
	if err != nil {
		return Commit{}, err
	}
	return Commit{
		SHA:     short,
		Message: message,
		Author:  author,
		Date:    date,
	}, nil
}

// ShortSHA returns the first ShortSHALength characters of a full identifier.
func ShortSHA(fullSHA string) (string, error) {
	if len(fullSHA) < ShortSHALength {
		return "", fmt.Errorf("%w: identifier %q is shorter than %d characters", ErrMalformedCommit, fullSHA, ShortSHALength)
	}
	return fullSHA[:ShortSHALength], nil
}
