// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidVersion signals a version that is not major.minor.patch.
	ErrInvalidVersion = errors.New("invalid version")
	// ErrMalformedCommit signals a commit whose identifier cannot be shortened.
	ErrMalformedCommit = errors.New("malformed commit")
	// ErrPublishFailed signals that the hosting platform rejected a release.
	ErrPublishFailed = errors.New("publish failed")
	// ErrTagMoved signals that the last tag changed while the pipeline was running.
	ErrTagMoved = errors.New("last tag changed during pipeline run")
)
