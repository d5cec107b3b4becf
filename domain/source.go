package domain

import "context"

// Source abstracts the version-control backend that commits are read from.
// Implementations exist for the git CLI and for an in-process go-git reader,
// which keeps the classification core testable without a real repository.
type Source interface {
	// Name returns the source identifier (e.g. "gitcli", "gogit").
	Name() string

	// ResolveRemote returns the base remote URL of the checkout at path,
	// used to build commit hyperlinks.
	ResolveRemote(ctx context.Context, path string) (string, error)

	// ListCommits returns the commits made within the last sinceDays days
	// in the checkout at path, newest first.
	ListCommits(ctx context.Context, path string, sinceDays int) ([]Commit, error)
}

// Sink receives the assembled changelog document.
type Sink interface {
	Write(doc string) error
}
