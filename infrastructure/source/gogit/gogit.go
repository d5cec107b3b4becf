// Package gogit reads commits in-process with the go-git library, so no git
// binary is required on the host.
package gogit

import (
	"context"
	"fmt"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/retrolabs/retrolog/domain"
)

// gitDateFormat matches the default `git log` author date rendering, keeping
// the two source implementations interchangeable.
const gitDateFormat = "Mon Jan 2 15:04:05 2006 -0700"

// Source implements domain.Source on top of go-git.
type Source struct{}

var _ domain.Source = (*Source)(nil)

// New creates a go-git backed source.
func New() domain.Source {
	return &Source{}
}

// Name returns the source identifier.
func (s *Source) Name() string { return "gogit" }

// ResolveRemote returns the first URL of the origin remote of the checkout
// at path.
func (s *Source) ResolveRemote(_ context.Context, path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", path, err)
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		return "", fmt.Errorf("looking up origin remote of %s: %w", path, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote of %s has no URL", path)
	}
	return urls[0], nil
}

// ListCommits walks the repository log from HEAD and returns the commits made
// within the last sinceDays days, newest first. Only the first line of each
// commit message is kept as the subject.
func (s *Source) ListCommits(_ context.Context, path string, sinceDays int) ([]domain.Commit, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	since := time.Now().AddDate(0, 0, -sinceDays)

	iter, err := repo.Log(&git.LogOptions{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading log of %s: %w", path, err)
	}
	defer iter.Close()

	var commits []domain.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		subject, _, _ := strings.Cut(c.Message, "\n")
		commits = append(commits, domain.Commit{
			Hash:        c.Hash.String(),
			Message:     subject,
			AuthorName:  c.Author.Name,
			AuthorEmail: c.Author.Email,
			Date:        c.Author.When.Format(gitDateFormat),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking log of %s: %w", path, err)
	}

	return commits, nil
}
