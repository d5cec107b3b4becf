// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"
	"fmt"

	"github.com/retrolabs/retrolog/domain"
)

// ---------------------------------------------------------------------------
// SpySource
// ---------------------------------------------------------------------------

// SpySource implements domain.Source as a configurable spy.
// Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpySource struct {
	// --- identity ---
	SourceName string

	// --- ResolveRemote ---
	Remotes   map[string]string // path -> remote URL
	RemoteErr error
	// spy: paths that were resolved
	ResolvedPaths []string

	// --- ListCommits ---
	Commits map[string][]domain.Commit // path -> commits
	ListErr error
	// spy: paths and windows that were listed
	ListedPaths []string
	ListedDays  []int
}

var _ domain.Source = (*SpySource)(nil)

func (s *SpySource) Name() string { return s.SourceName }

func (s *SpySource) ResolveRemote(_ context.Context, path string) (string, error) {
	s.ResolvedPaths = append(s.ResolvedPaths, path)
	if s.RemoteErr != nil {
		return "", s.RemoteErr
	}
	if remote, ok := s.Remotes[path]; ok {
		return remote, nil
	}
	return "", fmt.Errorf("no remote configured for %s", path)
}

func (s *SpySource) ListCommits(_ context.Context, path string, sinceDays int) ([]domain.Commit, error) {
	s.ListedPaths = append(s.ListedPaths, path)
	s.ListedDays = append(s.ListedDays, sinceDays)
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.Commits[path], nil
}

// ---------------------------------------------------------------------------
// SpySink
// ---------------------------------------------------------------------------

// SpySink implements domain.Sink, recording every document it receives.
type SpySink struct {
	WriteErr error
	// spy: documents written
	Docs []string
}

var _ domain.Sink = (*SpySink)(nil)

func (s *SpySink) Write(doc string) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Docs = append(s.Docs, doc)
	return nil
}

// ---------------------------------------------------------------------------
// DummySource
// ---------------------------------------------------------------------------

// DummySource is a no-op domain.Source for interface-compliance tests.
type DummySource struct{}

var _ domain.Source = (*DummySource)(nil)

func (d *DummySource) Name() string { return "dummy" }

func (d *DummySource) ResolveRemote(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (d *DummySource) ListCommits(_ context.Context, _ string, _ int) ([]domain.Commit, error) {
	return nil, nil
}
