package application

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/retrolabs/retrolog/config"
	"github.com/retrolabs/retrolog/domain"
	sourcePkg "github.com/retrolabs/retrolog/infrastructure/source"
)

// GenerateService orchestrates the full changelog flow:
// read commits per project -> filter by author -> classify -> render -> write.
type GenerateService struct {
	sources *sourcePkg.Registry
	sink    domain.Sink

	// Clock returns the generation date. Tests override it to pin output.
	Clock func() time.Time
}

// NewGenerateService creates a new service with the given source registry
// and output sink.
func NewGenerateService(sources *sourcePkg.Registry, sink domain.Sink) *GenerateService {
	return &GenerateService{
		sources: sources,
		sink:    sink,
		Clock:   time.Now,
	}
}

// RunOptions holds runtime options for a single run.
type RunOptions struct {
	Author     string // Author name the commits are filtered to
	SinceDays  int    // Size of the lookback window in days
	SourceName string // Which registered commit source to use
	Verbose    bool
}

// Run executes one changelog generation pass using the provided configuration.
//
// Per-project failures degrade rather than abort: an unresolved remote leaves
// the project with relative-looking links, a failed log read leaves its block
// empty. The project heading is always emitted, in name order, so repeated
// runs produce identical documents.
func (s *GenerateService) Run(
	ctx context.Context,
	cfg *config.Config,
	runOpts RunOptions,
) error {
	if runOpts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	src, err := s.sources.Get(runOpts.SourceName)
	if err != nil {
		return err
	}

	totalCommits := 0
	totalEntries := 0
	totalErrors := 0

	projectPaths := cfg.ProjectPaths()
	sections := make([]domain.ProjectSection, 0, len(projectPaths))

	for _, pp := range projectPaths {
		logger.Debugf("Processing project %q at %s", pp.Name, pp.Path)

		remote, remoteErr := src.ResolveRemote(ctx, pp.Path)
		if remoteErr != nil {
			logger.Warnf("Could not resolve remote for %q, links will be relative: %v",
				pp.Name, remoteErr)
			remote = ""
		}

		commits, listErr := src.ListCommits(ctx, pp.Path, runOpts.SinceDays)
		if listErr != nil {
			logger.Errorf("Failed to list commits for %q: %v", pp.Name, listErr)
			totalErrors++
			commits = nil
		}

		project := domain.Project{
			Name:    pp.Name,
			Remote:  remote,
			Commits: filterByAuthor(commits, runOpts.Author),
		}
		totalCommits += len(project.Commits)

		entries := domain.ClassifyProject(project)
		totalEntries += len(entries.Features) + len(entries.Bugfixes)

		sections = append(sections, domain.ProjectSection{
			Name:    project.Name,
			Entries: entries,
		})
	}

	doc := domain.RenderChangelog(s.Clock(), sections)

	if writeErr := s.sink.Write(doc); writeErr != nil {
		return fmt.Errorf("failed to write changelog: %w", writeErr)
	}

	logger.Infof(
		"Run complete: %d projects, %d commits by %q, %d entries, %d errors",
		len(sections), totalCommits, runOpts.Author, totalEntries, totalErrors,
	)
	return nil
}

// filterByAuthor keeps commits whose author name matches exactly,
// preserving log order.
func filterByAuthor(commits []domain.Commit, author string) []domain.Commit {
	var filtered []domain.Commit
	for _, commit := range commits {
		if commit.AuthorName == author {
			filtered = append(filtered, commit)
		}
	}
	return filtered
}
