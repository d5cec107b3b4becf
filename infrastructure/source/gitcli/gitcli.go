// Package gitcli reads commits by shelling out to the git binary. Log records
// are delimited with the ASCII unit separator instead of commas, so commit
// subjects containing commas survive field splitting intact.
package gitcli

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/retrolabs/retrolog/domain"
)

const (
	fieldSep   = "\x1f"
	fieldCount = 5

	// hash, subject, author name, author email, author date
	prettyFormat = "%H%x1f%s%x1f%an%x1f%ae%x1f%ad"
)

// Source implements domain.Source on top of the git CLI.
type Source struct{}

var _ domain.Source = (*Source)(nil)

// New creates a git CLI backed source.
func New() domain.Source {
	return &Source{}
}

// Name returns the source identifier.
func (s *Source) Name() string { return "gitcli" }

// ResolveRemote returns the origin remote URL of the checkout at path.
func (s *Source) ResolveRemote(ctx context.Context, path string) (string, error) {
	out, err := runGit(ctx, path, "remote", "get-url", "origin")
	if err != nil {
		return "", fmt.Errorf("resolving remote for %s: %w", path, err)
	}
	return strings.TrimSpace(out), nil
}

// ListCommits returns the commits made within the last sinceDays days in the
// checkout at path, newest first.
func (s *Source) ListCommits(ctx context.Context, path string, sinceDays int) ([]domain.Commit, error) {
	out, err := runGit(ctx, path, "log",
		"--since", fmt.Sprintf("%d days ago", sinceDays),
		"--pretty=format:"+prettyFormat,
	)
	if err != nil {
		return nil, fmt.Errorf("listing commits for %s: %w", path, err)
	}
	return ParseLog(out), nil
}

// ParseLog converts raw git log output into commits. Records with a wrong
// field count or an empty hash are logged and skipped instead of corrupting
// the run.
func ParseLog(raw string) []domain.Commit {
	var commits []domain.Commit

	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, fieldSep)
		if len(fields) != fieldCount || fields[0] == "" {
			logger.Warnf("Skipping malformed log record: %q", line)
			continue
		}

		commits = append(commits, domain.Commit{
			Hash:        fields[0],
			Message:     fields[1],
			AuthorName:  fields[2],
			AuthorEmail: fields[3],
			Date:        fields[4],
		})
	}

	return commits
}

// runGit executes a git subcommand against the checkout at path and returns
// its stdout.
func runGit(ctx context.Context, path string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", path}, args...)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s",
			args[0], err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
