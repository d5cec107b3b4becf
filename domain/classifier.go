package domain

import (
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
)

const (
	featPrefix = "feat:"
	fixPrefix  = "fix:"
	separator  = ": "

	shortHashLen = 8
)

// Kind tags the classification result for a single commit subject.
type Kind int

const (
	// KindExcluded marks subjects without a recognized conventional prefix.
	KindExcluded Kind = iota
	KindFeature
	KindBugfix
)

// Classify maps a commit subject to its changelog category and returns the
// display text after the prefix. The subject is split on the first ": "
// occurrence, so "feat: fix: something" classifies as a feature with display
// text "fix: something". Subjects without the separator, or with a prefix
// other than "feat:" / "fix:", are excluded.
func Classify(message string) (Kind, string) {
	_, rest, found := strings.Cut(message, separator)
	if !found {
		return KindExcluded, ""
	}

	switch {
	case strings.HasPrefix(message, featPrefix):
		return KindFeature, rest
	case strings.HasPrefix(message, fixPrefix):
		return KindBugfix, rest
	default:
		return KindExcluded, ""
	}
}

// ShortHash returns the abbreviated form of a commit hash. Hashes shorter
// than the abbreviation length are a data-integrity error, never an
// out-of-range slice.
func ShortHash(hash string) (string, error) {
	if len(hash) < shortHashLen {
		return "", fmt.Errorf("commit hash %q is shorter than %d characters", hash, shortHashLen)
	}
	return hash[:shortHashLen], nil
}

// FormatEntry renders a single changelog line with an abbreviated hash and a
// hyperlink to the commit on the project's remote.
func FormatEntry(message, hash, remote string) (string, error) {
	short, err := ShortHash(hash)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(" - %s [#%s](%s/commits/%s)\n", message, short, remote, hash), nil
}

// ClassifyProject partitions a project's commits into formatted feature and
// bugfix lines, preserving log order within each category. Unrecognized
// subjects are dropped silently; commits whose hash is too short to
// abbreviate are logged and skipped.
func ClassifyProject(project Project) Entries {
	var entries Entries

	for _, commit := range project.Commits {
		kind, message := Classify(commit.Message)
		if kind == KindExcluded {
			continue
		}

		line, err := FormatEntry(message, commit.Hash, project.Remote)
		if err != nil {
			logger.Warnf("Skipping malformed commit in %q: %v", project.Name, err)
			continue
		}

		if kind == KindFeature {
			entries.Features = append(entries.Features, line)
		} else {
			entries.Bugfixes = append(entries.Bugfixes, line)
		}
	}

	return entries
}
