package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrolabs/retrolog/domain"
	"github.com/retrolabs/retrolog/test/domain/entitybuilders"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("should classify a feat prefix as a feature", func(t *testing.T) {
		t.Parallel()

		// given
		message := "feat: add login"

		// when
		kind, text := domain.Classify(message)

		// then
		assert.Equal(t, domain.KindFeature, kind)
		assert.Equal(t, "add login", text)
	})

	t.Run("should classify a fix prefix as a bugfix", func(t *testing.T) {
		t.Parallel()

		// given
		message := "fix: null pointer"

		// when
		kind, text := domain.Classify(message)

		// then
		assert.Equal(t, domain.KindBugfix, kind)
		assert.Equal(t, "null pointer", text)
	})

	t.Run("should exclude subjects without a separator", func(t *testing.T) {
		t.Parallel()

		// given
		message := "update readme"

		// when
		kind, text := domain.Classify(message)

		// then
		assert.Equal(t, domain.KindExcluded, kind)
		assert.Empty(t, text)
	})

	t.Run("should exclude unrecognized prefixes", func(t *testing.T) {
		t.Parallel()

		// given
		message := "chore: cleanup"

		// when
		kind, _ := domain.Classify(message)

		// then
		assert.Equal(t, domain.KindExcluded, kind)
	})

	t.Run("should split only on the first separator occurrence", func(t *testing.T) {
		t.Parallel()

		// given
		message := "feat: fix: something"

		// when
		kind, text := domain.Classify(message)

		// then
		assert.Equal(t, domain.KindFeature, kind)
		assert.Equal(t, "fix: something", text)
	})

	t.Run("should not classify prefixes that merely start with feat", func(t *testing.T) {
		t.Parallel()

		// given
		message := "feature: add login"

		// when
		kind, _ := domain.Classify(message)

		// then
		assert.Equal(t, domain.KindExcluded, kind)
	})
}

func TestShortHash(t *testing.T) {
	t.Parallel()

	t.Run("should abbreviate a full hash to 8 characters", func(t *testing.T) {
		t.Parallel()

		// given
		hash := "abcdef1234567890abcdef1234567890abcdef12"

		// when
		short, err := domain.ShortHash(hash)

		// then
		require.NoError(t, err)
		assert.Equal(t, "abcdef12", short)
	})

	t.Run("should fail for hashes shorter than 8 characters", func(t *testing.T) {
		t.Parallel()

		// given
		hash := "abc"

		// when
		_, err := domain.ShortHash(hash)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shorter than 8")
	})
}

func TestFormatEntry(t *testing.T) {
	t.Parallel()

	t.Run("should render the linked entry line", func(t *testing.T) {
		t.Parallel()

		// given
		message := "add login"
		hash := "abcdef1234"
		remote := "https://example.com/alpha"

		// when
		line, err := domain.FormatEntry(message, hash, remote)

		// then
		require.NoError(t, err)
		assert.Equal(t,
			" - add login [#abcdef12](https://example.com/alpha/commits/abcdef1234)\n",
			line)
	})

	t.Run("should propagate short-hash errors", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := domain.FormatEntry("add login", "abc", "https://example.com/alpha")

		// then
		require.Error(t, err)
	})
}

func TestClassifyProject(t *testing.T) {
	t.Parallel()

	t.Run("should partition commits into features and bugfixes", func(t *testing.T) {
		t.Parallel()

		// given
		project := domain.Project{
			Name:   "alpha",
			Remote: "https://example.com/alpha",
			Commits: []domain.Commit{
				entitybuilders.NewCommitBuilder().
					WithHash("abcdef1234").WithMessage("feat: add login").BuildCommit(),
				entitybuilders.NewCommitBuilder().
					WithHash("1111111111").WithMessage("fix: null pointer").BuildCommit(),
				entitybuilders.NewCommitBuilder().
					WithHash("2222222222").WithMessage("chore: cleanup").BuildCommit(),
			},
		}

		// when
		entries := domain.ClassifyProject(project)

		// then
		assert.Equal(t, []string{
			" - add login [#abcdef12](https://example.com/alpha/commits/abcdef1234)\n",
		}, entries.Features)
		assert.Equal(t, []string{
			" - null pointer [#11111111](https://example.com/alpha/commits/1111111111)\n",
		}, entries.Bugfixes)
	})

	t.Run("should preserve log order within each category", func(t *testing.T) {
		t.Parallel()

		// given
		project := domain.Project{
			Name:   "alpha",
			Remote: "https://example.com/alpha",
			Commits: []domain.Commit{
				entitybuilders.NewCommitBuilder().
					WithHash("aaaaaaaa01").WithMessage("feat: first").BuildCommit(),
				entitybuilders.NewCommitBuilder().
					WithHash("bbbbbbbb02").WithMessage("fix: second").BuildCommit(),
				entitybuilders.NewCommitBuilder().
					WithHash("cccccccc03").WithMessage("feat: third").BuildCommit(),
			},
		}

		// when
		entries := domain.ClassifyProject(project)

		// then
		require.Len(t, entries.Features, 2)
		assert.Contains(t, entries.Features[0], "first")
		assert.Contains(t, entries.Features[1], "third")
		require.Len(t, entries.Bugfixes, 1)
		assert.Contains(t, entries.Bugfixes[0], "second")
	})

	t.Run("should skip commits whose hash is too short", func(t *testing.T) {
		t.Parallel()

		// given
		project := domain.Project{
			Name:   "alpha",
			Remote: "https://example.com/alpha",
			Commits: []domain.Commit{
				entitybuilders.NewCommitBuilder().
					WithHash("abc").WithMessage("feat: broken record").BuildCommit(),
				entitybuilders.NewCommitBuilder().
					WithHash("abcdef1234").WithMessage("feat: intact record").BuildCommit(),
			},
		}

		// when
		entries := domain.ClassifyProject(project)

		// then
		require.Len(t, entries.Features, 1)
		assert.Contains(t, entries.Features[0], "intact record")
		assert.Empty(t, entries.Bugfixes)
	})

	t.Run("should return empty entries for a project without commits", func(t *testing.T) {
		t.Parallel()

		// given
		project := domain.Project{Name: "beta", Remote: "https://example.com/beta"}

		// when
		entries := domain.ClassifyProject(project)

		// then
		assert.Empty(t, entries.Features)
		assert.Empty(t, entries.Bugfixes)
	})
}
