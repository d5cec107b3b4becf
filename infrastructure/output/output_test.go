package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrolabs/retrolog/infrastructure/output"
)

func TestFileSink(t *testing.T) {
	t.Parallel()

	t.Run("should write the document to disk", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "changelog.md")
		sink := output.NewFileSink(path)

		// when
		err := sink.Write("# Changelog for 2026-03-01\n\n")

		// then
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# Changelog for 2026-03-01\n\n", string(data))
	})

	t.Run("should overwrite prior content", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "changelog.md")
		require.NoError(t, os.WriteFile(path, []byte("stale content"), 0o600))
		sink := output.NewFileSink(path)

		// when
		err := sink.Write("fresh content")

		// then
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "fresh content", string(data))
	})

	t.Run("should fail when the target directory does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		sink := output.NewFileSink(filepath.Join(t.TempDir(), "missing", "changelog.md"))

		// when
		err := sink.Write("doc")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "writing changelog")
	})
}

func TestStdoutSink(t *testing.T) {
	t.Parallel()

	t.Run("should accept a document without error", func(t *testing.T) {
		t.Parallel()

		// given
		sink := output.NewStdoutSink()

		// when
		err := sink.Write("")

		// then
		require.NoError(t, err)
	})
}
