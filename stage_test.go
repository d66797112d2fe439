package easygit_test

import (
	"testing"

	easygit "github.com/FoolCoder-code/easy-git"
	"github.com/FoolCoder-code/easy-git/eginternals"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Parallel()

	t.Run("stages an existing file", func(t *testing.T) {
		t.Parallel()

		fs, r := newTestRepo(t)
		require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("content"), 0o644))

		added, skipped, err := r.Add("/repo/a.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"/repo/a.txt"}, added)
		assert.Empty(t, skipped)

		staged, err := r.StagedFiles()
		require.NoError(t, err)
		assert.Equal(t, []string{"/repo/a.txt"}, staged)

		data, err := afero.ReadFile(fs, "/repo/.easygit/stagingCache")
		require.NoError(t, err)
		assert.Equal(t, "/repo/a.txt\n", string(data))
	})

	t.Run("resolves relative paths against the working directory", func(t *testing.T) {
		t.Parallel()

		fs, r := newTestRepo(t)
		require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("content"), 0o644))

		added, _, err := r.Add("a.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"/repo/a.txt"}, added)
	})

	t.Run("staging twice keeps a single entry", func(t *testing.T) {
		t.Parallel()

		fs, r := newTestRepo(t)
		require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("content"), 0o644))

		_, _, err := r.Add("/repo/a.txt")
		require.NoError(t, err)
		_, _, err = r.Add("/repo/a.txt")
		require.NoError(t, err)

		staged, err := r.StagedFiles()
		require.NoError(t, err)
		assert.Equal(t, []string{"/repo/a.txt"}, staged)
	})

	t.Run("skips files that do not exist", func(t *testing.T) {
		t.Parallel()

		fs, r := newTestRepo(t)

		added, skipped, err := r.Add("/repo/nope.txt")
		require.NoError(t, err)
		assert.Empty(t, added)
		assert.Equal(t, []string{"/repo/nope.txt"}, skipped)

		// the set is persisted even when nothing was staged
		exists, err := afero.Exists(fs, "/repo/.easygit/stagingCache")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("skips directories", func(t *testing.T) {
		t.Parallel()

		fs, r := newTestRepo(t)
		require.NoError(t, fs.MkdirAll("/repo/sub", 0o750))

		added, skipped, err := r.Add("/repo/sub")
		require.NoError(t, err)
		assert.Empty(t, added)
		assert.Equal(t, []string{"/repo/sub"}, skipped)
	})

	t.Run("never stages the repository's own files", func(t *testing.T) {
		t.Parallel()

		_, r := newTestRepo(t)

		added, skipped, err := r.Add("/repo/.easygit/config", ".easygit/stagingCache")
		require.NoError(t, err)
		assert.Empty(t, added)
		assert.Equal(t, []string{"/repo/.easygit/config", "/repo/.easygit/stagingCache"}, skipped)

		staged, err := r.StagedFiles()
		require.NoError(t, err)
		assert.Empty(t, staged)
	})

	t.Run("the sentinel stages the whole working tree", func(t *testing.T) {
		t.Parallel()

		fs, r := newTestRepo(t)
		require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("a"), 0o644))
		require.NoError(t, afero.WriteFile(fs, "/repo/sub/b.txt", []byte("b"), 0o644))

		_, _, err := r.Add(easygit.AllFiles)
		require.NoError(t, err)

		staged, err := r.StagedFiles()
		require.NoError(t, err)
		assert.Equal(t, []string{"/repo/a.txt", "/repo/sub/b.txt"}, staged)
	})
}

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("unstages a staged file", func(t *testing.T) {
		t.Parallel()

		fs, r := newTestRepo(t)
		require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("a"), 0o644))
		require.NoError(t, afero.WriteFile(fs, "/repo/b.txt", []byte("b"), 0o644))
		_, _, err := r.Add("/repo/a.txt", "/repo/b.txt")
		require.NoError(t, err)

		removed, skipped, err := r.Remove("/repo/a.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"/repo/a.txt"}, removed)
		assert.Empty(t, skipped)

		staged, err := r.StagedFiles()
		require.NoError(t, err)
		assert.Equal(t, []string{"/repo/b.txt"}, staged)
	})

	t.Run("skips files that are not staged", func(t *testing.T) {
		t.Parallel()

		fs, r := newTestRepo(t)
		require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("a"), 0o644))
		_, _, err := r.Add("/repo/a.txt")
		require.NoError(t, err)

		removed, skipped, err := r.Remove("/repo/other.txt")
		require.NoError(t, err)
		assert.Empty(t, removed)
		assert.Equal(t, []string{"/repo/other.txt"}, skipped)
	})

	t.Run("unstaging the last file deletes the staging file", func(t *testing.T) {
		t.Parallel()

		fs, r := newTestRepo(t)
		require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("a"), 0o644))
		_, _, err := r.Add("/repo/a.txt")
		require.NoError(t, err)

		_, _, err = r.Remove("/repo/a.txt")
		require.NoError(t, err)

		exists, err := afero.Exists(fs, "/repo/.easygit/stagingCache")
		require.NoError(t, err)
		assert.False(t, exists, "the staging file should be gone")
	})

	t.Run("the sentinel empties the set", func(t *testing.T) {
		t.Parallel()

		fs, r := newTestRepo(t)
		require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("a"), 0o644))
		require.NoError(t, afero.WriteFile(fs, "/repo/b.txt", []byte("b"), 0o644))
		_, _, err := r.Add("/repo/a.txt", "/repo/b.txt")
		require.NoError(t, err)

		removed, _, err := r.Remove(easygit.AllFiles)
		require.NoError(t, err)
		assert.Len(t, removed, 2)

		exists, err := afero.Exists(fs, "/repo/.easygit/stagingCache")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("fails when nothing was ever staged", func(t *testing.T) {
		t.Parallel()

		_, r := newTestRepo(t)

		_, _, err := r.Remove("/repo/a.txt")
		require.Error(t, err)
		assert.ErrorIs(t, err, eginternals.ErrNoStagedFiles)
	})

	t.Run("a persisted empty set is not an error", func(t *testing.T) {
		t.Parallel()

		fs, r := newTestRepo(t)
		// an add where every path was skipped leaves an empty set
		_, _, err := r.Add("/repo/nope.txt")
		require.NoError(t, err)

		removed, skipped, err := r.Remove("/repo/nope.txt")
		require.NoError(t, err)
		assert.Empty(t, removed)
		assert.Equal(t, []string{"/repo/nope.txt"}, skipped)

		exists, err := afero.Exists(fs, "/repo/.easygit/stagingCache")
		require.NoError(t, err)
		assert.False(t, exists, "the empty set should have been deleted")
	})
}
