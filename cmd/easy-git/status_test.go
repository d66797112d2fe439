package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCmd(t *testing.T) {
	t.Parallel()

	t.Run("should report an empty repository", func(t *testing.T) {
		t.Parallel()

		dir := newTestProject(t)

		out := &bytes.Buffer{}
		cmd := newRootCmd(dir)
		cmd.SetOut(out)
		cmd.SetArgs([]string{"status", "-C", dir})
		require.NoError(t, cmd.Execute())

		assert.Contains(t, out.String(), "Staged files:")
		assert.Contains(t, out.String(), "Commits:")
		assert.Contains(t, out.String(), "(none)")
	})

	t.Run("should show the staged files and the chain", func(t *testing.T) {
		t.Parallel()

		dir := newTestProject(t)
		target := writeProjectFile(t, dir, "a.txt", "content")

		cmd := newRootCmd(dir)
		cmd.SetOut(bytes.NewBuffer(nil))
		cmd.SetArgs([]string{"add", "a.txt", "-C", dir})
		require.NoError(t, cmd.Execute())

		commitOut := &bytes.Buffer{}
		cmd = newRootCmd(dir)
		cmd.SetOut(commitOut)
		cmd.SetArgs([]string{"commit", "first commit", "-C", dir})
		require.NoError(t, cmd.Execute())
		id := strings.TrimSpace(commitOut.String())

		out := &bytes.Buffer{}
		cmd = newRootCmd(dir)
		cmd.SetOut(out)
		cmd.SetArgs([]string{"status", "-C", dir})
		require.NoError(t, cmd.Execute())

		// the staging set survives a commit
		assert.Contains(t, out.String(), target)
		assert.Contains(t, out.String(), id)
		assert.Contains(t, out.String(), "<- HEAD")
	})

	t.Run("should walk down from the provided commit", func(t *testing.T) {
		t.Parallel()

		dir := newTestProject(t)
		writeProjectFile(t, dir, "a.txt", "content")

		cmd := newRootCmd(dir)
		cmd.SetOut(bytes.NewBuffer(nil))
		cmd.SetArgs([]string{"add", "a.txt", "-C", dir})
		require.NoError(t, cmd.Execute())

		commitOut := &bytes.Buffer{}
		cmd = newRootCmd(dir)
		cmd.SetOut(commitOut)
		cmd.SetArgs([]string{"commit", "first commit", "-C", dir})
		require.NoError(t, cmd.Execute())
		id := strings.TrimSpace(commitOut.String())

		out := &bytes.Buffer{}
		cmd = newRootCmd(dir)
		cmd.SetOut(out)
		cmd.SetArgs([]string{"status", "-t", id, "-C", dir})
		require.NoError(t, cmd.Execute())

		assert.Contains(t, out.String(), id)
		assert.Contains(t, out.String(), "<- HEAD")
	})

	t.Run("should fail on an unknown commit", func(t *testing.T) {
		t.Parallel()

		dir := newTestProject(t)

		cmd := newRootCmd(dir)
		cmd.SetOut(bytes.NewBuffer(nil))
		cmd.SetArgs([]string{"status", "-t", strings.Repeat("a", 40), "-C", dir})
		require.Error(t, cmd.Execute())
	})

	t.Run("should reject an invalid target", func(t *testing.T) {
		t.Parallel()

		dir := newTestProject(t)

		cmd := newRootCmd(dir)
		cmd.SetOut(bytes.NewBuffer(nil))
		cmd.SetArgs([]string{"status", "-t", "not-a-digest", "-C", dir})
		require.Error(t, cmd.Execute())
	})
}
