package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/FoolCoder-code/easy-git/internal/egpath"
	"github.com/FoolCoder-code/easy-git/internal/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitParams(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc string
		args []string
	}{
		{
			desc: "no args should use the -C directory",
			args: []string{"init"},
		},
	}
	for i, tc := range testCases {
		tc := tc
		i := i
		t.Run(fmt.Sprintf("%d/%s", i, tc.desc), func(t *testing.T) {
			t.Parallel()

			dir, cleanup := testhelper.TempDir(t)
			t.Cleanup(cleanup)

			cmd := newRootCmd(dir)
			cmd.SetOut(io.Discard)
			cmd.SetArgs(append(tc.args, "-C", dir))
			require.NotPanics(t, func() {
				require.NoError(t, cmd.Execute())
			})

			info, err := os.Stat(filepath.Join(dir, egpath.DotDirName))
			require.NoError(t, err)
			assert.True(t, info.IsDir())
		})
	}
}

func TestInit(t *testing.T) {
	t.Parallel()

	t.Run("should create the repo skeleton", func(t *testing.T) {
		t.Parallel()

		dir, cleanup := testhelper.TempDir(t)
		t.Cleanup(cleanup)

		out := &bytes.Buffer{}
		flags := &globalFlags{C: testhelper.NewStringValue(dir)}
		require.NoError(t, initCmd(out, flags))

		assert.Contains(t, out.String(), "Initialized empty easygit repository")

		for _, sub := range []string{egpath.CommitDirName, egpath.ChangesDirName, egpath.LogDirName} {
			info, err := os.Stat(filepath.Join(dir, egpath.DotDirName, sub))
			require.NoError(t, err, "expected %s to exist", sub)
			assert.True(t, info.IsDir())
		}
	})

	t.Run("should fail on an already initialized directory", func(t *testing.T) {
		t.Parallel()

		dir, cleanup := testhelper.TempDir(t)
		t.Cleanup(cleanup)

		flags := &globalFlags{C: testhelper.NewStringValue(dir)}
		require.NoError(t, initCmd(io.Discard, flags))
		require.Error(t, initCmd(io.Discard, flags))
	})
}
