package backend_test

import (
	"testing"

	"github.com/FoolCoder-code/easy-git/internal/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWriter(t *testing.T) {
	t.Parallel()

	fs, b := newTestBackend(t)

	w, err := b.LogWriter()
	require.NoError(t, err)
	_, err = w.Write([]byte("first line\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// a new writer keeps appending instead of truncating
	w, err = b.LogWriter()
	require.NoError(t, err)
	_, err = w.Write([]byte("second line\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data := testhelper.ReadFile(t, fs, "/repo/.easygit/log/log.log")
	assert.Equal(t, "first line\nsecond line\n", data)
}
