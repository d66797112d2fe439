// Package pathutil contains helpers to find and validate repository
// paths
package pathutil

import (
	"errors"
	"path/filepath"

	"github.com/FoolCoder-code/easy-git/internal/egpath"
	"github.com/spf13/afero"
)

// ErrNoRepo is an error returned when no repo is found
var ErrNoRepo = errors.New("not an easygit repository (or any of the parent directories)")

// WorkTreeFromPath returns the absolute path to the root of the repo
// containing the provided directory
func WorkTreeFromPath(fs afero.Fs, p string) (path string, err error) {
	prev := ""
	for p != prev {
		info, err := fs.Stat(filepath.Join(p, egpath.DotDirName))
		if err == nil && info.IsDir() {
			return p, nil
		}

		prev = p
		p = filepath.Dir(p)
	}
	return "", ErrNoRepo
}
