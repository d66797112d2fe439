package easygit

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/FoolCoder-code/easy-git/internal/egpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// resolvePath makes a user-provided path absolute, resolving relative
// ones against the working directory the repository was opened from
func (r *Repository) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(r.cfg.WorkingDirectory, p)
}

// insideDotDir reports whether an absolute path falls under the
// repository's own .easygit directory
func (r *Repository) insideDotDir(p string) bool {
	dotDir := r.cfg.DotDirPath
	return p == dotDir || strings.HasPrefix(p, dotDir+string(filepath.Separator))
}

// workTreeFiles returns the absolute path of every file of the
// working tree. The .easygit directory itself is not part of the
// working tree
func (r *Repository) workTreeFiles() (out []string, err error) {
	err = afero.Walk(r.cfg.FS, r.cfg.WorkTreePath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == egpath.DotDirName {
				return filepath.SkipDir
			}
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("could not walk the working tree: %w", err)
	}
	return out, nil
}
