package easygit

import (
	"os"

	"github.com/FoolCoder-code/easy-git/eginternals"
	"golang.org/x/xerrors"
)

// Add stages files for the next commit. The AllFiles sentinel stages
// every file of the working tree.
// Paths that do not point to an existing file, and paths under the
// .easygit directory, are skipped and reported instead of failing the
// whole call, matching the usual workflow of staging a handful of
// files in one go.
// The staging set is persisted even when every path was skipped
func (r *Repository) Add(paths ...string) (added, skipped []string, err error) {
	if len(paths) == 0 {
		return nil, nil, nil
	}

	set, err := r.store.StagingSet()
	if err != nil {
		return nil, nil, err
	}

	for _, p := range paths {
		if p == AllFiles {
			all, err := r.workTreeFiles()
			if err != nil {
				return nil, nil, err
			}
			for _, f := range all {
				set.Add(f)
				added = append(added, f)
			}
			r.log.WithField("files", len(all)).Debug("staged the whole working tree")
			continue
		}

		abs := r.resolvePath(p)
		if r.insideDotDir(abs) {
			skipped = append(skipped, abs)
			r.log.WithField("path", abs).Warning("cannot stage the repository's own files")
			continue
		}

		info, err := r.cfg.FS.Stat(abs)
		switch {
		case err != nil && os.IsNotExist(err):
			skipped = append(skipped, abs)
			r.log.WithField("path", abs).Warning("cannot stage a file that does not exist")
		case err != nil:
			return nil, nil, xerrors.Errorf("could not check %s: %w", abs, err)
		case info.IsDir():
			skipped = append(skipped, abs)
			r.log.WithField("path", abs).Warning("cannot stage a directory")
		default:
			set.Add(abs)
			added = append(added, abs)
			r.log.WithField("path", abs).Debug("staged file")
		}
	}

	if err = r.store.WriteStagingSet(set); err != nil {
		return nil, nil, err
	}
	return added, skipped, nil
}

// Remove takes files out of the staging set. The AllFiles sentinel
// empties the set.
// Paths that are not staged are skipped and reported.
// Removing the last path deletes the staging file itself, leaving the
// repository as if nothing had been staged.
// eginternals.ErrNoStagedFiles is returned when no staging file has
// been persisted. A persisted empty set is not an error, the call
// just skips every path
func (r *Repository) Remove(paths ...string) (removed, skipped []string, err error) {
	if len(paths) == 0 {
		return nil, nil, nil
	}

	exists, err := r.store.HasStagingSet()
	if err != nil {
		return nil, nil, err
	}
	if !exists {
		r.log.Error("unstage attempted with no staged files")
		return nil, nil, eginternals.ErrNoStagedFiles
	}

	set, err := r.store.StagingSet()
	if err != nil {
		return nil, nil, err
	}

	for _, p := range paths {
		if p == AllFiles {
			for _, f := range set.Paths() {
				set.Remove(f)
				removed = append(removed, f)
			}
			r.log.Debug("unstaged the whole staging set")
			continue
		}

		abs := r.resolvePath(p)
		if set.Remove(abs) {
			removed = append(removed, abs)
			r.log.WithField("path", abs).Debug("unstaged file")
		} else {
			skipped = append(skipped, abs)
			r.log.WithField("path", abs).Warning("cannot unstage a file that is not staged")
		}
	}

	if set.Len() == 0 {
		err = r.store.DeleteStagingSet()
	} else {
		err = r.store.WriteStagingSet(set)
	}
	if err != nil {
		return nil, nil, err
	}
	return removed, skipped, nil
}

// StagedFiles returns the paths currently staged, sorted
func (r *Repository) StagedFiles() ([]string, error) {
	set, err := r.store.StagingSet()
	if err != nil {
		return nil, err
	}
	return set.Paths(), nil
}
