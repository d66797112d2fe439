package easygit

import (
	"errors"
	"path/filepath"

	"github.com/FoolCoder-code/easy-git/eginternals"
	"github.com/FoolCoder-code/easy-git/eginternals/eghash"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Restore writes the files captured by a commit back to the paths
// they were recorded at, overwriting whatever is there now.
// Nothing is written when the commit does not exist.
// Files are restored in record order, so an error midway leaves the
// earlier files restored.
// eginternals.ErrCommitNotFound is returned on an unknown target
func (r *Repository) Restore(target eghash.Digest) (restored []string, err error) {
	rec, err := r.store.Record(target)
	if err != nil {
		if errors.Is(err, eginternals.ErrCommitNotFound) {
			r.log.WithField("commit", target.String()).Error("restore target does not exist")
		}
		return nil, err
	}

	for _, entry := range rec.Entries() {
		content, err := r.store.Blob(target, entry.BlobID)
		if err != nil {
			r.log.WithError(err).WithField("path", entry.Path).Error("captured content is missing")
			return restored, err
		}
		// the file's directory may be gone too
		if err = r.cfg.FS.MkdirAll(filepath.Dir(entry.Path), 0o750); err != nil {
			return restored, xerrors.Errorf("could not restore %s: %w", entry.Path, err)
		}
		if err = afero.WriteFile(r.cfg.FS, entry.Path, content, 0o644); err != nil {
			return restored, xerrors.Errorf("could not restore %s: %w", entry.Path, err)
		}
		restored = append(restored, entry.Path)
	}

	r.log.WithField("commit", target.String()).WithField("files", len(restored)).Info("restored commit")
	return restored, nil
}

// RestoreHead is Restore targeting the commit HEAD points at.
// eginternals.ErrNoCommits is returned when the repository has no
// commits
func (r *Repository) RestoreHead() ([]string, error) {
	head, err := r.store.Head()
	if err != nil {
		if errors.Is(err, eginternals.ErrNoCommits) {
			r.log.Error("no commit recorded yet")
		}
		return nil, err
	}
	return r.Restore(head)
}
