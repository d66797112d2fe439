package backend

import (
	"os"

	"github.com/FoolCoder-code/easy-git/eginternals"
	"github.com/FoolCoder-code/easy-git/eginternals/staging"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// StagingSet returns the current staging set.
// A repository without one yields an empty set
func (b *Backend) StagingSet() (*staging.Set, error) {
	data, err := afero.ReadFile(b.fs, eginternals.StagingPath(b.config))
	if err != nil {
		if os.IsNotExist(err) {
			return staging.NewSet(), nil
		}
		return nil, xerrors.Errorf("could not read the staging set: %w", err)
	}
	return staging.NewSetFromBytes(data), nil
}

// HasStagingSet returns whether a staging set is currently persisted.
// An empty persisted set and an absent one are different states, an
// empty one still allows committing
func (b *Backend) HasStagingSet() (bool, error) {
	exists, err := afero.Exists(b.fs, eginternals.StagingPath(b.config))
	if err != nil {
		return false, xerrors.Errorf("could not check the staging set: %w", err)
	}
	return exists, nil
}

// WriteStagingSet persists the staging set
func (b *Backend) WriteStagingSet(s *staging.Set) error {
	if err := afero.WriteFile(b.fs, eginternals.StagingPath(b.config), s.Bytes(), 0o644); err != nil {
		return xerrors.Errorf("could not write the staging set: %w", err)
	}
	return nil
}

// DeleteStagingSet removes the staging set from the disk.
// Deleting an absent set is a no-op
func (b *Backend) DeleteStagingSet() error {
	err := b.fs.Remove(eginternals.StagingPath(b.config))
	if err != nil && !os.IsNotExist(err) {
		return xerrors.Errorf("could not delete the staging set: %w", err)
	}
	return nil
}
