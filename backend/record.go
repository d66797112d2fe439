package backend

import (
	"os"

	"github.com/FoolCoder-code/easy-git/eginternals"
	"github.com/FoolCoder-code/easy-git/eginternals/eghash"
	"github.com/FoolCoder-code/easy-git/eginternals/record"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Record returns the commit record that has the given id
// This method can be called concurrently
func (b *Backend) Record(id eghash.Digest) (*record.Record, error) {
	key := id.Bytes()
	b.recordMu.Lock(key)
	defer b.recordMu.Unlock(key)

	if r, found := b.records.Get(id); found {
		return r, nil
	}

	data, err := afero.ReadFile(b.fs, eginternals.RecordPath(b.config, id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, xerrors.Errorf("commit %s: %w", id.String(), eginternals.ErrCommitNotFound)
		}
		return nil, xerrors.Errorf("could not read the record of %s: %w", id.String(), err)
	}
	r, err := record.NewFromBytes(data)
	if err != nil {
		return nil, xerrors.Errorf("could not parse the record of %s: %w", id.String(), err)
	}
	b.records.Add(id, r)
	return r, nil
}

// WriteRecord persists a commit record under the given id.
// The id is not derived from the record's content, computing it is
// the caller's job
func (b *Backend) WriteRecord(id eghash.Digest, r *record.Record) error {
	if err := afero.WriteFile(b.fs, eginternals.RecordPath(b.config, id), r.Bytes(), 0o644); err != nil {
		return xerrors.Errorf("could not write the record of %s: %w", id.String(), err)
	}
	b.records.Add(id, r)
	return nil
}
