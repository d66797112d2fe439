package easygit

import (
	"errors"
	"time"

	"github.com/FoolCoder-code/easy-git/eginternals"
	"github.com/FoolCoder-code/easy-git/eginternals/eghash"
	"github.com/FoolCoder-code/easy-git/eginternals/record"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Commit captures the content of every staged file into a new commit
// and moves HEAD to it.
//
// The commit digest is derived from the commit time, not from the
// captured content, so committing twice within the same second fails
// on the second commit.
//
// HEAD moves before the blobs and the record land on disk. A crash in
// between leaves HEAD pointing at a record that does not exist;
// Search, Status and Restore then report the commit missing.
//
// The staging set survives the commit so the same files can be
// committed again without re-staging them.
// eginternals.ErrNoStagedFiles is returned when no staging file has
// been persisted. A persisted empty set still commits and produces a
// commit that captures no files
func (r *Repository) Commit(message string) (eghash.Digest, error) {
	exists, err := r.store.HasStagingSet()
	if err != nil {
		return eghash.NullDigest, err
	}
	if !exists {
		r.log.Error("commit attempted with no staged files")
		return eghash.NullDigest, eginternals.ErrNoStagedFiles
	}

	set, err := r.store.StagingSet()
	if err != nil {
		return eghash.NullDigest, err
	}

	commitID := eghash.CommitDigest(time.Now(), eginternals.StagingPath(r.cfg))

	parent, err := r.store.Head()
	if err != nil && !errors.Is(err, eginternals.ErrNoCommits) {
		return eghash.NullDigest, err
	}

	if err = r.store.WriteHead(commitID); err != nil {
		return eghash.NullDigest, err
	}
	if err = r.store.InitBlobDir(commitID); err != nil {
		r.log.WithError(err).WithField("commit", commitID.String()).Error("commit collided with an existing one")
		return eghash.NullDigest, xerrors.Errorf("could not create commit %s: %w", commitID.String(), err)
	}

	entries := make([]record.Entry, 0, set.Len())
	for _, path := range set.Paths() {
		content, err := afero.ReadFile(r.cfg.FS, path)
		if err != nil {
			r.log.WithError(err).WithField("path", path).Error("staged file cannot be read")
			return eghash.NullDigest, xerrors.Errorf("could not read staged file %s: %w", path, err)
		}
		blobID := eghash.BlobDigest(path, content)
		if err = r.store.WriteBlob(commitID, blobID, content); err != nil {
			return eghash.NullDigest, err
		}
		entries = append(entries, record.Entry{Path: path, BlobID: blobID})
	}

	// the record lands last, its presence marks a fully written commit
	if err = r.store.WriteRecord(commitID, record.New(parent, message, entries)); err != nil {
		return eghash.NullDigest, err
	}

	r.log.WithField("commit", commitID.String()).Info("created commit")
	return commitID, nil
}
