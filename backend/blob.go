package backend

import (
	"os"

	"github.com/FoolCoder-code/easy-git/eginternals"
	"github.com/FoolCoder-code/easy-git/eginternals/eghash"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// InitBlobDir creates the directory holding the blobs of a commit.
//
// Commit digests are derived from the commit time with a one second
// resolution, so two commits created the same second share a digest.
// The second Mkdir fails on the existing directory, which surfaces
// the collision instead of silently mixing the blobs of two commits
func (b *Backend) InitBlobDir(commitID eghash.Digest) error {
	if err := b.fs.Mkdir(eginternals.BlobDirPath(b.config, commitID), 0o750); err != nil {
		return xerrors.Errorf("could not create the blob directory of %s: %w", commitID.String(), err)
	}
	return nil
}

// WriteBlob stores the captured content of one file inside a commit's
// blob directory
func (b *Backend) WriteBlob(commitID, blobID eghash.Digest, content []byte) error {
	if err := afero.WriteFile(b.fs, eginternals.BlobPath(b.config, commitID, blobID), content, 0o644); err != nil {
		return xerrors.Errorf("could not write blob %s of %s: %w", blobID.String(), commitID.String(), err)
	}
	return nil
}

// Blob returns the content stored under blobID in a commit's blob
// directory
func (b *Backend) Blob(commitID, blobID eghash.Digest) ([]byte, error) {
	data, err := afero.ReadFile(b.fs, eginternals.BlobPath(b.config, commitID, blobID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, xerrors.Errorf("blob %s of %s: %w", blobID.String(), commitID.String(), eginternals.ErrBlobNotFound)
		}
		return nil, xerrors.Errorf("could not read blob %s of %s: %w", blobID.String(), commitID.String(), err)
	}
	return data, nil
}
