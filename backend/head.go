package backend

import (
	"os"
	"strings"

	"github.com/FoolCoder-code/easy-git/eginternals"
	"github.com/FoolCoder-code/easy-git/eginternals/eghash"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Head returns the digest of the most recent commit.
// eginternals.ErrNoCommits is returned if the repository has none
func (b *Backend) Head() (eghash.Digest, error) {
	data, err := afero.ReadFile(b.fs, eginternals.HeadPath(b.config))
	if err != nil {
		if os.IsNotExist(err) {
			return eghash.NullDigest, eginternals.ErrNoCommits
		}
		return eghash.NullDigest, xerrors.Errorf("could not read HEAD: %w", err)
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return eghash.NullDigest, eginternals.ErrNoCommits
	}
	id, err := eghash.NewDigestFromStr(raw)
	if err != nil {
		return eghash.NullDigest, xerrors.Errorf("could not parse HEAD %q: %w", raw, err)
	}
	return id, nil
}

// WriteHead makes id the most recent commit
func (b *Backend) WriteHead(id eghash.Digest) error {
	content := id.String() + "\n"
	if err := afero.WriteFile(b.fs, eginternals.HeadPath(b.config), []byte(content), 0o644); err != nil {
		return xerrors.Errorf("could not write HEAD: %w", err)
	}
	return nil
}
