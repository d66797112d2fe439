package easygit

import (
	"errors"

	"github.com/FoolCoder-code/easy-git/eginternals"
	"github.com/FoolCoder-code/easy-git/eginternals/eghash"
)

// Status describes the current state of a repository
type Status struct {
	// Staged contains the staged file paths, sorted
	Staged []string
	// Chain contains the commit digests from HEAD down, most recent
	// first. Empty when the repository has no commits
	Chain []eghash.Digest
}

// Status returns the staged files and the commit chain from HEAD.
// maxDepth caps the chain length; zero or less falls back to
// DefaultSearchDepth
func (r *Repository) Status(maxDepth int) (*Status, error) {
	staged, err := r.StagedFiles()
	if err != nil {
		return nil, err
	}

	chain, err := r.Chain(maxDepth)
	if err != nil && !errors.Is(err, eginternals.ErrNoCommits) {
		return nil, err
	}

	return &Status{
		Staged: staged,
		Chain:  chain,
	}, nil
}
