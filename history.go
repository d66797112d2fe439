package easygit

import (
	"errors"

	"github.com/FoolCoder-code/easy-git/eginternals"
	"github.com/FoolCoder-code/easy-git/eginternals/eghash"
)

// Search walks the parent links down from start and returns the
// digests crossed on the way, start first.
// At most maxDepth records are read; zero or less falls back to
// DefaultSearchDepth.
// A hole further down the chain (a parent whose record is gone, a
// crashed commit for instance) ends the walk: the hole goes to the
// repo log and the digests collected so far are still returned.
// eginternals.ErrCommitNotFound is returned when start itself has no
// record
func (r *Repository) Search(start eghash.Digest, maxDepth int) (chain []eghash.Digest, err error) {
	if maxDepth <= 0 {
		maxDepth = DefaultSearchDepth
	}

	current := start
	for depth := 0; depth < maxDepth; depth++ {
		rec, err := r.store.Record(current)
		if err != nil {
			if !errors.Is(err, eginternals.ErrCommitNotFound) {
				return nil, err
			}
			if depth == 0 {
				r.log.WithField("commit", current.String()).Error("commit does not exist")
				return nil, err
			}
			r.log.WithField("commit", current.String()).Error("chain references a missing record")
			return chain, nil
		}
		chain = append(chain, current)

		parent := rec.ParentID()
		if parent.IsZero() {
			break
		}
		current = parent
	}
	return chain, nil
}

// Chain is Search starting at HEAD.
// eginternals.ErrNoCommits is returned when the repository has no
// commits
func (r *Repository) Chain(maxDepth int) ([]eghash.Digest, error) {
	head, err := r.store.Head()
	if err != nil {
		if errors.Is(err, eginternals.ErrNoCommits) {
			r.log.Error("no commit recorded yet")
		}
		return nil, err
	}
	return r.Search(head, maxDepth)
}
