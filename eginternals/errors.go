package eginternals

import "errors"

// ErrCommitNotFound is an error corresponding to a commit not being
// found
var ErrCommitNotFound = errors.New("commit not found")

// ErrBlobNotFound is an error corresponding to a blob not being found
// in a commit's blob directory
var ErrBlobNotFound = errors.New("blob not found")

// ErrNoCommits is an error returned when the repository has no
// commits yet
var ErrNoCommits = errors.New("no commits yet")

// ErrNoStagedFiles is an error returned when an operation needs
// staged files but the staging set is empty
var ErrNoStagedFiles = errors.New("no files staged")
