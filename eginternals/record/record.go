// Package record implements the commit record: the immutable text
// document describing one snapshot
package record

import (
	"bytes"
	"errors"
	"strings"

	"github.com/FoolCoder-code/easy-git/eginternals/eghash"
	"golang.org/x/xerrors"
)

// ErrRecordInvalid is returned when a commit record cannot be parsed
var ErrRecordInvalid = errors.New("commit record is invalid")

const (
	parentPrefix   = "HEAD:"
	marker         = "====="
	entrySeparator = ":::"
)

// Entry associates one working-tree file with the blob that captured
// its content at commit time
type Entry struct {
	// Path is the file's absolute path as recorded at commit time
	Path string
	// BlobID names the blob inside the commit's own blob directory
	BlobID eghash.Digest
}

// Record represents a commit record
type Record struct {
	parentID eghash.Digest
	message  string
	entries  []Entry
}

// New creates a new Record.
// A zero parentID marks a root commit
func New(parentID eghash.Digest, message string, entries []Entry) *Record {
	return &Record{
		parentID: parentID,
		message:  message,
		entries:  entries,
	}
}

// NewFromBytes creates a Record from its on-disk format
//
// A record has the following format:
//
// HEAD:{parent digest, empty for a root commit}
// =====
// {message, possibly over multiple lines}
// =====
// {absolute file path}:::{blob digest}
//
// Notes:
// - There are zero or more association lines, one per committed file
// - The message block is delimited by two marker lines, so a message
//   line that is itself "=====" closes the block early and cannot be
//   represented
func NewFromBytes(data []byte) (*Record, error) {
	if len(data) == 0 {
		return nil, xerrors.Errorf("record has no content: %w", ErrRecordInvalid)
	}

	lines := strings.Split(string(data), "\n")
	// the final newline produces an empty trailing element
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if !strings.HasPrefix(lines[0], parentPrefix) {
		return nil, xerrors.Errorf("first line %q is not a parent pointer: %w", lines[0], ErrRecordInvalid)
	}
	parentID := eghash.NullDigest
	if raw := strings.TrimPrefix(lines[0], parentPrefix); raw != "" {
		var err error
		parentID, err = eghash.NewDigestFromStr(raw)
		if err != nil {
			return nil, xerrors.Errorf("could not parse parent id %q: %w", raw, err)
		}
	}

	if len(lines) < 2 || lines[1] != marker {
		return nil, xerrors.Errorf("message block has no opening marker: %w", ErrRecordInvalid)
	}
	closing := -1
	for i := 2; i < len(lines); i++ {
		if lines[i] == marker {
			closing = i
			break
		}
	}
	if closing == -1 {
		return nil, xerrors.Errorf("message block has no closing marker: %w", ErrRecordInvalid)
	}
	message := strings.Join(lines[2:closing], "\n")

	var entries []Entry
	for i, line := range lines[closing+1:] {
		sep := strings.LastIndex(line, entrySeparator)
		if sep < 1 {
			return nil, xerrors.Errorf("association line %d is invalid: %w", i, ErrRecordInvalid)
		}
		id, err := eghash.NewDigestFromStr(line[sep+len(entrySeparator):])
		if err != nil {
			return nil, xerrors.Errorf("association line %d has an invalid blob id: %w", i, err)
		}
		entries = append(entries, Entry{
			Path:   line[:sep],
			BlobID: id,
		})
	}

	return &Record{
		parentID: parentID,
		message:  message,
		entries:  entries,
	}, nil
}

// ParentID returns the digest of the parent commit.
// The digest is Zero for a root commit
func (r *Record) ParentID() eghash.Digest {
	return r.parentID
}

// Message returns the commit's message
func (r *Record) Message() string {
	return r.message
}

// Entries returns the file/blob associations captured by the commit
func (r *Record) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Bytes returns the record in its on-disk format.
// NewFromBytes(r.Bytes()) returns a record equal to r
func (r *Record) Bytes() []byte {
	// Quick reminder that the Write* methods on bytes.Buffer never
	// fail, the error returned is always nil
	buf := new(bytes.Buffer)
	buf.WriteString(parentPrefix)
	if !r.parentID.IsZero() {
		buf.WriteString(r.parentID.String())
	}
	buf.WriteByte('\n')

	buf.WriteString(marker)
	buf.WriteByte('\n')
	buf.WriteString(r.message)
	buf.WriteByte('\n')
	buf.WriteString(marker)
	buf.WriteByte('\n')

	for _, e := range r.entries {
		buf.WriteString(e.Path)
		buf.WriteString(entrySeparator)
		buf.WriteString(e.BlobID.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
