// Package staging implements the staging set: the working-tree files
// selected to be part of the next commit
package staging

import (
	"bytes"
	"sort"
	"strings"
)

// Set represents the staging set.
//
// A set is not safe for concurrent use
type Set struct {
	paths map[string]struct{}
}

// NewSet returns an empty staging set
func NewSet() *Set {
	return &Set{
		paths: map[string]struct{}{},
	}
}

// NewSetFromBytes creates a Set from its on-disk format: one absolute
// file path per line. Empty lines are skipped, so any data, including
// no data at all, yields a valid set
func NewSetFromBytes(data []byte) *Set {
	s := NewSet()
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		s.paths[line] = struct{}{}
	}
	return s
}

// Add inserts a path in the set. Adding a path already in the set is
// a no-op
func (s *Set) Add(path string) {
	s.paths[path] = struct{}{}
}

// Remove takes a path out of the set and reports whether the path was
// in the set
func (s *Set) Remove(path string) bool {
	if _, ok := s.paths[path]; !ok {
		return false
	}
	delete(s.paths, path)
	return true
}

// Contains reports whether a path is in the set
func (s *Set) Contains(path string) bool {
	_, ok := s.paths[path]
	return ok
}

// Len returns the number of paths in the set
func (s *Set) Len() int {
	return len(s.paths)
}

// Paths returns the paths in the set, sorted
func (s *Set) Paths() []string {
	out := make([]string, 0, len(s.paths))
	for p := range s.paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Bytes returns the set in its on-disk format.
// Paths are written sorted so the same set always serializes to the
// same bytes
func (s *Set) Bytes() []byte {
	buf := new(bytes.Buffer)
	for _, p := range s.Paths() {
		buf.WriteString(p)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
