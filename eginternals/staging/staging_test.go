package staging_test

import (
	"testing"

	"github.com/FoolCoder-code/easy-git/eginternals/staging"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	t.Parallel()

	t.Run("add and remove", func(t *testing.T) {
		t.Parallel()

		s := staging.NewSet()
		assert.Equal(t, 0, s.Len())

		s.Add("/work/a.txt")
		s.Add("/work/b.txt")
		s.Add("/work/a.txt")
		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Contains("/work/a.txt"))

		assert.True(t, s.Remove("/work/a.txt"))
		assert.False(t, s.Remove("/work/a.txt"))
		assert.False(t, s.Contains("/work/a.txt"))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("paths are sorted", func(t *testing.T) {
		t.Parallel()

		s := staging.NewSet()
		s.Add("/work/c.txt")
		s.Add("/work/a.txt")
		s.Add("/work/b.txt")
		assert.Equal(t, []string{"/work/a.txt", "/work/b.txt", "/work/c.txt"}, s.Paths())
	})
}

func TestNewSetFromBytes(t *testing.T) {
	t.Parallel()

	t.Run("no data yields an empty set", func(t *testing.T) {
		t.Parallel()

		s := staging.NewSetFromBytes(nil)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("empty lines are skipped", func(t *testing.T) {
		t.Parallel()

		s := staging.NewSetFromBytes([]byte("/work/a.txt\n\n/work/b.txt\n"))
		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Contains("/work/a.txt"))
		assert.True(t, s.Contains("/work/b.txt"))
	})
}

func TestBytes(t *testing.T) {
	t.Parallel()

	t.Run("sorted output", func(t *testing.T) {
		t.Parallel()

		s := staging.NewSet()
		s.Add("/work/b.txt")
		s.Add("/work/a.txt")
		assert.Equal(t, "/work/a.txt\n/work/b.txt\n", string(s.Bytes()))
	})

	t.Run("empty set serializes to no bytes", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, staging.NewSet().Bytes())
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		s := staging.NewSet()
		s.Add("/work/a.txt")
		s.Add("/work/sub/b.txt")

		parsed := staging.NewSetFromBytes(s.Bytes())
		require.Equal(t, s.Paths(), parsed.Paths())
	})
}

func TestSetProperties(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("adding a path twice is the same as adding it once", prop.ForAll(
		func(names []string) bool {
			once := staging.NewSet()
			twice := staging.NewSet()
			for _, n := range names {
				once.Add("/work/" + n)
				twice.Add("/work/" + n)
				twice.Add("/work/" + n)
			}
			return string(once.Bytes()) == string(twice.Bytes())
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.Property("sets survive a serialization round trip", prop.ForAll(
		func(names []string) bool {
			s := staging.NewSet()
			for _, n := range names {
				s.Add("/work/" + n)
			}
			parsed := staging.NewSetFromBytes(s.Bytes())
			if parsed.Len() != s.Len() {
				return false
			}
			for _, p := range s.Paths() {
				if !parsed.Contains(p) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.TestingRun(t)
}
