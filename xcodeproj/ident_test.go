package xcodeproj

import (
	"encoding/binary"
	"errors"
	"regexp"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
)

// sequentialSource yields deterministic, distinct UUIDs. The counter sits
// in the leading bytes so it survives the 24-character truncation.
func sequentialSource() IdentSource {
	var n uint32
	return func() (uuid.UUID, error) {
		n++
		var u uuid.UUID
		binary.BigEndian.PutUint32(u[0:4], n)
		return u, nil
	}
}

func TestAllocatorTokenShape(t *testing.T) {
	alloc := NewAllocator()
	ident, err := alloc.Next()
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^[0-9A-F]{24}$`), ident)
}

func TestAllocatorUniqueness(t *testing.T) {
	alloc := NewAllocator()
	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		ident, err := alloc.Next()
		require.NoError(t, err)
		_, dup := seen[ident]
		require.False(t, dup, "identifier %s allocated twice", ident)
		seen[ident] = struct{}{}
	}
	require.Equal(t, 10000, alloc.Count())
}

func TestAllocatorRetriesOnCollision(t *testing.T) {
	first := uuid.Must(uuid.FromString("11111111-1111-1111-1111-111111111111"))
	second := uuid.Must(uuid.FromString("22222222-2222-2222-2222-222222222222"))
	sequence := []uuid.UUID{first, first, second}

	calls := 0
	alloc := NewAllocatorWithSource(func() (uuid.UUID, error) {
		u := sequence[calls]
		calls++
		return u, nil
	})

	a, err := alloc.Next()
	require.NoError(t, err)
	b, err := alloc.Next()
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.Equal(t, 3, calls, "expected a retry after the colliding draw")
}

func TestAllocatorSourceFailure(t *testing.T) {
	alloc := NewAllocatorWithSource(func() (uuid.UUID, error) {
		return uuid.UUID{}, errors.New("entropy exhausted")
	})
	_, err := alloc.Next()
	require.Error(t, err)
	require.Contains(t, err.Error(), "identifier source unavailable")
}
