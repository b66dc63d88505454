package ids

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_ProducesValidIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := New()
		require.Len(t, id, 26)
		require.True(t, Valid(id))
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestValid_Rejects(t *testing.T) {
	for _, s := range []string{"", "42", "no-es-ulid", "01ARZ3NDEKTSV4RRFFQ69G5FA"} {
		require.False(t, Valid(s), s)
	}
}
