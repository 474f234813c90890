package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGenerator(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := Generator{}.NextID()
		require.NoError(t, err)

		parsed, err := uuid.Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, uuid.Version(7), parsed.Version())

		_, dup := seen[id.String()]
		require.False(t, dup)
		seen[id.String()] = struct{}{}
	}
}
