package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	all := All()
	require.Len(t, all, 15)
	assert.Equal(t, DefaultID, all[0].ID)

	seen := map[string]bool{}
	for _, id := range IDs() {
		assert.False(t, seen[id], "duplicate theme id %s", id)
		seen[id] = true
	}

	nord, ok := Lookup("nord")
	require.True(t, ok)
	assert.Equal(t, "Nord", nord.Name)
	assert.Equal(t, 7, Index("nord"))

	_, ok = Lookup("nope")
	assert.False(t, ok)
	assert.Equal(t, -1, Index("nope"))
}
