package memcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressSlot(t *testing.T) {
	store := NewProgressStore()

	_, ok := store.Get()
	assert.False(t, ok, "empty slot should report no snapshot")

	store.Set(ImportProgress{Current: 10, Total: 40, Status: ImportRunning, Message: "working"})
	p, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, 10, p.Current)
	assert.Equal(t, ImportRunning, p.Status)

	// Last write wins.
	store.Set(ImportProgress{Current: 40, Total: 40, Status: ImportCompleted})
	p, _ = store.Get()
	assert.Equal(t, ImportCompleted, p.Status)

	store.Clear()
	_, ok = store.Get()
	assert.False(t, ok)
}
