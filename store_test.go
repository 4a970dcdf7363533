package mdctx

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStore_ZeroValueUsable(t *testing.T) {
	var s MapStore

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Put("k", ptr("v"))

	v, ok := s.Get("k")
	require.True(t, ok)
	require.NotNil(t, v)
	assert.Equal(t, "v", *v)
}

func TestMapStore_PutNullMarker(t *testing.T) {
	s := NewMapStore()
	s.Put("k", nil)

	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestMapStore_Remove(t *testing.T) {
	s := NewMapStore()
	s.Put("k", ptr("v"))
	s.Remove("k")

	_, ok := s.Get("k")
	assert.False(t, ok)

	// Removing an absent key is a no-op.
	s.Remove("k")
}

func TestMapStore_Snapshot_InitializesFreshStore(t *testing.T) {
	s := NewMapStore()

	snap := s.Snapshot()
	require.NotNil(t, snap)
	assert.Empty(t, snap)
	assert.NotNil(t, s.entries)
}

func TestMapStore_Snapshot_ReturnsCopy(t *testing.T) {
	s := NewMapStore()
	s.Put("k", ptr("v"))

	snap := s.Snapshot()
	snap["k"] = ptr("mutated")
	snap["extra"] = nil

	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", *v)

	_, ok = s.Get("extra")
	assert.False(t, ok)
}

func TestSynchronized_DelegatesToWrapped(t *testing.T) {
	s := Synchronized(NewMapStore())

	s.Put("k", ptr("v"))

	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", *v)

	assert.Len(t, s.Snapshot(), 1)

	s.Remove("k")
	_, ok = s.Get("k")
	assert.False(t, ok)
}

func TestSynchronized_ConcurrentAccess(t *testing.T) {
	s := Synchronized(NewMapStore())

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			key := fmt.Sprintf("key-%d", i)
			s.Put(key, ptr("v"))
			s.Get(key)
			s.Snapshot()
		}()
	}
	wg.Wait()

	assert.Len(t, s.Snapshot(), 16)
}

// ptr is a test helper for building optional string values.
func ptr(s string) *string {
	return &s
}
