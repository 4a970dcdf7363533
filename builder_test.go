package mdctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPut_CommitsValue(t *testing.T) {
	store := NewMapStore()

	_, err := New(store).Put("foo", "bar").Commit()
	require.NoError(t, err)

	v, ok := store.Get("foo")
	require.True(t, ok)
	assert.Equal(t, "bar", *v)
}

func TestPut_OverwritesEarlierStage(t *testing.T) {
	store := NewMapStore()

	_, err := New(store).Put("k", "first").Put("k", "second").Commit()
	require.NoError(t, err)

	v, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", *v)
}

func TestPutPtr_NilCommitsNullMarker(t *testing.T) {
	store := NewMapStore()

	_, err := New(store).PutPtr("k", nil).Commit()
	require.NoError(t, err)

	v, ok := store.Get("k")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestPutOrDefault(t *testing.T) {
	store := NewMapStore()

	_, err := New(store).
		PutOrDefault("with_value", ptr("v"), "default").
		PutOrDefault("without_value", nil, "default").
		Commit()
	require.NoError(t, err)

	v, ok := store.Get("with_value")
	require.True(t, ok)
	assert.Equal(t, "v", *v)

	v, ok = store.Get("without_value")
	require.True(t, ok)
	assert.Equal(t, "default", *v)
}

func TestPutIfPresent_NilIsNoOp(t *testing.T) {
	store := NewMapStore()

	_, err := New(store).PutIfPresent("k", nil).Commit()
	require.NoError(t, err)

	_, ok := store.Get("k")
	assert.False(t, ok)
}

func TestPutIfPresent_NonNilStages(t *testing.T) {
	store := NewMapStore()

	_, err := New(store).PutIfPresent("k", ptr("v")).Commit()
	require.NoError(t, err)

	v, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", *v)
}

func TestRemove_CommitDeletesKey(t *testing.T) {
	store := NewMapStore()
	store.Put("k", ptr("v"))

	_, err := New(store).Remove("k").Commit()
	require.NoError(t, err)

	_, ok := store.Get("k")
	assert.False(t, ok)
}

func TestClear_StagesKeysPresentAtCallTime(t *testing.T) {
	store := NewMapStore()
	store.Put("a", ptr("1"))
	store.Put("b", nil)

	b := New(store).Clear()

	// Added after Clear was called, so not staged for removal.
	store.Put("late", ptr("2"))

	_, err := b.Commit()
	require.NoError(t, err)

	_, ok := store.Get("a")
	assert.False(t, ok)
	_, ok = store.Get("b")
	assert.False(t, ok)

	v, ok := store.Get("late")
	require.True(t, ok)
	assert.Equal(t, "2", *v)
}

func TestClear_EmptyStore(t *testing.T) {
	store := NewMapStore()

	txn, err := New(store).Clear().Commit()
	require.NoError(t, err)
	require.NoError(t, txn.Restore())

	assert.Empty(t, store.Snapshot())
}

func TestCommit_Twice_ReturnsAlreadyCommitted(t *testing.T) {
	b := New(NewMapStore()).Put("k", "v")

	_, err := b.Commit()
	require.NoError(t, err)

	_, err = b.Commit()
	assert.ErrorIs(t, err, ErrAlreadyCommitted)
}

func TestMutatorAfterCommit_Panics(t *testing.T) {
	store := NewMapStore()

	mutations := map[string]func(b *Builder){
		"Put":          func(b *Builder) { b.Put("k", "v") },
		"PutPtr":       func(b *Builder) { b.PutPtr("k", nil) },
		"PutOrDefault": func(b *Builder) { b.PutOrDefault("k", nil, "d") },
		"PutIfPresent": func(b *Builder) { b.PutIfPresent("k", nil) },
		"Remove":       func(b *Builder) { b.Remove("k") },
		"Clear":        func(b *Builder) { b.Clear() },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			b := New(store).Put("seed", "v")
			_, err := b.Commit()
			require.NoError(t, err)

			assert.PanicsWithValue(t, ErrAlreadyCommitted, func() { mutate(b) })
		})
	}
}

func TestCommit_EmptyBuilder(t *testing.T) {
	store := NewMapStore()
	store.Put("untouched", ptr("v"))

	txn, err := New(store).Commit()
	require.NoError(t, err)
	require.NoError(t, txn.Restore())

	v, ok := store.Get("untouched")
	require.True(t, ok)
	assert.Equal(t, "v", *v)
}
