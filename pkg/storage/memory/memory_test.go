package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadDelete(t *testing.T) {
	store := New()

	_, ok, err := store.Load("materials")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save("materials", []byte("payload")))

	data, ok, err := store.Load("materials")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("payload"), data)

	require.NoError(t, store.Delete("materials"))
	_, ok, err = store.Load("materials")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadReturnsCopy(t *testing.T) {
	store := New()
	require.NoError(t, store.Save("users", []byte("abc")))

	data, _, err := store.Load("users")
	require.NoError(t, err)
	data[0] = 'x'

	again, _, err := store.Load("users")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again, "mutating a loaded value must not affect the store")
}

func TestKeysAndLen(t *testing.T) {
	store := New()
	require.NoError(t, store.Save("a", nil))
	require.NoError(t, store.Save("b", nil))

	assert.Equal(t, 2, store.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, store.Keys())
}

func TestConcurrentAccess(t *testing.T) {
	store := New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = store.Save("shared", []byte("v"))
				_, _, _ = store.Load("shared")
			}
		}()
	}
	wg.Wait()

	data, ok, err := store.Load("shared")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), data)
}
