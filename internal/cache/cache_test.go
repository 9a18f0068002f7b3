package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "check.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestMissReturnsNotFound(t *testing.T) {
	c := openTestCache(t)
	_, found, err := c.Get(HashSource("x = 1"))
	require.NoError(t, err)
	require.False(t, found)
}

func TestPutThenGetRoundTrips(t *testing.T) {
	c := openTestCache(t)
	key := HashSource("x = 1")
	require.NoError(t, c.Put(key, Result{Passed: true}))
	result, found, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, result.Passed)
}

func TestFailuresAreRememberedWithTheirMessage(t *testing.T) {
	c := openTestCache(t)
	key := HashSource(`x = 1 ++ 2`)
	require.NoError(t, c.Put(key, Result{Passed: false, Message: "ConstraintsNotCompatible"}))
	result, found, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, found)
	require.False(t, result.Passed)
	require.Equal(t, "ConstraintsNotCompatible", result.Message)
}

func TestDifferentSourcesGetDifferentKeys(t *testing.T) {
	require.NotEqual(t, HashSource("x = 1"), HashSource("x = 2"))
}

func TestPutOverwritesPreviousOutcome(t *testing.T) {
	c := openTestCache(t)
	key := HashSource("x = 1")
	require.NoError(t, c.Put(key, Result{Passed: false, Message: "old"}))
	require.NoError(t, c.Put(key, Result{Passed: true}))
	result, _, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, result.Passed)
}
