package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/gnoverse/canon/internal/types"
)

func writeClaimFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCacheSetGet(t *testing.T) {
	dir := t.TempDir()
	claims := writeClaimFile(t, dir, "claims.sum", "1 = 2\n")

	cache, err := NewCache(filepath.Join(dir, "cache"), "")
	require.NoError(t, err)

	issues := []tt.Issue{{Rule: RuleUnbalancedClaim, Filename: claims}}
	require.NoError(t, cache.Set(claims, issues))

	got, ok := cache.Get(claims)
	require.True(t, ok)
	assert.Equal(t, issues, got)
}

func TestCacheInvalidatedOnFileChange(t *testing.T) {
	dir := t.TempDir()
	claims := writeClaimFile(t, dir, "claims.sum", "1 = 2\n")

	cache, err := NewCache(filepath.Join(dir, "cache"), "")
	require.NoError(t, err)
	require.NoError(t, cache.Set(claims, nil))

	writeClaimFile(t, dir, "claims.sum", "1 + 1 = 2\n")

	_, ok := cache.Get(claims)
	assert.False(t, ok)
}

func TestCacheInvalidatedByMaxAge(t *testing.T) {
	dir := t.TempDir()
	claims := writeClaimFile(t, dir, "claims.sum", "1 = 2\n")

	cache, err := NewCache(filepath.Join(dir, "cache"), "")
	require.NoError(t, err)
	require.NoError(t, cache.Set(claims, nil))

	cache.SetMaxAge(time.Nanosecond)
	time.Sleep(time.Millisecond)

	_, ok := cache.Get(claims)
	assert.False(t, ok)
}

func TestCacheInvalidatedByConfigChange(t *testing.T) {
	dir := t.TempDir()
	claims := writeClaimFile(t, dir, "claims.sum", "1 = 2\n")
	config := writeClaimFile(t, dir, "canon.yaml", "name: canon\n")

	cache, err := NewCache(filepath.Join(dir, "cache"), config)
	require.NoError(t, err)
	require.NoError(t, cache.Set(claims, nil))

	writeClaimFile(t, dir, "canon.yaml", "name: canon\nfold_constants: true\n")

	_, ok := cache.Get(claims)
	assert.False(t, ok)
}

func TestCachePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	claims := writeClaimFile(t, dir, "claims.sum", "1 = 2\n")
	cacheDir := filepath.Join(dir, "cache")

	first, err := NewCache(cacheDir, "")
	require.NoError(t, err)
	issues := []tt.Issue{{Rule: RuleUnbalancedClaim, Filename: claims}}
	require.NoError(t, first.Set(claims, issues))

	second, err := NewCache(cacheDir, "")
	require.NoError(t, err)

	got, ok := second.Get(claims)
	require.True(t, ok)
	assert.Equal(t, issues, got)
}

func TestCacheInvalidateAll(t *testing.T) {
	dir := t.TempDir()
	claims := writeClaimFile(t, dir, "claims.sum", "1 = 2\n")

	cache, err := NewCache(filepath.Join(dir, "cache"), "")
	require.NoError(t, err)
	require.NoError(t, cache.Set(claims, nil))

	cache.InvalidateAll()

	_, ok := cache.Get(claims)
	assert.False(t, ok)
}
