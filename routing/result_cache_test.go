package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireroute/core"
	"wireroute/wire"
)

func TestResultCache_GetPut(t *testing.T) {
	rc := newResultCache(16)
	key := cacheKey{From: "a", To: "b", Wire: wire.FPL18x2, Mode: core.ModeShortestPath}

	_, found := rc.get(key)
	assert.False(t, found)

	rc.put(key, Result{FromID: "a", ToID: "b", LengthFt: 42})

	got, found := rc.get(key)
	require.True(t, found)
	assert.Equal(t, 42.0, got.LengthFt)

	stats := rc.stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestResultCache_KeyIncludesWireAndMode(t *testing.T) {
	rc := newResultCache(16)
	base := cacheKey{From: "a", To: "b", Wire: wire.FPL18x2, Mode: core.ModeShortestPath}
	rc.put(base, Result{LengthFt: 1})

	otherWire := base
	otherWire.Wire = wire.THHN12AWG
	_, found := rc.get(otherWire)
	assert.False(t, found)

	otherMode := base
	otherMode.Mode = core.ModeFewestTurns
	_, found = rc.get(otherMode)
	assert.False(t, found)
}

func TestResultCache_ClearCountsInvalidation(t *testing.T) {
	rc := newResultCache(16)
	key := cacheKey{From: "a", To: "b"}
	rc.put(key, Result{})

	rc.clear()

	_, found := rc.get(key)
	assert.False(t, found)
	assert.Equal(t, int64(1), rc.stats().Invalidations)
	assert.Equal(t, 0, rc.stats().Size)
}

func TestResultCache_EvictsWhenFull(t *testing.T) {
	rc := newResultCache(2)
	rc.put(cacheKey{From: "a"}, Result{})
	rc.put(cacheKey{From: "b"}, Result{})
	rc.put(cacheKey{From: "c"}, Result{})

	assert.LessOrEqual(t, rc.stats().Size, 2)
}

func TestCacheStats_String(t *testing.T) {
	s := CacheStats{Hits: 3, Misses: 1, Invalidations: 2, Size: 5}
	assert.Contains(t, s.String(), "hits=3")
	assert.Contains(t, s.String(), "hitRate=75.0%")
}
