package skills_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_FastPathSkipsRescan(t *testing.T) {
	f := newFixture()
	r := f.record("Fireball", []stat{{"DPS", 100}}, 0, true, 0)
	owner := staticOwner{base: f.owner([]uint64{r})}
	_, cache := f.scanner()

	first := cache.Lookup(owner, false, nil)
	require.Len(t, first, 1)

	before := f.img.reads
	second := cache.Lookup(owner, false, nil)
	delta := f.img.reads - before

	assert.Equal(t, first, second)
	// An unchanged boundary pair costs exactly the two boundary pointer
	// reads; the element vector and records are never touched again.
	assert.Equal(t, 2, delta)
}

func TestCache_BoundaryChangeForcesRebuild(t *testing.T) {
	f := newFixture()
	r1 := f.record("Fireball", []stat{{"DPS", 100}}, 0, true, 0)
	base := f.owner([]uint64{r1})
	owner := staticOwner{base: base}
	_, cache := f.scanner()

	first := cache.Lookup(owner, false, nil)
	require.Len(t, first, 1)

	// The remote process appends a skill: the end boundary moves.
	r2 := f.record("Spark", []stat{{"DPS", 40}}, 0, true, 0)
	f.growVector(base, r2)

	second := cache.Lookup(owner, false, nil)
	require.Len(t, second, 2)
	assert.NotNil(t, second["spark"])
}

func TestCache_ForceFullRebuilds(t *testing.T) {
	f := newFixture()
	r := f.record("Fireball", []stat{{"DPS", 100}}, 0, true, 0)
	owner := staticOwner{base: f.owner([]uint64{r})}
	_, cache := f.scanner()

	cache.Lookup(owner, false, nil)
	before := f.img.reads
	cache.Lookup(owner, true, nil)

	assert.Greater(t, f.img.reads-before, 2, "forceFull must hit the vector again")
}

func TestCache_InterestFilterDoesNotMutate(t *testing.T) {
	f := newFixture()
	fb := f.record("Fireball", []stat{{"DPS", 100}}, 0, true, 0)
	sp := f.record("Spark", []stat{{"DPS", 40}}, 0, true, 0)
	owner := staticOwner{base: f.owner([]uint64{fb, sp})}
	_, cache := f.scanner()

	filteredView := cache.Lookup(owner, false, []string{"Fireball"})
	require.Len(t, filteredView, 1)
	assert.NotNil(t, filteredView["fireball"])

	full := cache.Lookup(owner, false, nil)
	assert.Len(t, full, 2, "filtering must not shrink the cached mapping")
}

func TestCache_ReturnedMappingIsACopy(t *testing.T) {
	f := newFixture()
	fb := f.record("Fireball", []stat{{"DPS", 100}}, 0, true, 0)
	sp := f.record("Spark", []stat{{"DPS", 40}}, 0, true, 0)
	owner := staticOwner{base: f.owner([]uint64{fb, sp})}
	_, cache := f.scanner()

	first := cache.Lookup(owner, false, nil)
	require.Len(t, first, 2)
	delete(first, "spark")
	first["fireball"] = nil

	before := f.img.reads
	second := cache.Lookup(owner, false, nil)

	assert.Equal(t, 2, f.img.reads-before, "a mutated result must not spoil the fast path")
	require.Len(t, second, 2, "caller mutations must not reach the cached mapping")
	assert.NotNil(t, second["fireball"])
}

func TestCache_UnresolvableOwnerYieldsEmptyMapping(t *testing.T) {
	f := newFixture()
	_, cache := f.scanner()

	rows := cache.Lookup(staticOwner{base: 0}, false, nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestCache_InvalidateForcesRescan(t *testing.T) {
	f := newFixture()
	r := f.record("Fireball", []stat{{"DPS", 100}}, 0, true, 0)
	owner := staticOwner{base: f.owner([]uint64{r})}
	_, cache := f.scanner()

	cache.Lookup(owner, false, nil)
	cache.Invalidate(owner)

	before := f.img.reads
	rows := cache.Lookup(owner, false, nil)
	require.Len(t, rows, 1)
	assert.Greater(t, f.img.reads-before, 2)
}

func TestCache_SeparateOwnersDoNotShareEntries(t *testing.T) {
	f := newFixture()
	fb := f.record("Fireball", []stat{{"DPS", 100}}, 0, true, 0)
	sp := f.record("Spark", []stat{{"DPS", 40}}, 0, true, 0)
	ownerA := staticOwner{base: f.owner([]uint64{fb})}
	ownerB := staticOwner{base: f.owner([]uint64{sp})}
	_, cache := f.scanner()

	rowsA := cache.Lookup(ownerA, false, nil)
	rowsB := cache.Lookup(ownerB, false, nil)

	assert.NotNil(t, rowsA["fireball"])
	assert.Nil(t, rowsA["spark"])
	assert.NotNil(t, rowsB["spark"])
	assert.Nil(t, rowsB["fireball"])
}
