package seed

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFaker(seed int64) *Faker {
	return NewFaker(rand.New(rand.NewSource(seed)))
}

func TestFaker_DeterministicForFixedSeed(t *testing.T) {
	a := newTestFaker(42)
	b := newTestFaker(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.FirstName(), b.FirstName())
		assert.Equal(t, a.SKU(), b.SKU())
		assert.Equal(t, a.PriceBetween(5, 5000), b.PriceBetween(5, 5000))
	}
}

func TestFaker_EmailIncorporatesName(t *testing.T) {
	f := newTestFaker(1)

	email := f.Email("Grace", "Hopper")
	assert.True(t, strings.HasPrefix(email, "grace.hopper"))
	assert.Contains(t, email, "@")
}

func TestFaker_PriceBetweenStaysInRange(t *testing.T) {
	f := newTestFaker(7)

	for i := 0; i < 1000; i++ {
		price := f.PriceBetween(5, 5000)
		assert.GreaterOrEqual(t, price, 5.0)
		assert.LessOrEqual(t, price, 5000.0)
	}
}

func TestFaker_IntBetweenInclusive(t *testing.T) {
	f := newTestFaker(7)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := f.IntBetween(1, 7)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 7)
		seen[v] = true
	}
	// Both bounds should show up over a thousand draws
	assert.True(t, seen[1])
	assert.True(t, seen[7])
}

func TestFaker_FractionStaysBelowMax(t *testing.T) {
	f := newTestFaker(3)

	for i := 0; i < 1000; i++ {
		v := f.Fraction(0.2)
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 0.2)
	}
}

func TestFaker_DateBetweenBounds(t *testing.T) {
	f := newTestFaker(11)
	now := time.Now()
	from := now.AddDate(0, 0, -30)

	for i := 0; i < 100; i++ {
		d := f.DateBetween(from, now)
		assert.False(t, d.Before(from))
		assert.False(t, d.After(now))
	}

	// Degenerate range collapses to the lower bound
	assert.Equal(t, now, f.DateBetween(now, now))
}

func TestFaker_SampleDrawsDistinctIDs(t *testing.T) {
	f := newTestFaker(9)
	pool := []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	sample := f.Sample(pool, 4)
	require.Len(t, sample, 4)

	seen := make(map[uint]bool)
	for _, id := range sample {
		assert.False(t, seen[id], "duplicate id %d in sample", id)
		assert.Contains(t, pool, id)
		seen[id] = true
	}

	// Oversized requests cap at the pool, and the pool itself is untouched
	assert.Len(t, f.Sample(pool, 100), len(pool))
	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, pool)
	assert.Empty(t, f.Sample(nil, 3))
}

func TestFaker_BoolProbabilityExtremes(t *testing.T) {
	f := newTestFaker(5)

	for i := 0; i < 100; i++ {
		assert.True(t, f.Bool(1.0))
		assert.False(t, f.Bool(0.0))
	}
}
