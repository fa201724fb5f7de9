package names

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInventoryIsUnique(t *testing.T) {
	seen := make(map[string]bool, len(Default))
	for _, n := range Default {
		require.False(t, seen[n], "duplicate name %q", n)
		seen[n] = true
	}
	assert.Len(t, Default, 71)
}

func TestTakeNameNeverRepeats(t *testing.T) {
	p := NewPool(rand.New(rand.NewSource(1)), Default)
	seen := make(map[string]bool)
	for p.Remaining() > 0 {
		n, err := p.TakeName()
		require.NoError(t, err)
		require.NotEmpty(t, n)
		require.False(t, seen[n], "name %q issued twice", n)
		seen[n] = true
	}
	assert.Len(t, seen, len(Default))

	_, err := p.TakeName()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestEmptyPool(t *testing.T) {
	p := NewPool(rand.New(rand.NewSource(1)), nil)
	n, err := p.TakeName()
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Empty(t, n)
}

func TestPoolDoesNotMutateInventory(t *testing.T) {
	inv := []string{"a", "b", "c"}
	p := NewPool(rand.New(rand.NewSource(5)), inv)
	_, err := p.TakeName()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, inv)
	assert.Equal(t, 2, p.Remaining())
}

func TestSameSeedSameOrder(t *testing.T) {
	a := NewPool(rand.New(rand.NewSource(9)), Default)
	b := NewPool(rand.New(rand.NewSource(9)), Default)
	for i := 0; i < 10; i++ {
		na, _ := a.TakeName()
		nb, _ := b.TakeName()
		assert.Equal(t, na, nb)
	}
}
