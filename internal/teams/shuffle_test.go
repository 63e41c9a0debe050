package teams

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffle(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	before := append([]string(nil), items...)

	first, second, err := Shuffle(items, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Len(t, first, Size)
	assert.Len(t, second, Size)
	assert.ElementsMatch(t, items, append(append([]string(nil), first...), second...))
	assert.Equal(t, before, items, "input must not be reordered")
}

func TestShuffle_Deterministic(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	a1, b1, err := Shuffle(items, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	a2, b2, err := Shuffle(items, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}

func TestShuffle_Scripted(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	// Swapping every element with index 0 rotates the slice left by one.
	first, second, err := Shuffle(items, &scripted{values: []int{0}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, first)
	assert.Equal(t, []int{6, 7, 8, 9, 0}, second)
}

func TestShuffle_WrongSize(t *testing.T) {
	_, _, err := Shuffle([]int{1, 2, 3}, &scripted{values: []int{0}})
	assert.ErrorIs(t, err, ErrTeamSize)
}
