package atlas

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPacksWithoutOverlap(t *testing.T) {
	a := New(32, 32)
	var placed []image.Rectangle
	for i := 0; i < 16; i++ {
		x, y, err := a.Add(7, 8)
		require.NoError(t, err)
		r := image.Rect(x, y, x+7, y+8)
		assert.True(t, r.In(image.Rect(0, 0, 32, 32)), "rect %v outside atlas", r)
		for _, p := range placed {
			assert.False(t, r.Overlaps(p), "rect %v overlaps %v", r, p)
		}
		placed = append(placed, r)
	}
}

func TestAddFillsRowsBottomUp(t *testing.T) {
	a := New(16, 16)
	x, y, err := a.Add(8, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y, err = a.Add(8, 4)
	require.NoError(t, err)
	assert.Equal(t, 8, x)
	assert.Equal(t, 0, y)

	x, y, err = a.Add(16, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, x)
	assert.Equal(t, 4, y)
}

func TestAddNoSpace(t *testing.T) {
	a := New(8, 8)
	_, _, err := a.Add(9, 1)
	assert.ErrorIs(t, err, ErrNoSpace)

	_, _, err = a.Add(8, 8)
	require.NoError(t, err)
	_, _, err = a.Add(1, 1)
	assert.ErrorIs(t, err, ErrNoSpace)

	a.Reset(8, 8)
	_, _, err = a.Add(1, 1)
	assert.NoError(t, err)
}
