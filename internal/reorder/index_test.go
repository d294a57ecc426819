package reorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// three rows of height 40 starting at y=100: midpoints 120, 160, 200.
func threeRects() []ItemRect {
	return []ItemRect{
		{ID: "a", Top: 100, Height: 40},
		{ID: "b", Top: 140, Height: 40},
		{ID: "c", Top: 180, Height: 40},
	}
}

func TestInsertionIndex_EmptyReturnsZero(t *testing.T) {
	assert.Equal(t, 0, InsertionIndex(nil, 0))
	assert.Equal(t, 0, InsertionIndex([]ItemRect{}, 9999))
	assert.Equal(t, 0, InsertionIndex(nil, -50))
}

func TestInsertionIndex_BeforeFirstMidpoint(t *testing.T) {
	assert.Equal(t, 0, InsertionIndex(threeRects(), 0))
	assert.Equal(t, 0, InsertionIndex(threeRects(), 119))
}

func TestInsertionIndex_PastLastMidpointAppends(t *testing.T) {
	assert.Equal(t, 3, InsertionIndex(threeRects(), 201))
	assert.Equal(t, 3, InsertionIndex(threeRects(), 10000))
}

func TestInsertionIndex_BetweenMidpoints(t *testing.T) {
	tests := []struct {
		pointerY float64
		want     int
	}{
		{121, 1},
		{159, 1},
		{161, 2},
		{199, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InsertionIndex(threeRects(), tt.pointerY), "pointerY=%v", tt.pointerY)
	}
}

func TestInsertionIndex_ExactMidpointCountsAsBefore(t *testing.T) {
	// Pointer exactly on row b's midpoint lands before b.
	assert.Equal(t, 1, InsertionIndex(threeRects(), 160))
	assert.Equal(t, 0, InsertionIndex(threeRects(), 120))
	assert.Equal(t, 2, InsertionIndex(threeRects(), 200))
}
