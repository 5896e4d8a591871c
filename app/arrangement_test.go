package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrangementCursor(t *testing.T) {
	a := newArrangement([]int{1, 2, 3})

	assert.False(t, a.step(-1))
	assert.Equal(t, 0, a.cursor)

	a.step(1)
	a.step(1)
	a.step(1)
	assert.Equal(t, 2, a.cursor)
	assert.Equal(t, []int{1, 2, 3}, a.Order(), "moving without a grab keeps the order")
}

func TestArrangementGrabMoves(t *testing.T) {
	a := newArrangement([]int{1, 2, 3, 4})
	a.grabbed = true

	assert.True(t, a.step(1))
	assert.Equal(t, []int{2, 1, 3, 4}, a.Order())
	assert.True(t, a.step(2))
	assert.Equal(t, []int{2, 3, 4, 1}, a.Order())
	assert.Equal(t, 3, a.cursor)
	assert.False(t, a.step(1), "cannot move past the end")
}

func TestArrangementMove(t *testing.T) {
	a := newArrangement([]int{1, 2, 3, 4, 5})
	a.move(4, 0)
	assert.Equal(t, []int{5, 1, 2, 3, 4}, a.Order())
	a.move(1, 3)
	assert.Equal(t, []int{5, 2, 3, 1, 4}, a.Order())
	a.move(0, 9)
	assert.Equal(t, []int{5, 2, 3, 1, 4}, a.Order(), "out of range is ignored")
}

func TestArrangementSetClamps(t *testing.T) {
	a := newArrangement([]int{1, 2, 3, 4, 5})
	a.cursor = 4
	a.grabbed = true
	a.set([]int{9, 8})
	assert.Equal(t, 1, a.cursor)
	assert.False(t, a.grabbed)
}
