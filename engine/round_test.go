package engine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/path-of-all-things/content"
	"github.com/lixenwraith/path-of-all-things/deck"
)

func testLevel(name string, years ...float64) content.Level {
	l := content.Level{Name: name}
	for i, y := range years {
		l.Events = append(l.Events, content.Event{
			ID:    len(name)*1000 + i + 1,
			Title: name + " event",
			Year:  y,
		})
	}
	return l
}

func testCatalog(levels int) *content.Catalog {
	c := &content.Catalog{}
	for i := 0; i < levels; i++ {
		c.Levels = append(c.Levels, testLevel(
			string(rune('A'+i)),
			-13.8e9, -4.5e9, -66e6, -3000, 1969, 2024, 1e100,
		))
	}
	return c
}

// years maps an order to event years
func years(r *Round, order []int) []float64 {
	out := make([]float64, len(order))
	for i, id := range order {
		e, _ := r.Event(id)
		out[i] = e.Year
	}
	return out
}

func TestNewRoundSamplesAndSorts(t *testing.T) {
	level := testLevel("L", 2024, -3000, 1969, -66e6, -13.8e9, 1e100, -4.5e9)
	r, err := NewRound(0, level, 5, deck.NewRand(42))
	require.NoError(t, err)

	assert.Equal(t, 5, r.Size())
	assert.ElementsMatch(t, r.DisplayOrder(), r.CorrectOrder())
	assert.True(t, slices.IsSorted(years(r, r.CorrectOrder())))
	assert.False(t, r.Locked())
	assert.Zero(t, r.Errors())
}

func TestNewRoundSmallPool(t *testing.T) {
	level := testLevel("L", 10, 5, 1)
	r, err := NewRound(3, level, 5, deck.NewRand(1))
	require.NoError(t, err)

	assert.Equal(t, 3, r.Size())
	assert.Equal(t, 3, r.LevelIndex())
	assert.Equal(t, []int{1003, 1002, 1001}, r.CorrectOrder())
}

func TestNewRoundEqualYearsKeepPoolOrder(t *testing.T) {
	level := testLevel("L", 1500, 1500, 1500)
	for seed := int64(1); seed <= 20; seed++ {
		r, err := NewRound(0, level, 3, deck.NewRand(seed))
		require.NoError(t, err)
		assert.Equal(t, []int{1001, 1002, 1003}, r.CorrectOrder())
	}
}

func TestNewRoundEmptyLevel(t *testing.T) {
	_, err := NewRound(0, content.Level{Name: "void"}, 5, deck.NewRand(1))
	assert.ErrorIs(t, err, ErrEmptyLevel)
}

func TestRoundAccessorsReturnCopies(t *testing.T) {
	r, err := NewRound(0, testLevel("L", 1, 2, 3), 3, deck.NewRand(7))
	require.NoError(t, err)

	order := r.CorrectOrder()
	order[0] = -1
	assert.NotEqual(t, -1, r.CorrectOrder()[0])

	events := r.Events()
	events[0].Title = "changed"
	e, ok := r.Event(r.Events()[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "changed", e.Title)

	_, ok = r.Event(999999)
	assert.False(t, ok)
}
