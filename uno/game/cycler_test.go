package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler([]int64{1, 2, 3, 4})
	assert.Equal(t, int64(1), cycler.Current())
	cycler.Next()
	assert.Equal(t, int64(2), cycler.Current())
	cycler.Next()
	assert.Equal(t, int64(3), cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, int64(2), cycler.Current())
	cycler.Next()
	assert.Equal(t, int64(1), cycler.Current())
	cycler.Next()
	assert.Equal(t, int64(4), cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, int64(1), cycler.Current())
}

func TestForEach(t *testing.T) {
	cycler := game.NewCycler([]int64{1, 2, 3, 4})

	var results []int64
	cycler.ForEach(func(element int64) {
		results = append(results, element*10)
	})

	require.Equal(t, []int64{10, 20, 30, 40}, results)
}

func TestNext(t *testing.T) {
	cycler := game.NewCycler([]int64{1, 2, 3, 4})
	assert.Equal(t, int64(2), cycler.Next())
	assert.Equal(t, int64(3), cycler.Next())
	assert.Equal(t, int64(4), cycler.Next())
	assert.Equal(t, int64(1), cycler.Next())
}

func TestPeek(t *testing.T) {
	cycler := game.NewCycler([]int64{1, 2, 3})
	assert.Equal(t, int64(2), cycler.Peek())
	assert.Equal(t, int64(1), cycler.Current())
	cycler.Reverse()
	assert.Equal(t, int64(3), cycler.Peek())
	assert.Equal(t, 0, cycler.Index())
}

func TestReverse(t *testing.T) {
	cycler := game.NewCycler([]int64{1, 2, 3, 4})
	assert.Equal(t, 1, cycler.Direction())
	assert.Equal(t, int64(2), cycler.Next())
	cycler.Reverse()
	assert.Equal(t, -1, cycler.Direction())
	assert.Equal(t, int64(1), cycler.Next())
	assert.Equal(t, int64(4), cycler.Next())
	cycler.Reverse()
	cycler.Reverse()
	assert.Equal(t, int64(3), cycler.Next())
}
