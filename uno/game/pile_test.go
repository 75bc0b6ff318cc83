package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestTop(t *testing.T) {
	pile := game.NewPile()
	_, ok := pile.Top()
	require.False(t, ok)

	pile.Add(card.NewNumberCard(color.Red, 3))
	pile.Add(card.NewSkipCard(color.Blue))

	top, ok := pile.Top()
	require.True(t, ok)
	require.Equal(t, card.NewSkipCard(color.Blue), top)
	require.Equal(t, 2, pile.Len())
}

func TestReplaceTop(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.NewNumberCard(color.Red, 3))
	pile.Add(card.NewWildDrawFourCard())
	pile.ReplaceTop(card.NewWildDrawFourCard().WithColor(color.Yellow))

	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Red, 3),
		card.NewWildDrawFourCard().WithColor(color.Yellow),
	}, pile.Cards())
}
