package card_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestActions(t *testing.T) {
	require.Empty(t, card.NewNumberCard(color.Red, 3).Actions())
	require.Equal(t, []action.Action{action.NewSkipTurnAction()}, card.NewSkipCard(color.Red).Actions())
	require.Equal(t, []action.Action{action.NewReverseTurnsAction()}, card.NewReverseCard(color.Red).Actions())
	require.Equal(t, []action.Action{
		action.NewDrawCardsAction(2),
		action.NewSkipTurnAction(),
	}, card.NewDrawTwoCard(color.Red).Actions())
	require.Equal(t, []action.Action{action.NewPickColorAction()}, card.NewWildCard().Actions())
	require.Equal(t, []action.Action{
		action.NewDrawCardsAction(4),
		action.NewSkipTurnAction(),
		action.NewPickColorAction(),
	}, card.NewWildDrawFourCard().Actions())
}

func TestIsNumber(t *testing.T) {
	require.True(t, card.NewNumberCard(color.Blue, 0).IsNumber())
	require.True(t, card.NewNumberCard(color.Blue, 9).IsNumber())
	require.False(t, card.NewSkipCard(color.Blue).IsNumber())
	require.False(t, card.NewWildCard().IsNumber())
}

func TestWithColor(t *testing.T) {
	resolved := card.NewWildDrawFourCard().WithColor(color.Green)
	require.Equal(t, color.Green, resolved.Color())
	require.True(t, resolved.IsWild())
	require.Equal(t, card.NewWildDrawFourCard(), resolved.Reset())
	require.True(t, resolved.Equal(card.NewWildDrawFourCard()))

	skip := card.NewSkipCard(color.Red)
	require.Equal(t, skip, skip.WithColor(color.Blue))
	require.Equal(t, skip, skip.Reset())
	require.False(t, skip.Equal(card.NewSkipCard(color.Blue)))
}

func TestString(t *testing.T) {
	require.Contains(t, card.NewNumberCard(color.Red, 7).String(), "7")
	require.Contains(t, card.NewNumberCard(color.Red, 7).String(), "(Red)")
	require.Contains(t, card.NewDrawTwoCard(color.Blue).String(), "+2!")
	require.Contains(t, card.NewWildCard().WithColor(color.Yellow).String(), "(Yellow)")
}

func TestActionString(t *testing.T) {
	require.Equal(t, "next player draws 4", action.NewDrawCardsAction(4).String())
	require.Equal(t, "turn order reversed", action.NewReverseTurnsAction().String())
	require.Equal(t, "next player skipped", action.NewSkipTurnAction().String())
	require.Equal(t, "color choice", action.NewPickColorAction().String())
}
