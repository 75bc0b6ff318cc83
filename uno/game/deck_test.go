package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestStandardCards(t *testing.T) {
	cards := game.StandardCards()
	require.Len(t, cards, 108)

	counts := make(map[card.Card]int)
	for _, c := range cards {
		counts[c]++
	}
	require.Equal(t, 4, counts[card.NewWildCard()])
	require.Equal(t, 4, counts[card.NewWildDrawFourCard()])
	for _, cardColor := range color.Concrete {
		require.Equal(t, 1, counts[card.NewNumberCard(cardColor, 0)])
		for number := 1; number <= 9; number++ {
			require.Equal(t, 2, counts[card.NewNumberCard(cardColor, number)])
		}
		require.Equal(t, 2, counts[card.NewSkipCard(cardColor)])
		require.Equal(t, 2, counts[card.NewReverseCard(cardColor)])
		require.Equal(t, 2, counts[card.NewDrawTwoCard(cardColor)])
	}
}

func TestDeckDraw(t *testing.T) {
	t.Run("returns_all_108_standard_uno_cards", func(t *testing.T) {
		deck := game.NewDeck(newRand())
		cards, reshuffled := deck.Draw(108, game.NewPile())
		require.False(t, reshuffled)
		require.ElementsMatch(t, game.StandardCards(), cards)
		require.Zero(t, deck.Len())
	})

	t.Run("returns_no_cards_when_argument_is_zero", func(t *testing.T) {
		deck := game.NewDeck(newRand())
		cards, _ := deck.Draw(0, game.NewPile())
		require.Empty(t, cards)
		require.Equal(t, 108, deck.Len())
	})

	t.Run("pops_from_the_top", func(t *testing.T) {
		stacked := []card.Card{
			card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Blue, 2),
			card.NewSkipCard(color.Green),
		}
		deck := game.NewStackedDeck(stacked, newRand())
		cards, _ := deck.Draw(2, game.NewPile())
		require.Equal(t, stacked[:2], cards)
		require.Equal(t, stacked[2:], deck.Cards())
	})

	t.Run("refills_from_the_pile_keeping_its_top", func(t *testing.T) {
		deck := game.NewStackedDeck([]card.Card{card.NewNumberCard(color.Red, 1)}, newRand())
		pile := game.NewPile()
		pile.Add(card.NewNumberCard(color.Blue, 3))
		pile.Add(card.NewWildCard().WithColor(color.Green))
		pile.Add(card.NewNumberCard(color.Green, 4))

		cards, reshuffled := deck.Draw(3, pile)
		require.True(t, reshuffled)
		require.Len(t, cards, 3)
		require.Equal(t, card.NewNumberCard(color.Red, 1), cards[0])
		require.ElementsMatch(t, []card.Card{
			card.NewNumberCard(color.Blue, 3),
			card.NewWildCard(),
		}, cards[1:])

		top, ok := pile.Top()
		require.True(t, ok)
		require.Equal(t, card.NewNumberCard(color.Green, 4), top)
		require.Equal(t, 1, pile.Len())
	})

	t.Run("returns_fewer_cards_when_deck_and_pile_are_exhausted", func(t *testing.T) {
		deck := game.NewStackedDeck([]card.Card{card.NewNumberCard(color.Red, 1)}, newRand())
		pile := game.NewPile()
		pile.Add(card.NewNumberCard(color.Blue, 3))

		cards, reshuffled := deck.Draw(4, pile)
		require.False(t, reshuffled)
		require.Equal(t, []card.Card{card.NewNumberCard(color.Red, 1)}, cards)
		require.Equal(t, 1, pile.Len())
	})
}

func TestPutBottom(t *testing.T) {
	deck := game.NewStackedDeck([]card.Card{card.NewNumberCard(color.Red, 1)}, newRand())
	deck.PutBottom(card.NewSkipCard(color.Blue))
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Red, 1),
		card.NewSkipCard(color.Blue),
	}, deck.Cards())
}

func TestShuffleKeepsComposition(t *testing.T) {
	deck := game.NewDeck(newRand())
	require.ElementsMatch(t, game.StandardCards(), deck.Cards())
	require.NotEqual(t, game.StandardCards(), deck.Cards())
}
