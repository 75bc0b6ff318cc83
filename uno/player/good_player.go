package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type goodPlayer struct{}

// NewGoodPlayer keeps its options open: it plays the card that leaves the most follow-ups
// and names the color it holds most of.
func NewGoodPlayer() Strategy {
	return goodPlayer{}
}

func (p goodPlayer) PickColor(hand []card.Card) color.Color {
	colorCounts := make(map[color.Color]int)
	for _, handCard := range hand {
		if !handCard.IsWild() {
			colorCounts[handCard.Color()]++
		}
	}

	mostFrequentColor := color.Blue
	mostFrequentColorAmount := 0
	for _, availableColor := range color.Concrete {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}

	return mostFrequentColor
}

func (p goodPlayer) Play(view View) int {
	mostDiscardableCardIndex := view.Legal[0]
	maxSpareCards := -1

	for _, cardIndex := range view.Legal {
		playableCard := view.Hand[cardIndex]
		nextColor := playableCard.Color()
		if playableCard.IsWild() {
			nextColor = p.PickColor(view.Hand)
		}
		spareCards := 0
		for handIndex, handCard := range view.Hand {
			if handIndex != cardIndex && game.Playable(handCard, playableCard, nextColor) {
				spareCards++
			}
		}
		// wilds are held back while anything else follows as well
		if playableCard.IsWild() {
			spareCards--
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return mostDiscardableCardIndex
}
