package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable reports whether candidateCard may go on lastPlayedCard while currentColor is in force.
// Wilds match through their color only, never through their value.
func Playable(candidateCard card.Card, lastPlayedCard card.Card, currentColor color.Color) bool {
	if candidateCard.IsWild() {
		return true
	}
	if candidateCard.Color() == currentColor {
		return true
	}
	return candidateCard.Value() == lastPlayedCard.Value()
}

// CanPlayWildDrawFour applies the house rule: a Wild Draw Four is only allowed when the hand
// holds nothing of the current color. The hand is trusted; there is no challenge.
func CanPlayWildDrawFour(hand *Hand, currentColor color.Color) bool {
	return !hand.HasColor(currentColor)
}
