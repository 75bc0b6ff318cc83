package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Card(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, false
	}
	return h.cards[index], true
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// HasColor reports whether a non-wild card of the given color is held.
func (h *Hand) HasColor(searched color.Color) bool {
	for _, c := range h.cards {
		if !c.IsWild() && c.Color() == searched {
			return true
		}
	}
	return false
}

func (h *Hand) PlayableCards(lastPlayedCard card.Card, currentColor color.Color) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, lastPlayedCard, currentColor) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveAt removes the card at index, keeping the order of the rest.
func (h *Hand) RemoveAt(index int) card.Card {
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed
}

func (h *Hand) Size() int {
	return len(h.cards)
}
