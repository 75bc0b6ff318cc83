package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Pile is the discard pile; the last card is the top.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Len() int {
	return len(p.cards)
}

func (p *Pile) ReplaceTop(card card.Card) {
	p.cards[len(p.cards)-1] = card
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

// takeUnderTop removes every card except the top one and returns them with wild colors reset.
func (p *Pile) takeUnderTop() []card.Card {
	if len(p.cards) < 2 {
		return nil
	}
	under := make([]card.Card, 0, len(p.cards)-1)
	for _, c := range p.cards[:len(p.cards)-1] {
		under = append(under, c.Reset())
	}
	p.cards = []card.Card{p.cards[len(p.cards)-1]}
	return under
}
