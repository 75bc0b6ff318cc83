package game

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Deck is the draw pile; index 0 is the top.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{cards: StandardCards(), rng: rng}
	deck.Shuffle()
	return deck
}

// NewStackedDeck keeps the given order, top first.
func NewStackedDeck(cards []card.Card, rng *rand.Rand) *Deck {
	stacked := make([]card.Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked, rng: rng}
}

// StandardCards returns the 108 card multiset in a fixed, unshuffled order.
func StandardCards() []card.Card {
	cards := make([]card.Card, 0, 108)
	cards = append(cards, createBlackCards()...)
	for _, cardColor := range color.Concrete {
		cards = append(cards, createColorCards(cardColor)...)
	}
	return cards
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Shuffle() {
	shuffleCards(d.rng, d.cards)
}

// Draw pops up to amount cards. When the deck runs out, everything under the pile's top card is
// shuffled back in. Fewer cards than requested come back only when both are exhausted.
func (d *Deck) Draw(amount int, pile *Pile) (cards []card.Card, reshuffled bool) {
	cards = make([]card.Card, 0, amount)
	for len(cards) < amount {
		if len(d.cards) == 0 {
			refill := pile.takeUnderTop()
			if len(refill) == 0 {
				break
			}
			shuffleCards(d.rng, refill)
			d.cards = refill
			reshuffled = true
		}
		cards = append(cards, d.cards[0])
		d.cards = d.cards[1:]
	}
	return cards, reshuffled
}

func (d *Deck) PutBottom(c card.Card) {
	d.cards = append(d.cards, c)
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

func shuffleCards(rng *rand.Rand, cards []card.Card) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
