package game

// BuryDeck moves every deck card except the top keep ones under the pile's top card.
func (g *Game) BuryDeck(keep int) {
	top, _ := g.pile.Top()
	buried, _ := g.deck.Draw(g.deck.Len()-keep, g.pile)
	g.pile.cards = append(append(g.pile.cards[:len(g.pile.cards)-1], buried...), top)
}
