package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// View is what a robot sees when its turn comes: its own hand and what it may do with it.
type View struct {
	Hand         []card.Card
	Legal        []int
	Top          card.Card
	CurrentColor color.Color
}

// Strategy decides for a robot seat. Play is only called with at least one legal index.
type Strategy interface {
	Play(view View) int
	PickColor(hand []card.Card) color.Color
}
