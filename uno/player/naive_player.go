package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type naivePlayer struct {
	rng *rand.Rand
}

// NewNaivePlayer plays the first legal card and picks a random color.
func NewNaivePlayer(rng *rand.Rand) Strategy {
	return naivePlayer{rng: rng}
}

func (p naivePlayer) PickColor(hand []card.Card) color.Color {
	return color.Concrete[p.rng.Intn(len(color.Concrete))]
}

func (p naivePlayer) Play(view View) int {
	return view.Legal[0]
}
