package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

type Options struct {
	HandSize   int
	MaxPlayers int
	// Rand drives shuffles and timed-out color picks. Nil seeds one from the clock.
	Rand *rand.Rand
	// Deck, when set, is used in the given order (top first) instead of a shuffled standard deck.
	Deck []card.Card
}

func (o Options) withDefaults() Options {
	if o.HandSize == 0 {
		o.HandSize = consts.DefaultHandSize
	}
	if o.MaxPlayers == 0 {
		o.MaxPlayers = consts.DefaultMaxPlayers
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

func (o Options) validate() error {
	if o.HandSize < consts.MinHandSize || o.HandSize > consts.MaxHandSize {
		return consts.ErrorsInvalidSettings
	}
	if o.MaxPlayers < consts.MinPlayers || o.MaxPlayers > consts.MaxPlayers {
		return consts.ErrorsInvalidSettings
	}
	if o.Deck != nil && len(o.Deck) != consts.DeckSize {
		return consts.ErrorsInvalidSettings
	}
	return nil
}
