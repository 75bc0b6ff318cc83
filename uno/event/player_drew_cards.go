package event

import "github.com/ratel-online/uno/uno/card"

type PlayerDrewCardsPayload struct {
	Player Player
	Count  int
	Forced bool
	Cards  []card.Card
}

type PlayerDrewCardsListener interface {
	OnPlayerDrewCards(PlayerDrewCardsPayload)
}

type playerDrewCardsEmitter struct {
	listeners []PlayerDrewCardsListener
}

func (e *playerDrewCardsEmitter) AddListener(listener PlayerDrewCardsListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *playerDrewCardsEmitter) Emit(payload PlayerDrewCardsPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerDrewCards(payload)
	}
}
