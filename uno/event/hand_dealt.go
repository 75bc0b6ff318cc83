package event

import "github.com/ratel-online/uno/uno/card"

type HandDealtPayload struct {
	Player Player
	Cards  []card.Card
}

type HandDealtListener interface {
	OnHandDealt(HandDealtPayload)
}

type handDealtEmitter struct {
	listeners []HandDealtListener
}

func (e *handDealtEmitter) AddListener(listener HandDealtListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *handDealtEmitter) Emit(payload HandDealtPayload) {
	for _, listener := range e.listeners {
		listener.OnHandDealt(payload)
	}
}
