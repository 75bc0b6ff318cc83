package event

import "github.com/ratel-online/uno/uno/card/color"

type ColorChosenPayload struct {
	Player     Player
	Color      color.Color
	WasTimeout bool
}

type ColorChosenListener interface {
	OnColorChosen(ColorChosenPayload)
}

type colorChosenEmitter struct {
	listeners []ColorChosenListener
}

func (e *colorChosenEmitter) AddListener(listener ColorChosenListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *colorChosenEmitter) Emit(payload ColorChosenPayload) {
	for _, listener := range e.listeners {
		listener.OnColorChosen(payload)
	}
}
