package event

type TurnAdvancedPayload struct {
	Player Player
	TurnID int
}

type TurnAdvancedListener interface {
	OnTurnAdvanced(TurnAdvancedPayload)
}

type turnAdvancedEmitter struct {
	listeners []TurnAdvancedListener
}

func (e *turnAdvancedEmitter) AddListener(listener TurnAdvancedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *turnAdvancedEmitter) Emit(payload TurnAdvancedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnAdvanced(payload)
	}
}
