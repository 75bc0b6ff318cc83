package event

type TurnTimedOutPayload struct {
	Player Player
}

type TurnTimedOutListener interface {
	OnTurnTimedOut(TurnTimedOutPayload)
}

type turnTimedOutEmitter struct {
	listeners []TurnTimedOutListener
}

func (e *turnTimedOutEmitter) AddListener(listener TurnTimedOutListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *turnTimedOutEmitter) Emit(payload TurnTimedOutPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnTimedOut(payload)
	}
}
