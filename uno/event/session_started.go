package event

type SessionStartedPayload struct {
	PlayerOrder []Player
}

type SessionStartedListener interface {
	OnSessionStarted(SessionStartedPayload)
}

type sessionStartedEmitter struct {
	listeners []SessionStartedListener
}

func (e *sessionStartedEmitter) AddListener(listener SessionStartedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *sessionStartedEmitter) Emit(payload SessionStartedPayload) {
	for _, listener := range e.listeners {
		listener.OnSessionStarted(payload)
	}
}
