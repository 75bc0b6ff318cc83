package event

type SessionCreatedPayload struct {
	SessionID  string
	RoomID     int64
	Host       Player
	HandSize   int
	MaxPlayers int
}

type SessionCreatedListener interface {
	OnSessionCreated(SessionCreatedPayload)
}

type sessionCreatedEmitter struct {
	listeners []SessionCreatedListener
}

func (e *sessionCreatedEmitter) AddListener(listener SessionCreatedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *sessionCreatedEmitter) Emit(payload SessionCreatedPayload) {
	for _, listener := range e.listeners {
		listener.OnSessionCreated(payload)
	}
}
