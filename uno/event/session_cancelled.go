package event

type SessionCancelledPayload struct {
	Reason string
}

type SessionCancelledListener interface {
	OnSessionCancelled(SessionCancelledPayload)
}

type sessionCancelledEmitter struct {
	listeners []SessionCancelledListener
}

func (e *sessionCancelledEmitter) AddListener(listener SessionCancelledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *sessionCancelledEmitter) Emit(payload SessionCancelledPayload) {
	for _, listener := range e.listeners {
		listener.OnSessionCancelled(payload)
	}
}
