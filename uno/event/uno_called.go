package event

type UnoCalledPayload struct {
	Player Player
}

type UnoCalledListener interface {
	OnUnoCalled(UnoCalledPayload)
}

type unoCalledEmitter struct {
	listeners []UnoCalledListener
}

func (e *unoCalledEmitter) AddListener(listener UnoCalledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *unoCalledEmitter) Emit(payload UnoCalledPayload) {
	for _, listener := range e.listeners {
		listener.OnUnoCalled(payload)
	}
}
