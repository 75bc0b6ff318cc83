package event

type PlayerJoinedPayload struct {
	Player     Player
	Count      int
	MaxPlayers int
}

type PlayerJoinedListener interface {
	OnPlayerJoined(PlayerJoinedPayload)
}

type playerJoinedEmitter struct {
	listeners []PlayerJoinedListener
}

func (e *playerJoinedEmitter) AddListener(listener PlayerJoinedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *playerJoinedEmitter) Emit(payload PlayerJoinedPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerJoined(payload)
	}
}
