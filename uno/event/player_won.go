package event

type PlayerWonPayload struct {
	Player    Player
	HandSizes map[int64]int
	Standings []Standing
}

type PlayerWonListener interface {
	OnPlayerWon(PlayerWonPayload)
}

type playerWonEmitter struct {
	listeners []PlayerWonListener
}

func (e *playerWonEmitter) AddListener(listener PlayerWonListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *playerWonEmitter) Emit(payload PlayerWonPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerWon(payload)
	}
}
