package event

import "sync"

type DummyListener struct {
	sync.Mutex
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	l.Lock()
	defer l.Unlock()
	payloads := make([]interface{}, len(l.receivedPayloads))
	copy(payloads, l.receivedPayloads)
	return payloads
}

func (l *DummyListener) receive(payload interface{}) {
	l.Lock()
	defer l.Unlock()
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnSessionCreated(payload SessionCreatedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnPlayerJoined(payload PlayerJoinedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnSessionStarted(payload SessionStartedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnHandDealt(payload HandDealtPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnFirstCardPlayed(payload FirstCardPlayedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnPlayerDrewCards(payload PlayerDrewCardsPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnColorChosen(payload ColorChosenPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnTurnAdvanced(payload TurnAdvancedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnPlayerPassed(payload PlayerPassedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnUnoCalled(payload UnoCalledPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnDeckReshuffled(payload DeckReshuffledPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnTurnTimedOut(payload TurnTimedOutPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnPlayerWon(payload PlayerWonPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnSessionCancelled(payload SessionCancelledPayload) {
	l.receive(payload)
}
