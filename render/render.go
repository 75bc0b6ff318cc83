package render

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/event"
)

// Sink delivers text to the members of a room or to a single player.
type Sink interface {
	Broadcast(roomID int64, msg string, exclude ...int64)
	Send(playerID int64, msg string)
}

// Seats answers private questions about one running session.
type Seats interface {
	Hand(playerID int64) ([]card.Card, error)
	LegalPlays(playerID int64) ([]int, error)
}

// Renderer turns the events of one room into messages. Hands only ever go to their owner.
type Renderer struct {
	roomID int64
	sink   Sink
	seats  func() (Seats, error)
}

func New(roomID int64, sink Sink, seats func() (Seats, error)) *Renderer {
	return &Renderer{roomID: roomID, sink: sink, seats: seats}
}

func (r *Renderer) broadcast(msg string, exclude ...int64) {
	r.sink.Broadcast(r.roomID, msg, exclude...)
}

func (r *Renderer) OnSessionCreated(payload event.SessionCreatedPayload) {
	r.broadcast(Message.SessionCreated(payload))
}

func (r *Renderer) OnPlayerJoined(payload event.PlayerJoinedPayload) {
	r.broadcast(Message.PlayerJoined(payload))
}

func (r *Renderer) OnSessionStarted(payload event.SessionStartedPayload) {
	r.broadcast(Message.SessionStarted(payload.PlayerOrder))
}

func (r *Renderer) OnHandDealt(payload event.HandDealtPayload) {
	r.sink.Send(payload.Player.ID, Message.HumanPlayerDrewCards(payload.Cards))
}

func (r *Renderer) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	r.broadcast(Message.FirstCardPlayed(payload.Card))
}

func (r *Renderer) OnCardPlayed(payload event.CardPlayedPayload) {
	r.broadcast(Message.PlayerPlayedCard(payload.Player.Name, payload.Card, payload.Effect))
	if payload.Effect == event.EffectWild || payload.Effect == event.EffectWildDrawFour {
		r.sink.Send(payload.Player.ID, Message.PromptColor())
	}
}

func (r *Renderer) OnPlayerDrewCards(payload event.PlayerDrewCardsPayload) {
	r.broadcast(Message.PlayerDrewCards(payload.Player.Name, payload.Count, payload.Forced), payload.Player.ID)
	if payload.Count > 0 {
		r.sink.Send(payload.Player.ID, Message.HumanPlayerDrewCards(payload.Cards))
	}
}

func (r *Renderer) OnColorChosen(payload event.ColorChosenPayload) {
	r.broadcast(Message.PlayerPickedColor(payload.Player.Name, payload.Color, payload.WasTimeout))
}

func (r *Renderer) OnTurnAdvanced(payload event.TurnAdvancedPayload) {
	r.broadcast(Message.PlayerTurnStarted(payload.Player.Name), payload.Player.ID)
	if payload.Player.Robot {
		return
	}
	r.sink.Send(payload.Player.ID, Message.HumanPlayerTurnStarted(payload.Player.Name))
	// listeners run on the session goroutine, so the hand is fetched once it is free again
	async.Async(func() {
		r.SendHand(payload.Player.ID)
	})
}

func (r *Renderer) OnPlayerPassed(payload event.PlayerPassedPayload) {
	r.broadcast(Message.PlayerPassed(payload.Player.Name))
}

func (r *Renderer) OnUnoCalled(payload event.UnoCalledPayload) {
	r.broadcast(Message.UnoCalled(payload.Player.Name))
}

func (r *Renderer) OnDeckReshuffled(payload event.DeckReshuffledPayload) {
	r.broadcast(Message.DeckReshuffled(payload.DeckSize))
}

func (r *Renderer) OnTurnTimedOut(payload event.TurnTimedOutPayload) {
	r.broadcast(Message.TurnTimedOut(payload.Player.Name))
}

func (r *Renderer) OnPlayerWon(payload event.PlayerWonPayload) {
	r.broadcast(Message.WinnerFound(payload))
}

func (r *Renderer) OnSessionCancelled(payload event.SessionCancelledPayload) {
	r.broadcast(Message.SessionCancelled(payload.Reason))
}

// SendHand privately shows playerID their hand with the playable cards marked.
// It must not be called from a listener.
func (r *Renderer) SendHand(playerID int64) {
	seats, err := r.seats()
	if err != nil {
		return
	}
	hand, err := seats.Hand(playerID)
	if err != nil {
		if err != consts.ErrorsSessionNotActive {
			log.Errorf("room %d: hand of %d: %v\n", r.roomID, playerID, err)
		}
		return
	}
	legal, err := seats.LegalPlays(playerID)
	if err != nil {
		return
	}
	r.sink.Send(playerID, Message.Hand(hand, legal))
}
