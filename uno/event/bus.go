package event

// Bus holds the emitters of one game session. Listeners run on the session's own goroutine,
// so they must not call back into that session synchronously.
type Bus struct {
	SessionCreated   *sessionCreatedEmitter
	PlayerJoined     *playerJoinedEmitter
	SessionStarted   *sessionStartedEmitter
	HandDealt        *handDealtEmitter
	FirstCardPlayed  *firstCardPlayedEmitter
	CardPlayed       *cardPlayedEmitter
	PlayerDrewCards  *playerDrewCardsEmitter
	ColorChosen      *colorChosenEmitter
	TurnAdvanced     *turnAdvancedEmitter
	PlayerPassed     *playerPassedEmitter
	UnoCalled        *unoCalledEmitter
	DeckReshuffled   *deckReshuffledEmitter
	TurnTimedOut     *turnTimedOutEmitter
	PlayerWon        *playerWonEmitter
	SessionCancelled *sessionCancelledEmitter
}

func NewBus(listeners ...interface{}) *Bus {
	bus := &Bus{
		SessionCreated:   &sessionCreatedEmitter{},
		PlayerJoined:     &playerJoinedEmitter{},
		SessionStarted:   &sessionStartedEmitter{},
		HandDealt:        &handDealtEmitter{},
		FirstCardPlayed:  &firstCardPlayedEmitter{},
		CardPlayed:       &cardPlayedEmitter{},
		PlayerDrewCards:  &playerDrewCardsEmitter{},
		ColorChosen:      &colorChosenEmitter{},
		TurnAdvanced:     &turnAdvancedEmitter{},
		PlayerPassed:     &playerPassedEmitter{},
		UnoCalled:        &unoCalledEmitter{},
		DeckReshuffled:   &deckReshuffledEmitter{},
		TurnTimedOut:     &turnTimedOutEmitter{},
		PlayerWon:        &playerWonEmitter{},
		SessionCancelled: &sessionCancelledEmitter{},
	}
	for _, listener := range listeners {
		bus.AddListener(listener)
	}
	return bus
}

// AddListener subscribes listener to every event whose listener interface it implements.
func (b *Bus) AddListener(listener interface{}) {
	if l, ok := listener.(SessionCreatedListener); ok {
		b.SessionCreated.AddListener(l)
	}
	if l, ok := listener.(PlayerJoinedListener); ok {
		b.PlayerJoined.AddListener(l)
	}
	if l, ok := listener.(SessionStartedListener); ok {
		b.SessionStarted.AddListener(l)
	}
	if l, ok := listener.(HandDealtListener); ok {
		b.HandDealt.AddListener(l)
	}
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(PlayerDrewCardsListener); ok {
		b.PlayerDrewCards.AddListener(l)
	}
	if l, ok := listener.(ColorChosenListener); ok {
		b.ColorChosen.AddListener(l)
	}
	if l, ok := listener.(TurnAdvancedListener); ok {
		b.TurnAdvanced.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
	}
	if l, ok := listener.(UnoCalledListener); ok {
		b.UnoCalled.AddListener(l)
	}
	if l, ok := listener.(DeckReshuffledListener); ok {
		b.DeckReshuffled.AddListener(l)
	}
	if l, ok := listener.(TurnTimedOutListener); ok {
		b.TurnTimedOut.AddListener(l)
	}
	if l, ok := listener.(PlayerWonListener); ok {
		b.PlayerWon.AddListener(l)
	}
	if l, ok := listener.(SessionCancelledListener); ok {
		b.SessionCancelled.AddListener(l)
	}
}
