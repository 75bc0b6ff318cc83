package game

import (
	"sort"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

type Phase int

const (
	PhaseLobby Phase = iota
	PhaseActive
	PhaseFinished
	PhaseCancelled
)

func (p Phase) Terminal() bool {
	return p == PhaseFinished || p == PhaseCancelled
}

func (p Phase) String() string {
	switch p {
	case PhaseLobby:
		return "Lobby"
	case PhaseActive:
		return "Active"
	case PhaseFinished:
		return "Finished"
	case PhaseCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

const noDrawnCard = -1

// Game is the authoritative state of one session. It is not safe for concurrent use;
// callers serialize every method call.
type Game struct {
	opts Options
	bus  *event.Bus

	phase   Phase
	players *Registry
	cycler  *Cycler
	deck    *Deck
	pile    *Pile

	currentColor color.Color
	turnID       int
	hasDrawn     bool
	drawnIndex   int
	pending      *colorChoice
	winner       *Player
}

func New(opts Options, bus *event.Bus) (*Game, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if bus == nil {
		bus = event.NewBus()
	}
	return &Game{
		opts:       opts,
		bus:        bus,
		phase:      PhaseLobby,
		players:    NewRegistry(),
		pile:       NewPile(),
		deck:       NewStackedDeck(nil, opts.Rand),
		drawnIndex: noDrawnCard,
	}, nil
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Options() Options {
	return g.opts
}

func (g *Game) Join(id int64, name string) error {
	return g.join(id, name, false)
}

func (g *Game) JoinRobot(id int64, name string) error {
	return g.join(id, name, true)
}

func (g *Game) join(id int64, name string, robot bool) error {
	if g.phase.Terminal() {
		return consts.ErrorsSessionNotActive
	}
	if g.players.Get(id) != nil {
		return nil
	}
	if g.phase != PhaseLobby {
		return consts.ErrorsSessionNotActive
	}
	if g.Full() {
		return consts.ErrorsSessionFull
	}
	player, _ := g.players.Add(id, name, robot)
	g.bus.PlayerJoined.Emit(event.PlayerJoinedPayload{
		Player:     player.Event(),
		Count:      g.players.Len(),
		MaxPlayers: g.opts.MaxPlayers,
	})
	return nil
}

func (g *Game) Full() bool {
	return g.players.Len() >= g.opts.MaxPlayers
}

func (g *Game) PlayerCount() int {
	return g.players.Len()
}

// Host is the first player who joined.
func (g *Game) Host() (event.Player, bool) {
	if g.players.Len() == 0 {
		return event.Player{}, false
	}
	return g.players.players[0].Event(), true
}

func (g *Game) Players() []event.Player {
	players := make([]event.Player, 0, g.players.Len())
	g.players.ForEach(func(player *Player) {
		players = append(players, player.Event())
	})
	return players
}

func (g *Game) Start() error {
	if g.phase != PhaseLobby {
		return consts.ErrorsSessionNotActive
	}
	if g.players.Len() < consts.MinPlayers {
		return consts.ErrorsInsufficientPlayers
	}
	if g.opts.Deck != nil {
		g.deck = NewStackedDeck(g.opts.Deck, g.opts.Rand)
	} else {
		g.deck = NewDeck(g.opts.Rand)
	}
	g.players.Deal(g.deck, g.pile, g.opts.HandSize)

	firstCard := g.drawFirstCard()
	g.pile.Add(firstCard)
	g.currentColor = firstCard.Color()
	g.cycler = NewCycler(g.players.IDs())
	g.phase = PhaseActive

	g.bus.SessionStarted.Emit(event.SessionStartedPayload{PlayerOrder: g.Players()})
	g.players.ForEach(func(player *Player) {
		g.bus.HandDealt.Emit(event.HandDealtPayload{
			Player: player.Event(),
			Cards:  player.Cards(),
		})
	})
	g.bus.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: firstCard})
	g.announceTurn()
	return nil
}

// drawFirstCard returns action and wild cards to the bottom until a number card turns up.
// A deck with no number card left at all falls back to the last card drawn.
func (g *Game) drawFirstCard() card.Card {
	var candidate card.Card
	for attempts := g.deck.Len(); attempts > 0; attempts-- {
		cards, _ := g.deck.Draw(1, g.pile)
		candidate = cards[0]
		if candidate.IsNumber() {
			return candidate
		}
		g.deck.PutBottom(candidate)
	}
	cards, _ := g.deck.Draw(1, g.pile)
	candidate = cards[0]
	if candidate.IsWild() {
		candidate = candidate.WithColor(randomColor(g.opts.Rand))
	}
	return candidate
}

func (g *Game) Cancel(reason string) error {
	if g.phase.Terminal() {
		return consts.ErrorsSessionNotActive
	}
	g.phase = PhaseCancelled
	g.pending = nil
	g.bus.SessionCancelled.Emit(event.SessionCancelledPayload{Reason: reason})
	return nil
}

// Play resolves playing the card at index from the player's hand.
func (g *Game) Play(playerID int64, index int) error {
	player, err := g.actingPlayer(playerID)
	if err != nil {
		return err
	}
	playedCard, ok := player.hand.Card(index)
	if !ok {
		return consts.ErrorsInvalidCardIndex
	}
	if !g.legal(player, index) {
		return consts.ErrorsIllegalCard
	}

	player.hand.RemoveAt(index)
	g.pile.Add(playedCard)

	if player.hand.Empty() {
		g.bus.CardPlayed.Emit(event.CardPlayedPayload{
			Player: player.Event(),
			Card:   playedCard,
			Effect: event.EffectNone,
		})
		g.finish(player)
		return nil
	}

	g.bus.CardPlayed.Emit(event.CardPlayedPayload{
		Player: player.Event(),
		Card:   playedCard,
		Effect: effectOf(playedCard),
	})
	if player.hand.Size() == 1 {
		g.bus.UnoCalled.Emit(event.UnoCalledPayload{Player: player.Event()})
	}

	g.performCardActions(player, playedCard)
	if g.pending != nil {
		return nil
	}
	g.currentColor = playedCard.Color()
	g.finishTurn()
	return nil
}

func (g *Game) performCardActions(player *Player, playedCard card.Card) {
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			victim := g.players.Get(g.cycler.Peek())
			g.drawTo(victim, cardAction.Amount(), true)
		case action.SkipTurnAction:
			g.cycler.Next()
		case action.ReverseTurnsAction:
			g.cycler.Reverse()
			if g.cycler.Len() == 2 {
				g.cycler.Next()
			}
		case action.PickColorAction:
			g.pending = &colorChoice{player: player}
		}
	}
}

// Draw takes one card for the current player. A playable card keeps the turn open so it can
// be played or passed on; anything else ends the turn.
func (g *Game) Draw(playerID int64) error {
	player, err := g.actingPlayer(playerID)
	if err != nil {
		return err
	}
	if g.hasDrawn {
		return consts.ErrorsAlreadyDrew
	}
	drawn := g.drawTo(player, 1, false)
	g.hasDrawn = true
	if len(drawn) == 1 {
		g.drawnIndex = player.hand.Size() - 1
		if g.legal(player, g.drawnIndex) {
			return nil
		}
	}
	g.drawnIndex = noDrawnCard
	g.finishTurn()
	return nil
}

func (g *Game) Pass(playerID int64) error {
	player, err := g.actingPlayer(playerID)
	if err != nil {
		return err
	}
	if !g.hasDrawn {
		return consts.ErrorsCannotPass
	}
	g.bus.PlayerPassed.Emit(event.PlayerPassedPayload{Player: player.Event()})
	g.finishTurn()
	return nil
}

// TimeoutTurn applies the idle-turn policy: a player who already drew passes, anyone else
// draws one card and loses the turn.
func (g *Game) TimeoutTurn() {
	if g.phase != PhaseActive || g.pending != nil {
		return
	}
	player := g.current()
	g.bus.TurnTimedOut.Emit(event.TurnTimedOutPayload{Player: player.Event()})
	if g.hasDrawn {
		g.bus.PlayerPassed.Emit(event.PlayerPassedPayload{Player: player.Event()})
	} else {
		g.drawTo(player, 1, false)
	}
	g.finishTurn()
}

// LegalPlays lists the hand indexes the player could play right now.
func (g *Game) LegalPlays(playerID int64) []int {
	player, err := g.actingPlayer(playerID)
	if err != nil {
		return nil
	}
	var indexes []int
	for index := 0; index < player.hand.Size(); index++ {
		if g.legal(player, index) {
			indexes = append(indexes, index)
		}
	}
	return indexes
}

func (g *Game) Hand(playerID int64) ([]card.Card, error) {
	player := g.players.Get(playerID)
	if player == nil {
		return nil, consts.ErrorsNotInSession
	}
	return player.Cards(), nil
}

func (g *Game) Current() (event.Player, bool) {
	if g.phase != PhaseActive {
		return event.Player{}, false
	}
	return g.current().Event(), true
}

func (g *Game) CurrentColor() color.Color {
	return g.currentColor
}

func (g *Game) TurnID() int {
	return g.turnID
}

func (g *Game) HasDrawn() bool {
	return g.hasDrawn
}

func (g *Game) Winner() (event.Player, bool) {
	if g.winner == nil {
		return event.Player{}, false
	}
	return g.winner.Event(), true
}

// CardCount is the number of cards across deck, pile and hands. It stays at the deck size
// for the whole game.
func (g *Game) CardCount() int {
	return g.deck.Len() + g.pile.Len() + g.players.CardCount()
}

func (g *Game) PublicState() State {
	handCounts := make(map[int64]int, g.players.Len())
	g.players.ForEach(func(player *Player) {
		handCounts[player.ID] = player.hand.Size()
	})
	state := State{
		Phase:            g.phase,
		CurrentColor:     g.currentColor,
		Direction:        right,
		PlayerSequence:   g.Players(),
		PlayerHandCounts: handCounts,
		DeckSize:         g.deck.Len(),
		PileSize:         g.pile.Len(),
		AwaitingColor:    g.pending != nil,
		TurnID:           g.turnID,
	}
	if top, ok := g.pile.Top(); ok {
		state.LastPlayedCard = top
	}
	if g.cycler != nil {
		state.Direction = g.cycler.Direction()
		state.CurrentPlayer = g.current().Event()
		if g.pending != nil {
			state.CurrentPlayer = g.pending.player.Event()
		}
	}
	return state
}

func (g *Game) current() *Player {
	return g.players.Get(g.cycler.Current())
}

// actingPlayer validates that playerID may act now and returns them.
func (g *Game) actingPlayer(playerID int64) (*Player, error) {
	if g.phase != PhaseActive {
		return nil, consts.ErrorsSessionNotActive
	}
	if g.pending != nil {
		return nil, consts.ErrorsColorChoicePending
	}
	if g.cycler.Current() != playerID {
		return nil, consts.ErrorsNotYourTurn
	}
	return g.current(), nil
}

func (g *Game) legal(player *Player, index int) bool {
	candidate, ok := player.hand.Card(index)
	if !ok {
		return false
	}
	if g.hasDrawn && index != g.drawnIndex {
		return false
	}
	top, _ := g.pile.Top()
	if !Playable(candidate, top, g.currentColor) {
		return false
	}
	if candidate.Value() == card.WildDrawFour && !CanPlayWildDrawFour(player.hand, g.currentColor) {
		return false
	}
	return true
}

func (g *Game) drawTo(player *Player, amount int, forced bool) []card.Card {
	cards, reshuffled := g.deck.Draw(amount, g.pile)
	if reshuffled {
		g.bus.DeckReshuffled.Emit(event.DeckReshuffledPayload{DeckSize: g.deck.Len()})
	}
	player.hand.AddCards(cards)
	g.bus.PlayerDrewCards.Emit(event.PlayerDrewCardsPayload{
		Player: player.Event(),
		Count:  len(cards),
		Forced: forced,
		Cards:  cards,
	})
	return cards
}

func (g *Game) finishTurn() {
	g.cycler.Next()
	g.announceTurn()
}

func (g *Game) announceTurn() {
	g.hasDrawn = false
	g.drawnIndex = noDrawnCard
	g.pending = nil
	g.turnID++
	g.bus.TurnAdvanced.Emit(event.TurnAdvancedPayload{
		Player: g.current().Event(),
		TurnID: g.turnID,
	})
}

func (g *Game) finish(winner *Player) {
	g.phase = PhaseFinished
	g.winner = winner

	handSizes := make(map[int64]int, g.players.Len())
	standings := make([]event.Standing, 0, g.players.Len())
	g.players.ForEach(func(player *Player) {
		handSizes[player.ID] = player.hand.Size()
		standings = append(standings, event.Standing{Player: player.Event(), Cards: player.hand.Size()})
	})
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Cards < standings[j].Cards
	})
	g.bus.PlayerWon.Emit(event.PlayerWonPayload{
		Player:    winner.Event(),
		HandSizes: handSizes,
		Standings: standings,
	})
}

func effectOf(playedCard card.Card) event.Effect {
	switch playedCard.Value() {
	case card.Skip:
		return event.EffectSkip
	case card.Reverse:
		return event.EffectReverse
	case card.DrawTwo:
		return event.EffectDrawTwo
	case card.WildValue:
		return event.EffectWild
	case card.WildDrawFour:
		return event.EffectWildDrawFour
	default:
		return event.EffectNone
	}
}
