package session_test

import (
	"testing"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/session"
	"github.com/stretchr/testify/require"
)

var (
	alice = event.Player{ID: 1, Name: "alice"}
	bob   = event.Player{ID: 2, Name: "bob"}
	carol = event.Player{ID: 3, Name: "carol"}
)

const waitFor = 5 * time.Second

func slowTimeouts() session.Timeouts {
	return session.Timeouts{JoinWindow: time.Hour, Turn: time.Hour, Color: time.Hour, RobotDelay: time.Hour}
}

func stackedDeck(t *testing.T, top ...card.Card) []card.Card {
	rest := game.StandardCards()
	for _, wanted := range top {
		found := false
		for i, c := range rest {
			if c == wanted {
				rest = append(rest[:i], rest[i+1:]...)
				found = true
				break
			}
		}
		require.True(t, found)
	}
	return append(append([]card.Card{}, top...), rest...)
}

func payloadsOf[T any](listener *event.DummyListener) []T {
	var payloads []T
	for _, payload := range listener.ReceivedPayloads() {
		if typed, ok := payload.(T); ok {
			payloads = append(payloads, typed)
		}
	}
	return payloads
}

func waitDone(t *testing.T, s *session.Session) {
	select {
	case <-s.Done():
	case <-time.After(waitFor):
		t.Fatal("session did not stop")
	}
}

func TestCreate(t *testing.T) {
	manager := session.NewManager(slowTimeouts())
	defer manager.Close()
	listener := event.NewDummyListener()

	s, err := manager.Create(7, alice, session.Settings{HandSize: 5, MaxPlayers: 4}, listener)
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)
	require.Equal(t, alice, s.Host())

	created := payloadsOf[event.SessionCreatedPayload](listener)
	require.Equal(t, []event.SessionCreatedPayload{{
		SessionID:  s.ID,
		RoomID:     7,
		Host:       alice,
		HandSize:   5,
		MaxPlayers: 4,
	}}, created)

	players, err := s.Players()
	require.NoError(t, err)
	require.Equal(t, []event.Player{alice}, players)

	_, err = manager.Create(7, bob, session.Settings{})
	require.ErrorIs(t, err, consts.ErrorsSessionAlreadyExists)

	got, err := manager.Get(7)
	require.NoError(t, err)
	require.Same(t, s, got)
	_, err = manager.Get(8)
	require.ErrorIs(t, err, consts.ErrorsSessionNotFound)
}

func TestCreateValidatesSettings(t *testing.T) {
	manager := session.NewManager(slowTimeouts())
	for _, settings := range []session.Settings{
		{HandSize: 9},
		{MaxPlayers: 11},
		{MaxPlayers: 3, Robots: 3},
		{Robots: -1},
	} {
		_, err := manager.Create(1, alice, settings)
		require.ErrorIs(t, err, consts.ErrorsInvalidSettings)
	}
	require.Empty(t, manager.Sessions())
}

func TestJoinStartsAtMaxPlayers(t *testing.T) {
	manager := session.NewManager(slowTimeouts())
	defer manager.Close()

	s, err := manager.Create(1, alice, session.Settings{MaxPlayers: 2})
	require.NoError(t, err)
	require.NoError(t, s.Join(bob))
	require.NoError(t, s.Join(bob))

	state, err := s.State()
	require.NoError(t, err)
	require.Equal(t, game.PhaseActive, state.Phase)
	require.ErrorIs(t, s.Join(carol), consts.ErrorsSessionNotActive)

	hand, err := s.Hand(bob.ID)
	require.NoError(t, err)
	require.Len(t, hand, consts.DefaultHandSize)
	_, err = s.Hand(carol.ID)
	require.ErrorIs(t, err, consts.ErrorsNotInSession)
}

func TestHostOnlyIntents(t *testing.T) {
	manager := session.NewManager(slowTimeouts())
	defer manager.Close()

	s, err := manager.Create(1, alice, session.Settings{})
	require.NoError(t, err)
	require.ErrorIs(t, s.Start(alice.ID), consts.ErrorsInsufficientPlayers)
	require.NoError(t, s.Join(bob))

	require.ErrorIs(t, s.Start(bob.ID), consts.ErrorsNotHost)
	require.ErrorIs(t, s.Cancel(bob.ID), consts.ErrorsNotHost)
	require.ErrorIs(t, s.AddRobot(bob.ID), consts.ErrorsNotHost)

	require.NoError(t, s.Start(alice.ID))
	require.ErrorIs(t, s.AddRobot(alice.ID), consts.ErrorsSessionNotActive)
}

func TestCancel(t *testing.T) {
	manager := session.NewManager(slowTimeouts())
	listener := event.NewDummyListener()

	s, err := manager.Create(1, alice, session.Settings{}, listener)
	require.NoError(t, err)
	require.NoError(t, s.Join(bob))
	require.NoError(t, s.Start(alice.ID))

	require.NoError(t, s.Cancel(alice.ID))
	waitDone(t, s)
	require.Equal(t,
		[]event.SessionCancelledPayload{{Reason: "cancelled by host"}},
		payloadsOf[event.SessionCancelledPayload](listener),
	)

	require.ErrorIs(t, s.Draw(alice.ID), consts.ErrorsSessionNotActive)
	_, err = s.State()
	require.ErrorIs(t, err, consts.ErrorsSessionNotActive)
	_, err = manager.Get(1)
	require.ErrorIs(t, err, consts.ErrorsSessionNotFound)

	_, err = manager.Create(1, bob, session.Settings{})
	require.NoError(t, err)
	manager.Close()
}

func TestJoinWindow(t *testing.T) {
	timeouts := slowTimeouts()
	timeouts.JoinWindow = 20 * time.Millisecond
	manager := session.NewManager(timeouts)
	defer manager.Close()

	t.Run("cancels_a_lonely_lobby", func(t *testing.T) {
		listener := event.NewDummyListener()
		s, err := manager.Create(1, alice, session.Settings{}, listener)
		require.NoError(t, err)

		waitDone(t, s)
		require.Len(t, payloadsOf[event.SessionCancelledPayload](listener), 1)
		require.Empty(t, payloadsOf[event.SessionStartedPayload](listener))
	})

	t.Run("starts_with_two_players", func(t *testing.T) {
		listener := event.NewDummyListener()
		s, err := manager.Create(2, alice, session.Settings{}, listener)
		require.NoError(t, err)
		require.NoError(t, s.Join(bob))

		require.Eventually(t, func() bool {
			return len(payloadsOf[event.SessionStartedPayload](listener)) == 1
		}, waitFor, 5*time.Millisecond)
	})
}

func TestColorChoiceTimeout(t *testing.T) {
	timeouts := slowTimeouts()
	timeouts.Color = 20 * time.Millisecond
	manager := session.NewManager(timeouts)
	defer manager.Close()
	listener := event.NewDummyListener()

	s, err := manager.Create(1, alice, session.Settings{
		HandSize:   2,
		MaxPlayers: 3,
		Deck: stackedDeck(t,
			card.NewWildCard(), card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Green, 2), card.NewNumberCard(color.Green, 3),
			card.NewNumberCard(color.Red, 5), card.NewNumberCard(color.Red, 6),
			card.NewNumberCard(color.Red, 7),
		),
	}, listener)
	require.NoError(t, err)
	require.NoError(t, s.Join(bob))
	require.NoError(t, s.Join(carol))

	require.NoError(t, s.Play(alice.ID, 0))
	require.Eventually(t, func() bool {
		return len(payloadsOf[event.ColorChosenPayload](listener)) == 1
	}, waitFor, 5*time.Millisecond)

	chosen := payloadsOf[event.ColorChosenPayload](listener)[0]
	require.True(t, chosen.WasTimeout)
	require.Equal(t, alice, chosen.Player)
	require.Contains(t, color.Concrete, chosen.Color)

	state, err := s.State()
	require.NoError(t, err)
	require.Equal(t, bob, state.CurrentPlayer)
	require.Equal(t, chosen.Color, state.CurrentColor)
	require.False(t, state.AwaitingColor)
}

func playableDrawSession(t *testing.T) (*session.Session, *event.DummyListener) {
	manager := session.NewManager(slowTimeouts())
	t.Cleanup(manager.Close)
	listener := event.NewDummyListener()

	s, err := manager.Create(1, alice, session.Settings{
		HandSize:   1,
		MaxPlayers: 2,
		Deck: stackedDeck(t,
			card.NewNumberCard(color.Green, 1),
			card.NewNumberCard(color.Green, 2),
			card.NewNumberCard(color.Red, 7),
			card.NewNumberCard(color.Red, 9),
		),
	}, listener)
	require.NoError(t, err)
	require.NoError(t, s.Join(bob))

	require.ErrorIs(t, s.Pass(alice.ID), consts.ErrorsCannotPass)
	require.NoError(t, s.Draw(alice.ID))
	legal, err := s.LegalPlays(alice.ID)
	require.NoError(t, err)
	require.Equal(t, []int{1}, legal)
	state, err := s.State()
	require.NoError(t, err)
	require.Equal(t, alice, state.CurrentPlayer)
	return s, listener
}

func TestPlayableDraw(t *testing.T) {
	t.Run("play_the_drawn_card", func(t *testing.T) {
		s, listener := playableDrawSession(t)

		require.ErrorIs(t, s.Play(alice.ID, 0), consts.ErrorsIllegalCard)
		require.NoError(t, s.Play(alice.ID, 1))

		played := payloadsOf[event.CardPlayedPayload](listener)
		require.Len(t, played, 1)
		require.Equal(t, card.NewNumberCard(color.Red, 9), played[0].Card)
		state, err := s.State()
		require.NoError(t, err)
		require.Equal(t, bob, state.CurrentPlayer)
		require.Equal(t, 1, state.PlayerHandCounts[alice.ID])
	})

	t.Run("pass_after_drawing", func(t *testing.T) {
		s, listener := playableDrawSession(t)

		require.NoError(t, s.Pass(alice.ID))

		require.Equal(t, []event.PlayerPassedPayload{{Player: alice}}, payloadsOf[event.PlayerPassedPayload](listener))
		state, err := s.State()
		require.NoError(t, err)
		require.Equal(t, bob, state.CurrentPlayer)
		require.Equal(t, 2, state.PlayerHandCounts[alice.ID])
		require.ErrorIs(t, s.Pass(bob.ID), consts.ErrorsCannotPass)
	})
}

func TestTurnTimeout(t *testing.T) {
	timeouts := slowTimeouts()
	timeouts.Turn = 20 * time.Millisecond
	manager := session.NewManager(timeouts)
	defer manager.Close()
	listener := event.NewDummyListener()

	s, err := manager.Create(1, alice, session.Settings{MaxPlayers: 2}, listener)
	require.NoError(t, err)
	require.NoError(t, s.Join(bob))

	require.Eventually(t, func() bool {
		return len(payloadsOf[event.TurnTimedOutPayload](listener)) >= 1
	}, waitFor, 5*time.Millisecond)

	timedOut := payloadsOf[event.TurnTimedOutPayload](listener)[0]
	require.Equal(t, alice, timedOut.Player)
	draws := payloadsOf[event.PlayerDrewCardsPayload](listener)
	require.NotEmpty(t, draws)
	require.Equal(t, alice, draws[0].Player)
	require.False(t, draws[0].Forced)
}

func TestRobotsPlayToTheEnd(t *testing.T) {
	manager := session.NewManager(session.Timeouts{
		JoinWindow: time.Hour,
		Turn:       time.Millisecond,
		Color:      time.Millisecond,
		RobotDelay: time.Millisecond,
	})
	listener := event.NewDummyListener()

	s, err := manager.Create(1, alice, session.Settings{HandSize: 3, MaxPlayers: 3, Robots: 2}, listener)
	require.NoError(t, err)

	waitDone(t, s)
	won := payloadsOf[event.PlayerWonPayload](listener)
	require.Len(t, won, 1)
	require.Len(t, won[0].Standings, 3)
	require.Zero(t, won[0].Standings[0].Cards)
	require.Zero(t, won[0].HandSizes[won[0].Player.ID])
}

func TestManagerClose(t *testing.T) {
	manager := session.NewManager(slowTimeouts())
	first, err := manager.Create(1, alice, session.Settings{})
	require.NoError(t, err)
	second, err := manager.Create(2, bob, session.Settings{})
	require.NoError(t, err)
	require.Len(t, manager.Sessions(), 2)

	manager.Close()
	require.True(t, first.Closed())
	require.True(t, second.Closed())
	require.Empty(t, manager.Sessions())
}
