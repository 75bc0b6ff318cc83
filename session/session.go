package session

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
)

type intent struct {
	apply func() error
	reply chan error
}

// Session owns one game. Every intent and query runs on the session goroutine, one at a time,
// in arrival order; timers race against them on the same loop.
type Session struct {
	ID     string
	RoomID int64

	host     event.Player
	game     *game.Game
	bus      *event.Bus
	timeouts Timeouts
	rng      *rand.Rand

	robots      map[int64]player.Strategy
	robotNames  map[string]bool
	nextRobotID int64

	intents  chan intent
	fired    chan deadlineKey
	done     chan struct{}
	deadline *deadline
	phase    game.Phase
	onClose  func(*Session)
}

func newSession(roomID int64, host event.Player, settings Settings, timeouts Timeouts, listeners []interface{}) (*Session, error) {
	settings = settings.withDefaults()
	if err := settings.validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	bus := event.NewBus(listeners...)
	g, err := game.New(game.Options{
		HandSize:   settings.HandSize,
		MaxPlayers: settings.MaxPlayers,
		Rand:       rng,
		Deck:       settings.Deck,
	}, bus)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:         uuid.NewString(),
		RoomID:     roomID,
		host:       host,
		game:       g,
		bus:        bus,
		timeouts:   timeouts,
		rng:        rng,
		robots:     make(map[int64]player.Strategy),
		robotNames: make(map[string]bool),
		intents:    make(chan intent),
		fired:      make(chan deadlineKey),
		done:       make(chan struct{}),
		phase:      game.PhaseLobby,
	}

	bus.SessionCreated.Emit(event.SessionCreatedPayload{
		SessionID:  s.ID,
		RoomID:     roomID,
		Host:       host,
		HandSize:   settings.HandSize,
		MaxPlayers: settings.MaxPlayers,
	})
	if err := g.Join(host.ID, host.Name); err != nil {
		return nil, err
	}
	for i := 0; i < settings.Robots; i++ {
		if err := s.joinRobot(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Session) run() {
	log.Infof("session %s created in room %d by %s\n", s.ID, s.RoomID, s.host.Name)
	defer s.shutdown()
	s.startIfFull()
	for {
		s.observe()
		if s.game.Phase().Terminal() {
			return
		}
		s.arm()
		select {
		case in := <-s.intents:
			in.reply <- in.apply()
		case key := <-s.fired:
			s.expire(key)
		}
	}
}

func (s *Session) shutdown() {
	s.deadline.stop()
	close(s.done)
	if s.onClose != nil {
		s.onClose(s)
	}
}

// observe logs phase transitions.
func (s *Session) observe() {
	phase := s.game.Phase()
	if phase == s.phase {
		return
	}
	s.phase = phase
	switch phase {
	case game.PhaseActive:
		log.Infof("session %s started with %d players\n", s.ID, s.game.PlayerCount())
	case game.PhaseFinished:
		winner, _ := s.game.Winner()
		log.Infof("session %s finished, winner %s[%d]\n", s.ID, winner.Name, winner.ID)
	case game.PhaseCancelled:
		log.Infof("session %s cancelled\n", s.ID)
	}
}

func (s *Session) key() deadlineKey {
	return deadlineKey{
		phase:         s.game.Phase(),
		turnID:        s.game.TurnID(),
		awaitingColor: s.game.AwaitingColor(),
	}
}

// arm keeps exactly one deadline running for the decision the game waits on.
func (s *Session) arm() {
	key := s.key()
	if s.deadline != nil && s.deadline.key == key {
		return
	}
	s.deadline.stop()

	var after time.Duration
	switch {
	case key.phase == game.PhaseLobby:
		after = s.timeouts.JoinWindow
	case s.robotToAct() != nil:
		after = s.timeouts.RobotDelay
	case key.awaitingColor:
		after = s.timeouts.Color
	default:
		after = s.timeouts.Turn
	}
	s.deadline = schedule(key, after, s.fired, s.done)
}

func (s *Session) expire(key deadlineKey) {
	if key != s.key() {
		return
	}
	if key.phase == game.PhaseLobby {
		if s.game.PlayerCount() < consts.MinPlayers {
			log.Infof("session %s join window closed with %d player(s)\n", s.ID, s.game.PlayerCount())
			_ = s.game.Cancel("not enough players joined")
			return
		}
		s.logError(s.game.Start())
		return
	}
	if robot := s.robotToAct(); robot != nil {
		s.robotMove(*robot)
		return
	}
	if key.awaitingColor {
		chooser, _ := s.game.Chooser()
		log.Infof("session %s color choice of %s timed out\n", s.ID, chooser.Name)
		s.game.TimeoutColor()
		return
	}
	current, _ := s.game.Current()
	log.Infof("session %s turn of %s timed out\n", s.ID, current.Name)
	s.game.TimeoutTurn()
}

// robotToAct returns the robot the game is waiting on, if any.
func (s *Session) robotToAct() *event.Player {
	decider, ok := s.game.Chooser()
	if !ok {
		decider, ok = s.game.Current()
	}
	if !ok || s.robots[decider.ID] == nil {
		return nil
	}
	return &decider
}

func (s *Session) robotMove(robot event.Player) {
	strategy := s.robots[robot.ID]
	if s.game.AwaitingColor() {
		hand, _ := s.game.Hand(robot.ID)
		s.logError(s.game.ChooseColor(robot.ID, strategy.PickColor(hand)))
		return
	}

	turn := s.game.TurnID()
	if len(s.game.LegalPlays(robot.ID)) == 0 && !s.game.HasDrawn() {
		s.logError(s.game.Draw(robot.ID))
		if s.game.TurnID() != turn {
			return
		}
	}
	legal := s.game.LegalPlays(robot.ID)
	if len(legal) == 0 {
		s.logError(s.game.Pass(robot.ID))
		return
	}
	hand, _ := s.game.Hand(robot.ID)
	state := s.game.PublicState()
	index := strategy.Play(player.View{
		Hand:         hand,
		Legal:        legal,
		Top:          state.LastPlayedCard,
		CurrentColor: state.CurrentColor,
	})
	s.logError(s.game.Play(robot.ID, index))
}

func (s *Session) logError(err error) {
	if err != nil {
		log.Errorf("session %s: %v\n", s.ID, err)
	}
}

func (s *Session) joinRobot() error {
	s.nextRobotID--
	name := player.BotName(s.rng, s.robotNames)
	if err := s.game.JoinRobot(s.nextRobotID, name); err != nil {
		return err
	}
	s.robotNames[name] = true
	s.robots[s.nextRobotID] = player.NewRobot(s.rng)
	return nil
}

func (s *Session) startIfFull() {
	if s.game.Phase() == game.PhaseLobby && s.game.Full() {
		s.logError(s.game.Start())
	}
}

// do runs apply on the session goroutine and waits for its result.
func (s *Session) do(apply func() error) error {
	in := intent{apply: apply, reply: make(chan error, 1)}
	select {
	case s.intents <- in:
	case <-s.done:
		return consts.ErrorsSessionNotActive
	}
	select {
	case err := <-in.reply:
		return err
	case <-s.done:
		select {
		case err := <-in.reply:
			return err
		default:
			return consts.ErrorsSessionNotActive
		}
	}
}

func (s *Session) requireHost(playerID int64) error {
	if playerID != s.host.ID {
		return consts.ErrorsNotHost
	}
	return nil
}

// Done is closed once the session reached a terminal phase and stopped.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) Closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Session) Host() event.Player {
	return s.host
}

// Join adds a player. Reaching the player limit starts the game at once.
func (s *Session) Join(p event.Player) error {
	return s.do(func() error {
		if err := s.game.Join(p.ID, p.Name); err != nil {
			return err
		}
		s.startIfFull()
		return nil
	})
}

func (s *Session) AddRobot(by int64) error {
	return s.do(func() error {
		if err := s.requireHost(by); err != nil {
			return err
		}
		if s.game.Phase() != game.PhaseLobby {
			return consts.ErrorsSessionNotActive
		}
		if s.game.Full() {
			return consts.ErrorsSessionFull
		}
		if err := s.joinRobot(); err != nil {
			return err
		}
		s.startIfFull()
		return nil
	})
}

func (s *Session) Start(by int64) error {
	return s.do(func() error {
		if err := s.requireHost(by); err != nil {
			return err
		}
		return s.game.Start()
	})
}

func (s *Session) Cancel(by int64) error {
	return s.do(func() error {
		if err := s.requireHost(by); err != nil {
			return err
		}
		return s.game.Cancel("cancelled by host")
	})
}

// Abort cancels the session regardless of who asks, for shutdown and lost hosts.
func (s *Session) Abort(reason string) error {
	return s.do(func() error {
		return s.game.Cancel(reason)
	})
}

func (s *Session) Play(playerID int64, index int) error {
	return s.do(func() error {
		return s.game.Play(playerID, index)
	})
}

func (s *Session) Draw(playerID int64) error {
	return s.do(func() error {
		return s.game.Draw(playerID)
	})
}

func (s *Session) Pass(playerID int64) error {
	return s.do(func() error {
		return s.game.Pass(playerID)
	})
}

func (s *Session) ChooseColor(playerID int64, chosen color.Color) error {
	return s.do(func() error {
		return s.game.ChooseColor(playerID, chosen)
	})
}

// Hand is private to playerID; callers must only deliver it to that player.
func (s *Session) Hand(playerID int64) ([]card.Card, error) {
	var hand []card.Card
	err := s.do(func() error {
		var err error
		hand, err = s.game.Hand(playerID)
		return err
	})
	return hand, err
}

func (s *Session) LegalPlays(playerID int64) ([]int, error) {
	var legal []int
	err := s.do(func() error {
		legal = s.game.LegalPlays(playerID)
		return nil
	})
	return legal, err
}

func (s *Session) State() (game.State, error) {
	var state game.State
	err := s.do(func() error {
		state = s.game.PublicState()
		return nil
	})
	return state, err
}

func (s *Session) Players() ([]event.Player, error) {
	var players []event.Player
	err := s.do(func() error {
		players = s.game.Players()
		return nil
	})
	return players, err
}

func (s *Session) start() {
	async.Async(s.run)
}
