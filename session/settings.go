package session

import (
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

// Timeouts are the server-side windows a session waits for input.
type Timeouts struct {
	JoinWindow time.Duration
	Turn       time.Duration
	Color      time.Duration
	RobotDelay time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		JoinWindow: consts.JoinWindow,
		Turn:       consts.PlayTimeout,
		Color:      consts.ColorTimeout,
		RobotDelay: consts.RobotDelay,
	}
}

type Settings struct {
	HandSize   int
	MaxPlayers int
	// Robots seats are filled right after the host joins.
	Robots int
	// Deck replays a fixed card order instead of shuffling.
	Deck []card.Card
}

func (s Settings) withDefaults() Settings {
	if s.HandSize == 0 {
		s.HandSize = consts.DefaultHandSize
	}
	if s.MaxPlayers == 0 {
		s.MaxPlayers = consts.DefaultMaxPlayers
	}
	return s
}

func (s Settings) validate() error {
	if s.Robots < 0 || s.Robots >= s.MaxPlayers {
		return consts.ErrorsInvalidSettings
	}
	return nil
}
