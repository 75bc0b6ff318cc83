package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	MinPlayers = 2
	MaxPlayers = 10

	MinHandSize = 1
	MaxHandSize = 8

	DefaultHandSize   = 7
	DefaultMaxPlayers = MaxPlayers

	DeckSize = 108

	JoinWindow   = 60 * time.Second
	PlayTimeout  = 40 * time.Second
	ColorTimeout = 60 * time.Second
	RobotDelay   = 1 * time.Second
	AuthTimeout  = 3 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist        = NewErr(1, true, "Exist. ")
	ErrorsChanClosed   = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout      = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail     = NewErr(1, true, "Auth fail. ")

	ErrorsNotYourTurn          = NewErr(100, false, "It's not your turn. ")
	ErrorsInvalidCardIndex     = NewErr(101, false, "Invalid card number. ")
	ErrorsIllegalCard          = NewErr(102, false, "You can't play that card. ")
	ErrorsSessionNotActive     = NewErr(103, false, "Game is not active. ")
	ErrorsSessionFull          = NewErr(104, false, "This game is full. ")
	ErrorsSessionAlreadyExists = NewErr(105, false, "There's already an active game in this room. ")
	ErrorsNotHost              = NewErr(106, false, "Only the host can do that. ")
	ErrorsInsufficientPlayers  = NewErr(107, false, "Not enough players (minimum 2). ")
	ErrorsSessionNotFound      = NewErr(108, false, "No active game in this room. ")
	ErrorsNotInSession         = NewErr(109, false, "You're not in this game. ")
	ErrorsColorChoicePending   = NewErr(110, false, "Waiting for a color to be chosen. ")
	ErrorsNoColorChoicePending = NewErr(111, false, "No color choice is pending. ")
	ErrorsInvalidColor         = NewErr(112, false, "Unknown color. ")
	ErrorsCannotPass           = NewErr(113, false, "You can only pass after drawing a playable card. ")
	ErrorsAlreadyDrew          = NewErr(114, false, "You already drew this turn. ")
	ErrorsInvalidSettings      = NewErr(115, false, "Invalid game settings. ")
)
