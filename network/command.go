package network

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/render"
	"github.com/ratel-online/uno/session"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

const helpText = `Commands:
  ls                          list tables
  create <room> [cards] [max] open a table, you are the host
  join <room>                 sit down at a table
  robot                       add a robot (host)
  start | cancel              start or cancel the game (host)
  play <n> | draw | pass      take your turn
  color <red|yellow|green|blue>
  hand | state                show your cards or the table
  exit                        leave the table, or the server
`

type command func(h *Hub, c *Client, args []string) error

var commands = map[string]command{
	"ls":     listSessions,
	"create": createSession,
	"join":   joinSession,
	"robot":  addRobot,
	"start":  startSession,
	"cancel": cancelSession,
	"play":   playCard,
	"draw":   drawCard,
	"pass":   pass,
	"color":  chooseColor,
	"hand":   showHand,
	"state":  showState,
	"help":   help,
}

// Handle runs one line of client input. It reports whether the client asked to disconnect.
func (h *Hub) Handle(c *Client, line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}
	if fields[0] == "exit" {
		if c.RoomID == 0 {
			return true
		}
		h.leave(c)
		_ = c.WriteString("You left the table\n")
		return false
	}
	cmd, ok := commands[fields[0]]
	if !ok {
		_ = c.WriteError(consts.ErrorsInputInvalid)
		return false
	}
	if err := cmd(h, c, fields[1:]); err != nil {
		_ = c.WriteError(err)
	}
	return false
}

func (h *Hub) session(c *Client) (*session.Session, error) {
	if c.RoomID == 0 {
		return nil, consts.ErrorsNotInSession
	}
	return h.sessions.Get(c.RoomID)
}

func intArgs(args []string) ([]int64, error) {
	values := make([]int64, 0, len(args))
	for _, arg := range args {
		value, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, consts.ErrorsInputInvalid
		}
		values = append(values, value)
	}
	return values, nil
}

func listSessions(h *Hub, c *Client, _ []string) error {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-10s%-20s%-10s%-10s\n", "Room", "Host", "Players", "State"))
	for _, s := range h.sessions.Sessions() {
		players, err := s.Players()
		if err != nil {
			continue
		}
		state, err := s.State()
		if err != nil {
			continue
		}
		buf.WriteString(fmt.Sprintf("%-10d%-20s%-10d%-10s\n", s.RoomID, s.Host().Name, len(players), state.Phase))
	}
	return c.WriteString(buf.String())
}

func createSession(h *Hub, c *Client, args []string) error {
	values, err := intArgs(args)
	if err != nil || len(values) < 1 || len(values) > 3 || values[0] <= 0 {
		return consts.ErrorsInputInvalid
	}
	roomID := values[0]
	settings := session.Settings{}
	if len(values) > 1 {
		settings.HandSize = int(values[1])
	}
	if len(values) > 2 {
		settings.MaxPlayers = int(values[2])
	}

	previous := c.RoomID
	h.enter(c, roomID)
	renderer := render.New(roomID, h, func() (render.Seats, error) {
		s, err := h.sessions.Get(roomID)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
	if _, err = h.sessions.Create(roomID, event.Player{ID: c.ID, Name: c.Name}, settings, renderer); err != nil {
		h.leave(c)
		if previous != 0 {
			h.enter(c, previous)
		}
		return err
	}
	return nil
}

func joinSession(h *Hub, c *Client, args []string) error {
	values, err := intArgs(args)
	if err != nil || len(values) != 1 {
		return consts.ErrorsInputInvalid
	}
	s, err := h.sessions.Get(values[0])
	if err != nil {
		return err
	}
	previous := c.RoomID
	h.enter(c, s.RoomID)
	if err = s.Join(event.Player{ID: c.ID, Name: c.Name}); err != nil {
		h.leave(c)
		if previous != 0 {
			h.enter(c, previous)
		}
		return err
	}
	return nil
}

func addRobot(h *Hub, c *Client, _ []string) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return s.AddRobot(c.ID)
}

func startSession(h *Hub, c *Client, _ []string) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return s.Start(c.ID)
}

func cancelSession(h *Hub, c *Client, _ []string) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return s.Cancel(c.ID)
}

func playCard(h *Hub, c *Client, args []string) error {
	values, err := intArgs(args)
	if err != nil || len(values) != 1 {
		return consts.ErrorsInputInvalid
	}
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return s.Play(c.ID, int(values[0])-1)
}

func drawCard(h *Hub, c *Client, _ []string) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	if err = s.Draw(c.ID); err != nil {
		return err
	}
	return sendHand(s, c)
}

func pass(h *Hub, c *Client, _ []string) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return s.Pass(c.ID)
}

func chooseColor(h *Hub, c *Client, args []string) error {
	if len(args) != 1 {
		return consts.ErrorsInputInvalid
	}
	chosen, err := color.ByName(args[0])
	if err != nil {
		return err
	}
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return s.ChooseColor(c.ID, chosen)
}

func showHand(h *Hub, c *Client, _ []string) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return sendHand(s, c)
}

func sendHand(s *session.Session, c *Client) error {
	hand, err := s.Hand(c.ID)
	if err != nil {
		return err
	}
	legal, err := s.LegalPlays(c.ID)
	if err != nil {
		return err
	}
	return c.WriteString(render.Message.Hand(hand, legal))
}

func showState(h *Hub, c *Client, _ []string) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	state, err := s.State()
	if err != nil {
		return err
	}
	return c.WriteString(state.String() + "\n")
}

func help(_ *Hub, c *Client, _ []string) error {
	return c.WriteString(helpText)
}
