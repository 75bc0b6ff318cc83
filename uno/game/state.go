package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

// State is the public view of a session: nothing in it is private to a single player.
type State struct {
	Phase            Phase
	LastPlayedCard   card.Card
	CurrentColor     color.Color
	// CurrentPlayer is the chooser while AwaitingColor is set.
	CurrentPlayer    event.Player
	Direction        int
	PlayerSequence   []event.Player
	PlayerHandCounts map[int64]int
	DeckSize         int
	PileSize         int
	AwaitingColor    bool
	TurnID           int
}

func (s State) String() string {
	var lines []string
	if s.Phase != PhaseActive {
		lines = append(lines, fmt.Sprintf("Game is %s", s.Phase))
	}
	if s.PileSize > 0 {
		lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))
		lines = append(lines, fmt.Sprintf("Current color: %s", s.CurrentColor))
	}

	var playerStatuses []string
	for _, player := range s.PlayerSequence {
		marker := ""
		if s.Phase == PhaseActive && player.ID == s.CurrentPlayer.ID {
			marker = "-> "
		}
		playerStatus := fmt.Sprintf("%s%s (%d card(s))", marker, player.Name, s.PlayerHandCounts[player.ID])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	order := "clockwise"
	if s.Direction < 0 {
		order = "counter-clockwise"
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", order, strings.Join(playerStatuses, ", ")))
	if s.Phase == PhaseActive {
		lines = append(lines, fmt.Sprintf("Deck: %d card(s), pile: %d card(s)", s.DeckSize, s.PileSize))
	}

	return strings.Join(lines, "\n")
}
