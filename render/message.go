package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s!!!",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) SessionCreated(payload event.SessionCreatedPayload) string {
	return Sprintfln("%s opened an UNO table in room %d: %d cards each, up to %d players",
		payload.Host, payload.RoomID, payload.HandSize, payload.MaxPlayers)
}

func (m MessageWriter) PlayerJoined(payload event.PlayerJoinedPayload) string {
	return Sprintfln("%s joined! %d/%d players", payload.Player, payload.Count, payload.MaxPlayers)
}

func (m MessageWriter) SessionStarted(playerOrder []event.Player) string {
	names := make([]string, 0, len(playerOrder))
	for _, player := range playerOrder {
		names = append(names, player.Name)
	}
	return m.Welcome() + Sprintfln("Turn order: %s", strings.Join(names, ", "))
}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return Sprintfln("You drew %s!", cards)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int, forced bool) string {
	if forced {
		return Sprintfln("%s must draw %d cards!", playerName, amount)
	}
	if amount == 0 {
		return Sprintfln("%s tried to draw, but no cards are left!", playerName)
	}
	if amount == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color, timeout bool) string {
	if timeout {
		return Sprintfln("%s took too long, color %s was picked!", playerName, color)
	}
	return Sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card, effect event.Effect) string {
	msg := Sprintfln("%s played %s!", playerName, card)
	switch effect {
	case event.EffectSkip:
		msg += Sprintln("Next player's turn skipped!")
	case event.EffectReverse:
		msg += Sprintln("Turn order has been reversed!")
	}
	return msg
}

func (m MessageWriter) PromptColor() string {
	return Sprintfln(
		"Select a color: '%s', '%s', '%s' or '%s'? (color <name>)",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
}

func (m MessageWriter) UnoCalled(playerName string) string {
	return Sprintfln("%s: UNO!", playerName)
}

func (m MessageWriter) DeckReshuffled(deckSize int) string {
	return Sprintfln("The pile was shuffled back into the deck, %d cards left", deckSize)
}

func (m MessageWriter) TurnTimedOut(playerName string) string {
	return Sprintfln("%s ran out of time!", playerName)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return Sprintfln("It's %s's turn!", playerName)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

// Hand numbers the cards from 1 and marks the playable ones with '*'.
func (m MessageWriter) Hand(cards []card.Card, legal []int) string {
	playable := make(map[int]bool, len(legal))
	for _, index := range legal {
		playable[index] = true
	}
	buf := bytes.Buffer{}
	buf.WriteString("Your cards:")
	for index, c := range cards {
		marker := ""
		if playable[index] {
			marker = "*"
		}
		buf.WriteString(fmt.Sprintf(" %d.%s%s", index+1, c, marker))
	}
	if len(legal) > 0 {
		buf.WriteString("\nplay <n>, or draw")
	} else {
		buf.WriteString("\nNothing matches, draw or pass")
	}
	return Sprintln(buf.String())
}

func (m MessageWriter) WinnerFound(payload event.PlayerWonPayload) string {
	lines := []string{fmt.Sprintf("%s wins!", payload.Player)}
	for rank, standing := range payload.Standings {
		lines = append(lines, fmt.Sprintf("%d. %-20s%d card(s)", rank+1, standing.Player.Name, standing.Cards))
	}
	return Sprintlns(lines)
}

func (m MessageWriter) SessionCancelled(reason string) string {
	return Sprintfln("Game cancelled: %s", reason)
}
