package card

import (
	"fmt"
	"strconv"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type Value string

const (
	Skip         Value = "Skip"
	Reverse      Value = "Reverse"
	DrawTwo      Value = "Draw2"
	WildValue    Value = "Wild"
	WildDrawFour Value = "WildDraw4"
)

const (
	drawTwoAmount  = 2
	drawFourAmount = 4
)

// Card is an immutable (color, value) pair. Two cards with the same pair are interchangeable.
type Card struct {
	color color.Color
	value Value
}

func NewNumberCard(cardColor color.Color, number int) Card {
	return Card{color: cardColor, value: Value(strconv.Itoa(number))}
}

func NewSkipCard(cardColor color.Color) Card {
	return Card{color: cardColor, value: Skip}
}

func NewReverseCard(cardColor color.Color) Card {
	return Card{color: cardColor, value: Reverse}
}

func NewDrawTwoCard(cardColor color.Color) Card {
	return Card{color: cardColor, value: DrawTwo}
}

func NewWildCard() Card {
	return Card{color: color.Wild, value: WildValue}
}

func NewWildDrawFourCard() Card {
	return Card{color: color.Wild, value: WildDrawFour}
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Value() Value {
	return c.value
}

func (c Card) IsWild() bool {
	return c.value == WildValue || c.value == WildDrawFour
}

func (c Card) IsNumber() bool {
	_, err := strconv.Atoi(string(c.value))
	return err == nil
}

// WithColor returns the wild card resolved to the chosen color. Non-wild cards are returned unchanged.
func (c Card) WithColor(chosen color.Color) Card {
	if !c.IsWild() {
		return c
	}
	return Card{color: chosen, value: c.value}
}

// Reset strips a resolved color from a wild card.
func (c Card) Reset() Card {
	if !c.IsWild() {
		return c
	}
	return Card{color: color.Wild, value: c.value}
}

func (c Card) Actions() []action.Action {
	switch c.value {
	case Skip:
		return []action.Action{action.NewSkipTurnAction()}
	case Reverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case DrawTwo:
		return []action.Action{
			action.NewDrawCardsAction(drawTwoAmount),
			action.NewSkipTurnAction(),
		}
	case WildValue:
		return []action.Action{action.NewPickColorAction()}
	case WildDrawFour:
		return []action.Action{
			action.NewDrawCardsAction(drawFourAmount),
			action.NewSkipTurnAction(),
			action.NewPickColorAction(),
		}
	default:
		return []action.Action{}
	}
}

func (c Card) Equal(other Card) bool {
	return c.Reset() == other.Reset()
}

func (c Card) String() string {
	switch c.value {
	case Skip:
		return c.color.Paint("(/)") + fmt.Sprintf("(%s)", c.color.Name())
	case Reverse:
		return c.color.Paint("<=>") + fmt.Sprintf("(%s)", c.color.Name())
	case DrawTwo:
		return c.color.Paint("+2!") + fmt.Sprintf("(%s)", c.color.Name())
	case WildValue:
		return c.color.Paint("(*)") + fmt.Sprintf("(%s)", c.color.Name())
	case WildDrawFour:
		return c.color.Paint("+4!") + fmt.Sprintf("(%s)", c.color.Name())
	default:
		return c.color.Paintf("[%s]", c.value) + fmt.Sprintf("(%s)", c.color.Name())
	}
}
