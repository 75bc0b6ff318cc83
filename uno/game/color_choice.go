package game

import (
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

// colorChoice is the pending decision after a wild card. Until it resolves the turn
// cannot advance and no other intent is accepted.
type colorChoice struct {
	player *Player
}

func (g *Game) AwaitingColor() bool {
	return g.pending != nil
}

// Chooser is the player who owes the color decision.
func (g *Game) Chooser() (event.Player, bool) {
	if g.pending == nil {
		return event.Player{}, false
	}
	return g.pending.player.Event(), true
}

func (g *Game) ChooseColor(playerID int64, chosen color.Color) error {
	if g.phase != PhaseActive {
		return consts.ErrorsSessionNotActive
	}
	if g.pending == nil {
		return consts.ErrorsNoColorChoicePending
	}
	if g.pending.player.ID != playerID {
		return consts.ErrorsNotYourTurn
	}
	if chosen.IsWild() || !isConcrete(chosen) {
		return consts.ErrorsInvalidColor
	}
	g.resolveColor(chosen, false)
	return nil
}

// TimeoutColor resolves a pending choice with a uniformly random color.
func (g *Game) TimeoutColor() {
	if g.phase != PhaseActive || g.pending == nil {
		return
	}
	g.resolveColor(randomColor(g.opts.Rand), true)
}

func (g *Game) resolveColor(chosen color.Color, timeout bool) {
	chooser := g.pending.player
	g.currentColor = chosen
	if top, ok := g.pile.Top(); ok {
		g.pile.ReplaceTop(top.WithColor(chosen))
	}
	g.bus.ColorChosen.Emit(event.ColorChosenPayload{
		Player:     chooser.Event(),
		Color:      chosen,
		WasTimeout: timeout,
	})
	g.finishTurn()
}

func randomColor(rng *rand.Rand) color.Color {
	return color.Concrete[rng.Intn(len(color.Concrete))]
}

func isConcrete(c color.Color) bool {
	for _, concrete := range color.Concrete {
		if c == concrete {
			return true
		}
	}
	return false
}
