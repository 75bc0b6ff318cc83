package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/event"
)

type Player struct {
	ID    int64
	Name  string
	Robot bool

	hand *Hand
}

func newPlayer(id int64, name string, robot bool) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		Robot: robot,
		hand:  NewHand(),
	}
}

func (p *Player) Cards() []card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

func (p *Player) Event() event.Player {
	return event.Player{ID: p.ID, Name: p.Name, Robot: p.Robot}
}

// Registry keeps players in join order, which is also the turn order.
type Registry struct {
	players []*Player
	byID    map[int64]*Player
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[int64]*Player)}
}

// Add registers a player; it returns false when the id is already present.
func (r *Registry) Add(id int64, name string, robot bool) (*Player, bool) {
	if existing, ok := r.byID[id]; ok {
		return existing, false
	}
	player := newPlayer(id, name, robot)
	r.players = append(r.players, player)
	r.byID[id] = player
	return player, true
}

func (r *Registry) Get(id int64) *Player {
	return r.byID[id]
}

func (r *Registry) Len() int {
	return len(r.players)
}

func (r *Registry) IDs() []int64 {
	ids := make([]int64, 0, len(r.players))
	for _, player := range r.players {
		ids = append(ids, player.ID)
	}
	return ids
}

func (r *Registry) ForEach(function func(player *Player)) {
	for _, player := range r.players {
		function(player)
	}
}

func (r *Registry) CardCount() int {
	count := 0
	for _, player := range r.players {
		count += player.hand.Size()
	}
	return count
}

// Deal hands handSize cards to every player in join order.
func (r *Registry) Deal(deck *Deck, pile *Pile, handSize int) {
	r.ForEach(func(player *Player) {
		cards, _ := deck.Draw(handSize, pile)
		player.hand.AddCards(cards)
	})
}
