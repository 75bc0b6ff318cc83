package event

type Player struct {
	ID    int64
	Name  string
	Robot bool
}

func (p Player) String() string {
	return p.Name
}

type Effect string

const (
	EffectNone         Effect = ""
	EffectSkip         Effect = "skip"
	EffectReverse      Effect = "reverse"
	EffectDrawTwo      Effect = "draw_two"
	EffectWild         Effect = "wild"
	EffectWildDrawFour Effect = "wild_draw_four"
)

// Standing is one line of the final ranking, fewest cards first.
type Standing struct {
	Player Player
	Cards  int
}
