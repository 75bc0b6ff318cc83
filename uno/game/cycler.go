package game

const (
	left  = -1
	right = 1
)

// Cycler walks a fixed ring of player ids in the current direction.
type Cycler struct {
	elements  []int64
	current   int
	direction int
}

func NewCycler(elements []int64) *Cycler {
	return &Cycler{
		elements:  elements,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Current() int64 {
	return c.elements[c.current]
}

func (c *Cycler) Index() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

func (c *Cycler) Len() int {
	return len(c.elements)
}

func (c *Cycler) ForEach(function func(int64)) {
	for _, element := range c.elements {
		function(element)
	}
}

// Peek returns the element Next would move to, without moving.
func (c *Cycler) Peek() int64 {
	return c.elements[c.step()]
}

func (c *Cycler) Next() int64 {
	c.current = c.step()
	return c.elements[c.current]
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

func (c *Cycler) step() int {
	elementCount := len(c.elements)
	return (c.current + c.direction + elementCount) % elementCount
}
