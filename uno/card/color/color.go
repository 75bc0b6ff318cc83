package color

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/uno/consts"
)

type Color int

const (
	Wild Color = iota
	Red
	Yellow
	Green
	Blue
)

// Concrete lists the colors a player may choose after a wild card.
var Concrete = []Color{Red, Yellow, Green, Blue}

type palette struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var palettes = map[Color]palette{
	Wild:   {name: "Wild", colorFunction: color.New(color.FgHiMagenta).SprintfFunc()},
	Red:    {name: "Red", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Yellow: {name: "Yellow", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
	Green:  {name: "Green", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Blue:   {name: "Blue", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
}

func (c Color) Name() string {
	if p, ok := palettes[c]; ok {
		return p.name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	p, ok := palettes[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return p.colorFunction(format, args...)
}

func (c Color) IsWild() bool {
	return c == Wild
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// ByName parses a concrete color from its name or initial, ignoring case.
func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Concrete {
		candidate := strings.ToLower(c.Name())
		if name == candidate || name == candidate[:1] {
			return c, nil
		}
	}
	return Wild, consts.ErrorsInvalidColor
}
