package player

import (
	"math/rand"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// BotName picks a robot name not in taken. It falls back to a numbered name once all are used.
func BotName(rng *rand.Rand, taken map[string]bool) string {
	offset := rng.Intn(len(botNames))
	for i := range botNames {
		name := botNames[(offset+i)%len(botNames)]
		if !taken[name] {
			return name
		}
	}
	return botNames[offset] + " II"
}

// NewRobot returns the strategy robot seats play with.
func NewRobot(rng *rand.Rand) Strategy {
	if rng.Intn(4) == 0 {
		return NewNaivePlayer(rng)
	}
	return NewGoodPlayer()
}
