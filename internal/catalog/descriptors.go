package catalog

import (
	"github.com/vovakirdan/gamevault/internal/games/breakout"
	"github.com/vovakirdan/gamevault/internal/games/snake"
)

// Descriptor is the static description of a built-in mini-game.
type Descriptor struct {
	GameID       string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Instructions string   `json:"instructions"`
	Controls     []string `json:"controls"`
}

var descriptors = map[string]Descriptor{
	snake.ID: {
		GameID:       snake.ID,
		Title:        "Snake",
		Description:  "Guide the snake to the food and grow longer without biting yourself.",
		Instructions: "Eat food to grow. The snake speeds up every 50 points. Hitting a wall or your own body ends the game.",
		Controls: []string{
			"Arrows/WASD: steer",
			"Space: start, pause, resume",
			"Esc/P: pause",
			"R: restart after game over",
		},
	},
	breakout.ID: {
		GameID:       breakout.ID,
		Title:        "Breakout",
		Description:  "Bounce the ball off your paddle and clear every brick on the wall.",
		Instructions: "Keep the ball in play with the paddle. Where the ball hits the paddle sets its angle. Clear all bricks to reach the next level.",
		Controls: []string{
			"Mouse or Left/Right: move paddle",
			"Space: start, pause, resume",
			"Esc/P: pause",
			"R: restart after game over",
		},
	},
}

// aliases maps every accepted slug to a registry id.
var aliases = map[string]string{
	"snake":         snake.ID,
	"snake-game":    snake.ID,
	"breakout":      breakout.ID,
	"breakout-game": breakout.ID,
}

// Resolve maps a catalog slug to the registry id of its built-in game.
func Resolve(slug string) (string, bool) {
	id, ok := aliases[Normalize(slug)]
	return id, ok
}

// Lookup returns the descriptor for a slug or alias.
func Lookup(slug string) (Descriptor, bool) {
	id, ok := Resolve(slug)
	if !ok {
		return Descriptor{}, false
	}
	d, ok := descriptors[id]
	return d, ok
}

// Descriptors returns all built-in game descriptors keyed by registry id.
func Descriptors() map[string]Descriptor {
	out := make(map[string]Descriptor, len(descriptors))
	for k, v := range descriptors {
		out[k] = v
	}
	return out
}
