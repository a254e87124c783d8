// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  float64 `json:"health"`
	Speed   float64 `json:"speed"`  // world units per second
	Height  float64 `json:"height"` // hover height above the ground
	Bounty  int     `json:"bounty"`
	Visuals Visuals `json:"visuals"`
}

var builtinEnemies = []EnemyDefinition{
	{
		ID:     "cube",
		Name:   "Cube",
		Health: 100,
		Speed:  2.0,
		Height: 0.5,
		Bounty: 5,
		Visuals: Visuals{
			Color:        color.RGBA{255, 0, 0, 255},
			RadiusFactor: 0.25,
			Glyph:        "c",
		},
	},
	{
		ID:     "boss_cube",
		Name:   "Boss Cube",
		Health: 500,
		Speed:  1.0,
		Height: 0.8,
		Bounty: 50,
		Visuals: Visuals{
			Color:        color.RGBA{139, 0, 0, 255},
			RadiusFactor: 0.4,
			Glyph:        "B",
		},
	},
}
