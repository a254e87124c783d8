// internal/defs/towers.go
package defs

import "image/color"

// TowerDefinition holds all the static data for a specific defender kind.
type TowerDefinition struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Damage   float64 `json:"damage"`
	FireRate float64 `json:"fire_rate"` // shots per second
	Range    float64 `json:"range"`     // world units
	Visuals  Visuals `json:"visuals"`
}

var builtinTowers = []TowerDefinition{
	{
		ID:       "ranger",
		Name:     "Ranger Tower",
		Damage:   25,
		FireRate: 1.0,
		Range:    2.5,
		Visuals: Visuals{
			Color:        color.RGBA{139, 69, 19, 255},
			RadiusFactor: 0.4,
			Glyph:        "T",
		},
	},
}
