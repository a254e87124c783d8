// internal/defs/types.go
package defs

import "image/color"

// Visuals contains parameters for drawing an entity.
type Visuals struct {
	Color        color.RGBA `json:"color" yaml:"color"`
	RadiusFactor float64    `json:"radius_factor" yaml:"radius_factor"`
	Glyph        string     `json:"glyph,omitempty" yaml:"glyph,omitempty"` // terminal viewer
}

// Library holds every enemy and defender definition known to a game,
// keyed by their ID.
type Library struct {
	Enemies map[string]EnemyDefinition
	Towers  map[string]TowerDefinition
}

// DefaultLibrary returns the built-in definitions.
func DefaultLibrary() *Library {
	lib := &Library{
		Enemies: make(map[string]EnemyDefinition, len(builtinEnemies)),
		Towers:  make(map[string]TowerDefinition, len(builtinTowers)),
	}
	for _, def := range builtinEnemies {
		lib.Enemies[def.ID] = def
	}
	for _, def := range builtinTowers {
		lib.Towers[def.ID] = def
	}
	return lib
}
