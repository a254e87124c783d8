package defs

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WaveData is one scripted batch of spawns. Wave declarations are read-only
// level content.
type WaveData struct {
	ID     string       `json:"id" yaml:"id"`
	Name   string       `json:"name" yaml:"name"`
	Spawns []SpawnGroup `json:"spawns" yaml:"spawns"`
}

// SpawnGroup sends enemies out of the spawn node whose id is PathID.
type SpawnGroup struct {
	PathID  string       `json:"path_id" yaml:"path_id"`
	Enemies []EnemyCount `json:"enemies" yaml:"enemies"`
}

// EnemyCount is a number of enemies of one kind.
type EnemyCount struct {
	Type  string `json:"type" yaml:"type"`
	Count int    `json:"count" yaml:"count"`
}

// TotalEnemies counts every enemy the wave will queue.
func (w WaveData) TotalEnemies() int {
	total := 0
	for _, s := range w.Spawns {
		for _, e := range s.Enemies {
			if e.Count > 0 {
				total += e.Count
			}
		}
	}
	return total
}

// CountByType sums enemies per kind across all spawn groups.
func (w WaveData) CountByType() map[string]int {
	counts := make(map[string]int)
	for _, s := range w.Spawns {
		for _, e := range s.Enemies {
			if e.Count > 0 {
				counts[e.Type] += e.Count
			}
		}
	}
	return counts
}

// Summary lists "Nx Kind Name" per enemy kind, sorted by kind id.
func (w WaveData) Summary() []string {
	counts := w.CountByType()
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, fmt.Sprintf("%dx %s", counts[k], DisplayName(k)))
	}
	return out
}

// DisplayName turns an id such as "boss_cube" into "Boss Cube".
func DisplayName(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}
