// internal/level/validate.go
package level

import (
	"fmt"
	"strconv"

	"go-grid-defense/pkg/gridmap"
)

// Validate checks level data for problems the simulation would otherwise
// only show as stalled or skipped enemies. knownKind reports whether an
// enemy kind can be spawned.
func Validate(data *Data, knownKind func(kind string) bool) []gridmap.Issue {
	var issues []gridmap.Issue
	errorf := func(format string, args ...any) {
		issues = append(issues, issue(gridmap.SeverityError, format, args...))
	}
	warnf := func(format string, args ...any) {
		issues = append(issues, issue(gridmap.SeverityWarning, format, args...))
	}

	if data == nil {
		errorf("no level data")
		return issues
	}

	dims := data.Dimensions
	if dims.Width <= 0 || dims.Height <= 0 {
		errorf("dimensions %dx%d must be positive", dims.Width, dims.Height)
		return issues
	}

	hm := data.Terrain.Heightmap
	if len(hm) > 0 {
		if len(hm) != dims.Height+1 {
			warnf("heightmap has %d rows, want %d", len(hm), dims.Height+1)
		}
		for z, row := range hm {
			if len(row) != dims.Width+1 {
				warnf("heightmap row %d has %d samples, want %d", z, len(row), dims.Width+1)
			}
		}
	}

	grid, err := gridmap.New(dims, hm, data.Paths.Nodes, gridmap.Config{TileSize: 1, HeightScale: 1})
	if err != nil {
		errorf("%v", err)
		return issues
	}
	issues = append(issues, grid.Validate()...)

	spawns := make(map[string]bool)
	for _, id := range grid.SpawnIDs() {
		spawns[id] = true
	}

	if len(data.Waves) == 0 {
		warnf("level has no waves")
	}
	seenWave := make(map[string]bool)
	for i, w := range data.Waves {
		name := w.ID
		if name == "" {
			name = "#" + strconv.Itoa(i+1)
		}
		if w.ID != "" && seenWave[w.ID] {
			warnf("wave id %q is used more than once", w.ID)
		}
		seenWave[w.ID] = true

		if w.TotalEnemies() == 0 {
			warnf("wave %s spawns no enemies", name)
		}
		for _, g := range w.Spawns {
			if !spawns[g.PathID] {
				errorf("wave %s uses unknown spawn %q", name, g.PathID)
			}
			for _, e := range g.Enemies {
				if knownKind != nil && !knownKind(e.Type) {
					errorf("wave %s uses unknown enemy kind %q", name, e.Type)
				}
				if e.Count <= 0 {
					warnf("wave %s has %d x %q", name, e.Count, e.Type)
				}
			}
		}
	}
	return issues
}

func issue(sev gridmap.Severity, format string, args ...any) gridmap.Issue {
	return gridmap.Issue{Severity: sev, At: gridmap.Nowhere, Message: fmt.Sprintf(format, args...)}
}
