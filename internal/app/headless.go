// internal/app/headless.go
package app

import (
	"go-grid-defense/internal/input"
	"go-grid-defense/pkg/gridmap"
)

// BuildSites lists EMPTY cells that touch the path, row by row.
func (g *Game) BuildSites() []gridmap.Point {
	var sites []gridmap.Point
	g.Grid.ForEachCell(func(x, z int, c gridmap.Cell) {
		if !g.Grid.CanPlaceEntity(x, z) {
			return
		}
		p := gridmap.Point{X: x, Z: z}
		for _, d := range gridmap.AllDirections {
			n := p.Add(d)
			if g.Grid.CellType(n.X, n.Z).IsPath() {
				sites = append(sites, p)
				return
			}
		}
	})
	return sites
}

// AutoBuild places up to n towers of kind along the path by clicking through
// the regular input pipeline. It returns how many were placed.
func (g *Game) AutoBuild(kind string, n int) (int, error) {
	placed := 0
	for _, site := range g.BuildSites() {
		if placed >= n {
			break
		}
		if err := g.BuildSystem.Activate(kind); err != nil {
			return placed, err
		}
		in := input.NewState()
		in.SetWorldPosition(g.Grid.GridToWorld(site.X, site.Z))
		in.Press(input.ButtonPrimary)
		g.Interaction.HandleInput(in, 0)
		if !g.Grid.CanPlaceEntity(site.X, site.Z) {
			placed++
		}
	}
	g.BuildSystem.Deactivate()
	return placed, nil
}

// SimOptions controls Simulate.
type SimOptions struct {
	DeltaTime float64 // seconds per tick
	MaxTime   float64 // simulated seconds before giving up
	OnTick    func(g *Game)
}

// Result summarises a headless run.
type Result struct {
	Stats       Stats
	WavesPlayed int
	SimTime     float64
	Finished    bool
}

// Simulate plays every wave back to back without a window, starting each
// one as soon as the wave manager is ready for it.
func (g *Game) Simulate(opts SimOptions) Result {
	if opts.DeltaTime <= 0 {
		opts.DeltaTime = 1.0 / 60
	}
	if opts.MaxTime <= 0 {
		opts.MaxTime = 600
	}

	for g.gameTime < opts.MaxTime && !g.Finished() {
		g.StartNextWave()
		g.Update(opts.DeltaTime, nil)
		if opts.OnTick != nil {
			opts.OnTick(g)
		}
	}
	return Result{
		Stats:       g.stats,
		WavesPlayed: g.WaveManager.CurrentWaveIndex() + 1,
		SimTime:     g.gameTime,
		Finished:    g.Finished(),
	}
}
