package gridmap

import "math"

// GridHeight returns the scaled lattice sample at vertex (x, z). The lattice
// is one larger than the cell grid in each axis; anything outside it is 0.
func (g *Grid) GridHeight(x, z int) float64 {
	if x < 0 || x > g.dims.Width || z < 0 || z > g.dims.Height {
		return 0
	}
	return g.sample(x, z) * g.cfg.HeightScale
}

// sample reads the raw height matrix with indices clamped to what the level
// actually supplied, so short or ragged matrices never cause a bad read.
func (g *Grid) sample(x, z int) float64 {
	if !g.hasHeight {
		return 0
	}
	rows := len(g.heights)
	if z >= rows {
		z = rows - 1
	}
	row := g.heights[z]
	for len(row) == 0 && z > 0 {
		z--
		row = g.heights[z]
	}
	if len(row) == 0 {
		return 0
	}
	if x >= len(row) {
		x = len(row) - 1
	}
	return row[x]
}

// HeightAt interpolates the terrain height at a world position from the four
// surrounding lattice samples.
func (g *Grid) HeightAt(worldX, worldZ float64) float64 {
	gx := worldX / g.cfg.TileSize
	gz := worldZ / g.cfg.TileSize

	x0 := int(math.Floor(gx))
	x1 := int(math.Ceil(gx))
	z0 := int(math.Floor(gz))
	z1 := int(math.Ceil(gz))

	fx := gx - float64(x0)
	fz := gz - float64(z0)

	h00 := g.GridHeight(x0, z0)
	h10 := g.GridHeight(x1, z0)
	h01 := g.GridHeight(x0, z1)
	h11 := g.GridHeight(x1, z1)

	h0 := h00*(1-fx) + h10*fx
	h1 := h01*(1-fx) + h11*fx
	return h0*(1-fz) + h1*fz
}

// WorldToGrid converts a world position to the cell that contains it.
func (g *Grid) WorldToGrid(pos Vec3) (x, z int) {
	return int(math.Floor(pos.X / g.cfg.TileSize)), int(math.Floor(pos.Z / g.cfg.TileSize))
}

// GridToWorld returns the centre of cell (x, z) raised to its lattice height.
func (g *Grid) GridToWorld(x, z int) Vec3 {
	return Vec3{
		X: (float64(x) + 0.5) * g.cfg.TileSize,
		Y: g.GridHeight(x, z),
		Z: (float64(z) + 0.5) * g.cfg.TileSize,
	}
}
