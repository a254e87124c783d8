package input

import "go-grid-defense/pkg/gridmap"

// Projector maps a screen position onto the ground plane. It returns false
// when the cursor is not over the ground.
type Projector interface {
	ScreenToWorld(x, y int) (gridmap.Vec3, bool)
}
