package gridmap

import "strings"

// Direction is one of the four compass exits, in fixed ordinal order.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections in the order agents evaluate them.
var AllDirections = [4]Direction{North, East, South, West}

var directionOffsets = [4][2]int{
	{0, -1}, // north
	{1, 0},  // east
	{0, 1},  // south
	{-1, 0}, // west
}

// Offset returns the cell delta for moving one step in d.
func (d Direction) Offset() (dx, dz int) {
	o := directionOffsets[d&3]
	return o[0], o[1]
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// DirectionMask is a 4-bit set of exits; bit i corresponds to Direction(i).
type DirectionMask uint8

// MaskOf builds a mask from explicit directions.
func MaskOf(dirs ...Direction) DirectionMask {
	var m DirectionMask
	for _, d := range dirs {
		m |= 1 << (d & 3)
	}
	return m
}

// MaskFromSlice converts the level-file form ([1,0,0,1]) into a mask.
// Entries beyond the fourth are ignored; any value other than 1 is "closed".
func MaskFromSlice(flags []int) DirectionMask {
	var m DirectionMask
	for i, v := range flags {
		if i >= 4 {
			break
		}
		if v == 1 {
			m |= 1 << i
		}
	}
	return m
}

// Has reports whether d is an open exit.
func (m DirectionMask) Has(d Direction) bool {
	return m&(1<<(d&3)) != 0
}

// Empty reports whether no exit is open.
func (m DirectionMask) Empty() bool {
	return m&0x0f == 0
}

// Count returns the number of open exits.
func (m DirectionMask) Count() int {
	n := 0
	for _, d := range AllDirections {
		if m.Has(d) {
			n++
		}
	}
	return n
}

// Directions returns the open exits in ordinal order.
func (m DirectionMask) Directions() []Direction {
	dirs := make([]Direction, 0, 4)
	for _, d := range AllDirections {
		if m.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (m DirectionMask) String() string {
	var b strings.Builder
	for _, d := range AllDirections {
		if m.Has(d) {
			b.WriteString(d.String())
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
