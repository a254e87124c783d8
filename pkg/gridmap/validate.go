package gridmap

import "fmt"

// Severity of a level-data issue.
type Severity uint8

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Nowhere marks issues that concern the whole level rather than one cell.
var Nowhere = Point{X: -1, Z: -1}

// Issue is one finding from Validate.
type Issue struct {
	Severity Severity
	At       Point
	Message  string
}

func (i Issue) String() string {
	if i.At == Nowhere {
		return fmt.Sprintf("%s: %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.At, i.Message)
}

// Validate checks the path network for data that would make agents stall or
// walk off the network. Agents never check this at runtime.
func (g *Grid) Validate() []Issue {
	var issues []Issue
	add := func(sev Severity, p Point, format string, args ...any) {
		issues = append(issues, Issue{Severity: sev, At: p, Message: fmt.Sprintf(format, args...)})
	}

	ends := 0
	g.ForEachCell(func(x, z int, c Cell) {
		if !c.Type.IsPath() {
			return
		}
		p := Point{x, z}
		mask := g.PathDirections(x, z)

		switch {
		case c.Type == End:
			ends++
			if !mask.Empty() {
				add(SeverityWarning, p, "end cell has exits %s; agents will walk past it", mask)
			}
		case mask.Empty():
			add(SeverityError, p, "%s cell has no exits and is not an end cell", c.Type)
		case mask.Count() > 1:
			add(SeverityWarning, p, "branch %s is resolved by N/E/S/W order", mask)
		}

		for _, d := range mask.Directions() {
			n := p.Add(d)
			if !g.InBounds(n.X, n.Z) {
				add(SeverityError, p, "exit %s leads outside the grid", d)
				continue
			}
			if !g.CellType(n.X, n.Z).IsPath() {
				add(SeverityError, p, "exit %s leads onto %s cell %s", d, g.CellType(n.X, n.Z), n)
			}
		}
	})

	seen := make(map[string]Point)
	for _, s := range g.spawns {
		if s.id == "" {
			add(SeverityError, s.at, "spawn has no id")
			continue
		}
		if first, dup := seen[s.id]; dup {
			add(SeverityError, s.at, "spawn id %q already used at %s", s.id, first)
			continue
		}
		seen[s.id] = s.at
	}

	if len(g.spawns) == 0 {
		add(SeverityWarning, Nowhere, "level has no spawn cells")
	}
	if ends == 0 {
		add(SeverityError, Nowhere, "level has no end cell")
	}
	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
