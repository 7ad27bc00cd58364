package growth

import (
	"github.com/FabianRolfMatthiasNoll/fungus/internal/mode"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/video"
)

// Capacity is the fixed size of each candidate set.
const Capacity = mode.MaxCandidates

// Point is a pixel coordinate, always inside the display.
type Point struct {
	X, Y uint16
}

// Center is where growth is seeded when the frontier runs dry.
var Center = Point{X: video.Width / 2, Y: video.Height / 2}

func (p Point) index() int { return video.Index(int(p.X), int(p.Y)) }

// Neighbors returns the four 4-connected neighbors of p, wrapping around the
// display edges: below, right, above, left.
func Neighbors(p Point) [4]Point {
	return [4]Point{
		{p.X, (p.Y + 1) % video.Height},
		{(p.X + 1) % video.Width, p.Y},
		{p.X, (p.Y + video.Height - 1) % video.Height},
		{(p.X + video.Width - 1) % video.Width, p.Y},
	}
}

// candidateSet is a fixed-capacity list of points.
type candidateSet struct {
	pts [Capacity]Point
	n   int
}

func (c *candidateSet) push(p Point) {
	c.pts[c.n] = p
	c.n++
}

func (c *candidateSet) slice() []Point { return c.pts[:c.n] }

func (c *candidateSet) reset() { c.n = 0 }
