package video

// Pillar layout: a 3x3 grid of squares with the centre cell left open.
const (
	PillarCount = 3
	PillarSize  = 40
	PillarGap   = 30
	pillarsSpan = PillarGap*(PillarCount-1) + PillarSize*PillarCount
)

// PillarColor is the dark red used for the obstacles.
var PillarColor = RGB(20, 0, 0)

// pillarsBase centres the pillar group on an axis of length n.
func pillarsBase(n int) int { return (n - pillarsSpan) / 2 }

// DrawPillars paints the obstacle squares that break up the growth field.
func DrawPillars(f *Framebuffer) {
	yRoot, xRoot := pillarsBase(Height), pillarsBase(Width)
	for by := 0; by < PillarCount; by++ {
		for bx := 0; bx < PillarCount; bx++ {
			if bx == PillarCount/2 && by == PillarCount/2 {
				continue // hole
			}
			y0 := yRoot + by*(PillarSize+PillarGap)
			x0 := xRoot + bx*(PillarSize+PillarGap)
			for y := 0; y < PillarSize; y++ {
				for x := 0; x < PillarSize; x++ {
					f.Pix[Index(x0+x, y0+y)] = PillarColor
				}
			}
		}
	}
}
