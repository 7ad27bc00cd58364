// Package growth implements the double-buffered frontier that spreads color
// across the framebuffer one frame at a time.
//
// Each frame the "current" set is drawn (up to the winner count) and then
// expanded into the "next" set by testing every unseen toroidal neighbor
// against the admission rule. The sets then swap. All storage is fixed at
// construction.
package growth

import (
	"github.com/FabianRolfMatthiasNoll/fungus/internal/mode"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/rng"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/video"
)

// Engine owns both candidate sets and the per-frame shadow bitmap.
type Engine struct {
	sets    [2]candidateSet
	current int
	seen    shadow
	rng     *rng.Rand
}

// New returns an engine with empty candidate sets. r drives the shuffles.
func New(r *rng.Rand) *Engine {
	return &Engine{rng: r}
}

// Current returns the frontier that will be drawn next. The slice aliases
// engine storage and is only valid until the next call.
func (e *Engine) Current() []Point { return e.sets[e.current].slice() }

// Next returns the set being built. Between frames it is always empty.
func (e *Engine) Next() []Point { return e.sets[1-e.current].slice() }

// Reset drops both frontiers so the next Draw seeds from the center.
func (e *Engine) Reset() {
	e.sets[0].reset()
	e.sets[1].reset()
	e.current = 0
}

// Step runs one frame: Draw followed by Advance.
func (e *Engine) Step(fb *video.Framebuffer, m mode.Mode) {
	e.Draw(fb, m)
	e.Advance(fb, m)
}

// Draw seeds an empty frontier with the center point, then writes the
// current color at the first winnerCount candidates. The rest of the
// frontier is not drawn.
func (e *Engine) Draw(fb *video.Framebuffer, m mode.Mode) {
	cur := &e.sets[e.current]
	if cur.n == 0 {
		cur.push(Center)
	}
	_, winners := m.Budget()
	color := m.Pixel()
	for i := 0; i < winners && i < cur.n; i++ {
		fb.Set(cur.pts[i].index(), color)
	}
}

// Advance expands the frontier into the next set and swaps. When paused it
// only reshuffles the current set.
func (e *Engine) Advance(fb *video.Framebuffer, m mode.Mode) {
	cur := &e.sets[e.current]
	if m.Paused {
		rng.Shuffle(e.rng, cur.slice())
		return
	}

	candidatesMax, _ := m.Budget()
	next := 1 - e.current
	nx := &e.sets[next]
	nx.reset()
	e.seen.clear()

	color := m.Pixel()
	for i := 0; i < cur.n && nx.n < candidatesMax; i++ {
		for _, nb := range Neighbors(cur.pts[i]) {
			if nx.n >= candidatesMax {
				break
			}
			at := nb.index()
			if e.seen.mark(at) {
				continue
			}
			if !Admit(color, fb.At(at), m.SuperGrow) {
				continue
			}
			nx.push(nb)
		}
	}

	rng.Shuffle(e.rng, nx.slice())

	// Super grow at the top tier stalls easily; hold the stalled frontier
	// instead of falling back to the center seed.
	if m.SuperGrow && m.Tier == mode.TopTier && nx.n == 0 {
		next, e.current = e.current, next
	}

	e.sets[e.current].reset()
	e.current = next
}

// Admit reports whether a neighbor whose existing cell is prev may be taken
// over by color. Both values are compared as packed integers.
func Admit(color, prev uint16, superGrow bool) bool {
	diff := color - prev
	if superGrow {
		diff += 0x100
		return prev == 0 || diff >= 0x200
	}
	return int16(diff) > 0
}
