// Package mode holds the player-adjustable behavior flags and the speed
// tier table shared by the growth engine, the synthesizer and the input
// controller.
package mode

import "github.com/FabianRolfMatthiasNoll/fungus/internal/video"

// Tier is one preset speed configuration.
type Tier struct {
	Candidates  int // growth budget per frame
	WinnerRatio int // divisor applied to Candidates when winner cut is on
	BeepSpeed   int // multiplier for the tier-change beep
}

const (
	TierCount = 3
	TopTier   = TierCount - 1
)

// Tiers is ordered slowest to fastest.
var Tiers = [TierCount]Tier{
	{Candidates: 100, WinnerRatio: 10, BeepSpeed: 1},
	{Candidates: 400, WinnerRatio: 4, BeepSpeed: 2},
	{Candidates: 1600, WinnerRatio: 2, BeepSpeed: 4},
}

// MaxCandidates is the largest budget of any tier; candidate buffers are
// sized to it.
const MaxCandidates = 1600

// StartColor is the color growth begins with.
var StartColor = video.RGB(0, 32, 0)

// Mode is the full set of toggles. Color is kept as a 32-bit integer; only
// its low 16 bits reach the framebuffer.
type Mode struct {
	Paused     bool
	SuperGrow  bool
	SuperCycle bool
	WinnerCut  bool
	Tier       int
	Color      uint32
}

// Default is the power-on mode.
func Default() Mode {
	return Mode{
		WinnerCut: true,
		Tier:      1,
		Color:     uint32(StartColor),
	}
}

// Budget returns the candidate cap for the active tier and how many
// candidates are drawn as winners.
func (m Mode) Budget() (candidatesMax, winnerCount int) {
	t := Tiers[m.Tier]
	candidatesMax = t.Candidates
	winnerCount = candidatesMax
	if m.WinnerCut {
		winnerCount /= t.WinnerRatio
	}
	return candidatesMax, winnerCount
}

// Pixel is the color as written to the framebuffer.
func (m Mode) Pixel() uint16 { return uint16(m.Color) }

// NextTier advances the tier cyclically.
func (m *Mode) NextTier() { m.Tier = (m.Tier + 1) % TierCount }

// CycleColor steps the packed color as a plain integer. Wraparound is part
// of the effect.
func (m *Mode) CycleColor() {
	if m.SuperCycle {
		m.Color += 16
	} else {
		m.Color++
	}
}
