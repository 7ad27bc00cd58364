package input

import (
	"github.com/FabianRolfMatthiasNoll/fungus/internal/audio"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/mode"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/rng"
)

// Beeper plays the feedback tone for a mode change.
type Beeper interface {
	Beep(speed uint16)
}

// Resetter requests a full system reset. It is not expected to return
// control in any meaningful way on real hardware.
type Resetter interface {
	RequestReset()
}

// Controller remembers last frame's button word for edge detection.
type Controller struct {
	last uint16
}

// Last is the button word seen on the previous Apply.
func (c *Controller) Last() uint16 { return c.last }

// Poll records state and returns its rising edges.
func (c *Controller) Poll(state uint16) uint16 {
	edge := Edges(c.last, state)
	c.last = state
	return edge
}

func beepSpeed(mult int) uint16 { return uint16(audio.BeepBase * mult) }

func pick(on bool, ifOn, ifOff int) int {
	if on {
		return ifOn
	}
	return ifOff
}

// Apply polls state and applies every action whose button went down this
// frame. It returns the edge mask.
func (c *Controller) Apply(m *mode.Mode, state uint16, b Beeper, r Resetter) uint16 {
	edge := c.Poll(state)

	if edge&FaceSelect != 0 {
		m.Paused = !m.Paused
	}
	if edge&FaceStart != 0 {
		r.RequestReset()
	}
	if edge&FaceY != 0 {
		m.WinnerCut = !m.WinnerCut
		b.Beep(beepSpeed(pick(m.WinnerCut, 2, 4)))
	}
	if edge&FaceX != 0 {
		m.SuperGrow = !m.SuperGrow
		b.Beep(beepSpeed(pick(m.SuperGrow, 4, 2)))
	}
	if edge&FaceB != 0 {
		m.NextTier()
		b.Beep(beepSpeed(mode.Tiers[m.Tier].BeepSpeed))
	}
	if edge&FaceA != 0 {
		m.SuperCycle = !m.SuperCycle
		b.Beep(beepSpeed(pick(m.SuperCycle, 4, 2)))
	}
	if edge&TrigL1 != 0 {
		m.Color = rng.Rotl(m.Color, 5)
	}
	if edge&TrigR1 != 0 {
		m.Color = rng.Rotr(m.Color, 6)
	}
	return edge
}
