// Package fungus is the frame driver. A Machine owns all simulation state
// and runs one fixed sequence per vertical blank: grow, refill audio, read
// the controller, step the color.
package fungus

import (
	"context"
	"log"
	"time"

	"github.com/FabianRolfMatthiasNoll/fungus/internal/audio"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/growth"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/input"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/mode"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/rng"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/video"
)

// framePeriod is the vblank spacing at 60 Hz.
const framePeriod = time.Second / audio.FrameRate

// Machine is the simulation context, passed explicitly to every component.
type Machine struct {
	cfg   Config
	board Board
	fb    *video.Framebuffer

	rng   *rng.Rand
	grow  *growth.Engine
	synth *audio.Synth
	ctl   input.Controller
	mode  mode.Mode

	frame        uint64
	boots        int
	resetPending bool
	lastSamples  int
}

// New wires a machine to b and boots it.
func New(cfg Config, b Board) *Machine {
	cfg.Defaults()
	m := &Machine{cfg: cfg, board: b, fb: b.Framebuffer()}
	m.rng = rng.New(0, 0, 0, 0)
	m.grow = growth.New(m.rng)
	m.boot()
	return m
}

// boot brings every piece of state back to power-on: clear screen, reseed,
// reset mode and audio counters.
func (m *Machine) boot() {
	m.fb.Clear()
	seed := m.cfg.Seed
	if !m.cfg.FixedSeed {
		seed = m.board.UnixSeconds()
	}
	m.rng.SeedFromClock(seed)

	if !m.cfg.NoPillars {
		video.DrawPillars(m.fb)
	}

	m.grow.Reset()
	m.synth = audio.NewSynth(m.rng)
	m.ctl = input.Controller{}
	m.mode = mode.Default()
	m.mode.Tier = m.cfg.StartTier
	m.resetPending = false
	m.boots++
	log.Printf("fungus: boot #%d seed=%d tier=%d", m.boots, seed, m.mode.Tier)
}

// RequestReset implements input.Resetter. The board is told right away;
// the machine reboots once the current frame finishes.
func (m *Machine) RequestReset() {
	m.resetPending = true
	m.board.Reset()
}

// StepFrame waits for vblank and then runs one frame. It only fails when ctx
// is cancelled while waiting.
func (m *Machine) StepFrame(ctx context.Context) error {
	if err := AwaitVBlank(ctx, m.board); err != nil {
		return err
	}
	start := time.Now()

	m.grow.Step(m.fb, m.mode)
	m.lastSamples = m.synth.Refill(m.board, m.mode.Paused)
	m.ctl.Apply(&m.mode, m.board.Buttons(), m.synth, m)
	m.mode.CycleColor()
	m.frame++

	if m.cfg.WarnLateFrames {
		if took := time.Since(start); took > framePeriod {
			log.Printf("late frame %d: work took %s", m.frame, took)
		}
	}
	if m.resetPending {
		log.Printf("fungus: reset requested at frame %d", m.frame)
		m.boot()
	}
	return nil
}

// Run steps frames until ctx is cancelled. On hardware it never returns.
func (m *Machine) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.StepFrame(ctx); err != nil {
			return err
		}
	}
}

// Mode returns a copy of the current mode flags.
func (m *Machine) Mode() mode.Mode { return m.mode }

// Frame counts completed frames since the process started.
func (m *Machine) Frame() uint64 { return m.frame }

// Boots counts boots, including the initial one.
func (m *Machine) Boots() int { return m.boots }

// Candidates is the size of the frontier drawn next frame.
func (m *Machine) Candidates() int { return len(m.grow.Current()) }

// LastSamples is how many audio samples the last frame wrote.
func (m *Machine) LastSamples() int { return m.lastSamples }

// Framebuffer is the buffer the machine draws into.
func (m *Machine) Framebuffer() *video.Framebuffer { return m.fb }
