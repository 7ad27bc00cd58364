// Package board provides a board with no display or sound card attached.
// Vblank arrives after a fixed number of status polls and the audio FIFO
// drains one frame's worth of samples per vblank, so the machine sees the
// same fill levels it would on hardware.
package board

import (
	"github.com/FabianRolfMatthiasNoll/fungus/internal/audio"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/video"
)

// ButtonSource supplies live button state, e.g. from a terminal.
type ButtonSource interface {
	Buttons() uint16
}

// Config describes the simulated peripherals.
type Config struct {
	PollsPerVBlank  int    // status reads before vblank is reported
	SamplesPerFrame int    // samples the DAC consumes between vblanks
	Clock           uint32 // value returned by the real-time clock
	Script          Script
	Live            ButtonSource
	Recorder        *audio.Recorder
}

// Defaults fills missing fields with reasonable defaults.
func (c *Config) Defaults() {
	if c.PollsPerVBlank <= 0 {
		c.PollsPerVBlank = 3
	}
	if c.SamplesPerFrame <= 0 {
		c.SamplesPerFrame = audio.SampleRate / audio.FrameRate
	}
}

// Headless implements fungus.Board in memory.
type Headless struct {
	cfg  Config
	fb   video.Framebuffer
	fifo *audio.FIFO

	polls  int
	frame  uint64
	resets int
	played int
}

func New(cfg Config) *Headless {
	cfg.Defaults()
	return &Headless{cfg: cfg, fifo: audio.NewFIFO()}
}

// VBlankTriggered reports true on every PollsPerVBlank-th read. Each
// reported vblank advances the frame counter and lets the DAC play one
// frame of samples.
func (h *Headless) VBlankTriggered() bool {
	h.polls++
	if h.polls < h.cfg.PollsPerVBlank {
		return false
	}
	h.polls = 0
	h.frame++
	h.played += h.fifo.Drain(h.cfg.SamplesPerFrame)
	return true
}

func (h *Headless) Framebuffer() *video.Framebuffer { return &h.fb }

func (h *Headless) Buttons() uint16 {
	b := h.cfg.Script.At(h.frame)
	if h.cfg.Live != nil {
		b |= h.cfg.Live.Buttons()
	}
	return b
}

// Reset flushes audio, as a real reset would, and counts the request.
func (h *Headless) Reset() {
	h.resets++
	h.fifo.Flush()
}

func (h *Headless) UnixSeconds() uint32 { return h.cfg.Clock }

func (h *Headless) BufferFill() int { return h.fifo.BufferFill() }

func (h *Headless) WriteSample(v uint32) {
	h.fifo.WriteSample(v)
	if h.cfg.Recorder != nil {
		h.cfg.Recorder.Add(v)
	}
}

func (h *Headless) EnablePlayback() { h.fifo.EnablePlayback() }

// Frame is the number of vblanks reported so far.
func (h *Headless) Frame() uint64 { return h.frame }

// Resets counts reset requests.
func (h *Headless) Resets() int { return h.resets }

// Played counts samples consumed by the simulated DAC.
func (h *Headless) Played() int { return h.played }
