// Package audio generates the bubbling triangle-wave soundtrack and models
// the hardware sample FIFO it is written into.
//
// The synthesizer produces a triangle wave whose ceiling is redrawn at
// random every cycle, so lower cycles are also quieter. Input events can
// lay a short sawtooth "beep" over the wave; the beep runs even while the
// demo is paused.
package audio

import "github.com/FabianRolfMatthiasNoll/fungus/internal/rng"

const (
	SampleRate = 48000
	FrameRate  = 60

	// Target is the FIFO fill level topped up to every frame: one frame of
	// audio plus headroom.
	Target = SampleRate/FrameRate + 200

	Scale   = 128     // wave step per sample
	Ceiling = 1 << 15 // max random wave ceiling
	Gap     = 2       // phase count; values above 2 insert silent gaps

	BeepBase   = 5
	BeepTime   = SampleRate / BeepBase / 2 // beep length in samples
	BeepVolume = (1 << 16) / 32            // beep ramp period
)

// Sink is the hardware side of audio output.
type Sink interface {
	// BufferFill reports how many samples are queued.
	BufferFill() int
	// WriteSample queues one packed stereo sample.
	WriteSample(stereo uint32)
	// EnablePlayback starts (or keeps) the DAC consuming samples.
	EnablePlayback()
}

// Synth holds the wave and beep counters that persist across frames.
type Synth struct {
	rng *rng.Rand

	cycle   uint16
	silence uint16
	wave    uint16
	ceil    uint16

	beeping   bool
	beepSpeed uint16
	beepTime  uint16
	beepSign  int16
}

// NewSynth starts the wave descending from signed zero so there is no pop
// at power-on.
func NewSynth(r *rng.Rand) *Synth {
	return &Synth{
		rng:       r,
		cycle:     1,
		wave:      1 << 15,
		beepSpeed: 1,
		beepSign:  1,
	}
}

// Needed is how many samples bring a FIFO at fill up to Target.
func Needed(fill int) int {
	if fill >= Target {
		return 0
	}
	return Target - fill
}

// Refill tops sink up to Target and enables playback. It returns the number
// of samples written.
func (s *Synth) Refill(sink Sink, paused bool) int {
	n := Needed(sink.BufferFill())
	for i := 0; i < n; i++ {
		sink.WriteSample(s.Next(paused))
	}
	sink.EnablePlayback()
	return n
}

// Next advances the counters by one sample and returns it packed for both
// channels.
func (s *Synth) Next(paused bool) uint32 {
	if !paused && !s.beeping {
		s.stepWave()
	}

	// Unsigned mono to signed: bias by half the range.
	value := uint16((uint32(s.wave) + (1 << 15)) & 0xFFFF)
	if s.beeping {
		ramp := int16((int(s.beepTime) * int(s.beepSpeed)) % BeepVolume)
		value = uint16(int16(value) + ramp*s.beepSign)
		s.beepTime++
		if s.beepTime >= BeepTime {
			s.beeping = false
		}
	}
	return Pack(value)
}

func (s *Synth) stepWave() {
	switch s.cycle % Gap {
	case 0: // rising
		if s.wave >= s.ceil {
			s.cycle++
		} else {
			s.wave += Scale
		}
	case 1: // falling
		if s.wave == 0 {
			s.ceil = uint16(s.rng.NextInRange(Ceiling))
			s.silence = 0
			s.cycle++
		} else {
			s.wave -= Scale
		}
	default: // silent gap, only reachable with Gap > 2
		if s.silence >= s.ceil {
			s.wave = 0
			s.silence = 0
			s.cycle++
		} else {
			s.silence += Scale
		}
	}
}

// Beep starts the overlay at the given ramp speed. The ramp points away from
// the half of the range the wave is currently in.
func (s *Synth) Beep(speed uint16) {
	s.beeping = true
	s.beepSpeed = speed
	s.beepTime = 0
	if s.wave > 1<<15 {
		s.beepSign = -1
	} else {
		s.beepSign = 1
	}
}

// Beeping reports whether the overlay is active.
func (s *Synth) Beeping() bool { return s.beeping }

// BeepSpeed is the speed of the most recent beep.
func (s *Synth) BeepSpeed() uint16 { return s.beepSpeed }

// Wave is the current unsigned wave level.
func (s *Synth) Wave() uint16 { return s.wave }

// Pack duplicates a 16-bit sample into both halves of a stereo word.
func Pack(v uint16) uint32 { return uint32(v) | uint32(v)<<16 }
