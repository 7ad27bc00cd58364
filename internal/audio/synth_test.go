package audio

import (
	"testing"

	"github.com/FabianRolfMatthiasNoll/fungus/internal/rng"
)

// sinkStub records writes and reports a fixed fill level.
type sinkStub struct {
	fill    int
	written []uint32
	enabled int
}

func (s *sinkStub) BufferFill() int { return s.fill }
func (s *sinkStub) WriteSample(v uint32) { s.written = append(s.written, v) }
func (s *sinkStub) EnablePlayback() { s.enabled++ }

func newSynth() *Synth { return NewSynth(rng.New(1, 2, 3, 4)) }

func TestNeeded(t *testing.T) {
	if Target != 1000 {
		t.Fatalf("Target got %d want 1000", Target)
	}
	for _, c := range []struct{ fill, want int }{{0, 1000}, {300, 700}, {1000, 0}, {4095, 0}} {
		if got := Needed(c.fill); got != c.want {
			t.Fatalf("Needed(%d) got %d want %d", c.fill, got, c.want)
		}
	}
}

func TestRefillWritesExactDeficit(t *testing.T) {
	for _, fill := range []int{0, 1, 300, 999, 1000, 2000} {
		s := newSynth()
		sink := &sinkStub{fill: fill}
		n := s.Refill(sink, false)
		want := Needed(fill)
		if n != want || len(sink.written) != want {
			t.Fatalf("fill %d: wrote %d (returned %d) want %d", fill, len(sink.written), n, want)
		}
		if sink.enabled != 1 {
			t.Fatalf("fill %d: playback enabled %d times want 1", fill, sink.enabled)
		}
	}
}

func TestSamplesArePackedStereo(t *testing.T) {
	s := newSynth()
	sink := &sinkStub{}
	for i := 0; i < 20; i++ {
		s.Refill(sink, false)
		sink.fill = 200
	}
	for i, v := range sink.written {
		if uint16(v) != uint16(v>>16) {
			t.Fatalf("sample %d channels differ: %08x", i, v)
		}
	}
}

func TestFirstSampleDescendsFromZero(t *testing.T) {
	s := newSynth()
	if got := s.Next(false); got != 0xFF80FF80 {
		t.Fatalf("first sample got %08x want ff80ff80", got)
	}
}

func TestPausedHoldsWave(t *testing.T) {
	s := newSynth()
	for i := 0; i < 100; i++ {
		if got := s.Next(true); got != 0 {
			t.Fatalf("paused sample %d got %08x want 0", i, got)
		}
	}
	if s.Wave() != 1<<15 {
		t.Fatalf("wave moved while paused: %d", s.Wave())
	}
}

func TestWaveStaysUnderCeiling(t *testing.T) {
	s := newSynth()
	sawZero, sawRise := false, false
	prev := s.Wave()
	for i := 0; i < 500000; i++ {
		s.Next(false)
		w := s.Wave()
		if w > Ceiling {
			t.Fatalf("wave %d above ceiling", w)
		}
		if w%Scale != 0 {
			t.Fatalf("wave %d off the step grid", w)
		}
		if w == 0 {
			sawZero = true
		}
		if sawZero && w > prev {
			sawRise = true
		}
		if s.cycle%Gap > 1 {
			t.Fatalf("silent phase reached with Gap=%d", Gap)
		}
		prev = w
	}
	if !sawZero || !sawRise {
		t.Fatalf("wave never completed a cycle (zero=%v rise=%v)", sawZero, sawRise)
	}
}

func TestCeilingRedrawnEachCycle(t *testing.T) {
	s := newSynth()
	var peaks []uint16
	rising := false
	prev := s.Wave()
	for i := 0; i < 20000; i++ {
		s.Next(false)
		w := s.Wave()
		if w > prev {
			rising = true
		}
		if w < prev && rising {
			peaks = append(peaks, prev)
			rising = false
		}
		prev = w
	}
	if len(peaks) < 5 {
		t.Fatalf("only %d cycles peaked", len(peaks))
	}
	distinct := map[uint16]bool{}
	for _, p := range peaks {
		if p > Ceiling {
			t.Fatalf("peak %d above ceiling", p)
		}
		distinct[p] = true
	}
	if len(distinct) < 3 {
		t.Fatalf("peaks %v: ceiling is not redrawn per cycle", peaks)
	}
}

func TestBeepOverlay(t *testing.T) {
	s := newSynth()
	s.Beep(10)
	if !s.Beeping() || s.BeepSpeed() != 10 {
		t.Fatalf("beep not armed")
	}
	for i := 0; i < BeepTime; i++ {
		if !s.Beeping() {
			t.Fatalf("beep ended early at sample %d", i)
		}
		got := int16(uint16(s.Next(true)))
		want := int16((i * 10) % BeepVolume)
		if got != want {
			t.Fatalf("beep sample %d got %d want %d", i, got, want)
		}
	}
	if s.Beeping() {
		t.Fatalf("beep still active after %d samples", BeepTime)
	}
}

func TestBeepHoldsWaveEvenWhenRunning(t *testing.T) {
	s := newSynth()
	s.Beep(5)
	for i := 0; i < 50; i++ {
		s.Next(false)
	}
	if s.Wave() != 1<<15 {
		t.Fatalf("wave stepped under beep: %d", s.Wave())
	}
}

func TestBeepSignFollowsWave(t *testing.T) {
	s := newSynth()
	s.wave = 1<<15 + Scale
	s.Beep(20)
	s.Next(true)
	got := int16(uint16(s.Next(true)))
	base := int16(Scale)
	if want := base - 20; got != want {
		t.Fatalf("upper-half beep got %d want %d", got, want)
	}
}
