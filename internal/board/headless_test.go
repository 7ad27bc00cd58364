package board

import (
	"testing"

	"github.com/FabianRolfMatthiasNoll/fungus/internal/audio"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/input"
)

func TestVBlankAfterPolls(t *testing.T) {
	h := New(Config{PollsPerVBlank: 4})
	for i := 0; i < 3; i++ {
		if h.VBlankTriggered() {
			t.Fatalf("vblank reported after %d polls", i+1)
		}
	}
	if !h.VBlankTriggered() {
		t.Fatalf("vblank not reported on poll 4")
	}
	if h.Frame() != 1 {
		t.Fatalf("frame got %d want 1", h.Frame())
	}
}

func TestVBlankDrainsOneFrame(t *testing.T) {
	h := New(Config{PollsPerVBlank: 1})
	for i := 0; i < audio.Target; i++ {
		h.WriteSample(0)
	}
	h.VBlankTriggered()
	if h.BufferFill() != audio.Target {
		t.Fatalf("drained before playback enabled")
	}
	h.EnablePlayback()
	h.VBlankTriggered()
	if want := audio.Target - 800; h.BufferFill() != want || h.Played() != 800 {
		t.Fatalf("fill got %d want %d (played %d)", h.BufferFill(), want, h.Played())
	}
}

func TestResetFlushesAudio(t *testing.T) {
	h := New(Config{})
	h.WriteSample(1)
	h.EnablePlayback()
	h.Reset()
	if h.Resets() != 1 || h.BufferFill() != 0 {
		t.Fatalf("reset: resets=%d fill=%d", h.Resets(), h.BufferFill())
	}
}

func TestRecorderTap(t *testing.T) {
	rec := audio.NewRecorder(1)
	h := New(Config{Recorder: rec})
	h.WriteSample(audio.Pack(3))
	h.WriteSample(audio.Pack(4))
	if rec.Samples() != 2 {
		t.Fatalf("recorder saw %d samples want 2", rec.Samples())
	}
}

type fixedButtons uint16

func (f fixedButtons) Buttons() uint16 { return uint16(f) }

func TestButtonsMergeScriptAndLive(t *testing.T) {
	sc, err := ParseScript("1:x")
	if err != nil {
		t.Fatal(err)
	}
	h := New(Config{PollsPerVBlank: 1, Script: sc, Live: fixedButtons(input.FaceA)})
	h.VBlankTriggered()
	if got := h.Buttons(); got != input.FaceX|input.FaceA {
		t.Fatalf("frame 1 buttons got %04x", got)
	}
	h.VBlankTriggered()
	if got := h.Buttons(); got != input.FaceA {
		t.Fatalf("frame 2 buttons got %04x", got)
	}
}
