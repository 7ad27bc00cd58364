package board

import (
	"testing"

	"github.com/FabianRolfMatthiasNoll/fungus/internal/input"
)

func TestParseScript(t *testing.T) {
	sc, err := ParseScript("3:start, 10-12:x+b")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sc.Len() != 2 {
		t.Fatalf("got %d entries want 2", sc.Len())
	}
	cases := map[uint64]uint16{
		2:  0,
		3:  input.FaceStart,
		9:  0,
		10: input.FaceX | input.FaceB,
		12: input.FaceX | input.FaceB,
		13: 0,
	}
	for frame, want := range cases {
		if got := sc.At(frame); got != want {
			t.Fatalf("frame %d got %04x want %04x", frame, got, want)
		}
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, s := range []string{"x", "3:turbo", "a:x", "9-4:x", "1-z:x"} {
		if _, err := ParseScript(s); err == nil {
			t.Fatalf("%q accepted", s)
		}
	}
	if sc, err := ParseScript("  "); err != nil || sc.Len() != 0 {
		t.Fatalf("blank script got len=%d err=%v", sc.Len(), err)
	}
}

func TestTTYHold(t *testing.T) {
	tt := &TTY{hold: 2, done: make(chan struct{})}
	tt.key('x')
	tt.key('?')
	for i := 0; i < 2; i++ {
		if got := tt.Buttons(); got != input.FaceX {
			t.Fatalf("frame %d got %04x want x held", i, got)
		}
	}
	if got := tt.Buttons(); got != 0 {
		t.Fatalf("hold did not expire: %04x", got)
	}
	tt.key('q')
	select {
	case <-tt.Done():
	default:
		t.Fatalf("q did not close Done")
	}
}
