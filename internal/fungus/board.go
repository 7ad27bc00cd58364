package fungus

import (
	"context"
	"runtime"

	"github.com/FabianRolfMatthiasNoll/fungus/internal/audio"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/video"
)

// VBlank is the video status register.
type VBlank interface {
	// VBlankTriggered reports whether a vertical blank began since the flag
	// was last cleared. Clearing is up to the board.
	VBlankTriggered() bool
}

// VBlankWaiter is implemented by boards that can block until vblank instead
// of being polled.
type VBlankWaiter interface {
	WaitVBlank(ctx context.Context) error
}

// Board is every peripheral the machine talks to.
type Board interface {
	VBlank
	audio.Sink

	// Framebuffer is the scan-out memory.
	Framebuffer() *video.Framebuffer
	// Buttons is the controller word, 1 = pressed.
	Buttons() uint16
	// Reset requests a full system reset.
	Reset()
	// UnixSeconds is the coarse real-time clock.
	UnixSeconds() uint32
}

// pollCheck is how many flag polls pass between cancellation checks.
const pollCheck = 1024

// AwaitVBlank blocks until the board reports a vertical blank. Boards that
// implement VBlankWaiter are waited on; others are busy-polled.
func AwaitVBlank(ctx context.Context, v VBlank) error {
	if w, ok := v.(VBlankWaiter); ok {
		return w.WaitVBlank(ctx)
	}
	for polls := 1; !v.VBlankTriggered(); polls++ {
		if polls%pollCheck == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			runtime.Gosched()
		}
	}
	return nil
}
