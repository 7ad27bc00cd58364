package ui

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// hostLoad samples host CPU and memory use in the background for the help
// overlay. Values are percentages scaled by 10.
type hostLoad struct {
	cpu atomic.Int64
	mem atomic.Int64
}

// run samples every interval until ctx is done.
func (h *hostLoad) run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		h.sample()
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

func (h *hostLoad) sample() {
	if v, err := mem.VirtualMemory(); err == nil {
		h.mem.Store(int64(math.Round(v.UsedPercent * 10)))
	}
	// Interval 0 compares against the previous call.
	if c, err := cpu.Percent(0, false); err == nil && len(c) > 0 {
		h.cpu.Store(int64(math.Round(c[0] * 10)))
	}
}

// percent returns CPU and memory use in percent.
func (h *hostLoad) percent() (cpuPct, memPct float64) {
	return float64(h.cpu.Load()) / 10, float64(h.mem.Load()) / 10
}
