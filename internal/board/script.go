package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FabianRolfMatthiasNoll/fungus/internal/input"
)

// Script is a timeline of held buttons keyed by frame number.
type Script struct {
	events []event
}

type event struct {
	from, to uint64
	mask     uint16
}

// ParseScript reads entries like "30:x" (held on frame 30 only) or
// "100-160:b+select" (held for that inclusive range), comma separated.
func ParseScript(s string) (Script, error) {
	var sc Script
	s = strings.TrimSpace(s)
	if s == "" {
		return sc, nil
	}
	for _, entry := range strings.Split(s, ",") {
		frames, names, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			return Script{}, fmt.Errorf("script entry %q: want frame:buttons", entry)
		}
		mask, err := input.ParseButtons(names)
		if err != nil {
			return Script{}, fmt.Errorf("script entry %q: %w", entry, err)
		}
		lo, hi, isRange := strings.Cut(frames, "-")
		from, err := strconv.ParseUint(lo, 10, 64)
		if err != nil {
			return Script{}, fmt.Errorf("script entry %q: %w", entry, err)
		}
		to := from
		if isRange {
			if to, err = strconv.ParseUint(hi, 10, 64); err != nil {
				return Script{}, fmt.Errorf("script entry %q: %w", entry, err)
			}
			if to < from {
				return Script{}, fmt.Errorf("script entry %q: range ends before it starts", entry)
			}
		}
		sc.events = append(sc.events, event{from: from, to: to, mask: mask})
	}
	return sc, nil
}

// At is the button word held during frame.
func (s Script) At(frame uint64) uint16 {
	var mask uint16
	for _, e := range s.events {
		if frame >= e.from && frame <= e.to {
			mask |= e.mask
		}
	}
	return mask
}

// Len is the number of entries.
func (s Script) Len() int { return len(s.events) }
