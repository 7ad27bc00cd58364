package growth

import "github.com/FabianRolfMatthiasNoll/fungus/internal/video"

// shadow has one bit per framebuffer cell and records which cells were
// already considered during the current frame.
type shadow [(video.Pixels + 7) / 8]byte

func (s *shadow) clear() {
	for i := range s {
		s[i] = 0
	}
}

// mark sets the bit for cell i and reports whether it was already set.
func (s *shadow) mark(i int) (seen bool) {
	bit := byte(1) << (i % 8)
	if s[i/8]&bit != 0 {
		return true
	}
	s[i/8] |= bit
	return false
}
