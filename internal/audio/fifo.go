package audio

import (
	"encoding/binary"
	"sync"
)

// FIFODepth is the number of ring slots. One slot is kept free, so the
// usable depth is FIFODepth-1 (0xFFF), matching a 12-bit fill register.
const FIFODepth = 4096

// FIFO is the sample queue between the synthesizer and the DAC. Writers
// and the playback reader may live on different goroutines.
type FIFO struct {
	mu      sync.Mutex
	buf     [FIFODepth]uint32
	head    int
	tail    int
	playing bool

	underruns int
}

// NewFIFO returns an empty, stopped FIFO.
func NewFIFO() *FIFO { return &FIFO{} }

// WriteSample pushes one packed stereo sample, dropping it when full.
func (f *FIFO) WriteSample(v uint32) {
	f.mu.Lock()
	next := (f.head + 1) & (FIFODepth - 1)
	if next != f.tail {
		f.buf[f.head] = v
		f.head = next
	}
	f.mu.Unlock()
}

// BufferFill returns the number of queued samples.
func (f *FIFO) BufferFill() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fill()
}

func (f *FIFO) fill() int { return (f.head - f.tail) & (FIFODepth - 1) }

// EnablePlayback lets the reader start draining. Calling it again is a no-op.
func (f *FIFO) EnablePlayback() {
	f.mu.Lock()
	f.playing = true
	f.mu.Unlock()
}

// Playing reports whether playback has been enabled.
func (f *FIFO) Playing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.playing
}

// Flush drops every queued sample and stops playback.
func (f *FIFO) Flush() {
	f.mu.Lock()
	f.head, f.tail = 0, 0
	f.playing = false
	f.mu.Unlock()
}

// Drain discards up to n samples as if the DAC had played them.
func (f *FIFO) Drain(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.playing {
		return 0
	}
	if avail := f.fill(); n > avail {
		n = avail
	}
	f.tail = (f.tail + n) & (FIFODepth - 1)
	return n
}

// Underruns counts Reads that found nothing queued while playing.
func (f *FIFO) Underruns() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.underruns
}

// Read implements io.Reader for an audio player expecting signed 16-bit
// little-endian stereo frames. The low half of each sample is the left
// channel. When nothing is queued it returns a short run of silence so the
// player never stalls. Buffers shorter than one frame get nothing.
func (f *FIFO) Read(p []byte) (int, error) {
	frames := len(p) / 4
	if frames == 0 {
		// partial frames would misalign the channels
		return 0, nil
	}

	f.mu.Lock()
	n := 0
	if f.playing {
		for n < frames && f.tail != f.head {
			binary.LittleEndian.PutUint32(p[n*4:], f.buf[f.tail])
			f.tail = (f.tail + 1) & (FIFODepth - 1)
			n++
		}
		if n == 0 {
			f.underruns++
		}
	}
	f.mu.Unlock()

	if n > 0 {
		return n * 4, nil
	}
	silence := 128
	if silence > frames {
		silence = frames
	}
	for i := 0; i < silence*4; i++ {
		p[i] = 0
	}
	return silence * 4, nil
}
