package board

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/FabianRolfMatthiasNoll/fungus/internal/input"
)

// ttyKeys maps terminal keys to controller bits. Terminals report no key
// release, so a press is held for a fixed number of frames.
var ttyKeys = map[byte]uint16{
	' ': input.FaceSelect,
	'r': input.FaceStart,
	'y': input.FaceY,
	'x': input.FaceX,
	'b': input.FaceB,
	'a': input.FaceA,
	'[': input.TrigL1,
	']': input.TrigR1,
}

// TTY reads single keystrokes from a raw-mode terminal.
type TTY struct {
	fd   int
	old  *term.State
	hold int

	mu   sync.Mutex
	held [16]int
	done chan struct{}
	once sync.Once
}

// OpenTTY switches stdin to raw mode. Each key press is held for hold frames.
func OpenTTY(hold int) (*TTY, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("tty: stdin is not a terminal")
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("tty: raw mode: %w", err)
	}
	if hold <= 0 {
		hold = 4
	}
	t := &TTY{fd: fd, old: old, hold: hold, done: make(chan struct{})}
	go t.readLoop()
	return t, nil
}

func (t *TTY) readLoop() {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			t.quit()
			return
		}
		t.key(buf[0])
	}
}

func (t *TTY) key(b byte) {
	switch b {
	case 'q', 0x03: // ctrl-c does not raise a signal in raw mode
		t.quit()
		return
	}
	bit, ok := ttyKeys[b]
	if !ok {
		return
	}
	t.mu.Lock()
	for i := range t.held {
		if bit == 1<<i {
			t.held[i] = t.hold
		}
	}
	t.mu.Unlock()
}

func (t *TTY) quit() { t.once.Do(func() { close(t.done) }) }

// Done is closed when the user asks to quit or stdin ends.
func (t *TTY) Done() <-chan struct{} { return t.done }

// Buttons returns the held keys and counts each hold down by one frame.
func (t *TTY) Buttons() uint16 {
	t.mu.Lock()
	defer t.mu.Unlock()
	var mask uint16
	for i := range t.held {
		if t.held[i] > 0 {
			mask |= 1 << i
			t.held[i]--
		}
	}
	return mask
}

// Close restores the terminal.
func (t *TTY) Close() error {
	if err := term.Restore(t.fd, t.old); err != nil {
		return fmt.Errorf("tty: restore: %w", err)
	}
	return nil
}
