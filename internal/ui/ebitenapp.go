package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/FabianRolfMatthiasNoll/fungus/internal/audio"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/fungus"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/mode"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/video"
)

// status is the HUD snapshot taken at scanout.
type status struct {
	mode       mode.Mode
	frame      uint64
	candidates int
	fill       int
	underruns  int
}

// App is the windowed board. The machine runs on its own goroutine and
// blocks on the vblank channel, which Draw signals once per displayed frame.
type App struct {
	cfg Config
	m   *fungus.Machine

	fb      video.Framebuffer
	fifo    *audio.FIFO
	out     *audioOutput
	buttons atomic.Uint32
	vsync   chan struct{}

	mu   sync.Mutex
	rgba []byte
	st   status

	tex      *ebiten.Image
	shade    *ebiten.Image
	showHelp bool
	load     hostLoad
}

// NewApp opens the audio device and boots a machine onto the window board.
func NewApp(cfg Config, mcfg fungus.Config) (*App, error) {
	cfg.Defaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(video.Width*cfg.Scale, video.Height*cfg.Scale)

	a := &App{
		cfg:   cfg,
		fifo:  audio.NewFIFO(),
		vsync: make(chan struct{}, 1),
		rgba:  make([]byte, video.Pixels*4),
	}
	if !cfg.Mute {
		out, err := newAudioOutput(a.fifo, cfg.AudioLowLatency)
		if err != nil {
			return nil, err
		}
		a.out = out
	}
	a.m = fungus.New(mcfg, a)
	return a, nil
}

// Run blocks until the window is closed.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.m.Run(ctx) }()
	go a.load.run(ctx, 2*time.Second)

	err := ebiten.RunGame(a)
	cancel()
	if merr := <-done; merr != nil && !errors.Is(merr, context.Canceled) {
		log.Printf("ui: machine stopped: %v", merr)
	}
	if cerr := a.out.Close(); cerr != nil {
		log.Printf("ui: audio close: %v", cerr)
	}
	return err
}

// Board side. These run on the machine goroutine.

func (a *App) VBlankTriggered() bool {
	select {
	case <-a.vsync:
		a.scanout()
		return true
	default:
		return false
	}
}

func (a *App) WaitVBlank(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-a.vsync:
		a.scanout()
		return nil
	}
}

func (a *App) Framebuffer() *video.Framebuffer { return &a.fb }
func (a *App) Buttons() uint16 { return uint16(a.buttons.Load()) }
func (a *App) UnixSeconds() uint32 { return uint32(time.Now().Unix()) }
func (a *App) BufferFill() int { return a.fifo.BufferFill() }
func (a *App) WriteSample(v uint32) { a.fifo.WriteSample(v) }
func (a *App) EnablePlayback() { a.fifo.EnablePlayback() }

func (a *App) Reset() {
	a.fifo.Flush()
	log.Printf("ui: reset requested")
}

// scanout copies the previous frame's pixels for Draw to upload.
func (a *App) scanout() {
	a.mu.Lock()
	a.fb.RGBA(a.rgba)
	a.st = status{
		mode:       a.m.Mode(),
		frame:      a.m.Frame(),
		candidates: a.m.Candidates(),
		fill:       a.fifo.BufferFill(),
		underruns:  a.fifo.Underruns(),
	}
	a.mu.Unlock()
}

// Game side.

func (a *App) Update() error {
	a.buttons.Store(uint32(pollButtons()))

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.showHelp = !a.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.cfg.HUD = !a.cfg.HUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		if name, err := a.saveScreenshot(); err != nil {
			log.Printf("ui: screenshot: %v", err)
		} else {
			log.Printf("ui: screenshot saved to %s", name)
		}
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.tex == nil {
		a.tex = ebiten.NewImage(video.Width, video.Height)
		a.shade = ebiten.NewImage(video.Width, video.Height)
		a.shade.Fill(color.RGBA{0, 0, 0, 160})
	}
	a.mu.Lock()
	a.tex.WritePixels(a.rgba)
	st := a.st
	a.mu.Unlock()
	screen.DrawImage(a.tex, nil)

	if a.cfg.HUD {
		drawHUD(screen, st)
	}
	if a.showHelp {
		drawHelp(screen, a.shade, st, &a.load)
	}

	select {
	case a.vsync <- struct{}{}:
	default:
	}
}

func (a *App) Layout(outW, outH int) (int, int) { return video.Width, video.Height }

func (a *App) saveScreenshot() (string, error) {
	img := &image.RGBA{
		Stride: 4 * video.Width,
		Rect:   image.Rect(0, 0, video.Width, video.Height),
	}
	a.mu.Lock()
	img.Pix = append([]byte(nil), a.rgba...)
	a.mu.Unlock()

	name := fmt.Sprintf("fungus_%s.png", time.Now().Format("20060102_150405"))
	f, err := os.Create(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return name, png.Encode(f, img)
}
