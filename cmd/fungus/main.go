package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/FabianRolfMatthiasNoll/fungus/internal/audio"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/board"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/fungus"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/statsview"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/ui"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/video"
)

type CLIFlags struct {
	Scale     int
	Title     string
	Seed      int64 // <0 means seed from the clock
	Tier      int
	NoPillars bool
	HUD       bool
	Mute      bool
	WarnLate  bool
	LowLat    bool
	Statsview bool

	// headless
	Headless bool
	Frames   int
	PNGOut   string
	WAVOut   string
	Expect   string // expected framebuffer CRC32 hex (e.g., "1a2b3c4d")
	Script   string // scripted buttons, e.g. "30:x,90-95:b"
	TTY      bool   // read buttons from the terminal
}

func parseFlags() CLIFlags {
	var f CLIFlags
	flag.IntVar(&f.Scale, "scale", 3, "window scale")
	flag.StringVar(&f.Title, "title", "fungus", "window title")
	flag.Int64Var(&f.Seed, "seed", -1, "fixed RNG seed (default: real-time clock)")
	flag.IntVar(&f.Tier, "tier", 1, "starting speed tier (0-2)")
	flag.BoolVar(&f.NoPillars, "nopillars", false, "do not draw the obstacle pillars")
	flag.BoolVar(&f.HUD, "hud", true, "draw mode status line")
	flag.BoolVar(&f.Mute, "mute", false, "do not open an audio device")
	flag.BoolVar(&f.WarnLate, "warnlate", false, "log frames whose work overran the frame period")
	flag.BoolVar(&f.LowLat, "lowlatency", false, "smaller audio buffer")
	flag.BoolVar(&f.Statsview, "statsview", false, "serve runtime stats (needs -tags statsview)")

	// headless options
	flag.BoolVar(&f.Headless, "headless", false, "run without a window")
	flag.IntVar(&f.Frames, "frames", 300, "frames to run in headless mode (0 with -tty: until q)")
	flag.StringVar(&f.PNGOut, "outpng", "", "write last framebuffer to PNG at path")
	flag.StringVar(&f.WAVOut, "outwav", "", "write generated audio to WAV at path")
	flag.StringVar(&f.Expect, "expect", "", "assert framebuffer CRC32 (hex)")
	flag.StringVar(&f.Script, "script", "", "scripted buttons: frame[-frame]:button[+button],...")
	flag.BoolVar(&f.TTY, "tty", false, "headless: read buttons from the terminal")
	flag.Parse()
	return f
}

func machineConfig(f CLIFlags) fungus.Config {
	cfg := fungus.DefaultConfig()
	if f.Seed >= 0 {
		cfg.Seed = uint32(f.Seed)
		cfg.FixedSeed = true
	}
	cfg.StartTier = f.Tier
	cfg.NoPillars = f.NoPillars
	cfg.WarnLateFrames = f.WarnLate
	return cfg
}

func runHeadless(f CLIFlags) error {
	script, err := board.ParseScript(f.Script)
	if err != nil {
		return err
	}
	bcfg := board.Config{
		Script: script,
		Clock:  uint32(time.Now().Unix()),
	}

	var tty *board.TTY
	if f.TTY {
		if tty, err = board.OpenTTY(0); err != nil {
			return err
		}
		defer tty.Close()
		log.SetOutput(crlfWriter{os.Stderr})
		defer log.SetOutput(os.Stderr)
		bcfg.Live = tty
	}
	frames := f.Frames
	if frames <= 0 && tty == nil {
		frames = 1
	}
	if f.WAVOut != "" {
		bcfg.Recorder = audio.NewRecorder(frames)
	}

	b := board.New(bcfg)
	m := fungus.New(machineConfig(f), b)
	ctx := context.Background()

	var tick <-chan time.Time
	if tty != nil {
		t := time.NewTicker(time.Second / audio.FrameRate)
		defer t.Stop()
		tick = t.C
	}

	start := time.Now()
	n := 0
loop:
	for frames <= 0 || n < frames {
		if tick != nil {
			select {
			case <-tty.Done():
				break loop
			case <-tick:
			}
		}
		if err := m.StepFrame(ctx); err != nil {
			return err
		}
		n++
		if tty != nil && n%audio.FrameRate == 0 {
			md := m.Mode()
			log.Printf("frame=%d candidates=%d paused=%t grow=%t cycle=%t cut=%t tier=%d",
				m.Frame(), m.Candidates(), md.Paused, md.SuperGrow, md.SuperCycle, md.WinnerCut, md.Tier)
		}
	}
	dur := time.Since(start)

	pix := make([]byte, video.Pixels*4)
	m.Framebuffer().RGBA(pix)
	crc := crc32.ChecksumIEEE(pix)
	fps := float64(n) / dur.Seconds()

	log.Printf("headless: frames=%d elapsed=%s fps=%.2f boots=%d fb_crc32=%08x",
		n, dur.Truncate(time.Millisecond), fps, m.Boots(), crc)

	if f.PNGOut != "" {
		if err := saveFramePNG(pix, video.Width, video.Height, f.PNGOut); err != nil {
			return fmt.Errorf("write PNG: %w", err)
		}
		log.Printf("wrote %s", f.PNGOut)
	}
	if bcfg.Recorder != nil {
		if err := bcfg.Recorder.Save(f.WAVOut); err != nil {
			return fmt.Errorf("write WAV: %w", err)
		}
		log.Printf("wrote %s (%d samples)", f.WAVOut, bcfg.Recorder.Samples())
	}

	if f.Expect != "" {
		want := strings.TrimPrefix(strings.ToLower(f.Expect), "0x")
		got := fmt.Sprintf("%08x", crc)
		if got != want {
			return fmt.Errorf("checksum mismatch: got %s, want %s", got, want)
		}
	}
	return nil
}

func saveFramePNG(pix []byte, w, h int, path string) error {
	img := &image.RGBA{
		Pix:    make([]byte, len(pix)),
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
	}
	copy(img.Pix, pix)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// crlfWriter keeps log lines readable while the terminal is in raw mode.
type crlfWriter struct{ w io.Writer }

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

func main() {
	f := parseFlags()

	if f.Statsview {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			log.Printf("statsview: not compiled in (build with -tags statsview)")
		}
	}

	if f.Headless {
		if err := runHeadless(f); err != nil {
			log.Fatal(err)
		}
		return
	}

	uiCfg := ui.Config{
		Title:           f.Title,
		Scale:           f.Scale,
		HUD:             f.HUD,
		AudioLowLatency: f.LowLat,
		Mute:            f.Mute,
	}
	app, err := ui.NewApp(uiCfg, machineConfig(f))
	if err != nil {
		log.Fatal(err)
	}
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
