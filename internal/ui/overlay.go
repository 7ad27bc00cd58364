package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/FabianRolfMatthiasNoll/fungus/internal/mode"
	"github.com/FabianRolfMatthiasNoll/fungus/internal/video"
)

type statusToken struct {
	name    string
	enabled bool
}

func modeTokens(m mode.Mode) []statusToken {
	return []statusToken{
		{"PAUSE", m.Paused},
		{"GROW", m.SuperGrow},
		{"CYCLE", m.SuperCycle},
		{"CUT", m.WinnerCut},
		{fmt.Sprintf("T%d", m.Tier), true},
	}
}

// drawHUD draws the mode flags along the bottom edge.
func drawHUD(screen *ebiten.Image, st status) {
	face := basicfont.Face7x13
	offColor := color.RGBA{120, 120, 120, 255}
	onColor := color.RGBA{0, 220, 90, 255}

	x, y := 4, video.Height-4
	for _, tok := range modeTokens(st.mode) {
		c := offColor
		if tok.enabled {
			c = onColor
		}
		text.Draw(screen, tok.name, face, x, y, c)
		x += text.BoundString(face, tok.name).Dx() + 6
	}
	cand := fmt.Sprintf("%d", st.candidates)
	text.Draw(screen, cand, face, video.Width-4-text.BoundString(face, cand).Dx(), y, offColor)
}

// drawHelp lists the key bindings over a dimmed screen.
func drawHelp(screen *ebiten.Image, shade *ebiten.Image, st status, load *hostLoad) {
	screen.DrawImage(shade, nil)
	lines := []string{"Keys (Esc to close):"}
	for _, b := range bindings[4:] {
		lines = append(lines, fmt.Sprintf("  %-6s %s", b.key.String(), b.label))
	}
	lines = append(lines,
		"  F11 fullscreen  F12 screenshot  H hud",
		fmt.Sprintf("  frame %d  audio fill %d", st.frame, st.fill),
		fmt.Sprintf("  audio underruns %d", st.underruns),
	)
	cpuPct, memPct := load.percent()
	lines = append(lines, fmt.Sprintf("  host cpu %.1f%%  mem %.1f%%", cpuPct, memPct))
	for i, s := range lines {
		ebitenutil.DebugPrintAt(screen, s, 6, 6+i*13)
	}
}
