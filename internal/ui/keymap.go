package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/FabianRolfMatthiasNoll/fungus/internal/input"
)

type binding struct {
	key   ebiten.Key
	bit   uint16
	label string
}

// bindings maps the keyboard onto the controller word.
var bindings = []binding{
	{ebiten.KeyArrowUp, input.DPadUp, "Up"},
	{ebiten.KeyArrowDown, input.DPadDown, "Down"},
	{ebiten.KeyArrowLeft, input.DPadLeft, "Left"},
	{ebiten.KeyArrowRight, input.DPadRight, "Right"},
	{ebiten.KeyZ, input.FaceA, "A  super cycle"},
	{ebiten.KeyX, input.FaceB, "B  speed tier"},
	{ebiten.KeyA, input.FaceX, "X  super grow"},
	{ebiten.KeyS, input.FaceY, "Y  winner cut"},
	{ebiten.KeyQ, input.TrigL1, "L1 rotate color <<5"},
	{ebiten.KeyW, input.TrigR1, "R1 rotate color >>6"},
	{ebiten.KeySpace, input.FaceSelect, "Select  pause"},
	{ebiten.KeyShiftRight, input.FaceSelect, "Select  pause"},
	{ebiten.KeyEnter, input.FaceStart, "Start  reset"},
}

// pollButtons reads the keyboard into a controller word.
func pollButtons() uint16 {
	var w uint16
	for _, b := range bindings {
		if ebiten.IsKeyPressed(b.key) {
			w |= b.bit
		}
	}
	return w
}
