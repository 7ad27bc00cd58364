// Package input turns the raw controller word into mode changes. Only
// rising edges act; holding a button never repeats its action.
package input

import (
	"fmt"
	"strings"
)

// Button bits of the controller word, 1 = pressed.
const (
	DPadUp     uint16 = 1 << 0
	DPadDown   uint16 = 1 << 1
	DPadLeft   uint16 = 1 << 2
	DPadRight  uint16 = 1 << 3
	FaceA      uint16 = 1 << 4
	FaceB      uint16 = 1 << 5
	FaceX      uint16 = 1 << 6
	FaceY      uint16 = 1 << 7
	TrigL1     uint16 = 1 << 8
	TrigR1     uint16 = 1 << 9
	TrigL2     uint16 = 1 << 10
	TrigR2     uint16 = 1 << 11
	TrigL3     uint16 = 1 << 12
	TrigR3     uint16 = 1 << 13
	FaceSelect uint16 = 1 << 14
	FaceStart  uint16 = 1 << 15
)

var buttonNames = map[string]uint16{
	"up": DPadUp, "down": DPadDown, "left": DPadLeft, "right": DPadRight,
	"a": FaceA, "b": FaceB, "x": FaceX, "y": FaceY,
	"l1": TrigL1, "r1": TrigR1, "l2": TrigL2, "r2": TrigR2,
	"l3": TrigL3, "r3": TrigR3,
	"select": FaceSelect, "start": FaceStart,
}

// ParseButtons parses names joined by '+', e.g. "x+b".
func ParseButtons(s string) (uint16, error) {
	var mask uint16
	for _, name := range strings.Split(s, "+") {
		bit, ok := buttonNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("unknown button %q", name)
		}
		mask |= bit
	}
	return mask, nil
}

// Edges returns the bits pressed in cur that were released in prev.
func Edges(prev, cur uint16) uint16 { return ^prev & cur }
