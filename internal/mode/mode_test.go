package mode

import (
	"math"
	"testing"
)

func TestDefault(t *testing.T) {
	m := Default()
	if m.Tier != 1 || !m.WinnerCut || m.Paused || m.SuperGrow || m.SuperCycle {
		t.Fatalf("unexpected power-on mode: %+v", m)
	}
	if m.Pixel() != 0x0400 {
		t.Fatalf("start color got %04X want 0400", m.Pixel())
	}
}

func TestBudget(t *testing.T) {
	m := Default()
	if c, w := m.Budget(); c != 400 || w != 100 {
		t.Fatalf("tier 1 cut got (%d,%d) want (400,100)", c, w)
	}
	m.Tier, m.WinnerCut = 2, false
	if c, w := m.Budget(); c != 1600 || w != 1600 {
		t.Fatalf("tier 2 uncut got (%d,%d) want (1600,1600)", c, w)
	}
	m.Tier, m.WinnerCut = 0, true
	if c, w := m.Budget(); c != 100 || w != 10 {
		t.Fatalf("tier 0 cut got (%d,%d) want (100,10)", c, w)
	}
	for _, tier := range Tiers {
		if tier.Candidates > MaxCandidates {
			t.Fatalf("tier budget %d exceeds capacity %d", tier.Candidates, MaxCandidates)
		}
	}
}

func TestNextTierWraps(t *testing.T) {
	m := Default()
	m.NextTier()
	if m.Tier != 2 {
		t.Fatalf("got tier %d want 2", m.Tier)
	}
	m.NextTier()
	if m.Tier != 0 {
		t.Fatalf("got tier %d want 0", m.Tier)
	}
}

func TestCycleColor(t *testing.T) {
	m := Default()
	m.CycleColor()
	if m.Color != 0x401 {
		t.Fatalf("normal cycle got %x want 401", m.Color)
	}
	m.SuperCycle = true
	m.CycleColor()
	if m.Color != 0x411 {
		t.Fatalf("super cycle got %x want 411", m.Color)
	}
	m.Color = math.MaxUint32
	m.SuperCycle = false
	m.CycleColor()
	if m.Color != 0 {
		t.Fatalf("color must wrap, got %x", m.Color)
	}
}
