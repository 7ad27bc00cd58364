package fungus

import "github.com/FabianRolfMatthiasNoll/fungus/internal/mode"

// Config contains settings that affect how the machine boots.
type Config struct {
	Seed           uint32 // clock value to seed from when FixedSeed is set
	FixedSeed      bool   // ignore the board clock (reproducible runs)
	StartTier      int    // initial speed tier, 0..2
	NoPillars      bool   // skip the obstacle squares at boot
	WarnLateFrames bool   // log frames whose work overran the frame period
}

// DefaultConfig matches the hardware power-on state.
func DefaultConfig() Config {
	return Config{StartTier: mode.Default().Tier}
}

// Defaults clamps out-of-range values.
func (c *Config) Defaults() {
	if c.StartTier < 0 || c.StartTier >= mode.TierCount {
		c.StartTier = mode.Default().Tier
	}
}
