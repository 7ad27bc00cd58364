package ui

// Config contains window/input/audio related settings.
type Config struct {
	Title           string // window title
	Scale           int    // integer upscaling factor
	HUD             bool   // draw the mode status line
	AudioLowLatency bool   // smaller player buffer
	Mute            bool   // do not open an audio device
}

// Defaults fills missing fields with reasonable defaults.
func (c *Config) Defaults() {
	if c.Title == "" {
		c.Title = "fungus"
	}
	if c.Scale <= 0 {
		c.Scale = 3
	}
}
