package audio

// Config holds cue synthesis settings
type Config struct {
	SampleRate   int
	MasterVolume float64
	CueVolumes   [cueTypeCount]float64
}

// DefaultConfig returns quiet cues at 48kHz
func DefaultConfig() *Config {
	cfg := &Config{
		SampleRate:   48000,
		MasterVolume: 0.5,
	}
	cfg.CueVolumes[CueTick] = 0.4
	cfg.CueVolumes[CueChime] = 0.6
	return cfg
}

// volume returns the effective volume of a cue
func (c *Config) volume(cue CueType) float64 {
	if cue < 0 || cue >= cueTypeCount {
		return 0
	}
	return c.CueVolumes[cue] * c.MasterVolume
}
