package defs

// WaveDefinition tunes the spawner for one epoch.
type WaveDefinition struct {
	Capacity int     `json:"capacity" mapstructure:"capacity"`
	Interval float64 `json:"interval" mapstructure:"interval"`
}

// DefaultWaves ramps the pressure up over five epochs.
func DefaultWaves() []WaveDefinition {
	return []WaveDefinition{
		{Capacity: 5, Interval: 2.0},
		{Capacity: 7, Interval: 1.6},
		{Capacity: 9, Interval: 1.3},
		{Capacity: 12, Interval: 1.0},
		{Capacity: 15, Interval: 0.8},
	}
}

// Wave returns the definition for epoch n; past the end the last wave repeats.
func Wave(waves []WaveDefinition, epoch int) (WaveDefinition, bool) {
	if len(waves) == 0 || epoch < 0 {
		return WaveDefinition{}, false
	}
	if epoch >= len(waves) {
		epoch = len(waves) - 1
	}
	return waves[epoch], true
}
