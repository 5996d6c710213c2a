package distractor

// Config holds the scoring weights and filters for distractor selection.
type Config struct {
	// LengthWeight scales the length-similarity component of a candidate score.
	LengthWeight float64 `yaml:"length_weight"`
	// OverlapWeightEasy scales word overlap for easy questions, where some
	// shared vocabulary keeps options readable.
	OverlapWeightEasy float64 `yaml:"overlap_weight_easy"`
	// OverlapWeightHard scales word overlap for medium and hard questions,
	// where near-miss candidates are preferred.
	OverlapWeightHard float64 `yaml:"overlap_weight_hard"`
	// SpreadWeight rewards candidates spaced apart in the source document.
	SpreadWeight float64 `yaml:"spread_weight"`
	// HardOverlapMin and HardOverlapMax bound the Jaccard overlap allowed for
	// hard-question candidates. Too little overlap is trivially wrong, too
	// much is indistinguishable from the answer.
	HardOverlapMin float64 `yaml:"hard_overlap_min"`
	HardOverlapMax float64 `yaml:"hard_overlap_max"`
}

// DefaultConfig returns the default distractor weights.
func DefaultConfig() *Config {
	return &Config{
		LengthWeight:      10,
		OverlapWeightEasy: 5,
		OverlapWeightHard: 15,
		SpreadWeight:      2,
		HardOverlapMin:    0.1,
		HardOverlapMax:    0.7,
	}
}

// ApplyDefaults fills zero-valued fields with defaults.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.LengthWeight == 0 {
		c.LengthWeight = d.LengthWeight
	}
	if c.OverlapWeightEasy == 0 {
		c.OverlapWeightEasy = d.OverlapWeightEasy
	}
	if c.OverlapWeightHard == 0 {
		c.OverlapWeightHard = d.OverlapWeightHard
	}
	if c.SpreadWeight == 0 {
		c.SpreadWeight = d.SpreadWeight
	}
	if c.HardOverlapMin == 0 {
		c.HardOverlapMin = d.HardOverlapMin
	}
	if c.HardOverlapMax == 0 {
		c.HardOverlapMax = d.HardOverlapMax
	}
}
