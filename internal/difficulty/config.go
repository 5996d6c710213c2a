package difficulty

// Config holds the weights and thresholds of the complexity score. The exact
// default cutoffs are load-bearing for output stability; change them only with
// matching fixture updates.
type Config struct {
	// Word-level signals
	LongWordLength    int     `yaml:"long_word_length"`     // default: 10 (strictly greater counts)
	LongWordWeight    float64 `yaml:"long_word_weight"`     // default: 2
	HighAvgWordLength float64 `yaml:"high_avg_word_length"` // default: 7
	HighAvgWeight     float64 `yaml:"high_avg_weight"`      // default: 3
	MidAvgWordLength  float64 `yaml:"mid_avg_word_length"`  // default: 5.5
	MidAvgWeight      float64 `yaml:"mid_avg_weight"`       // default: 1.5

	// Sentence-level signals
	LongSentenceWords  int     `yaml:"long_sentence_words"`  // default: 25
	LongSentenceWeight float64 `yaml:"long_sentence_weight"` // default: 2
	MidSentenceWords   int     `yaml:"mid_sentence_words"`   // default: 15
	MidSentenceWeight  float64 `yaml:"mid_sentence_weight"`  // default: 1

	// Vocabulary signals
	TechnicalWeight float64 `yaml:"technical_weight"` // default: 2
	AbstractWeight  float64 `yaml:"abstract_weight"`  // default: 1.5

	// Classification thresholds
	HardThreshold   float64 `yaml:"hard_threshold"`   // default: 6
	MediumThreshold float64 `yaml:"medium_threshold"` // default: 3
}

// DefaultConfig returns the default classifier configuration.
func DefaultConfig() *Config {
	return &Config{
		LongWordLength:    10,
		LongWordWeight:    2,
		HighAvgWordLength: 7,
		HighAvgWeight:     3,
		MidAvgWordLength:  5.5,
		MidAvgWeight:      1.5,

		LongSentenceWords:  25,
		LongSentenceWeight: 2,
		MidSentenceWords:   15,
		MidSentenceWeight:  1,

		TechnicalWeight: 2,
		AbstractWeight:  1.5,

		HardThreshold:   6,
		MediumThreshold: 3,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.LongWordLength == 0 {
		c.LongWordLength = d.LongWordLength
	}
	if c.LongWordWeight == 0 {
		c.LongWordWeight = d.LongWordWeight
	}
	if c.HighAvgWordLength == 0 {
		c.HighAvgWordLength = d.HighAvgWordLength
	}
	if c.HighAvgWeight == 0 {
		c.HighAvgWeight = d.HighAvgWeight
	}
	if c.MidAvgWordLength == 0 {
		c.MidAvgWordLength = d.MidAvgWordLength
	}
	if c.MidAvgWeight == 0 {
		c.MidAvgWeight = d.MidAvgWeight
	}
	if c.LongSentenceWords == 0 {
		c.LongSentenceWords = d.LongSentenceWords
	}
	if c.LongSentenceWeight == 0 {
		c.LongSentenceWeight = d.LongSentenceWeight
	}
	if c.MidSentenceWords == 0 {
		c.MidSentenceWords = d.MidSentenceWords
	}
	if c.MidSentenceWeight == 0 {
		c.MidSentenceWeight = d.MidSentenceWeight
	}
	if c.TechnicalWeight == 0 {
		c.TechnicalWeight = d.TechnicalWeight
	}
	if c.AbstractWeight == 0 {
		c.AbstractWeight = d.AbstractWeight
	}
	if c.HardThreshold == 0 {
		c.HardThreshold = d.HardThreshold
	}
	if c.MediumThreshold == 0 {
		c.MediumThreshold = d.MediumThreshold
	}
}
