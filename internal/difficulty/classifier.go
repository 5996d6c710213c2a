// Package difficulty classifies text fragments into easy, medium, or hard
// based on an additive complexity score over independent signals.
package difficulty

import (
	"regexp"
	"strings"

	"github.com/brightpath/manabi/internal/models"
	"github.com/brightpath/manabi/pkg/utils"
)

var (
	technicalPattern = regexp.MustCompile(`(?i)\b(algorithm|quantum|neural|genome|enzyme|photosynthesis|thermodynamic|derivative|integral|molecule|protein|bandwidth|encryption|compiler|kinetic|electromagnetic|catalyst|chromosome|theorem|coefficient|entropy|synthesis)\b`)
	abstractPattern  = regexp.MustCompile(`(?i)\b(concept|theory|principle|framework|philosophy|paradigm|abstraction|notion|ideology|premise|hypothesis|doctrine)\b`)
)

// Classifier scores fragment complexity. It is a pure function of its input:
// classifying the same fragment twice always yields the same level.
type Classifier struct {
	config *Config
}

// NewClassifier creates a classifier with the given config (nil uses defaults).
func NewClassifier(config *Config) *Classifier {
	if config == nil {
		config = DefaultConfig()
	}
	config.ApplyDefaults()
	return &Classifier{config: config}
}

// Classify maps a fragment's complexity score to a difficulty level.
func (c *Classifier) Classify(frag models.TextFragment) models.Difficulty {
	score := c.Score(frag)
	switch {
	case score >= c.config.HardThreshold:
		return models.DifficultyHard
	case score >= c.config.MediumThreshold:
		return models.DifficultyMedium
	default:
		return models.DifficultyEasy
	}
}

// Score computes the additive complexity score for a fragment.
func (c *Classifier) Score(frag models.TextFragment) float64 {
	words := strings.Fields(frag.Text)
	if len(words) == 0 {
		return 0
	}

	score := 0.0
	totalLen := 0
	for _, w := range words {
		cw := utils.CleanWord(w)
		totalLen += len([]rune(cw))
		if len([]rune(cw)) > c.config.LongWordLength {
			score += c.config.LongWordWeight
		}
	}

	avgLen := float64(totalLen) / float64(len(words))
	if avgLen > c.config.HighAvgWordLength {
		score += c.config.HighAvgWeight
	} else if avgLen > c.config.MidAvgWordLength {
		score += c.config.MidAvgWeight
	}

	if len(words) > c.config.LongSentenceWords {
		score += c.config.LongSentenceWeight
	} else if len(words) > c.config.MidSentenceWords {
		score += c.config.MidSentenceWeight
	}

	if technicalPattern.MatchString(frag.Text) {
		score += c.config.TechnicalWeight
	}
	if abstractPattern.MatchString(frag.Text) {
		score += c.config.AbstractWeight
	}

	return score
}
