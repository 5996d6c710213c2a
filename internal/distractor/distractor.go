// Package distractor selects wrong-but-plausible answer options for
// multiple-choice questions. Candidates come from the other fragments of the
// source document, scored on length similarity, word overlap with the correct
// answer, and positional spread, then strided to spread picks across the score
// range. Generic fillers pad any shortfall so callers always receive the exact
// counts they asked for.
package distractor

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/brightpath/manabi/internal/models"
	"github.com/brightpath/manabi/internal/vocab"
	"github.com/brightpath/manabi/pkg/utils"
)

// DefaultCount is the number of distractors per question.
const DefaultCount = 3

// OptionCount is the fixed size of an assembled option set.
const OptionCount = 4

const overlapMinWordLength = 4 // words shorter than this carry no signal

// Generator scores and selects distractors.
type Generator struct {
	config *Config
	vocab  *vocab.Vocabulary
	rand   *rand.Rand
}

// NewGenerator creates a generator. Nil config or vocabulary use the built-in
// defaults; a nil random source is seeded from the clock.
func NewGenerator(cfg *Config, v *vocab.Vocabulary, rng *rand.Rand) *Generator {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg.ApplyDefaults()
	}
	if v == nil {
		v = vocab.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{config: cfg, vocab: v, rand: rng}
}

// Distractors returns exactly count non-empty strings, mutually distinct and
// distinct from the correct answer. Candidates are the other document
// fragments; any shortfall is padded with difficulty-appropriate fillers.
func (g *Generator) Distractors(correct string, frags []models.TextFragment, original models.TextFragment, count int, difficulty models.Difficulty) []string {
	if count <= 0 {
		count = DefaultCount
	}

	pool := g.candidates(correct, frags, original, difficulty)

	type scored struct {
		text  string
		score float64
	}
	mid := float64(len(pool)) / 2
	scoredPool := make([]scored, 0, len(pool))
	for i, cand := range pool {
		s := lengthSimilarity(cand, correct) * g.config.LengthWeight
		ow := g.config.OverlapWeightHard
		if difficulty == models.DifficultyEasy {
			ow = g.config.OverlapWeightEasy
		}
		s += wordOverlap(cand, correct) * ow
		if mid > 0 {
			s += math.Abs(float64(i)-mid) / mid * g.config.SpreadWeight
		}
		scoredPool = append(scoredPool, scored{text: cand, score: s})
	}
	sort.SliceStable(scoredPool, func(i, j int) bool {
		return scoredPool[i].score > scoredPool[j].score
	})

	// Stride over the ranked list instead of taking the raw top-N, so picks
	// sample the whole score range.
	picked := make([]string, 0, count)
	seen := map[string]bool{normalize(correct): true}
	stride := len(scoredPool) / count
	if stride < 1 {
		stride = 1
	}
	for i := 0; i < len(scoredPool) && len(picked) < count; i += stride {
		key := normalize(scoredPool[i].text)
		if seen[key] {
			continue
		}
		seen[key] = true
		picked = append(picked, scoredPool[i].text)
	}
	// A coarse stride can skip viable candidates; sweep the remainder.
	for i := 0; i < len(scoredPool) && len(picked) < count; i++ {
		key := normalize(scoredPool[i].text)
		if seen[key] {
			continue
		}
		seen[key] = true
		picked = append(picked, scoredPool[i].text)
	}

	for _, filler := range g.vocab.Fillers(difficulty) {
		if len(picked) >= count {
			break
		}
		key := normalize(filler)
		if seen[key] {
			continue
		}
		seen[key] = true
		picked = append(picked, filler)
	}
	return picked
}

// Options assembles the final shuffled option set: the correct answer plus
// distractors, deduplicated and topped up with fillers to exactly four.
func (g *Generator) Options(correct string, distractors []string, difficulty models.Difficulty) []string {
	options := make([]string, 0, OptionCount)
	seen := make(map[string]bool, OptionCount)
	add := func(s string) {
		if len(options) >= OptionCount || strings.TrimSpace(s) == "" {
			return
		}
		key := normalize(s)
		if seen[key] {
			return
		}
		seen[key] = true
		options = append(options, s)
	}

	add(correct)
	for _, d := range distractors {
		add(d)
	}
	for _, f := range g.vocab.Fillers(difficulty) {
		add(f)
	}

	g.rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// candidates builds the raw pool: every other fragment, excluding the source
// fragment and verbatim copies of the correct answer. Hard difficulty keeps
// only candidates inside the overlap band.
func (g *Generator) candidates(correct string, frags []models.TextFragment, original models.TextFragment, difficulty models.Difficulty) []string {
	pool := make([]string, 0, len(frags))
	for _, f := range frags {
		if f.Position == original.Position || f.Text == correct {
			continue
		}
		if difficulty == models.DifficultyHard {
			ov := wordOverlap(f.Text, correct)
			if ov <= g.config.HardOverlapMin || ov >= g.config.HardOverlapMax {
				continue
			}
		}
		pool = append(pool, f.Text)
	}
	return pool
}

// lengthSimilarity is the ratio of the shorter to the longer string length.
func lengthSimilarity(a, b string) float64 {
	la, lb := float64(len(a)), float64(len(b))
	if la == 0 || lb == 0 {
		return 0
	}
	if la > lb {
		la, lb = lb, la
	}
	return la / lb
}

// wordOverlap is the Jaccard overlap between the significant word sets of a
// and b. Words shorter than four characters are ignored.
func wordOverlap(a, b string) float64 {
	sa := significantWords(a)
	sb := significantWords(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	inter := 0
	for w := range sa {
		if sb[w] {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	return float64(inter) / float64(union)
}

func significantWords(s string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if cw := utils.CleanWord(w); len(cw) >= overlapMinWordLength {
			words[cw] = true
		}
	}
	return words
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
