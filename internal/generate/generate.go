// Package generate hosts the MCQ and flashcard orchestrators. Each call
// segments the input, walks fragments in document order attempting synthesis,
// absorbs per-fragment failures, and falls back to a deterministic generator
// when the primary path yields nothing. All run state lives in a per-call
// quality.Run, so concurrent invocations share nothing.
package generate

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brightpath/manabi/internal/concepts"
	"github.com/brightpath/manabi/internal/difficulty"
	"github.com/brightpath/manabi/internal/distractor"
	"github.com/brightpath/manabi/internal/models"
	"github.com/brightpath/manabi/internal/quality"
	"github.com/brightpath/manabi/internal/segment"
	"github.com/brightpath/manabi/internal/synth"
	"github.com/brightpath/manabi/internal/vocab"
	"github.com/brightpath/manabi/pkg/utils"
)

// Content minimums. One character fewer raises InsufficientContentError.
const (
	MinTextChars          = 100
	minMCQFragments       = 3
	minFlashcardFragments = 2
)

const fallbackConfidence = 0.3

// Generator is the question and flashcard generation pipeline.
type Generator struct {
	logger        *zap.Logger
	vocab         *vocab.Vocabulary
	rand          *rand.Rand
	minConfidence float64

	segmenter   *segment.Segmenter
	classifier  *difficulty.Classifier
	synth       *synth.Synthesizer
	extractor   *concepts.Extractor
	distractors *distractor.Generator
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithRand sets the random source used for option shuffling. The default is
// seeded from the clock; tests inject a fixed seed.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rand = r }
}

// WithVocabulary replaces the built-in wordlists.
func WithVocabulary(v *vocab.Vocabulary) Option {
	return func(g *Generator) { g.vocab = v }
}

// WithMinConfidence sets a minimum confidence cutoff for primary-path MCQs.
// Zero, the default, accepts everything.
func WithMinConfidence(min float64) Option {
	return func(g *Generator) { g.minConfidence = min }
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	if g.vocab == nil {
		g.vocab = vocab.Default()
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.segmenter = segment.NewSegmenter(segment.DefaultMinChars)
	g.classifier = difficulty.NewClassifier(nil)
	g.synth = synth.NewSynthesizer(g.vocab)
	g.extractor = concepts.NewExtractor(g.vocab)
	g.distractors = distractor.NewGenerator(nil, g.vocab, g.rand)
	return g
}

// MCQs generates up to opts.Count multiple-choice questions from text.
// It returns InsufficientContentError when the text is shorter than 100
// characters or yields fewer than 3 usable fragments; per-fragment failures
// are logged and skipped, and a deterministic fallback runs when the primary
// path produces nothing.
func (g *Generator) MCQs(text string, opts models.MCQOptions) ([]models.GeneratedQuestion, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(text)) < MinTextChars {
		return nil, &models.InsufficientContentError{Reason: "text must be at least 100 characters"}
	}
	frags := g.segmenter.Segment(text)
	if len(frags) < minMCQFragments {
		return nil, &models.InsufficientContentError{Reason: "need at least 3 usable sentences"}
	}

	quotas := newQuota(opts.Count, opts.Difficulty)
	run := quality.NewRun()
	questions := make([]models.GeneratedQuestion, 0, opts.Count)
	for i := range frags {
		target, ok := quotas.next()
		if !ok {
			break
		}
		q := g.attemptMCQ(frags, i, target, run)
		if q == nil {
			continue
		}
		quotas.fill(target)
		questions = append(questions, *q)
	}

	if len(questions) == 0 {
		g.logger.Info("primary question path produced nothing, using fallback",
			zap.Int("fragments", len(frags)))
		questions = g.fallbackMCQs(frags, opts.Count)
	}
	return questions, nil
}

// attemptMCQ tries one fragment against one target difficulty. Any failure,
// including a panic from a malformed fragment, results in a nil return so the
// caller moves on.
func (g *Generator) attemptMCQ(frags []models.TextFragment, i int, target models.Difficulty, run *quality.Run) (q *models.GeneratedQuestion) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn("question synthesis recovered",
				zap.Int("fragment", i), zap.Any("panic", r))
			q = nil
		}
	}()

	frag := frags[i]
	res := g.synth.MCQ(frag, segment.ContextWindow(frags, i), target)
	if res == nil {
		g.logger.Debug("fragment rejected by synthesizer",
			zap.Int("fragment", i), zap.String("difficulty", string(target)))
		return nil
	}
	if run.Seen(res.Question, res.Answer) {
		g.logger.Debug("duplicate candidate skipped", zap.Int("fragment", i))
		return nil
	}

	dists := g.distractors.Distractors(res.Answer, frags, frag, distractor.DefaultCount, target)
	options := g.distractors.Options(res.Answer, dists, target)
	conf := quality.Confidence(res.Question, res.Answer, dists)
	if g.minConfidence > 0 && conf < g.minConfidence {
		g.logger.Debug("candidate below confidence cutoff",
			zap.Int("fragment", i), zap.Float64("confidence", conf))
		return nil
	}

	run.Accept(res.Question, res.Answer)
	src := frag
	return &models.GeneratedQuestion{
		ID:            uuid.NewString(),
		QuestionText:  res.Question,
		Options:       options,
		CorrectAnswer: res.Answer,
		Explanation:   res.Explanation,
		Difficulty:    target,
		Category:      string(res.Strategy),
		Confidence:    conf,
		Source:        &src,
	}
}

// fallbackMCQs is the deterministic last-resort generator: blank the middle
// word of each fragment and offer neighboring words as options. Option order
// rotates on fragment position instead of shuffling. Never errors; may return
// fewer than count items.
func (g *Generator) fallbackMCQs(frags []models.TextFragment, count int) []models.GeneratedQuestion {
	questions := make([]models.GeneratedQuestion, 0, count)
	for _, frag := range frags {
		if len(questions) >= count {
			break
		}
		words := strings.Fields(frag.Text)
		if len(words) < distractor.OptionCount {
			continue
		}
		mid := len(words) / 2
		correct := utils.CleanWord(words[mid])
		if correct == "" {
			continue
		}

		blanked := make([]string, len(words))
		copy(blanked, words)
		blanked[mid] = "_____"

		options := []string{correct}
		seen := map[string]bool{strings.ToLower(correct): true}
		for offset := 1; offset < len(words) && len(options) < distractor.OptionCount; offset++ {
			for _, j := range []int{mid - offset, mid + offset} {
				if j < 0 || j >= len(words) || len(options) >= distractor.OptionCount {
					continue
				}
				w := utils.CleanWord(words[j])
				if w == "" || seen[strings.ToLower(w)] {
					continue
				}
				seen[strings.ToLower(w)] = true
				options = append(options, w)
			}
		}
		if len(options) < distractor.OptionCount {
			continue
		}
		rot := frag.Position % len(options)
		options = append(options[rot:], options[:rot]...)

		src := frag
		questions = append(questions, models.GeneratedQuestion{
			ID:            uuid.NewString(),
			QuestionText:  "Fill in the blank: " + strings.Join(blanked, " "),
			Options:       options,
			CorrectAnswer: correct,
			Explanation:   "The blanked word completes the original sentence.",
			Difficulty:    models.DifficultyEasy,
			Category:      string(synth.StrategyFillBlank),
			Confidence:    fallbackConfidence,
			Source:        &src,
		})
	}
	return questions
}

// Flashcards generates up to opts.Count flashcards from text. It returns
// InsufficientContentError when the text is shorter than 100 characters or
// yields fewer than 2 usable fragments. Difficulty on a card is descriptive,
// assigned by the classifier rather than targeted.
func (g *Generator) Flashcards(text string, opts models.FlashcardOptions) ([]models.GeneratedFlashcard, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(text)) < MinTextChars {
		return nil, &models.InsufficientContentError{Reason: "text must be at least 100 characters"}
	}
	frags := g.segmenter.Segment(text)
	if len(frags) < minFlashcardFragments {
		return nil, &models.InsufficientContentError{Reason: "need at least 2 usable sentences"}
	}

	run := quality.NewRun()
	cards := make([]models.GeneratedFlashcard, 0, opts.Count)
	for i := range frags {
		if len(cards) >= opts.Count {
			break
		}
		c := g.attemptFlashcard(frags[i], run)
		if c == nil {
			continue
		}
		cards = append(cards, *c)
	}

	if len(cards) == 0 {
		g.logger.Info("primary flashcard path produced nothing, using fallback",
			zap.Int("fragments", len(frags)))
		cards = g.fallbackFlashcards(text, frags, opts.Count)
	}
	return cards, nil
}

func (g *Generator) attemptFlashcard(frag models.TextFragment, run *quality.Run) (c *models.GeneratedFlashcard) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn("flashcard synthesis recovered",
				zap.Int("fragment", frag.Position), zap.Any("panic", r))
			c = nil
		}
	}()

	res := g.synth.Flashcard(frag)
	if res == nil {
		g.logger.Debug("fragment rejected by synthesizer", zap.Int("fragment", frag.Position))
		return nil
	}
	if run.Seen(res.Question, res.Answer) {
		g.logger.Debug("duplicate candidate skipped", zap.Int("fragment", frag.Position))
		return nil
	}

	run.Accept(res.Question, res.Answer)
	src := frag
	return &models.GeneratedFlashcard{
		ID:         uuid.NewString(),
		Question:   res.Question,
		Answer:     res.Answer,
		Difficulty: g.classifier.Classify(frag),
		Category:   string(res.Strategy),
		Source:     &src,
	}
}

// fallbackFlashcards builds generic "What is X?" cards from the top recurring
// concepts of the document, answering with the first fragment that mentions
// the concept. Never errors; may return fewer than count items.
func (g *Generator) fallbackFlashcards(text string, frags []models.TextFragment, count int) []models.GeneratedFlashcard {
	cards := make([]models.GeneratedFlashcard, 0, count)
	for _, concept := range g.extractor.Concepts(text) {
		if len(cards) >= count {
			break
		}
		var src *models.TextFragment
		for i := range frags {
			if strings.Contains(strings.ToLower(frags[i].Text), concept) {
				f := frags[i]
				src = &f
				break
			}
		}
		if src == nil {
			continue
		}
		cards = append(cards, models.GeneratedFlashcard{
			ID:         uuid.NewString(),
			Question:   "What is " + concept + "?",
			Answer:     src.Text,
			Difficulty: g.classifier.Classify(*src),
			Category:   "concept",
			Source:     src,
		})
	}
	return cards
}

// quota tracks how many questions each difficulty bucket still needs. Buckets
// drain in fixed priority order: easy, then hard, then medium.
type quota struct {
	need map[models.Difficulty]int
}

var quotaOrder = []models.Difficulty{
	models.DifficultyEasy,
	models.DifficultyHard,
	models.DifficultyMedium,
}

// newQuota computes the target distribution. Mixed mode allots 30% easy and
// 30% hard, with medium taking the rounding remainder so the buckets always
// sum to count exactly.
func newQuota(count int, mode models.DifficultyMode) *quota {
	need := make(map[models.Difficulty]int, 3)
	switch mode {
	case models.ModeEasy:
		need[models.DifficultyEasy] = count
	case models.ModeMedium:
		need[models.DifficultyMedium] = count
	case models.ModeHard:
		need[models.DifficultyHard] = count
	default:
		easy := count * 3 / 10
		hard := count * 3 / 10
		need[models.DifficultyEasy] = easy
		need[models.DifficultyHard] = hard
		need[models.DifficultyMedium] = count - easy - hard
	}
	return &quota{need: need}
}

// next returns the highest-priority bucket still needing items.
func (q *quota) next() (models.Difficulty, bool) {
	for _, d := range quotaOrder {
		if q.need[d] > 0 {
			return d, true
		}
	}
	return "", false
}

func (q *quota) fill(d models.Difficulty) {
	q.need[d]--
}
