// Package summary builds extractive summaries: fragments are scored on
// position, length, and importance keywords, and the top scorers are re-joined
// in document order. Insights add detected themes, a reading-level estimate,
// and a short narrative.
package summary

import (
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/brightpath/manabi/internal/models"
	"github.com/brightpath/manabi/internal/segment"
	"github.com/brightpath/manabi/internal/vocab"
	"github.com/brightpath/manabi/pkg/utils"
)

// MinTextChars is the summary minimum. One character fewer is rejected.
const MinTextChars = 50

// Fragments shorter than this carry no summary value.
const minFragmentChars = 10

// Scoring weights.
const (
	positionCeiling  = 10 // max(0, 10 - position)
	lengthBonus      = 2.0
	lengthBonusMin   = 8
	lengthBonusMax   = 25
	keywordBonus     = 3.0
	shortTopCount    = 5
	detailedTopCount = 10
	keyPointCount    = 5
)

// Summarizer generates extractive summaries.
type Summarizer struct {
	logger    *zap.Logger
	vocab     *vocab.Vocabulary
	segmenter *segment.Segmenter
}

// Option customizes a Summarizer.
type Option func(*Summarizer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Summarizer) { s.logger = l }
}

// WithVocabulary replaces the built-in wordlists.
func WithVocabulary(v *vocab.Vocabulary) Option {
	return func(s *Summarizer) { s.vocab = v }
}

// New creates a Summarizer.
func New(opts ...Option) *Summarizer {
	s := &Summarizer{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.vocab == nil {
		s.vocab = vocab.Default()
	}
	s.segmenter = segment.NewSegmenter(minFragmentChars)
	return s
}

// Summarize builds the requested summary variants. It returns
// InsufficientContentError when text is shorter than 50 characters or yields
// no usable fragments.
func (s *Summarizer) Summarize(text string, opts models.SummaryOptions) (*models.SummaryResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(text)) < MinTextChars {
		return nil, &models.InsufficientContentError{Reason: "text must be at least 50 characters"}
	}
	frags := s.segmenter.Segment(text)
	if len(frags) == 0 {
		return nil, &models.InsufficientContentError{Reason: "no usable sentences found"}
	}

	scores := make([]float64, len(frags))
	for i, f := range frags {
		scores[i] = s.score(f)
	}

	result := &models.SummaryResult{
		KeyPoints: s.keyPoints(frags, scores),
		Insights: models.Insights{
			Narrative:    s.narrative(frags),
			Themes:       s.DetectThemes(text),
			ReadingLevel: ReadingLevel(text, len(frags)),
		},
	}
	if opts.Type == models.SummaryShort || opts.Type == models.SummaryBoth {
		result.Short = s.buildSection(text, frags, scores, shortTopCount, opts.MaxLength)
	}
	if opts.Type == models.SummaryDetailed || opts.Type == models.SummaryBoth {
		result.Detailed = s.buildSection(text, frags, scores, detailedTopCount, opts.DetailedMaxLength)
	}
	return result, nil
}

// score rates a fragment: earlier sentences are favored, readable lengths get
// a bonus, and each importance-keyword occurrence adds a fixed weight.
func (s *Summarizer) score(f models.TextFragment) float64 {
	score := float64(positionCeiling - f.Position)
	if score < 0 {
		score = 0
	}
	if f.WordCount >= lengthBonusMin && f.WordCount <= lengthBonusMax {
		score += lengthBonus
	}
	lower := strings.ToLower(f.Text)
	for _, kw := range s.vocab.ImportanceKeywords {
		score += keywordBonus * float64(strings.Count(lower, kw))
	}
	return score
}

// buildSection selects the top fragments by score, re-sorts them into document
// order, joins them, and caps the word count. Selection is importance-ranked
// but output always reads in source order.
func (s *Summarizer) buildSection(original string, frags []models.TextFragment, scores []float64, top, maxWords int) *models.SummarySection {
	selected := selectTop(frags, scores, top)
	text := utils.TruncateWords(joinFragments(selected), maxWords)

	ratio := float64(len(text)) / float64(len(original))
	if ratio > 1 {
		ratio = 1
	}
	return &models.SummarySection{
		Text:             text,
		WordCount:        len(strings.Fields(text)),
		CompressionRatio: ratio,
	}
}

// keyPoints returns the top-scored fragment texts in document order.
func (s *Summarizer) keyPoints(frags []models.TextFragment, scores []float64) []string {
	selected := selectTop(frags, scores, keyPointCount)
	points := make([]string, len(selected))
	for i, f := range selected {
		points[i] = f.Text
	}
	return points
}

// selectTop picks the top-scoring fragments, then restores document order.
// Score ties break toward the earlier fragment.
func selectTop(frags []models.TextFragment, scores []float64, top int) []models.TextFragment {
	idx := make([]int, len(frags))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	if len(idx) > top {
		idx = idx[:top]
	}
	sort.Ints(idx)

	selected := make([]models.TextFragment, len(idx))
	for i, j := range idx {
		selected[i] = frags[j]
	}
	return selected
}

func joinFragments(frags []models.TextFragment) string {
	parts := make([]string, len(frags))
	for i, f := range frags {
		parts[i] = f.Text + "."
	}
	return strings.Join(parts, " ")
}

// narrative is a one-sentence qualitative description of the document shape.
func (s *Summarizer) narrative(frags []models.TextFragment) string {
	words := 0
	for _, f := range frags {
		words += f.WordCount
	}
	var b strings.Builder
	b.WriteString("The text presents ")
	switch {
	case len(frags) <= 3:
		b.WriteString("a brief passage")
	case len(frags) <= 10:
		b.WriteString("a short piece")
	default:
		b.WriteString("an extended piece")
	}
	b.WriteString(" of about ")
	b.WriteString(strconv.Itoa(words))
	b.WriteString(" words across ")
	b.WriteString(strconv.Itoa(len(frags)))
	b.WriteString(" sentences.")
	return b.String()
}
