// Package quality enforces per-run uniqueness and scores item confidence.
// A Run tracks the question and answer dedup keys already emitted during one
// generation invocation; confidence is an informational heuristic over
// structural features of the finished item.
package quality

import "strings"

// Dedup key prefix lengths. Questions sharing their first 45 characters, or
// answers sharing their first 30, count as duplicates within a run.
const (
	questionKeyLength = 45
	answerKeyLength   = 30
)

// Confidence components.
const (
	confidenceBase       = 0.5
	confidenceBonus      = 0.15
	confidenceSmallBonus = 0.10
	questionWordsMin     = 8
	questionWordsMax     = 20
	answerWordsMin       = 8
	answerWordsMax       = 40
	minLengthBuckets     = 2
	lengthBucketSize     = 10
)

// promptWords are the leading words that mark a well-formed prompt.
var promptWords = map[string]bool{
	"what": true, "which": true, "why": true, "how": true, "when": true,
	"where": true, "who": true, "fill": true, "summarize": true,
	"restate": true,
}

// Run tracks the dedup state of one generation invocation. The zero value is
// not usable; create runs with NewRun.
type Run struct {
	questions map[string]bool
	answers   map[string]bool
}

// NewRun returns an empty run.
func NewRun() *Run {
	return &Run{
		questions: make(map[string]bool),
		answers:   make(map[string]bool),
	}
}

// Seen reports whether an item with this question or answer has already been
// accepted in the run. It does not record anything.
func (r *Run) Seen(question, answer string) bool {
	return r.questions[dedupKey(question, questionKeyLength)] ||
		r.answers[dedupKey(answer, answerKeyLength)]
}

// Accept records an item's keys. Call only after the item passes every other
// gate, so rejected items never block later ones.
func (r *Run) Accept(question, answer string) {
	r.questions[dedupKey(question, questionKeyLength)] = true
	r.answers[dedupKey(answer, answerKeyLength)] = true
}

func dedupKey(s string, n int) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > n {
		s = s[:n]
	}
	return s
}

// Confidence scores a finished item in [0, 1]. The base is 0.5; bonuses apply
// for a question of 8 to 20 words, an answer of 8 to 40 words, distractors
// spanning at least two length buckets, and an interrogative opening word.
func Confidence(question, answer string, distractors []string) float64 {
	score := confidenceBase

	qw := len(strings.Fields(question))
	if qw >= questionWordsMin && qw <= questionWordsMax {
		score += confidenceBonus
	}
	aw := len(strings.Fields(answer))
	if aw >= answerWordsMin && aw <= answerWordsMax {
		score += confidenceBonus
	}

	buckets := make(map[int]bool)
	for _, d := range distractors {
		buckets[len(d)/lengthBucketSize] = true
	}
	if len(buckets) >= minLengthBuckets {
		score += confidenceSmallBonus
	}

	words := strings.Fields(strings.ToLower(question))
	if len(words) > 0 && promptWords[strings.Trim(words[0], ",.:;?!")] {
		score += confidenceSmallBonus
	}

	if score > 1 {
		score = 1
	}
	return score
}
