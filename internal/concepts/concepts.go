// Package concepts extracts key phrases from fragments and high-frequency
// concepts from full documents, using capitalization, stop-word filtering, and
// term frequency heuristics.
package concepts

import (
	"regexp"
	"sort"
	"strings"

	"github.com/brightpath/manabi/internal/models"
	"github.com/brightpath/manabi/internal/vocab"
	"github.com/brightpath/manabi/pkg/utils"
)

// DefaultMaxConcepts bounds the number of whole-document concepts returned.
const DefaultMaxConcepts = 12

const minConceptLength = 5 // tokens shorter than this are never concepts

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// Extractor applies the phrase and concept heuristics against a vocabulary.
type Extractor struct {
	vocab       *vocab.Vocabulary
	maxConcepts int
}

// NewExtractor creates an extractor. A nil vocabulary uses the built-in one.
func NewExtractor(v *vocab.Vocabulary) *Extractor {
	if v == nil {
		v = vocab.Default()
	}
	return &Extractor{vocab: v, maxConcepts: DefaultMaxConcepts}
}

// WithMaxConcepts overrides the concept cap and returns the extractor.
func (e *Extractor) WithMaxConcepts(n int) *Extractor {
	if n > 0 {
		e.maxConcepts = n
	}
	return e
}

// KeyPhrase returns the most important phrase of a fragment, or "" when no
// heuristic yields a candidate. Heuristics apply in priority order: adjacent
// capitalized-word bigrams, important-term vocabulary membership, then the
// first content word longer than four characters.
func (e *Extractor) KeyPhrase(frag models.TextFragment) string {
	words := strings.Fields(frag.Text)

	// Proper-noun bigrams. The sentence-initial word only counts when it is
	// not a stop word, since every sentence starts capitalized.
	for i := 0; i+1 < len(words); i++ {
		a := utils.CleanWord(words[i])
		b := utils.CleanWord(words[i+1])
		if len(a) < 2 || len(b) < 2 {
			continue
		}
		if !utils.IsCapitalized(a) || !utils.IsCapitalized(b) {
			continue
		}
		if i == 0 && e.vocab.IsStopWord(strings.ToLower(a)) {
			continue
		}
		return a + " " + b
	}

	for _, w := range words {
		cw := strings.ToLower(utils.CleanWord(w))
		if e.vocab.IsImportantTerm(cw) {
			return cw
		}
	}

	for _, w := range words {
		cw := utils.CleanWord(w)
		if len(cw) > 4 && !e.vocab.IsStopWord(strings.ToLower(cw)) {
			return cw
		}
	}

	return ""
}

// Concepts returns the top recurring terms of a whole document: lowercase
// alphanumeric tokens of length 5 or more, excluding stop words, appearing
// more than once. Results sort by descending frequency with ties broken by
// first occurrence, truncated to the configured maximum.
func (e *Extractor) Concepts(text string) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if len(tok) < minConceptLength || e.vocab.IsStopWord(tok) {
			continue
		}
		if _, seen := counts[tok]; !seen {
			firstSeen[tok] = order
		}
		counts[tok]++
		order++
	}

	terms := make([]string, 0, len(counts))
	for term, n := range counts {
		if n > 1 {
			terms = append(terms, term)
		}
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return firstSeen[terms[i]] < firstSeen[terms[j]]
	})

	if len(terms) > e.maxConcepts {
		terms = terms[:e.maxConcepts]
	}
	return terms
}
