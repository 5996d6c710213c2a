// Package segment splits raw text into sentence-like fragments for the
// generation pipeline. Fragments keep document order; later stages use
// neighboring fragments as a context window.
package segment

import (
	"regexp"
	"strings"

	"github.com/brightpath/manabi/internal/models"
)

// DefaultMinChars is the minimum fragment length used when a caller does not
// override it.
const DefaultMinChars = 20

// Runs of sentence-terminal punctuation end a fragment.
var terminalRun = regexp.MustCompile(`[.!?]+`)

// Segmenter splits text on sentence-terminal punctuation and filters short
// fragments.
type Segmenter struct {
	minChars int
}

// NewSegmenter creates a segmenter that discards fragments shorter than
// minChars characters after trimming. Non-positive values use DefaultMinChars.
func NewSegmenter(minChars int) *Segmenter {
	if minChars <= 0 {
		minChars = DefaultMinChars
	}
	return &Segmenter{minChars: minChars}
}

// Segment splits text into fragments. Position is the index among the kept
// fragments, in document order; no fragment is ever re-segmented.
func (s *Segmenter) Segment(text string) []models.TextFragment {
	parts := terminalRun.Split(text, -1)
	frags := make([]models.TextFragment, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) < s.minChars {
			continue
		}
		wc := len(strings.Fields(part))
		if wc < 1 {
			continue
		}
		frags = append(frags, models.TextFragment{
			Text:      part,
			Position:  len(frags),
			WordCount: wc,
		})
	}
	return frags
}

// ContextWindow joins the previous, current, and next fragment around index i
// into a single passage. Out-of-range neighbors are simply omitted.
func ContextWindow(frags []models.TextFragment, i int) string {
	if i < 0 || i >= len(frags) {
		return ""
	}
	parts := make([]string, 0, 3)
	if i > 0 {
		parts = append(parts, frags[i-1].Text)
	}
	parts = append(parts, frags[i].Text)
	if i+1 < len(frags) {
		parts = append(parts, frags[i+1].Text)
	}
	return strings.Join(parts, " ")
}
