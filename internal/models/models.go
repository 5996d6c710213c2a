// Package models defines the core value types produced and consumed by the
// generation pipeline: text fragments, generated questions and flashcards,
// summaries, and the option structs callers pass in.
package models

// TextFragment is a sentence-like unit of source text produced by segmentation.
// Fragments are immutable once produced; Position is the index among the kept
// fragments in document order.
type TextFragment struct {
	Text      string `json:"text"`
	Position  int    `json:"position"`
	WordCount int    `json:"wordCount"`
}

// Difficulty is a categorical difficulty tag. No total order is assumed; it is
// used for distribution quotas and question-strategy selection.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyMode selects the target difficulty distribution for MCQ generation.
type DifficultyMode string

const (
	ModeEasy   DifficultyMode = "easy"
	ModeMedium DifficultyMode = "medium"
	ModeHard   DifficultyMode = "hard"
	ModeMixed  DifficultyMode = "mixed"
)

// GeneratedQuestion is a multiple-choice question derived from source text.
// Options always has exactly 4 entries, CorrectAnswer equals exactly one of
// them, and no two options are equal after trimming and lowercasing.
type GeneratedQuestion struct {
	ID            string        `json:"id"`
	QuestionText  string        `json:"questionText"`
	Options       []string      `json:"options"`
	CorrectAnswer string        `json:"correctAnswer"`
	Explanation   string        `json:"explanation"`
	Difficulty    Difficulty    `json:"difficulty"`
	Category      string        `json:"category"`
	Confidence    float64       `json:"confidence"`
	Source        *TextFragment `json:"source,omitempty"`
}

// GeneratedFlashcard is a question/answer pair derived from source text.
// Neither field is empty; the answer is always grounded in a source fragment.
type GeneratedFlashcard struct {
	ID         string        `json:"id"`
	Question   string        `json:"question"`
	Answer     string        `json:"answer"`
	Difficulty Difficulty    `json:"difficulty"`
	Category   string        `json:"category"`
	Source     *TextFragment `json:"source,omitempty"`
}

// SummarySection is one generated summary variant.
// CompressionRatio is summary length over original length, in characters.
type SummarySection struct {
	Text             string  `json:"text"`
	WordCount        int     `json:"wordCount"`
	CompressionRatio float64 `json:"compressionRatio"`
}

// Theme is a detected subject-matter bucket with a 0-100 relevance score.
type Theme struct {
	Name      string `json:"name"`
	Relevance int    `json:"relevance"`
}

// Insights carries the qualitative analysis attached to a summary.
type Insights struct {
	Narrative    string  `json:"narrative"`
	Themes       []Theme `json:"themes"`
	ReadingLevel string  `json:"readingLevel"`
}

// SummaryResult is the output of summary generation. At least one of Short and
// Detailed is present, depending on the requested type.
type SummaryResult struct {
	Short     *SummarySection `json:"short,omitempty"`
	Detailed  *SummarySection `json:"detailed,omitempty"`
	KeyPoints []string        `json:"keyPoints"`
	Insights  Insights        `json:"insights"`
}
