// Package cli provides CLI output utilities for manabi.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/brightpath/manabi/internal/models"
	"github.com/brightpath/manabi/pkg/utils"
)

// OutputFormat is the format for generated output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteQuestions writes generated questions to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteQuestions(w io.Writer, questions []models.GeneratedQuestion, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, questions)
	}
	fmt.Fprintf(w, "\nGenerated %d questions\n\n", len(questions))
	for i, q := range questions {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "Q%d [%s/%s] confidence %.2f\n", i+1, q.Difficulty, q.Category, q.Confidence)
		fmt.Fprintf(w, "%s\n", q.QuestionText)
		for j, opt := range q.Options {
			marker := " "
			if opt == q.CorrectAnswer {
				marker = "*"
			}
			fmt.Fprintf(w, "  %s %c) %s\n", marker, 'A'+j, utils.Truncate(opt, 120))
		}
		if q.Explanation != "" {
			fmt.Fprintf(w, "  %s\n", q.Explanation)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// WriteFlashcards writes generated flashcards to w in the given format.
func WriteFlashcards(w io.Writer, cards []models.GeneratedFlashcard, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, cards)
	}
	fmt.Fprintf(w, "\nGenerated %d flashcards\n\n", len(cards))
	for i, c := range cards {
		fmt.Fprintf(w, "Card %d [%s/%s]\n", i+1, c.Difficulty, c.Category)
		fmt.Fprintf(w, "  Q: %s\n", c.Question)
		fmt.Fprintf(w, "  A: %s\n\n", utils.Truncate(c.Answer, 200))
	}
	return nil
}

// WriteSummary writes a summary result to w in the given format.
func WriteSummary(w io.Writer, result *models.SummaryResult, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, result)
	}
	if result.Short != nil {
		fmt.Fprintf(w, "\nShort summary (%d words, %.0f%% of original):\n%s\n",
			result.Short.WordCount, result.Short.CompressionRatio*100, result.Short.Text)
	}
	if result.Detailed != nil {
		fmt.Fprintf(w, "\nDetailed summary (%d words, %.0f%% of original):\n%s\n",
			result.Detailed.WordCount, result.Detailed.CompressionRatio*100, result.Detailed.Text)
	}
	if len(result.KeyPoints) > 0 {
		fmt.Fprintln(w, "\nKey points:")
		for _, p := range result.KeyPoints {
			fmt.Fprintf(w, "  • %s\n", utils.Truncate(p, 160))
		}
	}
	if len(result.Insights.Themes) > 0 {
		fmt.Fprintln(w, "\nThemes:")
		for _, th := range result.Insights.Themes {
			fmt.Fprintf(w, "  %s (%d%%)\n", th.Name, th.Relevance)
		}
	}
	if result.Insights.ReadingLevel != "" {
		fmt.Fprintf(w, "\nReading level: %s\n", result.Insights.ReadingLevel)
	}
	if result.Insights.Narrative != "" {
		fmt.Fprintf(w, "%s\n", result.Insights.Narrative)
	}
	return nil
}
