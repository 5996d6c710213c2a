package e2e

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/brightpath/manabi/internal/config"
	"github.com/brightpath/manabi/internal/generate"
	"github.com/brightpath/manabi/internal/models"
	"github.com/brightpath/manabi/internal/summary"
)

func newGenerator(cfg *config.Config) *generate.Generator {
	return generate.New(
		generate.WithRand(rand.New(rand.NewSource(11))),
		generate.WithVocabulary(cfg.BuildVocabulary()),
		generate.WithMinConfidence(cfg.Generation.MinConfidence),
	)
}

func TestE2E_HistoryArticleMCQs(t *testing.T) {
	cfg := config.DefaultConfig()
	questions, err := newGenerator(cfg).MCQs(HistoryArticle, models.MCQOptions{
		Count:      6,
		Difficulty: models.ModeMixed,
	})
	if err != nil {
		t.Fatalf("MCQs returned error: %v", err)
	}
	if len(questions) < 3 {
		t.Fatalf("got %d questions, want at least 3", len(questions))
	}
	for _, q := range questions {
		if len(q.Options) != 4 {
			t.Errorf("question %q has %d options", q.QuestionText, len(q.Options))
		}
		correctFound := false
		for _, o := range q.Options {
			if o == q.CorrectAnswer {
				correctFound = true
			}
		}
		if !correctFound {
			t.Errorf("question %q missing correct answer", q.QuestionText)
		}
		if q.Category == "" {
			t.Errorf("question %q has no category", q.QuestionText)
		}
	}
}

func TestE2E_HardModeOnly(t *testing.T) {
	cfg := config.DefaultConfig()
	questions, err := newGenerator(cfg).MCQs(HistoryArticle, models.MCQOptions{
		Count:      3,
		Difficulty: models.ModeHard,
	})
	if err != nil {
		t.Fatalf("MCQs returned error: %v", err)
	}
	if len(questions) == 0 {
		t.Fatal("no hard questions produced")
	}
	for _, q := range questions {
		if q.Difficulty != models.DifficultyHard {
			t.Errorf("question %q difficulty = %q, want hard", q.QuestionText, q.Difficulty)
		}
		// Hard answers span the context window, not a single sentence.
		if !strings.Contains(q.CorrectAnswer, ". ") && len(strings.Fields(q.CorrectAnswer)) < 15 {
			t.Errorf("hard answer %q looks like a single fragment", q.CorrectAnswer)
		}
	}
}

func TestE2E_ScienceFlashcards(t *testing.T) {
	cfg := config.DefaultConfig()
	cards, err := newGenerator(cfg).Flashcards(ScienceArticle, models.FlashcardOptions{Count: 5})
	if err != nil {
		t.Fatalf("Flashcards returned error: %v", err)
	}
	if len(cards) < 2 {
		t.Fatalf("got %d cards, want at least 2", len(cards))
	}
	sawDefinition := false
	for _, c := range cards {
		if c.Difficulty == "" || c.Category == "" {
			t.Errorf("card %q missing difficulty or category", c.Question)
		}
		if c.Category == "definition" {
			sawDefinition = true
		}
	}
	if !sawDefinition {
		t.Error("expected at least one definition card from a definition-heavy text")
	}
}

func TestE2E_NumericReportNeverErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	g := newGenerator(cfg)

	questions, err := g.MCQs(NumericReport, models.MCQOptions{Count: 5})
	if err != nil {
		t.Fatalf("MCQs returned error on numeric input: %v", err)
	}
	for _, q := range questions {
		if len(q.Options) != 4 {
			t.Errorf("fallback question %q has %d options", q.QuestionText, len(q.Options))
		}
	}

	cards, err := g.Flashcards(NumericReport, models.FlashcardOptions{Count: 5})
	if err != nil {
		t.Fatalf("Flashcards returned error on numeric input: %v", err)
	}
	if len(cards) > 5 {
		t.Errorf("got %d cards, more than requested", len(cards))
	}
}

func TestE2E_SummaryPipeline(t *testing.T) {
	cfg := config.DefaultConfig()
	s := summary.New(summary.WithVocabulary(cfg.BuildVocabulary()))

	result, err := s.Summarize(HistoryArticle, models.SummaryOptions{
		Type:              models.SummaryBoth,
		MaxLength:         cfg.Summary.MaxLength,
		DetailedMaxLength: cfg.Summary.DetailedMaxLength,
	})
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if result.Short == nil || result.Detailed == nil {
		t.Fatal("both summary sections should be present")
	}
	if result.Short.WordCount > cfg.Summary.MaxLength {
		t.Errorf("short summary %d words exceeds cap %d", result.Short.WordCount, cfg.Summary.MaxLength)
	}
	if len(result.KeyPoints) == 0 {
		t.Error("no key points produced")
	}
}

func TestE2E_VocabularyOverrideChangesStopWords(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Vocabulary.ExtraStopWords = []string{"gutenberg"}
	v := cfg.BuildVocabulary()
	if !v.IsStopWord("gutenberg") {
		t.Fatal("extra stop word not applied")
	}
	if !v.IsStopWord("the") {
		t.Fatal("built-in stop words lost after override")
	}
}
