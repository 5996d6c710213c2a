package distractor

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/brightpath/manabi/internal/models"
	"github.com/brightpath/manabi/internal/vocab"
)

func fragments(texts ...string) []models.TextFragment {
	frags := make([]models.TextFragment, len(texts))
	for i, t := range texts {
		frags[i] = models.TextFragment{Text: t, Position: i, WordCount: len(strings.Fields(t))}
	}
	return frags
}

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(nil, nil, rand.New(rand.NewSource(seed)))
}

func TestDistractorsCountAndUniqueness(t *testing.T) {
	g := newTestGenerator(1)
	frags := fragments(
		"The mitochondria generate chemical energy for the cell.",
		"Chloroplasts capture sunlight inside plant leaves.",
		"Ribosomes assemble proteins from amino acid chains.",
		"The nucleus stores the genetic material of the cell.",
		"Cell membranes control what enters and leaves the cell.",
		"Enzymes accelerate the chemical reactions of metabolism.",
	)
	correct := frags[0].Text

	got := g.Distractors(correct, frags, frags[0], 3, models.DifficultyMedium)
	if len(got) != 3 {
		t.Fatalf("got %d distractors, want 3", len(got))
	}
	seen := map[string]bool{strings.ToLower(correct): true}
	for _, d := range got {
		if strings.TrimSpace(d) == "" {
			t.Error("got an empty distractor")
		}
		key := strings.ToLower(strings.TrimSpace(d))
		if seen[key] {
			t.Errorf("duplicate or correct-answer distractor %q", d)
		}
		seen[key] = true
	}
}

func TestDistractorsPadsWithFillers(t *testing.T) {
	g := newTestGenerator(1)
	frags := fragments(
		"The mitochondria generate chemical energy for the cell.",
		"Chloroplasts capture sunlight inside plant leaves.",
	)

	got := g.Distractors(frags[0].Text, frags, frags[0], 3, models.DifficultyEasy)
	if len(got) != 3 {
		t.Fatalf("got %d distractors, want 3", len(got))
	}
	if got[0] != frags[1].Text {
		t.Errorf("first distractor = %q, want the only real candidate %q", got[0], frags[1].Text)
	}
	fillers := vocab.Default().Fillers(models.DifficultyEasy)
	fillerSet := make(map[string]bool, len(fillers))
	for _, f := range fillers {
		fillerSet[f] = true
	}
	for _, d := range got[1:] {
		if !fillerSet[d] {
			t.Errorf("padding distractor %q is not a known filler", d)
		}
	}
}

func TestDistractorsHardOverlapBand(t *testing.T) {
	g := newTestGenerator(1)
	correct := "The mitochondria generate chemical energy for the cell through respiration."
	inBand := "Chemical energy powers every living cell continuously."
	tooClose := "The mitochondria generate chemical energy for the cell through respiration daily."
	noOverlap := "Birds migrate south when winter arrives each year."
	frags := fragments(correct, inBand, tooClose, noOverlap)

	got := g.Distractors(correct, frags, frags[0], 3, models.DifficultyHard)
	if len(got) != 3 {
		t.Fatalf("got %d distractors, want 3", len(got))
	}
	if got[0] != inBand {
		t.Errorf("first distractor = %q, want the in-band candidate %q", got[0], inBand)
	}
	for _, d := range got {
		if d == tooClose {
			t.Errorf("near-paraphrase candidate %q passed the overlap band", d)
		}
		if d == noOverlap {
			t.Errorf("zero-overlap candidate %q passed the overlap band", d)
		}
	}
}

func TestOptionsAssembly(t *testing.T) {
	g := newTestGenerator(7)
	correct := "The mitochondria generate chemical energy for the cell."
	distractors := []string{
		"Chloroplasts capture sunlight inside plant leaves.",
		"Ribosomes assemble proteins from amino acid chains.",
		"The nucleus stores the genetic material of the cell.",
	}

	options := g.Options(correct, distractors, models.DifficultyMedium)
	if len(options) != OptionCount {
		t.Fatalf("got %d options, want %d", len(options), OptionCount)
	}
	found := false
	seen := make(map[string]bool)
	for _, o := range options {
		if o == correct {
			found = true
		}
		key := strings.ToLower(strings.TrimSpace(o))
		if seen[key] {
			t.Errorf("duplicate option %q", o)
		}
		seen[key] = true
	}
	if !found {
		t.Error("options do not include the correct answer")
	}
}

func TestOptionsTopUpAfterCollisions(t *testing.T) {
	g := newTestGenerator(7)
	correct := "The mitochondria generate chemical energy for the cell."
	// Every distractor collides with the correct answer after normalization.
	distractors := []string{correct, strings.ToUpper(correct), " " + correct + " "}

	options := g.Options(correct, distractors, models.DifficultyHard)
	if len(options) != OptionCount {
		t.Fatalf("got %d options, want %d", len(options), OptionCount)
	}
	count := 0
	for _, o := range options {
		if strings.EqualFold(strings.TrimSpace(o), correct) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("correct answer appears %d times, want exactly once", count)
	}
}

func TestOptionsShuffleIsSeeded(t *testing.T) {
	correct := "The mitochondria generate chemical energy for the cell."
	distractors := []string{
		"Chloroplasts capture sunlight inside plant leaves.",
		"Ribosomes assemble proteins from amino acid chains.",
		"The nucleus stores the genetic material of the cell.",
	}

	a := newTestGenerator(42).Options(correct, distractors, models.DifficultyEasy)
	b := newTestGenerator(42).Options(correct, distractors, models.DifficultyEasy)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders: %v vs %v", a, b)
		}
	}
}

func TestWordOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "alpha beta gamma", "alpha beta gamma", 1},
		{"disjoint", "alpha beta gamma", "delta epsilon zeta", 0},
		{"short words ignored", "a an it alpha", "to of at alpha", 1},
		{"empty", "", "alpha", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wordOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("wordOverlap(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := &Config{LengthWeight: 4}
	cfg.ApplyDefaults()
	if cfg.LengthWeight != 4 {
		t.Errorf("LengthWeight = %v, want the explicit 4", cfg.LengthWeight)
	}
	if cfg.OverlapWeightHard != 15 {
		t.Errorf("OverlapWeightHard = %v, want default 15", cfg.OverlapWeightHard)
	}
	if cfg.HardOverlapMax != 0.7 {
		t.Errorf("HardOverlapMax = %v, want default 0.7", cfg.HardOverlapMax)
	}
}
