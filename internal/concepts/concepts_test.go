package concepts

import (
	"reflect"
	"strings"
	"testing"

	"github.com/brightpath/manabi/internal/models"
)

func frag(text string) models.TextFragment {
	return models.TextFragment{Text: text, WordCount: len(strings.Fields(text))}
}

func TestExtractor_KeyPhrase(t *testing.T) {
	e := NewExtractor(nil)

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "capitalized bigram wins",
			text: "Researchers studied the Amazon Rainforest for a decade",
			want: "Amazon Rainforest",
		},
		{
			name: "sentence-initial stop word does not form a bigram",
			text: "The Andes stretch along the western coast",
			want: "Andes",
		},
		{
			name: "important term beats content word",
			text: "their training method outperformed every baseline result",
			want: "method",
		},
		{
			name: "first content word fallback",
			text: "some whales migrate south in the winter months",
			want: "whales",
		},
		{
			name: "no candidate",
			text: "we did so and it was ok",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.KeyPhrase(frag(tt.text)); got != tt.want {
				t.Errorf("KeyPhrase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractor_KeyPhrase_Deterministic(t *testing.T) {
	e := NewExtractor(nil)
	f := frag("the Krebs Cycle releases stored chemical energy")
	first := e.KeyPhrase(f)
	for i := 0; i < 3; i++ {
		if got := e.KeyPhrase(f); got != first {
			t.Fatalf("KeyPhrase not deterministic: %q then %q", first, got)
		}
	}
}

func TestExtractor_Concepts(t *testing.T) {
	e := NewExtractor(nil)

	t.Run("frequency order with first-occurrence ties", func(t *testing.T) {
		text := "Neurons transmit signals. Signals reach neurons quickly. Neurons adapt. Dendrites grow, dendrites branch."
		got := e.Concepts(text)
		// neurons: 3, signals: 2, dendrites: 2; signals seen before dendrites.
		want := []string{"neurons", "signals", "dendrites"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Concepts() = %v, want %v", got, want)
		}
	})

	t.Run("short tokens and stop words excluded", func(t *testing.T) {
		got := e.Concepts("the the the cat cat runs runs")
		for _, term := range got {
			if len(term) < 5 {
				t.Errorf("short token %q should be excluded", term)
			}
		}
	})

	t.Run("single occurrences excluded", func(t *testing.T) {
		got := e.Concepts("photosynthesis happens once here while respiration respiration repeats")
		for _, term := range got {
			if term == "photosynthesis" {
				t.Error("terms with frequency 1 should be excluded")
			}
		}
	})

	t.Run("truncated to maximum", func(t *testing.T) {
		e := NewExtractor(nil).WithMaxConcepts(2)
		text := strings.Repeat("alpha bravo charlie delta echoes ", 3)
		if got := e.Concepts(text); len(got) > 2 {
			t.Errorf("expected at most 2 concepts, got %d", len(got))
		}
	})
}
