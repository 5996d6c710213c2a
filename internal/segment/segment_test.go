package segment

import (
	"strings"
	"testing"
)

func TestSegmenter_Segment(t *testing.T) {
	s := NewSegmenter(10)

	t.Run("splits on terminal punctuation runs", func(t *testing.T) {
		frags := s.Segment("The ocean covers most of the planet. Waves never stop moving!! Tides follow the moon?")
		if len(frags) != 3 {
			t.Fatalf("expected 3 fragments, got %d", len(frags))
		}
		if frags[0].Text != "The ocean covers most of the planet" {
			t.Errorf("unexpected first fragment: %q", frags[0].Text)
		}
		if frags[1].Text != "Waves never stop moving" {
			t.Errorf("unexpected second fragment: %q", frags[1].Text)
		}
	})

	t.Run("discards short fragments and preserves order", func(t *testing.T) {
		frags := s.Segment("Yes. The first long sentence stays here. No. The second long sentence stays too.")
		if len(frags) != 2 {
			t.Fatalf("expected 2 fragments, got %d", len(frags))
		}
		for i, f := range frags {
			if f.Position != i {
				t.Errorf("fragment %d has position %d", i, f.Position)
			}
		}
		if !strings.HasPrefix(frags[0].Text, "The first") || !strings.HasPrefix(frags[1].Text, "The second") {
			t.Errorf("document order not preserved: %q, %q", frags[0].Text, frags[1].Text)
		}
	})

	t.Run("word counts", func(t *testing.T) {
		frags := s.Segment("Five little words sit here.")
		if len(frags) != 1 {
			t.Fatalf("expected 1 fragment, got %d", len(frags))
		}
		if frags[0].WordCount != 5 {
			t.Errorf("expected word count 5, got %d", frags[0].WordCount)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if frags := s.Segment(""); len(frags) != 0 {
			t.Errorf("expected no fragments, got %d", len(frags))
		}
	})

	t.Run("trailing text without terminator is kept", func(t *testing.T) {
		frags := s.Segment("A complete sentence here. And a trailing clause with no ending")
		if len(frags) != 2 {
			t.Fatalf("expected 2 fragments, got %d", len(frags))
		}
	})
}

func TestContextWindow(t *testing.T) {
	s := NewSegmenter(5)
	frags := s.Segment("First sentence here. Second sentence here. Third sentence here.")
	if len(frags) != 3 {
		t.Fatalf("expected 3 fragments, got %d", len(frags))
	}

	tests := []struct {
		name string
		i    int
		want string
	}{
		{"middle joins all three", 1, "First sentence here Second sentence here Third sentence here"},
		{"first omits previous", 0, "First sentence here Second sentence here"},
		{"last omits next", 2, "Second sentence here Third sentence here"},
		{"out of range", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContextWindow(frags, tt.i); got != tt.want {
				t.Errorf("ContextWindow(%d) = %q, want %q", tt.i, got, tt.want)
			}
		})
	}
}
