package quality

import (
	"strings"
	"testing"
)

func TestRunDedup(t *testing.T) {
	t.Run("exact duplicate", func(t *testing.T) {
		r := NewRun()
		if r.Seen("What is photosynthesis?", "Plants convert sunlight into energy.") {
			t.Fatal("fresh run reported an item as seen")
		}
		r.Accept("What is photosynthesis?", "Plants convert sunlight into energy.")
		if !r.Seen("What is photosynthesis?", "Plants convert sunlight into energy.") {
			t.Error("accepted item not reported as seen")
		}
	})

	t.Run("question prefix collision", func(t *testing.T) {
		r := NewRun()
		base := strings.Repeat("x", 45)
		r.Accept(base+" alpha", "first answer text goes here padding")
		if !r.Seen(base+" beta", "a completely different answer body") {
			t.Error("questions sharing a 45-char prefix should collide")
		}
	})

	t.Run("answer prefix collision", func(t *testing.T) {
		r := NewRun()
		base := strings.Repeat("y", 30)
		r.Accept("first question wording entirely", base+" tail one")
		if !r.Seen("second question wording entirely", base+" tail two") {
			t.Error("answers sharing a 30-char prefix should collide")
		}
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		r := NewRun()
		r.Accept("What is Photosynthesis?", "Plants convert sunlight.")
		if !r.Seen("  what is photosynthesis?  ", "PLANTS CONVERT SUNLIGHT.") {
			t.Error("dedup keys should ignore case and surrounding whitespace")
		}
	})

	t.Run("seen does not record", func(t *testing.T) {
		r := NewRun()
		r.Seen("What is photosynthesis?", "Plants convert sunlight.")
		if r.Seen("What is photosynthesis?", "Plants convert sunlight.") {
			t.Error("Seen must not record keys")
		}
	})

	t.Run("distinct items pass", func(t *testing.T) {
		r := NewRun()
		r.Accept("What is photosynthesis in plants?", "Plants convert sunlight into sugar.")
		if r.Seen("How do whales navigate the oceans?", "Whales use echolocation under water.") {
			t.Error("unrelated item reported as duplicate")
		}
	})
}

func TestConfidence(t *testing.T) {
	goodQuestion := "Which of the following best defines the process of photosynthesis?" // 10 words
	goodAnswer := "Photosynthesis is the process by which green plants convert sunlight into chemical energy."
	spreadDistractors := []string{
		"Short option here.",
		strings.Repeat("a longer option ", 4),
	}

	t.Run("all bonuses", func(t *testing.T) {
		got := Confidence(goodQuestion, goodAnswer, spreadDistractors)
		if got < 0.999 || got > 1 {
			t.Errorf("Confidence = %v, want 1.0", got)
		}
	})

	t.Run("base only", func(t *testing.T) {
		got := Confidence("Too short.", "No.", []string{"aaa", "bbb"})
		if got != confidenceBase {
			t.Errorf("Confidence = %v, want base %v", got, confidenceBase)
		}
	})

	t.Run("interrogative bonus", func(t *testing.T) {
		with := Confidence("What happened?", "No.", nil)
		without := Confidence("Something happened?", "No.", nil)
		delta := with - without
		if delta < confidenceSmallBonus-0.001 || delta > confidenceSmallBonus+0.001 {
			t.Errorf("interrogative delta = %v, want %v", delta, confidenceSmallBonus)
		}
	})

	t.Run("never above one", func(t *testing.T) {
		if got := Confidence(goodQuestion, goodAnswer, spreadDistractors); got > 1 {
			t.Errorf("Confidence = %v, exceeds 1", got)
		}
	})
}
