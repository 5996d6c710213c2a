package models

import "fmt"

const (
	defaultMCQCount       = 5
	defaultFlashcardCount = 10
	maxItemCount          = 50

	defaultSummaryMaxLength         = 150
	defaultSummaryDetailedMaxLength = 300
)

// MCQOptions configures a call to the MCQ orchestrator.
type MCQOptions struct {
	Count      int            `json:"count,omitempty"`
	Difficulty DifficultyMode `json:"difficulty,omitempty"`
}

// Validate normalizes the options and rejects unknown difficulty modes.
func (o *MCQOptions) Validate() error {
	if o.Count <= 0 {
		o.Count = defaultMCQCount
	}
	if o.Count > maxItemCount {
		o.Count = maxItemCount
	}
	if o.Difficulty == "" {
		o.Difficulty = ModeMixed
	}
	switch o.Difficulty {
	case ModeEasy, ModeMedium, ModeHard, ModeMixed:
		return nil
	default:
		return fmt.Errorf("unknown difficulty mode %q", o.Difficulty)
	}
}

// FlashcardOptions configures a call to the flashcard orchestrator.
type FlashcardOptions struct {
	Count int `json:"count,omitempty"`
}

// Validate normalizes the requested count.
func (o *FlashcardOptions) Validate() error {
	if o.Count <= 0 {
		o.Count = defaultFlashcardCount
	}
	if o.Count > maxItemCount {
		o.Count = maxItemCount
	}
	return nil
}

// SummaryType selects which summary variants to build.
type SummaryType string

const (
	SummaryShort    SummaryType = "short"
	SummaryDetailed SummaryType = "detailed"
	SummaryBoth     SummaryType = "both"
)

// SummaryOptions configures a call to the summary orchestrator.
type SummaryOptions struct {
	Type              SummaryType `json:"type,omitempty"`
	MaxLength         int         `json:"maxLength,omitempty"`
	DetailedMaxLength int         `json:"detailedMaxLength,omitempty"`
}

// Validate normalizes the options and rejects unknown summary types.
func (o *SummaryOptions) Validate() error {
	if o.Type == "" {
		o.Type = SummaryBoth
	}
	switch o.Type {
	case SummaryShort, SummaryDetailed, SummaryBoth:
	default:
		return fmt.Errorf("unknown summary type %q", o.Type)
	}
	if o.MaxLength <= 0 {
		o.MaxLength = defaultSummaryMaxLength
	}
	if o.DetailedMaxLength <= 0 {
		o.DetailedMaxLength = defaultSummaryDetailedMaxLength
	}
	return nil
}
