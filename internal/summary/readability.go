package summary

import (
	"strings"
	"unicode"

	"github.com/brightpath/manabi/pkg/utils"
)

// Reading-level bands and their Flesch-Kincaid grade cutoffs.
const (
	gradeElementary = 6
	gradeMiddle     = 9
	gradeHigh       = 13
	gradeCollege    = 16
)

// CountSyllables estimates the syllables of a word by counting vowel runs,
// with a correction for a silent trailing e. Every word counts at least one.
func CountSyllables(word string) int {
	word = strings.ToLower(utils.CleanWord(word))
	if word == "" {
		return 0
	}
	syllables := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			syllables++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && syllables > 1 {
		syllables--
	}
	if syllables < 1 {
		syllables = 1
	}
	return syllables
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// FleschKincaidGrade computes the grade-level approximation
// 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59.
func FleschKincaidGrade(text string, sentences int) float64 {
	words := strings.Fields(text)
	if len(words) == 0 || sentences <= 0 {
		return 0
	}
	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}
	wordCount := float64(len(words))
	return 0.39*(wordCount/float64(sentences)) + 11.8*(float64(syllables)/wordCount) - 15.59
}

// ReadingLevel maps the Flesch-Kincaid grade of text onto one of five ordered
// bands.
func ReadingLevel(text string, sentences int) string {
	grade := FleschKincaidGrade(text, sentences)
	switch {
	case grade < gradeElementary:
		return "Elementary"
	case grade < gradeMiddle:
		return "Middle School"
	case grade < gradeHigh:
		return "High School"
	case grade < gradeCollege:
		return "College"
	default:
		return "Graduate"
	}
}
