// Package synth turns text fragments into question/answer candidates for both
// the MCQ and flashcard paths. Strategy selection is an ordered table of
// (pattern, builder) pairs evaluated first-match-wins; the correct answer is
// always the full source fragment (or the joined context window for hard
// questions), never a synthesized string, so answers stay verifiable against
// the source text.
package synth

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/brightpath/manabi/internal/concepts"
	"github.com/brightpath/manabi/internal/models"
	"github.com/brightpath/manabi/internal/vocab"
	"github.com/brightpath/manabi/pkg/utils"
)

// Strategy names the synthesis strategy that produced a candidate. The value
// doubles as the output category tag.
type Strategy string

const (
	StrategyDefinition    Strategy = "definition"
	StrategyProcess       Strategy = "process"
	StrategyCauseEffect   Strategy = "cause-effect"
	StrategyComparison    Strategy = "comparison"
	StrategyComprehension Strategy = "comprehension"
	StrategyFillBlank     Strategy = "fill-blank"
)

// Rejection guards and limits.
const (
	mcqMinWords  = 8
	mcqMaxWords  = 50
	cardMinWords = 6
	cardMaxWords = 45

	maxNumericDensity = 0.3
	minAnswerLength   = 20

	maxSubjectWords = 6
	blankMarker     = "_____"
)

var numberPattern = regexp.MustCompile(`\d+`)

// strategyPattern pairs a strategy with the predicate regex that selects it.
type strategyPattern struct {
	strategy Strategy
	pattern  *regexp.Regexp
}

// Evaluated in this fixed order; the comprehension fallback matches anything.
var strategyPatterns = []strategyPattern{
	{StrategyDefinition, regexp.MustCompile(`(?i)\b(is|are|refers to)\b`)},
	{StrategyProcess, regexp.MustCompile(`(?i)\b(process|method|approach|technique|procedure|steps|way to)\b`)},
	{StrategyCauseEffect, regexp.MustCompile(`(?i)\b(because|therefore|thus|hence|leads to|results in|causes)\b`)},
	{StrategyComparison, regexp.MustCompile(`(?i)\b(compared to|versus|while|whereas|different from|similar to)\b`)},
}

// Rotated by fragment position when no phrase-based template applies.
var comprehensionTemplates = []string{
	"Which of the following statements is supported by the text?",
	"What is the main idea conveyed in this part of the text?",
	"Which statement accurately reflects the text?",
	"What point does this part of the text make?",
}

var flashcardTemplates = []string{
	"What does this part of the text explain?",
	"Summarize the key idea stated here.",
	"What claim does the text make at this point?",
	"Restate the information given in this part of the text.",
}

// Result is a synthesized question/answer candidate.
type Result struct {
	Question    string
	Answer      string
	Strategy    Strategy
	Explanation string
}

// Synthesizer builds question/answer candidates from fragments.
type Synthesizer struct {
	vocab     *vocab.Vocabulary
	extractor *concepts.Extractor
}

// NewSynthesizer creates a synthesizer. A nil vocabulary uses the built-in one.
func NewSynthesizer(v *vocab.Vocabulary) *Synthesizer {
	if v == nil {
		v = vocab.Default()
	}
	return &Synthesizer{
		vocab:     v,
		extractor: concepts.NewExtractor(v),
	}
}

// MCQ synthesizes a question/answer candidate for a multiple-choice item at
// the target difficulty. Returns nil when the fragment is rejected: word count
// outside [8,50], numeric density above 0.3, answer below the minimum length,
// or an easy-path fragment with no extractable key phrase.
func (s *Synthesizer) MCQ(frag models.TextFragment, contextWindow string, target models.Difficulty) *Result {
	if frag.WordCount < mcqMinWords || frag.WordCount > mcqMaxWords {
		return nil
	}
	if numericDensity(frag) > maxNumericDensity {
		return nil
	}

	answer := frag.Text
	if target == models.DifficultyHard && strings.TrimSpace(contextWindow) != "" {
		answer = contextWindow
	}
	if len(answer) < minAnswerLength {
		return nil
	}

	strat := detectStrategy(frag.Text)
	var question string
	category := strat

	switch target {
	case models.DifficultyHard:
		question = s.hardQuestion(strat, frag)
	case models.DifficultyMedium:
		if blanked, ok := s.FillBlank(frag); ok {
			question = blanked
			category = StrategyFillBlank
		} else {
			question = s.conceptQuestion(strat, frag)
		}
	default: // easy: direct recall of the most important phrase
		phrase := s.topic(strat, frag)
		if phrase == "" {
			return nil
		}
		question = s.easyQuestion(strat, phrase)
	}

	return &Result{
		Question:    question,
		Answer:      answer,
		Strategy:    category,
		Explanation: explanation(category),
	}
}

// Flashcard synthesizes a question/answer pair for a flashcard. Returns nil
// when the fragment is rejected: word count outside [6,45], numeric density
// above 0.3, or answer below the minimum length.
func (s *Synthesizer) Flashcard(frag models.TextFragment) *Result {
	if frag.WordCount < cardMinWords || frag.WordCount > cardMaxWords {
		return nil
	}
	if numericDensity(frag) > maxNumericDensity {
		return nil
	}
	answer := frag.Text
	if len(answer) < minAnswerLength {
		return nil
	}

	strat := detectStrategy(frag.Text)
	question := s.flashcardQuestion(strat, frag)

	return &Result{
		Question:    question,
		Answer:      answer,
		Strategy:    strat,
		Explanation: explanation(strat),
	}
}

// FillBlank transforms a fragment into a fill-in-the-blank prompt by blanking
// one word in the middle 30-70% span. Three scan passes run in order:
// important-term vocabulary, capitalized words longer than 4 characters, then
// any non-stop-word longer than 6 characters. Returns false when no word
// qualifies.
func (s *Synthesizer) FillBlank(frag models.TextFragment) (string, bool) {
	words := strings.Fields(frag.Text)
	n := len(words)
	lo := n * 3 / 10
	hi := n * 7 / 10
	if hi <= lo {
		return "", false
	}

	pick := -1
	for i := lo; i < hi; i++ {
		if s.vocab.IsImportantTerm(strings.ToLower(utils.CleanWord(words[i]))) {
			pick = i
			break
		}
	}
	if pick < 0 {
		for i := lo; i < hi; i++ {
			cw := utils.CleanWord(words[i])
			if len(cw) > 4 && utils.IsCapitalized(cw) {
				pick = i
				break
			}
		}
	}
	if pick < 0 {
		for i := lo; i < hi; i++ {
			cw := utils.CleanWord(words[i])
			if len(cw) > 6 && !s.vocab.IsStopWord(strings.ToLower(cw)) {
				pick = i
				break
			}
		}
	}
	if pick < 0 {
		return "", false
	}

	blanked := make([]string, n)
	copy(blanked, words)
	// Keep any punctuation attached to the replaced token.
	blanked[pick] = strings.Replace(words[pick], utils.CleanWord(words[pick]), blankMarker, 1)
	return "Fill in the blank: " + strings.Join(blanked, " "), true
}

// topic picks the phrase a question should reference: the defined subject for
// definition fragments, otherwise the extracted key phrase.
func (s *Synthesizer) topic(strat Strategy, frag models.TextFragment) string {
	if strat == StrategyDefinition {
		if subject := definitionSubject(frag.Text); subject != "" {
			return subject
		}
	}
	return s.extractor.KeyPhrase(frag)
}

func (s *Synthesizer) easyQuestion(strat Strategy, phrase string) string {
	switch strat {
	case StrategyDefinition:
		return fmt.Sprintf("Which of the following best defines %s?", phrase)
	case StrategyProcess:
		return fmt.Sprintf("What does the text say about the process involving %s?", phrase)
	case StrategyCauseEffect:
		return fmt.Sprintf("According to the text, what effect is associated with %s?", phrase)
	case StrategyComparison:
		return fmt.Sprintf("How does the text characterize %s?", phrase)
	default:
		return fmt.Sprintf("What does the text state about %s?", phrase)
	}
}

func (s *Synthesizer) conceptQuestion(strat Strategy, frag models.TextFragment) string {
	phrase := s.topic(strat, frag)
	if phrase == "" {
		return comprehensionTemplates[frag.Position%len(comprehensionTemplates)]
	}
	switch strat {
	case StrategyDefinition:
		return fmt.Sprintf("Which statement best defines %s?", phrase)
	case StrategyProcess:
		return fmt.Sprintf("Which statement best describes the process related to %s?", phrase)
	case StrategyCauseEffect:
		return fmt.Sprintf("Which statement explains the effect associated with %s?", phrase)
	case StrategyComparison:
		return fmt.Sprintf("Which statement reflects the comparison involving %s?", phrase)
	default:
		return fmt.Sprintf("Which statement about %s is supported by the text?", phrase)
	}
}

// hardQuestion asks for the relationship or explanation developed across the
// context window rather than a single-fact recall.
func (s *Synthesizer) hardQuestion(strat Strategy, frag models.TextFragment) string {
	topic := s.topic(strat, frag)
	if topic == "" {
		topic = leadWords(frag.Text, 5)
	}
	switch strat {
	case StrategyDefinition:
		return fmt.Sprintf("Which passage best explains what %s is and how the surrounding text develops it?", topic)
	case StrategyProcess:
		return fmt.Sprintf("Which passage best describes how the process involving %s works?", topic)
	case StrategyCauseEffect:
		return fmt.Sprintf("Which passage best explains the cause-and-effect relationship involving %s?", topic)
	case StrategyComparison:
		return fmt.Sprintf("Which passage best captures the comparison involving %s?", topic)
	default:
		return fmt.Sprintf("Which passage best explains the relationship involving %s?", topic)
	}
}

func (s *Synthesizer) flashcardQuestion(strat Strategy, frag models.TextFragment) string {
	switch strat {
	case StrategyDefinition:
		if subject := definitionSubject(frag.Text); subject != "" {
			return fmt.Sprintf("What is %s?", subject)
		}
	case StrategyProcess:
		if phrase := s.extractor.KeyPhrase(frag); phrase != "" {
			return fmt.Sprintf("How does the text describe the process related to %s?", phrase)
		}
	case StrategyCauseEffect:
		if phrase := s.extractor.KeyPhrase(frag); phrase != "" {
			return fmt.Sprintf("What cause-and-effect relationship does the text describe involving %s?", phrase)
		}
	case StrategyComparison:
		if phrase := s.extractor.KeyPhrase(frag); phrase != "" {
			return fmt.Sprintf("What comparison does the text draw involving %s?", phrase)
		}
	}
	return flashcardTemplates[frag.Position%len(flashcardTemplates)]
}

// definitionSubject extracts the term being defined: the text before the first
// is/are/refers-to, when it is short enough to read as a subject.
func definitionSubject(text string) string {
	loc := strategyPatterns[0].pattern.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	subject := strings.TrimSpace(text[:loc[0]])
	subject = strings.Trim(subject, ",;:")
	words := strings.Fields(subject)
	if len(words) == 0 || len(words) > maxSubjectWords {
		return ""
	}
	return subject
}

// detectStrategy returns the first strategy whose pattern matches, falling
// back to generic comprehension.
func detectStrategy(text string) Strategy {
	for _, sp := range strategyPatterns {
		if sp.pattern.MatchString(text) {
			return sp.strategy
		}
	}
	return StrategyComprehension
}

// numericDensity is the count of digit runs divided by the word count. Values
// above the guard indicate tabular content that makes poor questions.
func numericDensity(frag models.TextFragment) float64 {
	if frag.WordCount == 0 {
		return 0
	}
	runs := numberPattern.FindAllString(frag.Text, -1)
	return float64(len(runs)) / float64(frag.WordCount)
}

// leadWords returns the first n words of text, with an ellipsis when trimmed.
func leadWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return text
	}
	return strings.Join(words[:n], " ") + "..."
}

func explanation(strat Strategy) string {
	switch strat {
	case StrategyDefinition:
		return "The source text defines this directly."
	case StrategyProcess:
		return "The source text describes this process."
	case StrategyCauseEffect:
		return "The source text states this cause-and-effect relationship."
	case StrategyComparison:
		return "The source text draws this comparison."
	case StrategyFillBlank:
		return "The full source sentence completes the blank."
	default:
		return "This is stated directly in the source text."
	}
}
