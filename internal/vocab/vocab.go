// Package vocab holds the compiled-in wordlists the generation heuristics rely
// on: stop words, the important-term vocabulary, summary importance keywords,
// theme keyword buckets, and the generic filler distractors. The lists are
// configuration data, not behavior; callers may extend them, but the heuristics
// that consume them keep their fixed priority order.
package vocab

import "github.com/brightpath/manabi/internal/models"

// ThemeBucket is a named subject-matter bucket with its trigger keywords.
// Bucket order is fixed and used to break relevance ties.
type ThemeBucket struct {
	Name     string
	Keywords []string
}

// Vocabulary bundles all wordlists used across the pipeline.
type Vocabulary struct {
	stopWords      map[string]bool
	importantTerms map[string]bool
	fillers        map[models.Difficulty][]string

	// ImportanceKeywords mark sentences the summary scorer should favor.
	ImportanceKeywords []string
	// ThemeBuckets drive theme detection for summary insights.
	ThemeBuckets []ThemeBucket
}

// Default returns the built-in English vocabulary.
func Default() *Vocabulary {
	v := &Vocabulary{
		stopWords:      make(map[string]bool, len(defaultStopWords)),
		importantTerms: make(map[string]bool, len(defaultImportantTerms)),
		fillers: map[models.Difficulty][]string{
			models.DifficultyEasy:   append([]string(nil), easyFillers...),
			models.DifficultyMedium: append([]string(nil), mediumFillers...),
			models.DifficultyHard:   append([]string(nil), hardFillers...),
		},
		ImportanceKeywords: append([]string(nil), defaultImportanceKeywords...),
		ThemeBuckets:       defaultThemeBuckets(),
	}
	for _, w := range defaultStopWords {
		v.stopWords[w] = true
	}
	for _, w := range defaultImportantTerms {
		v.importantTerms[w] = true
	}
	return v
}

// IsStopWord reports whether the lowercase word is a stop word.
func (v *Vocabulary) IsStopWord(word string) bool {
	return v.stopWords[word]
}

// IsImportantTerm reports whether the lowercase word is in the important-term
// vocabulary.
func (v *Vocabulary) IsImportantTerm(word string) bool {
	return v.importantTerms[word]
}

// Fillers returns the generic-but-plausible filler distractors for a
// difficulty level. Unknown levels fall back to the medium wording.
func (v *Vocabulary) Fillers(d models.Difficulty) []string {
	if fs, ok := v.fillers[d]; ok {
		return fs
	}
	return v.fillers[models.DifficultyMedium]
}

// AddStopWords extends the stop-word set. Words are expected lowercase.
func (v *Vocabulary) AddStopWords(words []string) {
	for _, w := range words {
		v.stopWords[w] = true
	}
}

// AddImportantTerms extends the important-term vocabulary. Words are expected
// lowercase.
func (v *Vocabulary) AddImportantTerms(words []string) {
	for _, w := range words {
		v.importantTerms[w] = true
	}
}

// AddImportanceKeywords extends the summary importance keywords.
func (v *Vocabulary) AddImportanceKeywords(words []string) {
	v.ImportanceKeywords = append(v.ImportanceKeywords, words...)
}

var defaultStopWords = []string{
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "when",
	"while", "of", "at", "by", "for", "with", "about", "against", "between",
	"into", "through", "during", "before", "after", "above", "below", "to",
	"from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "once", "here", "there", "all", "any", "both", "each", "few",
	"more", "most", "other", "some", "such", "no", "nor", "not", "only",
	"own", "same", "so", "than", "too", "very", "can", "will", "just",
	"should", "now", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "this", "that", "these",
	"those", "it", "its", "they", "them", "their", "we", "our", "you",
	"your", "he", "she", "his", "her", "what", "which", "who", "whom",
	"because", "as", "until", "also",
}

var defaultImportantTerms = []string{
	"method", "process", "concept", "theory", "principle", "system",
	"function", "structure", "analysis", "definition", "element", "factor",
	"model", "approach", "technique", "procedure", "mechanism", "strategy",
	"framework", "hypothesis", "component", "property", "relationship",
}

var defaultImportanceKeywords = []string{
	"important", "key", "main", "primary", "essential", "crucial",
	"significant",
}

func defaultThemeBuckets() []ThemeBucket {
	return []ThemeBucket{
		{Name: "Technology", Keywords: []string{
			"technology", "software", "computer", "digital", "internet",
			"data", "algorithm", "network", "device",
		}},
		{Name: "Science", Keywords: []string{
			"science", "research", "experiment", "theory", "hypothesis",
			"biology", "chemistry", "physics", "species", "cell",
		}},
		{Name: "Business", Keywords: []string{
			"business", "market", "company", "revenue", "profit",
			"customer", "economy", "finance", "investment",
		}},
		{Name: "Education", Keywords: []string{
			"education", "learning", "student", "teacher", "school",
			"curriculum", "knowledge", "study", "classroom",
		}},
		{Name: "Health", Keywords: []string{
			"health", "medical", "disease", "treatment", "patient",
			"medicine", "wellness", "therapy", "diet",
		}},
		{Name: "Environment", Keywords: []string{
			"environment", "climate", "energy", "pollution", "sustainable",
			"ecosystem", "carbon", "conservation", "forest",
		}},
	}
}

var easyFillers = []string{
	"None of the above statements appear in the text",
	"The text states the opposite of this",
	"This detail is not mentioned anywhere in the text",
	"An unrelated fact that does not come from the text",
}

var mediumFillers = []string{
	"A partially accurate statement that omits the key detail",
	"A common misconception not supported by the text",
	"A claim that reverses the order of events described",
	"A generalization that goes beyond what the text supports",
}

var hardFillers = []string{
	"A closely related idea that the text discusses in a different context",
	"An interpretation that subtly reverses the relationship described",
	"A plausible inference that the text does not actually support",
	"A near-paraphrase that changes one essential condition",
}
