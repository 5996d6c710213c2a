package summary

import (
	"sort"
	"strings"

	"github.com/brightpath/manabi/internal/models"
)

const (
	themeMinHits      = 2
	themeHitWeight    = 20
	themeMaxRelevance = 100
)

// DetectThemes matches the text against the fixed theme keyword buckets.
// A bucket qualifies with at least two keyword hits; relevance is hits times
// twenty, capped at one hundred. Results sort by descending relevance with
// ties kept in bucket order.
func (s *Summarizer) DetectThemes(text string) []models.Theme {
	lower := strings.ToLower(text)
	themes := make([]models.Theme, 0, len(s.vocab.ThemeBuckets))
	for _, bucket := range s.vocab.ThemeBuckets {
		hits := 0
		for _, kw := range bucket.Keywords {
			hits += strings.Count(lower, kw)
		}
		if hits < themeMinHits {
			continue
		}
		relevance := hits * themeHitWeight
		if relevance > themeMaxRelevance {
			relevance = themeMaxRelevance
		}
		themes = append(themes, models.Theme{Name: bucket.Name, Relevance: relevance})
	}
	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i].Relevance > themes[j].Relevance
	})
	return themes
}
