// Package e2e provides full-pipeline tests over realistic documents.
package e2e

import "strings"

// Fixture documents sized like real study material.

// HistoryArticle is a multi-paragraph expository text with clear sentence
// structure and recurring terms.
var HistoryArticle = strings.Join([]string{
	"The printing press is the machine that transformed how knowledge spread through Europe.",
	"Johannes Gutenberg introduced movable metal type around the middle of the fifteenth century.",
	"Books became dramatically cheaper because printers could produce hundreds of copies quickly.",
	"Literacy rates rose steadily while printed pamphlets carried new ideas between distant cities.",
	"The most important effect was the rapid circulation of scientific knowledge among scholars.",
	"Scholars compared printed editions against older manuscripts to correct copying errors.",
	"Printing therefore connected readers and writers into one growing community of knowledge.",
	"Modern historians consider the printing press a key turning point in European education.",
}, " ")

// ScienceArticle leans on technical vocabulary to pull the difficulty
// classifier toward harder bands.
var ScienceArticle = strings.Join([]string{
	"Mitochondria are the specialized structures that generate chemical energy inside living cells.",
	"Cellular respiration is the process by which glucose molecules break down into usable energy.",
	"The mechanism involves electron transport chains embedded within intricate membrane structures.",
	"Oxygen molecules accept electrons at the end of the chain, which therefore sustains the cycle.",
	"Defective mitochondria cause serious metabolic diseases because cells lose their energy supply.",
	"Researchers study these organelles to develop treatment strategies for degenerative conditions.",
}, " ")

// NumericReport is pathological tabular content that should trip the
// numeric-density rejection guards.
var NumericReport = strings.Join([]string{
	"Quarter 1 revenue reached 4500 units at 12 dollars each across 3 regions.",
	"Quarter 2 revenue reached 5200 units at 13 dollars each across 4 regions.",
	"Quarter 3 revenue reached 6100 units at 11 dollars each across 5 regions.",
}, " ")
