// Copyright Brightwork Labs Inc., 2026. All rights reserved.

package analysis

import (
	"strings"
	"unicode"

	"github.com/lessoncrew/lessoncrew/pkg/types"
)

// longWordThreshold is the character count a word must exceed to count
// toward the vocabulary complexity ratio.
const longWordThreshold = 7

// Band thresholds. A text at or below a boundary resolves to the simpler
// band; the Advanced cut is strict so boundary texts stay High School.
const (
	elementaryMaxWordLen = 4.5
	elementaryMaxSentLen = 10.0
	middleMaxWordLen     = 5.5
	middleMaxSentLen     = 15.0
	advancedMinWordLen   = 6.5
	advancedMinVocab     = 0.3
)

// Estimate computes lexical complexity metrics for a notes document and maps
// them to a suggested grade band. Sentences split on terminal punctuation,
// words split on whitespace with boundary punctuation stripped. Estimate
// never fails; empty input yields zero metrics and the Elementary band.
func Estimate(text string) types.ComplexityMetrics {
	words := splitWords(text)
	sentences := countSentences(text)

	m := types.ComplexityMetrics{SuggestedBand: types.BandElementary}
	if len(words) == 0 {
		return m
	}

	var chars, long int
	for _, w := range words {
		n := len([]rune(w))
		chars += n
		if n > longWordThreshold {
			long++
		}
	}

	m.AvgWordLength = float64(chars) / float64(len(words))
	if sentences > 0 {
		m.AvgSentenceLength = float64(len(words)) / float64(sentences)
	}
	m.VocabularyComplexity = float64(long) / float64(len(words))
	m.SuggestedBand = suggestBand(m)

	return m
}

// splitWords tokenizes text on whitespace and strips punctuation from word
// boundaries. Tokens that are pure punctuation are dropped.
func splitWords(text string) []string {
	var words []string
	for _, tok := range strings.Fields(text) {
		w := strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// countSentences counts runs of text terminated by '.', '!', or '?'. A
// trailing fragment without terminal punctuation counts as a sentence.
func countSentences(text string) int {
	count := 0
	pending := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if pending {
				count++
				pending = false
			}
		default:
			if !unicode.IsSpace(r) {
				pending = true
			}
		}
	}
	if pending {
		count++
	}
	return count
}

// suggestBand maps metrics to a grade band. The lower bands use inclusive
// upper bounds and the Advanced band uses strict lower bounds, so a text
// sitting exactly on a boundary resolves to the simpler band. Raising any
// metric never lowers the band.
func suggestBand(m types.ComplexityMetrics) types.GradeBand {
	switch {
	case m.AvgWordLength <= elementaryMaxWordLen && m.AvgSentenceLength <= elementaryMaxSentLen:
		return types.BandElementary
	case m.AvgWordLength <= middleMaxWordLen && m.AvgSentenceLength <= middleMaxSentLen:
		return types.BandMiddleSchool
	case m.AvgWordLength > advancedMinWordLen && m.VocabularyComplexity > advancedMinVocab:
		return types.BandAdvanced
	default:
		return types.BandHighSchool
	}
}
