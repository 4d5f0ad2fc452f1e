// Copyright Brightwork Labs Inc., 2026. All rights reserved.

package analysis

import (
	"strings"

	"github.com/lessoncrew/lessoncrew/pkg/types"
)

// Stats computes coarse content counts over a notes document. Like the other
// analysis functions it is total: empty input yields zero counts.
func Stats(text string) types.ContentStats {
	if strings.TrimSpace(text) == "" {
		return types.ContentStats{}
	}

	lower := strings.ToLower(text)
	return types.ContentStats{
		Words:         len(strings.Fields(text)),
		Lines:         len(strings.Split(text, "\n")),
		HasObjectives: strings.Contains(lower, "objective"),
		HasVocabulary: strings.Contains(lower, "vocabulary") || strings.Contains(lower, "vocab"),
		HasStandards:  strings.Contains(lower, "standard"),
	}
}

// Analyze runs all three analysis functions over one notes document.
func Analyze(text string) types.Analysis {
	return types.Analysis{
		Profile:    Extract(text),
		Complexity: Estimate(text),
		Stats:      Stats(text),
	}
}
