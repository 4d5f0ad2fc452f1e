// Copyright Brightwork Labs Inc., 2026. All rights reserved.

package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/lessoncrew/lessoncrew/pkg/types"
)

func TestEstimateEmpty(t *testing.T) {
	m := Estimate("")
	if m.AvgWordLength != 0 || m.AvgSentenceLength != 0 || m.VocabularyComplexity != 0 {
		t.Errorf("Estimate(\"\") metrics = %+v, want all zero", m)
	}
	if m.SuggestedBand != types.BandElementary {
		t.Errorf("Estimate(\"\") band = %q, want %q", m.SuggestedBand, types.BandElementary)
	}
}

func TestEstimateMetrics(t *testing.T) {
	// "The cat sat." → 3 words, 9 characters, 1 sentence.
	m := Estimate("The cat sat.")
	if got, want := m.AvgWordLength, 3.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("AvgWordLength = %v, want %v", got, want)
	}
	if m.AvgSentenceLength != 3 {
		t.Errorf("AvgSentenceLength = %v, want 3", m.AvgSentenceLength)
	}
	if m.VocabularyComplexity != 0 {
		t.Errorf("VocabularyComplexity = %v, want 0", m.VocabularyComplexity)
	}
}

func TestEstimateLongWords(t *testing.T) {
	// One of four words exceeds the threshold.
	m := Estimate("the photosynthesis is here")
	if got, want := m.VocabularyComplexity, 0.25; math.Abs(got-want) > 1e-9 {
		t.Errorf("VocabularyComplexity = %v, want %v", got, want)
	}
}

func TestCountSentences(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"One sentence.", 1},
		{"One. Two! Three?", 3},
		{"Trailing fragment without punctuation", 1},
		{"Wait... what?!", 2},
		{"...", 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := countSentences(tt.text); got != tt.want {
				t.Errorf("countSentences(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitWordsStripsPunctuation(t *testing.T) {
	words := splitWords("(Hello), \"world\"! -- 42.")
	want := []string{"Hello", "world", "42"}
	if len(words) != len(want) {
		t.Fatalf("splitWords = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("word[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestSuggestBand(t *testing.T) {
	tests := []struct {
		name string
		m    types.ComplexityMetrics
		want types.GradeBand
	}{
		{
			name: "short simple text",
			m:    types.ComplexityMetrics{AvgWordLength: 3.8, AvgSentenceLength: 7},
			want: types.BandElementary,
		},
		{
			name: "boundary resolves to simpler band",
			m:    types.ComplexityMetrics{AvgWordLength: 4.5, AvgSentenceLength: 10},
			want: types.BandElementary,
		},
		{
			name: "moderate text",
			m:    types.ComplexityMetrics{AvgWordLength: 5.2, AvgSentenceLength: 13},
			want: types.BandMiddleSchool,
		},
		{
			name: "long sentences push past elementary",
			m:    types.ComplexityMetrics{AvgWordLength: 4.0, AvgSentenceLength: 14},
			want: types.BandMiddleSchool,
		},
		{
			name: "complex text",
			m:    types.ComplexityMetrics{AvgWordLength: 6.0, AvgSentenceLength: 18, VocabularyComplexity: 0.2},
			want: types.BandHighSchool,
		},
		{
			name: "advanced boundary stays high school",
			m:    types.ComplexityMetrics{AvgWordLength: 6.5, AvgSentenceLength: 22, VocabularyComplexity: 0.3},
			want: types.BandHighSchool,
		},
		{
			name: "dense technical text",
			m:    types.ComplexityMetrics{AvgWordLength: 7.1, AvgSentenceLength: 24, VocabularyComplexity: 0.45},
			want: types.BandAdvanced,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := suggestBand(tt.m); got != tt.want {
				t.Errorf("suggestBand(%+v) = %q, want %q", tt.m, got, tt.want)
			}
		})
	}
}

// TestBandMonotone raises each metric in turn and checks the band never
// moves toward a simpler label.
func TestBandMonotone(t *testing.T) {
	base := types.ComplexityMetrics{AvgWordLength: 3, AvgSentenceLength: 5, VocabularyComplexity: 0}
	prev := suggestBand(base)
	for i := 0; i < 40; i++ {
		base.AvgWordLength += 0.2
		base.AvgSentenceLength += 0.8
		if base.VocabularyComplexity < 1.0 {
			base.VocabularyComplexity += 0.02
		}
		cur := suggestBand(base)
		if cur.Less(prev) {
			t.Fatalf("band decreased from %q to %q at %+v", prev, cur, base)
		}
		prev = cur
	}
}

func TestRatioBounds(t *testing.T) {
	texts := []string{
		"a b c",
		"extraordinarily incomprehensible photosynthesis",
		"Mixed lengths of several different tokens here, some extraordinarily long.",
		strings.Repeat("word ", 500),
	}
	for _, text := range texts {
		m := Estimate(text)
		if m.VocabularyComplexity < 0 || m.VocabularyComplexity > 1 {
			t.Errorf("VocabularyComplexity %v out of [0,1] for %q", m.VocabularyComplexity, text)
		}
	}
}

func TestEstimateIdempotent(t *testing.T) {
	text := "Photosynthesis converts light energy. Plants use chlorophyll!"
	if Estimate(text) != Estimate(text) {
		t.Error("Estimate is not idempotent")
	}
}
