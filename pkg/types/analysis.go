// Copyright Brightwork Labs Inc., 2026. All rights reserved.

// Package types defines the serializable records shared between the CLI,
// the analysis core, and the crew configuration layer.
package types

// Profile holds the structured fields parsed out of a notes document.
// Fields absent from the input stay empty; the extractor never fabricates
// content.
type Profile struct {
	// Subject is the subject area, taken from a Topic or Subject section.
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`

	// GradeLevel is the stated grade level, normalized to "Grade N" when the
	// section contains an explicit grade number.
	GradeLevel string `json:"grade_level,omitempty" yaml:"grade_level,omitempty"`

	// Concepts lists the key concepts, one entry per bullet, in input order.
	Concepts []string `json:"concepts,omitempty" yaml:"concepts,omitempty"`

	// Objectives lists the learning objectives in input order.
	Objectives []string `json:"objectives,omitempty" yaml:"objectives,omitempty"`

	// Vocabulary lists vocabulary terms. Inline comma- or semicolon-separated
	// term lists are split into individual entries.
	Vocabulary []string `json:"vocabulary,omitempty" yaml:"vocabulary,omitempty"`

	// PriorKnowledge lists prerequisite knowledge items in input order.
	PriorKnowledge []string `json:"prior_knowledge,omitempty" yaml:"prior_knowledge,omitempty"`

	// RealWorldConnections lists real-world application items in input order.
	RealWorldConnections []string `json:"real_world_connections,omitempty" yaml:"real_world_connections,omitempty"`
}

// GradeBand is a categorical difficulty label derived from complexity metrics.
type GradeBand string

const (
	BandElementary   GradeBand = "Elementary"
	BandMiddleSchool GradeBand = "Middle School"
	BandHighSchool   GradeBand = "High School"
	BandAdvanced     GradeBand = "Advanced"
)

// gradeBandOrder fixes the ordering of bands from simplest to most complex.
var gradeBandOrder = map[GradeBand]int{
	BandElementary:   0,
	BandMiddleSchool: 1,
	BandHighSchool:   2,
	BandAdvanced:     3,
}

// Less reports whether b orders strictly before other (simpler band first).
func (b GradeBand) Less(other GradeBand) bool {
	return gradeBandOrder[b] < gradeBandOrder[other]
}

// ComplexityMetrics holds lexical statistics for a notes document and the
// grade band they suggest.
type ComplexityMetrics struct {
	// AvgWordLength is the mean character count per word, 0 for empty input.
	AvgWordLength float64 `json:"avg_word_length" yaml:"avg_word_length"`

	// AvgSentenceLength is the mean word count per sentence, 0 for empty input.
	AvgSentenceLength float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`

	// VocabularyComplexity is the fraction of words longer than the complexity
	// threshold, always in [0,1].
	VocabularyComplexity float64 `json:"vocabulary_complexity" yaml:"vocabulary_complexity"`

	// SuggestedBand is the grade band the metrics map to. Empty input maps to
	// Elementary.
	SuggestedBand GradeBand `json:"suggested_band" yaml:"suggested_band"`
}

// ContentStats holds coarse counts over a notes document, used to summarize
// the input before the crew runs.
type ContentStats struct {
	// Words is the whitespace-separated word count.
	Words int `json:"words" yaml:"words"`

	// Lines is the newline-separated line count.
	Lines int `json:"lines" yaml:"lines"`

	// HasObjectives reports whether the text mentions objectives.
	HasObjectives bool `json:"has_objectives" yaml:"has_objectives"`

	// HasVocabulary reports whether the text mentions vocabulary terms.
	HasVocabulary bool `json:"has_vocabulary" yaml:"has_vocabulary"`

	// HasStandards reports whether the text mentions curriculum standards.
	HasStandards bool `json:"has_standards" yaml:"has_standards"`
}

// Analysis bundles the outputs of both analysis tools for one notes document.
type Analysis struct {
	Profile    Profile           `json:"profile" yaml:"profile"`
	Complexity ComplexityMetrics `json:"complexity" yaml:"complexity"`
	Stats      ContentStats      `json:"stats" yaml:"stats"`
}
