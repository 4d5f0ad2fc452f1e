// Copyright Brightwork Labs Inc., 2026. All rights reserved.

// Package analysis implements the two deterministic text heuristics used to
// pre-digest teaching notes before they reach the crew: structured field
// extraction and grade-level complexity estimation. Both are pure functions
// of the input text and are safe for concurrent use.
package analysis

import (
	"regexp"
	"strings"

	"github.com/lessoncrew/lessoncrew/pkg/types"
)

// field identifies a Profile destination for a recognized section label.
type field int

const (
	fieldSubject field = iota
	fieldGradeLevel
	fieldConcepts
	fieldObjectives
	fieldVocabulary
	fieldPriorKnowledge
	fieldRealWorld
)

// listFields marks which fields collect one entry per line. Scalar fields
// keep the section text as a single string.
var listFields = map[field]bool{
	fieldConcepts:       true,
	fieldObjectives:     true,
	fieldVocabulary:     true,
	fieldPriorKnowledge: true,
	fieldRealWorld:      true,
}

// sectionLabels is the fixed label vocabulary, matched case-insensitively
// against the text before a colon. Both "Topic" and "Subject" feed the
// subject field.
var sectionLabels = map[string]field{
	"topic":                  fieldSubject,
	"subject":                fieldSubject,
	"grade level":            fieldGradeLevel,
	"grade":                  fieldGradeLevel,
	"key concepts":           fieldConcepts,
	"concepts":               fieldConcepts,
	"learning objectives":    fieldObjectives,
	"objectives":             fieldObjectives,
	"vocabulary":             fieldVocabulary,
	"vocab":                  fieldVocabulary,
	"prior knowledge":        fieldPriorKnowledge,
	"prerequisites":          fieldPriorKnowledge,
	"real-world connections": fieldRealWorld,
	"real world connections": fieldRealWorld,
}

// bulletMarkerPattern strips leading bullet markers and list numbering
// ("- ", "* ", "• ", "1. ", "2) ") from a list entry.
var bulletMarkerPattern = regexp.MustCompile(`^[\s\-•*]+|^\d+[.)]\s*`)

// gradePatterns match explicit grade mentions inside a grade-level section,
// e.g. "Grade 7", "7th grade", "level: 7".
var gradePatterns = []*regexp.Regexp{
	regexp.MustCompile(`grade\s*(\d+)`),
	regexp.MustCompile(`(\d+)(?:st|nd|rd|th)\s+grade`),
	regexp.MustCompile(`level[:\s]+(\d+)`),
}

// Extract parses a notes document into a Profile. It scans line by line for
// recognized section labels and collects the content that follows each label
// until the next label or end of input. Text outside any recognized section
// is ignored. A duplicate label appends for list fields and overwrites for
// scalar fields. Extract never fails; unrecognizable input yields an empty
// Profile.
func Extract(text string) types.Profile {
	var p types.Profile

	scalars := make(map[field][]string)

	current := field(-1)
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		if f, rest, ok := matchLabel(line); ok {
			current = f
			inSection = true
			if !listFields[f] {
				// Scalar sections overwrite on a repeated label.
				scalars[f] = nil
			}
			if rest != "" {
				collect(&p, scalars, f, rest)
			}
			continue
		}

		if !inSection {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		collect(&p, scalars, current, trimmed)
	}

	p.Subject = strings.Join(scalars[fieldSubject], "\n")
	p.GradeLevel = normalizeGradeLevel(strings.Join(scalars[fieldGradeLevel], "\n"))

	return p
}

// matchLabel reports whether the line opens a recognized section. It returns
// the destination field and any content following the colon on the same line.
func matchLabel(line string) (field, string, bool) {
	before, after, found := strings.Cut(line, ":")
	if !found {
		return 0, "", false
	}
	label := strings.ToLower(strings.TrimSpace(before))
	f, ok := sectionLabels[label]
	if !ok {
		return 0, "", false
	}
	return f, strings.TrimSpace(after), true
}

// collect routes one piece of section content into the profile under
// construction. List fields get one entry per line with bullet markers
// stripped; vocabulary lines are additionally split on commas and
// semicolons; scalar fields accumulate lines for later joining.
func collect(p *types.Profile, scalars map[field][]string, f field, content string) {
	if !listFields[f] {
		scalars[f] = append(scalars[f], content)
		return
	}

	entry := strings.TrimSpace(bulletMarkerPattern.ReplaceAllString(content, ""))
	if entry == "" {
		return
	}

	switch f {
	case fieldConcepts:
		p.Concepts = append(p.Concepts, entry)
	case fieldObjectives:
		p.Objectives = append(p.Objectives, entry)
	case fieldVocabulary:
		p.Vocabulary = append(p.Vocabulary, splitTerms(entry)...)
	case fieldPriorKnowledge:
		p.PriorKnowledge = append(p.PriorKnowledge, entry)
	case fieldRealWorld:
		p.RealWorldConnections = append(p.RealWorldConnections, entry)
	}
}

// splitTerms breaks an inline vocabulary list on commas and semicolons.
func splitTerms(s string) []string {
	var terms []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		if t := strings.TrimSpace(part); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// normalizeGradeLevel rewrites an explicit grade mention as "Grade N". Values
// without a recognizable grade number pass through unchanged.
func normalizeGradeLevel(value string) string {
	if value == "" {
		return ""
	}
	lower := strings.ToLower(value)
	for _, pat := range gradePatterns {
		if m := pat.FindStringSubmatch(lower); m != nil {
			return "Grade " + m[1]
		}
	}
	return value
}
