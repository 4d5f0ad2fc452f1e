// Copyright Brightwork Labs Inc., 2026. All rights reserved.

package analysis

import (
	"reflect"
	"testing"

	"github.com/lessoncrew/lessoncrew/pkg/types"
)

func TestExtractEmpty(t *testing.T) {
	p := Extract("")
	if !reflect.DeepEqual(p, types.Profile{}) {
		t.Errorf("Extract(\"\") = %+v, want empty profile", p)
	}
}

func TestExtractSections(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.Profile
	}{
		{
			name: "scalar sections do not cross-contaminate",
			text: "Topic: X\nGrade Level: 5\n",
			want: types.Profile{Subject: "X", GradeLevel: "5"},
		},
		{
			name: "bullet list splits per bullet",
			text: "Key Concepts:\n- A\n- B\n",
			want: types.Profile{Concepts: []string{"A", "B"}},
		},
		{
			name: "mixed bullet markers",
			text: "Learning Objectives:\n- First\n* Second\n• Third\n1. Fourth\n2) Fifth\n",
			want: types.Profile{Objectives: []string{"First", "Second", "Third", "Fourth", "Fifth"}},
		},
		{
			name: "section ends at next label",
			text: "Key Concepts:\n- A\nPrior Knowledge:\n- B\n",
			want: types.Profile{Concepts: []string{"A"}, PriorKnowledge: []string{"B"}},
		},
		{
			name: "free text outside sections is ignored",
			text: "Some preamble.\n\nTopic: Fractions\n",
			want: types.Profile{Subject: "Fractions"},
		},
		{
			name: "label with no content yields empty field",
			text: "Key Concepts:\nTopic: Cells\n",
			want: types.Profile{Subject: "Cells"},
		},
		{
			name: "labels match case-insensitively",
			text: "TOPIC: Water Cycle\nkey concepts:\n- Evaporation\n",
			want: types.Profile{Subject: "Water Cycle", Concepts: []string{"Evaporation"}},
		},
		{
			name: "vocabulary splits on commas and semicolons",
			text: "Vocabulary: numerator, denominator; fraction\n",
			want: types.Profile{Vocabulary: []string{"numerator", "denominator", "fraction"}},
		},
		{
			name: "real-world connections with and without hyphen",
			text: "Real-World Connections:\n- Agriculture\nReal World Connections:\n- Climate\n",
			want: types.Profile{RealWorldConnections: []string{"Agriculture", "Climate"}},
		},
		{
			name: "duplicate scalar label overwrites",
			text: "Topic: Old\nTopic: New\n",
			want: types.Profile{Subject: "New"},
		},
		{
			name: "duplicate list label appends",
			text: "Key Concepts:\n- A\nTopic: X\nKey Concepts:\n- B\n",
			want: types.Profile{Subject: "X", Concepts: []string{"A", "B"}},
		},
		{
			name: "list lines without bullets still become entries",
			text: "Prior Knowledge:\nBasic cell structure\nChemical equations\n",
			want: types.Profile{PriorKnowledge: []string{"Basic cell structure", "Chemical equations"}},
		},
		{
			name: "blank lines inside a section are skipped",
			text: "Key Concepts:\n- A\n\n- B\n",
			want: types.Profile{Concepts: []string{"A", "B"}},
		},
		{
			name: "unrecognized colon line does not open a section",
			text: "Homework: read chapter 3\nTopic: Energy\n",
			want: types.Profile{Subject: "Energy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeGradeLevel(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"7th Grade Life Science", "Grade 7"},
		{"Grade 4 Mathematics", "Grade 4"},
		{"grade12", "Grade 12"},
		{"5", "5"},
		{"K-5 (Elementary)", "K-5 (Elementary)"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := normalizeGradeLevel(tt.value); got != tt.want {
				t.Errorf("normalizeGradeLevel(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	text := "Topic: Photosynthesis\nKey Concepts:\n- Light energy\n- Chlorophyll\nVocabulary: stroma, thylakoid\n"
	first := Extract(text)
	second := Extract(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract is not idempotent: %+v != %+v", first, second)
	}
}

func TestExtractFullDocument(t *testing.T) {
	text := `Topic: Introduction to Photosynthesis

Grade Level: 7th Grade Life Science

Key Concepts:
- Photosynthesis converts light energy into chemical energy
- Takes place in chloroplasts

Learning Objectives:
- Students will explain the process of photosynthesis
- Students will identify the reactants and products

Prior Knowledge:
- Basic cell structure
- Chemical equations basics

Real-World Connections:
- Food production and agriculture
- Oxygen in Earth's atmosphere
`

	got := Extract(text)

	if got.Subject != "Introduction to Photosynthesis" {
		t.Errorf("Subject = %q", got.Subject)
	}
	if got.GradeLevel != "Grade 7" {
		t.Errorf("GradeLevel = %q", got.GradeLevel)
	}
	if len(got.Concepts) != 2 || len(got.Objectives) != 2 || len(got.PriorKnowledge) != 2 || len(got.RealWorldConnections) != 2 {
		t.Errorf("unexpected list lengths: %+v", got)
	}
}
