// Copyright Brightwork Labs Inc., 2026. All rights reserved.

package crew

import (
	"fmt"
	"strings"

	"github.com/lessoncrew/lessoncrew/internal/analysis"
	"github.com/lessoncrew/lessoncrew/pkg/types"
)

// Tool is a callable the orchestrator can hand to an agent. Run takes the
// raw notes text and returns a formatted analysis block for prompt
// construction. Tools are pure: same input, same output, no side effects.
type Tool interface {
	// Name is the registry key agents bind to.
	Name() string

	// Description tells the orchestrator when the tool is useful.
	Description() string

	// Run executes the tool against the given notes text.
	Run(notes string) (string, error)
}

// registry holds the built-in tools by name.
var registry = map[string]Tool{
	NotesAnalyzer{}.Name():      NotesAnalyzer{},
	GradeLevelAnalyzer{}.Name(): GradeLevelAnalyzer{},
}

// Lookup returns the named tool, or false when no such tool is registered.
func Lookup(name string) (Tool, bool) {
	t, ok := registry[name]
	return t, ok
}

// Registered reports whether a tool name is known to the registry.
func Registered(name string) bool {
	_, ok := registry[name]
	return ok
}

// RunTools executes every tool some agent in the spec is bound to against
// the notes text and returns the rendered outputs by tool name. The spec is
// assumed validated, so every referenced tool resolves.
func RunTools(spec types.CrewSpec, notes string) (map[string]string, error) {
	outputs := make(map[string]string)
	for _, agent := range spec.Agents {
		for _, name := range agent.Tools {
			if _, done := outputs[name]; done {
				continue
			}
			tool, ok := registry[name]
			if !ok {
				return nil, fmt.Errorf("agent %q references unknown tool %q", agent.Name, name)
			}
			out, err := tool.Run(notes)
			if err != nil {
				return nil, fmt.Errorf("running tool %q: %w", name, err)
			}
			outputs[name] = out
		}
	}
	return outputs, nil
}

// Names returns the registered tool names in unspecified order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}

// NotesAnalyzer extracts structured fields and content statistics from
// teaching notes and renders them as a readable analysis block.
type NotesAnalyzer struct{}

func (NotesAnalyzer) Name() string { return "notes_analyzer" }

func (NotesAnalyzer) Description() string {
	return "Analyzes teaching notes to extract subject area, grade level, key concepts, " +
		"learning objectives, vocabulary terms, prior knowledge, and real-world connections. " +
		"Useful for understanding the scope of the lesson content before creating detailed plans."
}

// Run renders the extraction result. It never returns an error; the error
// slot exists to satisfy the Tool contract the orchestrator expects.
func (NotesAnalyzer) Run(notes string) (string, error) {
	profile := analysis.Extract(notes)
	stats := analysis.Stats(notes)

	var b strings.Builder
	b.WriteString("=== TEACHING NOTES ANALYSIS ===\n\n")
	fmt.Fprintf(&b, "Subject Area: %s\n", orUnknown(profile.Subject))
	fmt.Fprintf(&b, "Grade Level: %s\n\n", orUnknown(profile.GradeLevel))

	writeList(&b, "Key Concepts", profile.Concepts)
	writeList(&b, "Learning Objectives", profile.Objectives)
	if len(profile.Vocabulary) > 0 {
		fmt.Fprintf(&b, "Vocabulary Terms: %s\n\n", strings.Join(profile.Vocabulary, ", "))
	}
	writeList(&b, "Prior Knowledge Required", profile.PriorKnowledge)
	writeList(&b, "Real-World Connections", profile.RealWorldConnections)

	b.WriteString("Content Statistics:\n")
	fmt.Fprintf(&b, "  - Total Words: %d\n", stats.Words)
	fmt.Fprintf(&b, "  - Total Lines: %d\n", stats.Lines)
	fmt.Fprintf(&b, "  - Has Objectives: %t\n", stats.HasObjectives)
	fmt.Fprintf(&b, "  - Has Vocabulary: %t\n", stats.HasVocabulary)

	return b.String(), nil
}

// GradeLevelAnalyzer estimates text complexity and renders the suggested
// grade band with the metrics behind it.
type GradeLevelAnalyzer struct{}

func (GradeLevelAnalyzer) Name() string { return "grade_level_analyzer" }

func (GradeLevelAnalyzer) Description() string {
	return "Analyzes text complexity and suggests an appropriate grade band. " +
		"Useful for ensuring content matches student readiness."
}

func (GradeLevelAnalyzer) Run(notes string) (string, error) {
	m := analysis.Estimate(notes)

	var b strings.Builder
	b.WriteString("Content Complexity Analysis:\n")
	fmt.Fprintf(&b, "  - Suggested Grade Band: %s\n", m.SuggestedBand)
	fmt.Fprintf(&b, "  - Average Word Length: %.1f characters\n", m.AvgWordLength)
	fmt.Fprintf(&b, "  - Average Sentence Length: %.1f words\n", m.AvgSentenceLength)
	fmt.Fprintf(&b, "  - Vocabulary Complexity: %.2f\n", m.VocabularyComplexity)

	return b.String(), nil
}

// orUnknown substitutes a placeholder for empty extracted fields in the
// rendered block, without ever writing it back into the Profile record.
func orUnknown(s string) string {
	if s == "" {
		return "Not Specified"
	}
	return s
}

// writeList renders a named bullet list, omitting the section when empty.
func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
	b.WriteString("\n")
}
