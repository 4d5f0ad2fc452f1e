// Copyright Brightwork Labs Inc., 2026. All rights reserved.

package crew

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lessoncrew/lessoncrew/pkg/types"
)

const sampleNotes = `Topic: Introduction to Fractions
Grade Level: 4th Grade Mathematics
Key Concepts:
- Numerator and denominator
- Parts of a whole
Vocabulary: numerator, denominator
`

func TestRegistry(t *testing.T) {
	assert.True(t, Registered("notes_analyzer"))
	assert.True(t, Registered("grade_level_analyzer"))
	assert.False(t, Registered("web_search"))

	tool, ok := Lookup("notes_analyzer")
	require.True(t, ok)
	assert.Equal(t, "notes_analyzer", tool.Name())
	assert.NotEmpty(t, tool.Description())

	assert.Len(t, Names(), 2)
}

func TestNotesAnalyzerRun(t *testing.T) {
	out, err := NotesAnalyzer{}.Run(sampleNotes)
	require.NoError(t, err)

	assert.Contains(t, out, "Subject Area: Introduction to Fractions")
	assert.Contains(t, out, "Grade Level: Grade 4")
	assert.Contains(t, out, "Numerator and denominator")
	assert.Contains(t, out, "Vocabulary Terms: numerator, denominator")
	assert.Contains(t, out, "Total Words:")
}

func TestNotesAnalyzerRunEmpty(t *testing.T) {
	out, err := NotesAnalyzer{}.Run("")
	require.NoError(t, err)

	assert.Contains(t, out, "Subject Area: Not Specified")
	assert.Contains(t, out, "Grade Level: Not Specified")
	assert.NotContains(t, out, "Key Concepts:")
}

func TestGradeLevelAnalyzerRun(t *testing.T) {
	out, err := GradeLevelAnalyzer{}.Run("The cat sat. The dog ran.")
	require.NoError(t, err)

	assert.Contains(t, out, "Suggested Grade Band: Elementary")
	assert.Contains(t, out, "Average Word Length:")

	out, err = GradeLevelAnalyzer{}.Run("")
	require.NoError(t, err)
	assert.Contains(t, out, "Suggested Grade Band: Elementary")
}

func TestRunTools(t *testing.T) {
	spec, err := Load(types.CrewConfig{})
	require.NoError(t, err)

	outputs, err := RunTools(spec, sampleNotes)
	require.NoError(t, err)

	// The default crew binds both tools, once each despite two agents
	// sharing notes_analyzer.
	require.Len(t, outputs, 2)
	assert.Contains(t, outputs["notes_analyzer"], "TEACHING NOTES ANALYSIS")
	assert.Contains(t, outputs["grade_level_analyzer"], "Content Complexity Analysis")
}

func TestRunToolsUnknownTool(t *testing.T) {
	spec := types.CrewSpec{
		Agents: []types.AgentSpec{{Name: "a", Role: "r", Goal: "g", Tools: []string{"ghost"}}},
	}
	_, err := RunTools(spec, "notes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")
}

func TestToolsDeterministic(t *testing.T) {
	first, err := NotesAnalyzer{}.Run(sampleNotes)
	require.NoError(t, err)
	second, err := NotesAnalyzer{}.Run(sampleNotes)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
