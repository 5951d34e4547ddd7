package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidatesStrictJSONArray(t *testing.T) {
	got := ParseCandidates(`["a", "b", "c"]`)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestParseCandidatesFencedJSONArray(t *testing.T) {
	fenced := "```json\n[\"first topic\", \"second topic\"]\n```"
	unfenced := `["first topic", "second topic"]`
	assert.Equal(t, ParseCandidates(unfenced), ParseCandidates(fenced))
}

func TestParseCandidatesJSONWithProse(t *testing.T) {
	raw := `Here is the list you asked for: ["alpha post", "beta post"] hope it helps!`
	assert.Equal(t, []string{"alpha post", "beta post"}, ParseCandidates(raw))
}

func TestParseCandidatesRepairedNewlines(t *testing.T) {
	// bare newline inside a string literal breaks strict parsing
	raw := "[\"line one\nline two\", \"second item\"]"
	got := ParseCandidates(raw)
	require.Len(t, got, 2)
	assert.Equal(t, "second item", got[1])
	assert.Contains(t, got[0], "line one")
}

func TestParseCandidatesQuotedList(t *testing.T) {
	raw := `"first option", "second option", "third option"`
	assert.Equal(t, []string{"first option", "second option", "third option"}, ParseCandidates(raw))
}

func TestParseCandidatesNumberedList(t *testing.T) {
	raw := "1. First item\n2. Second item\n3. Third item"
	assert.Equal(t, []string{"First item", "Second item", "Third item"}, ParseCandidates(raw))
}

func TestParseCandidatesBulletList(t *testing.T) {
	raw := "- Alpha item here\n- Beta item there\n* Gamma item too"
	got := ParseCandidates(raw)
	assert.Equal(t, []string{"Alpha item here", "Beta item there", "Gamma item too"}, got)
}

func TestParseCandidatesOptionMarkers(t *testing.T) {
	raw := "Option 1: Lead with the failure story\nOption 2: Lead with the data point"
	got := ParseCandidates(raw)
	require.Len(t, got, 2)
	assert.Equal(t, "Lead with the failure story", got[0])
}

func TestParseCandidatesDropsPreamble(t *testing.T) {
	raw := "Here are some options:\n1. Build in public consistently\n2. Share the numbers behind a launch"
	got := ParseCandidates(raw)
	require.Len(t, got, 2)
	for _, item := range got {
		assert.NotContains(t, strings.ToLower(item), "here are")
	}
}

func TestParseCandidatesParagraphs(t *testing.T) {
	raw := "The first paragraph stands on its own.\n\nThe second paragraph does too."
	got := ParseCandidates(raw)
	assert.Equal(t, []string{
		"The first paragraph stands on its own.",
		"The second paragraph does too.",
	}, got)
}

func TestParseCandidatesSingleParagraphFallback(t *testing.T) {
	raw := "  A single unstructured answer with no recognizable delimiter anywhere.  "
	got := ParseCandidates(raw)
	require.Len(t, got, 1)
	assert.Equal(t, strings.TrimSpace(raw), got[0])
}

func TestParseCandidatesNeverEmpty(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"```json```",
		"[]",
		"[not json at all",
		"x",
		"1.",
		"\n\n\n",
		`"only one quoted thing"`,
	}
	for _, raw := range inputs {
		got := ParseCandidates(raw)
		assert.NotEmpty(t, got, "input %q", raw)
	}
}

func TestFirstCandidate(t *testing.T) {
	assert.Equal(t, "a", FirstCandidate(`["a", "b"]`))
	assert.Equal(t, "plain text", FirstCandidate("plain text"))
}
