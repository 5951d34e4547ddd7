package service

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Model output format compliance is probabilistic: a model asked for a JSON
// array sometimes returns fenced JSON, a naked quoted list, a numbered list,
// or plain prose. ParseCandidates runs a cascade of extraction strategies
// from most to least structured and never fails; the worst case is the whole
// trimmed input as a single candidate.

const minCandidateLen = 8

var (
	fenceRe         = regexp.MustCompile("(?i)```(?:json)?")
	quoteSplitRe    = regexp.MustCompile(`"\s*,\s*"`)
	listMarkerRe    = regexp.MustCompile(`(?mi)^\s*(?:\d+[.)]\s+|[-*•]\s+|(?:option|variation)\s+\d+[:.)]?\s*)`)
	paragraphRe     = regexp.MustCompile(`\n\s*\n`)
	preamblePhrases = []string{"here are", "berikut adalah", "sure!"}
)

func ParseCandidates(raw string) []string {
	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))

	if items, ok := parseJSONArray(cleaned); ok {
		return items
	}
	if items, ok := parseRepairedJSONArray(cleaned); ok {
		return items
	}
	if items, ok := splitQuotedList(cleaned); ok {
		return items
	}
	if items, ok := splitListMarkers(cleaned); ok {
		return items
	}
	if items, ok := splitParagraphs(cleaned); ok {
		return items
	}
	return []string{strings.TrimSpace(raw)}
}

// parseJSONArray takes the substring between the first '[' and the last ']'
// and accepts it only if it strictly parses as a JSON array.
func parseJSONArray(text string) ([]string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || start >= end {
		return nil, false
	}
	return unmarshalArray(text[start : end+1])
}

// parseRepairedJSONArray retries after escaping bare newlines, which models
// frequently leave inside string literals. Newlines immediately followed by
// a structural character are real formatting and stay untouched.
func parseRepairedJSONArray(text string) ([]string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || start >= end {
		return nil, false
	}
	return unmarshalArray(escapeBareNewlines(text[start : end+1]))
}

func escapeBareNewlines(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' {
			b.WriteByte(s[i])
			continue
		}
		rest := strings.TrimLeft(s[i+1:], " \t")
		if len(rest) > 0 && (rest[0] == '"' || rest[0] == '}' || rest[0] == ']') {
			b.WriteByte('\n')
		} else {
			b.WriteString(`\n`)
		}
	}
	return b.String()
}

func unmarshalArray(candidate string) ([]string, bool) {
	var parsed []interface{}
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, false
	}
	items := make([]string, 0, len(parsed))
	for _, v := range parsed {
		switch t := v.(type) {
		case string:
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				items = append(items, trimmed)
			}
		default:
			encoded, err := json.Marshal(v)
			if err == nil {
				items = append(items, string(encoded))
			}
		}
	}
	if len(items) == 0 {
		return nil, false
	}
	return items, true
}

// splitQuotedList handles a naked comma-separated list of quoted strings,
// i.e. JSON array contents without the brackets.
func splitQuotedList(text string) ([]string, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.Contains(trimmed, `", "`) && !strings.HasPrefix(trimmed, `"`) {
		return nil, false
	}
	parts := quoteSplitRe.Split(trimmed, -1)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "\"[] \t\n\r")
		if p != "" {
			items = append(items, p)
		}
	}
	if len(items) <= 1 {
		return nil, false
	}
	return items, true
}

// splitListMarkers splits on numbered/bulleted list markers at line starts
// ("1.", "2)", "-", "*", "•", "Option 2", "Variation 3").
func splitListMarkers(text string) ([]string, bool) {
	parts := listMarkerRe.Split(text, -1)
	items := filterCandidates(parts)
	if len(items) <= 1 {
		return nil, false
	}
	return items, true
}

func splitParagraphs(text string) ([]string, bool) {
	parts := paragraphRe.Split(text, -1)
	items := filterCandidates(parts)
	if len(items) <= 1 {
		return nil, false
	}
	return items, true
}

// filterCandidates drops fragments that are too short to be real content and
// preamble lines the model was told to omit but emitted anyway.
func filterCandidates(parts []string) []string {
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) < minCandidateLen {
			continue
		}
		if isPreamble(p) {
			continue
		}
		items = append(items, p)
	}
	return items
}

func isPreamble(s string) bool {
	lowered := strings.ToLower(s)
	for _, phrase := range preamblePhrases {
		if strings.HasPrefix(lowered, phrase) {
			return true
		}
	}
	return strings.Contains(lowered, "linkedin post")
}

// FirstCandidate is a convenience for stages that only want one result.
// ParseCandidates always returns at least one element.
func FirstCandidate(raw string) string {
	return ParseCandidates(raw)[0]
}
