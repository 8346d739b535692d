// Package heuristic holds the pure text functions the intake dialogue runs on every turn.
// None of them keep state or do I/O, and none of them panic on arbitrary input.
package heuristic

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"university-assistant/internal/intake"
)

var (
	nonAlnumRe     = regexp.MustCompile(`[^a-z0-9\s]`)
	queryPrefixRe  = regexp.MustCompile(`(?i)^\s*(my\s+query\s+is|query\s+is|question\s+is)\b\s*[:\-\s]*`)
	nameMyNameIsRe = regexp.MustCompile(`(?i)my name is ([A-Za-z ]{2,50})`)
	nameIAmRe      = regexp.MustCompile(`(?i)^i am ([A-Za-z ]{2,50})`)
	nameImRe       = regexp.MustCompile(`(?i)i'm ([A-Za-z ]{2,50})`)
	yearRes        = compileYearTable()
)

func compileYearTable() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(yearTable))
	for i, yt := range yearTable {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(yt.token) + `\b`)
	}
	return res
}

// IsGreeting reports whether text is a greeting or a short acknowledgement like "ok".
func IsGreeting(text string) bool {
	t := strings.TrimSpace(nonAlnumRe.ReplaceAllString(strings.ToLower(text), ""))
	if t == "" {
		return false
	}
	if _, ok := greetings[t]; ok {
		return true
	}
	return len(strings.Fields(t)) == 1 && len(t) <= maxNoiseTokenLen
}

// IsStart reports whether text is the explicit conversation start signal.
func IsStart(text string) bool {
	return strings.TrimSpace(text) == StartSentinel
}

// StripQueryPrefix removes leading "my query is", "query is" or "question is" phrases.
// Repeated prefixes are all removed so the result is a fixed point.
func StripQueryPrefix(text string) string {
	if text == "" {
		return text
	}
	t := strings.TrimSpace(text)
	for queryPrefixRe.MatchString(t) {
		t = strings.TrimSpace(queryPrefixRe.ReplaceAllString(t, ""))
	}
	return t
}

// HasQueryPrefix reports whether text starts with one of the query prefixes.
func HasQueryPrefix(text string) bool {
	return queryPrefixRe.MatchString(text)
}

// ExtractYear finds the academic year mentioned in text.
func ExtractYear(text string) (intake.Year, bool) {
	t := strings.ToLower(text)
	for i, re := range yearRes {
		if re.MatchString(t) {
			return yearTable[i].year, true
		}
	}
	return "", false
}

// ExtractName finds a self-introduced name in text.
func ExtractName(text string) (string, bool) {
	for _, re := range []*regexp.Regexp{nameMyNameIsRe, nameIAmRe, nameImRe} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if name := strings.TrimSpace(m[1]); name != "" {
			return name, true
		}
	}
	return "", false
}

// RouteUnit picks the unit for a query by keyword, defaulting to academic support.
func RouteUnit(text string) intake.Unit {
	if unit, ok := matchUnit(text); ok {
		return unit
	}
	return DefaultUnit
}

func matchUnit(text string) (intake.Unit, bool) {
	t := strings.ToLower(text)
	for _, uk := range unitTable {
		if strings.Contains(t, uk.keyword) {
			return uk.unit, true
		}
	}
	return "", false
}

// LooksLikeQuery reports whether text reads like an actual question rather than a fragment.
func LooksLikeQuery(text string) bool {
	t := strings.TrimSpace(text)
	if utf8.RuneCountInString(t) > minQueryLen || strings.Contains(t, "?") {
		return true
	}
	low := strings.ToLower(t)
	for _, kw := range queryKeywords {
		if strings.Contains(low, kw) {
			return true
		}
	}
	return false
}

// ClassifyFreeText recovers a unit and tone from unstructured model output.
// It reports false when no routing keyword appears.
func ClassifyFreeText(text string) (intake.Classification, bool) {
	unit, ok := matchUnit(text)
	if !ok {
		return intake.Classification{}, false
	}
	tone := intake.ToneNormal
	low := strings.ToLower(text)
	for _, w := range urgentWords {
		if strings.Contains(low, w) {
			tone = intake.ToneUrgent
			break
		}
	}
	return intake.Classification{Unit: unit, Tone: tone}, true
}
