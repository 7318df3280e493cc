package extractor

import (
	"regexp"
	"strings"
)

// Rule is one entry of a cascade. The candidate value is built by Value from
// the submatches of Pattern; when Value is nil the first capture group is used.
// Accept, when set, is a field-specific validator run after the capture filter.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Value   func(groups []string) string
	Accept  func(v string) bool
}

// Cascade is an ordered list of rules for one field, most specific first.
// Order is load-bearing: a combination pattern must precede its parts.
type Cascade struct {
	Field string
	Rules []Rule
}

// Match records which rule produced which value.
type Match struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Value string `json:"value"`
}

// Rejection records a capture that matched a rule but failed the sanity filter.
type Rejection struct {
	Field  string `json:"field"`
	Rule   string `json:"rule"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// CaptureFilter rejects captures that swallowed neighbouring text.
type CaptureFilter struct {
	MaxLength int
}

const DefaultMaxCaptureLength = 50

// Check returns a non-empty reason when v must be treated as a mismatch.
func (f CaptureFilter) Check(v string) string {
	switch {
	case strings.TrimSpace(v) == "":
		return "empty"
	case strings.ContainsAny(v, "\n\r"):
		return "newline"
	case strings.ContainsAny(v, "$€£"):
		return "currency symbol"
	case strings.Contains(v, "*"):
		return "asterisk"
	}
	limit := f.MaxLength
	if limit <= 0 {
		limit = DefaultMaxCaptureLength
	}
	if len([]rune(v)) > limit {
		return "too long"
	}
	return ""
}

// First evaluates the cascade against text and returns the first accepted
// capture. Corrupted captures are reported and the cascade moves on to the
// next rule.
func (c Cascade) First(text string, filter CaptureFilter) (Match, []Rejection, bool) {
	var rejected []Rejection
	for _, r := range c.Rules {
		groups := r.Pattern.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		var v string
		if r.Value != nil {
			v = r.Value(groups)
		} else if len(groups) > 1 {
			v = groups[1]
		}
		v = clean(v)
		reason := filter.Check(v)
		if reason == "" && r.Accept != nil && !r.Accept(v) {
			reason = "validator"
		}
		if reason != "" {
			rejected = append(rejected, Rejection{Field: c.Field, Rule: r.Name, Value: v, Reason: reason})
			continue
		}
		return Match{Field: c.Field, Rule: r.Name, Value: v}, rejected, true
	}
	return Match{}, rejected, false
}

// clean trims whitespace, surrounding quotes and trailing punctuation. It
// deliberately leaves '*', '$' and newlines in place so the filter can see them.
func clean(v string) string {
	v = strings.TrimRight(strings.Trim(v, " \t"), " \t.,;:")
	return strings.Trim(v, " \t\"'`")
}

func joinGroups(sep string) func([]string) string {
	return func(g []string) string {
		parts := make([]string, 0, len(g)-1)
		for _, s := range g[1:] {
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, sep)
	}
}

func constant(v string) func([]string) string {
	return func([]string) string { return v }
}
