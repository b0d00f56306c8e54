package summarizer

import (
	"regexp"
	"strings"
)

// DefaultTitle is used when no matcher finds a heading in the summary.
const DefaultTitle = "New Meeting"

// titleMatcher extracts a title from summary text, returning "" when its
// pattern does not apply.
type titleMatcher struct {
	name    string
	pattern *regexp.Regexp
}

func (m titleMatcher) match(text string) string {
	if sub := m.pattern.FindStringSubmatch(text); sub != nil {
		return strings.TrimSpace(sub[1])
	}
	return ""
}

// titleMatchers are tried in priority order; the first match wins.
// New summary formats append here without touching ExtractTitle.
var titleMatchers = []titleMatcher{
	{name: "field heading", pattern: regexp.MustCompile(`(?m)^Main Heading:[ \t]*(.+)$`)},
	{name: "markdown heading", pattern: regexp.MustCompile(`(?m)^#[ \t]+(.+)$`)},
}

// ExtractTitle derives a short title from generated summary text.
// Deterministic: only the first matching rule applies.
func ExtractTitle(summaryText string) string {
	for _, m := range titleMatchers {
		if title := m.match(summaryText); title != "" {
			return title
		}
	}
	return DefaultTitle
}
