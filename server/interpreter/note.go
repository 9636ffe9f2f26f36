package interpreter

import (
	"regexp"
	"strings"
)

// Note extraction patterns, tried in order of specificity. Explicit
// labels win over prepositional phrasings; the bare "for/about" pair is
// a last-resort catch-all.
var (
	labelPattern   = regexp.MustCompile(`(?i)(?:note|notes|remind me to|add note):\s*(.+)`)
	aboutPattern   = regexp.MustCompile(`(?i)(?:about|regarding)\s+(.+)`)
	discussPattern = regexp.MustCompile(`(?i)(?:to discuss|to talk about|discuss|talk about)\s+(.+)`)
	purposePattern = regexp.MustCompile(`(?i)(?:for|about)\s+(.+)`)
)

// ExtractNote pulls free-form note text out of the utterance.
func ExtractNote(utterance string) (string, bool) {
	for _, pattern := range []*regexp.Regexp{labelPattern, aboutPattern, discussPattern, purposePattern} {
		if matches := pattern.FindStringSubmatch(utterance); matches != nil {
			return strings.TrimSpace(matches[1]), true
		}
	}
	return "", false
}

// noteAfterColon is the last-resort note source for annotation requests:
// everything after the first colon, trimmed.
func noteAfterColon(utterance string) string {
	_, after, found := strings.Cut(utterance, ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(after)
}
