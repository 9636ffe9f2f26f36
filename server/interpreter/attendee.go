package interpreter

import (
	"regexp"
)

// Attendee extraction patterns, tried in order. Only single-token names
// are supported; the capture is a maximal run of letters.
var (
	withPattern    = regexp.MustCompile(`(?i)(?:with|call with)\s+([A-Za-z]+)`)
	meetingPattern = regexp.MustCompile(`(?i)(?:meeting with|call with|talk to)\s+([A-Za-z]+)`)
)

// ExtractAttendee pulls an attendee name out of the utterance.
func ExtractAttendee(utterance string) (string, bool) {
	if matches := withPattern.FindStringSubmatch(utterance); matches != nil {
		return matches[1], true
	}
	if matches := meetingPattern.FindStringSubmatch(utterance); matches != nil {
		return matches[1], true
	}
	return "", false
}
