package interpreter

import (
	"strings"
)

// Intent is the classified action category for an utterance.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentSchedule
	IntentCancel
	IntentAnnotate
	IntentList
)

func (i Intent) String() string {
	switch i {
	case IntentSchedule:
		return "schedule"
	case IntentCancel:
		return "cancel"
	case IntentAnnotate:
		return "annotate"
	case IntentList:
		return "list"
	default:
		return "unknown"
	}
}

// intentRule pairs a keyword set with the intent it selects.
type intentRule struct {
	intent   Intent
	keywords []string
}

// intentRules are evaluated top to bottom; the first matching rule wins.
// "schedule" appears in both the Schedule and List rules, and Schedule
// sits first, so "show my schedule" classifies as Schedule rather than
// List. The List keywords only get a chance on utterances like "show my
// meetings". Reordering these rules changes observable routing.
var intentRules = []intentRule{
	{IntentSchedule, []string{"schedule", "book", "set up"}},
	{IntentCancel, []string{"cancel", "delete"}},
	{IntentAnnotate, []string{"note", "remind", "add"}},
	{IntentList, []string{"schedule", "show", "list", "what"}},
}

// ClassifyIntent routes an utterance to an intent by keyword matching.
func ClassifyIntent(utterance string) Intent {
	lower := strings.ToLower(utterance)
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.intent
			}
		}
	}
	return IntentUnknown
}
