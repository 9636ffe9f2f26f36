package interpreter

import (
	"fmt"
	"strings"

	"github.com/hrygo/meetingmate/store"
)

// Fixed reply texts. These are part of the observable contract; tests
// assert on them.
const (
	replyScheduleClarify = "I'd be happy to schedule that meeting! Could you please specify when? For example: 'tomorrow at 10am' or 'Friday at 2pm'"
	replyScheduleFailed  = "Sorry, I couldn't schedule that meeting. Please try again."

	replyCancelClarify = "I'd be happy to cancel that meeting! Could you tell me which meeting? For example: 'cancel my meeting with Sarah' or 'cancel Friday's meeting'"
	replyCancelFailed  = "Sorry, I couldn't cancel that meeting. Please try again."

	replyAnnotateClarify = "I'd be happy to add a note! Could you tell me which meeting and what note? For example: 'Add a note to my meeting with Sarah: Ask about the budget'"
	replyAnnotateFailed  = "Sorry, I couldn't add that note. Please try again."

	replyNoMeetings     = "You don't have any meetings scheduled yet."
	replyListEmpty      = "You don't have any meetings scheduled yet. Would you like to schedule one?"
	replyListHeader     = "📅 Here's your schedule:\n\n"
	replyNoMatchHeader  = "I couldn't find that exact meeting. Here are your current meetings:\n\n"
	replyNoMatchFooter  = "\nTry being more specific, like 'cancel my meeting with [name]' or 'cancel [day]'s meeting'"

	replyHelp = "I'm not sure what you'd like me to do. I can help you:\n" +
		"• Schedule meetings (e.g., 'Schedule a call with Sarah tomorrow at 2pm')\n" +
		"• Cancel meetings (e.g., 'Cancel my meeting with John')\n" +
		"• Add notes (e.g., 'Add a note to my meeting with Sarah: Ask about the budget')\n" +
		"• Show your schedule (e.g., 'Show my schedule')\n\n" +
		"💡 Tip: I automatically add basic notes when you schedule meetings!"
)

// renderMeetingLine renders one meeting as a bulleted line.
func renderMeetingLine(meeting *store.Meeting) string {
	var b strings.Builder
	b.WriteString("• ")
	b.WriteString(meeting.Title)
	if meeting.Attendee != "" {
		b.WriteString(" with ")
		b.WriteString(meeting.Attendee)
	}
	b.WriteString(" - ")
	b.WriteString(meeting.DateTime)
	return b.String()
}

// renderSchedule renders the full listing, preserving snapshot order.
func renderSchedule(snapshot []*store.Meeting) string {
	var b strings.Builder
	b.WriteString(replyListHeader)
	for _, meeting := range snapshot {
		b.WriteString(renderMeetingLine(meeting))
		if meeting.Notes != "" {
			b.WriteString("\n  📝 Note: ")
			b.WriteString(meeting.Notes)
		}
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String())
}

// renderNoMatch renders the disambiguation listing used when resolution fails.
func renderNoMatch(snapshot []*store.Meeting) string {
	var b strings.Builder
	b.WriteString(replyNoMatchHeader)
	for _, meeting := range snapshot {
		b.WriteString(renderMeetingLine(meeting))
		b.WriteString("\n")
	}
	b.WriteString(replyNoMatchFooter)
	return b.String()
}

// synthesizedNote is the placeholder note composed when a meeting is
// scheduled with an attendee but no explicit note.
func synthesizedNote(attendee string) string {
	return fmt.Sprintf("Meeting with %s", attendee)
}
