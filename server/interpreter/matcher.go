package interpreter

import (
	"strings"

	"github.com/hrygo/meetingmate/store"
)

// MatchMeeting resolves extracted slots to a concrete record from the
// snapshot. An attendee substring match (case-insensitive) always wins
// over a date match; the date match ignores the time of day. Returns nil
// when nothing matches.
func MatchMeeting(snapshot []*store.Meeting, attendee, dateTime string) *store.Meeting {
	if attendee != "" {
		needle := strings.ToLower(attendee)
		for _, meeting := range snapshot {
			if meeting.Attendee != "" && strings.Contains(strings.ToLower(meeting.Attendee), needle) {
				return meeting
			}
		}
	}

	if dateTime != "" {
		date, _, _ := strings.Cut(dateTime, " ")
		for _, meeting := range snapshot {
			if meeting.DateTime != "" && meeting.DatePart() == date {
				return meeting
			}
		}
	}

	return nil
}
