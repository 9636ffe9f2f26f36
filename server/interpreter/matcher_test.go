package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/meetingmate/store"
)

func snapshotForMatching() []*store.Meeting {
	return []*store.Meeting{
		{ID: 1, DateTime: "2024-01-05 10:00", Attendee: "Sarah", Title: "Meeting with Sarah"},
		{ID: 2, DateTime: "2024-01-06 14:00", Attendee: "", Title: "Meeting"},
		{ID: 3, DateTime: "2024-01-06 16:00", Attendee: "John", Title: "Meeting with John"},
	}
}

func TestMatchMeeting_AttendeeWinsOverDate(t *testing.T) {
	snapshot := snapshotForMatching()

	// Record 2 matches by date, record 3 by attendee; attendee wins.
	matched := MatchMeeting(snapshot, "John", "2024-01-06 09:00")
	require.NotNil(t, matched)
	assert.Equal(t, int32(3), matched.ID)
}

func TestMatchMeeting_AttendeeSubstringCaseInsensitive(t *testing.T) {
	snapshot := snapshotForMatching()

	matched := MatchMeeting(snapshot, "sar", "")
	require.NotNil(t, matched)
	assert.Equal(t, int32(1), matched.ID)
}

func TestMatchMeeting_DateIgnoresTimeOfDay(t *testing.T) {
	snapshot := snapshotForMatching()

	matched := MatchMeeting(snapshot, "", "2024-01-06 23:00")
	require.NotNil(t, matched)
	// First record on that date in snapshot order.
	assert.Equal(t, int32(2), matched.ID)
}

func TestMatchMeeting_UnknownAttendeeFallsBackToDate(t *testing.T) {
	snapshot := snapshotForMatching()

	matched := MatchMeeting(snapshot, "Nobody", "2024-01-05 10:00")
	require.NotNil(t, matched)
	assert.Equal(t, int32(1), matched.ID)
}

func TestMatchMeeting_NoMatch(t *testing.T) {
	snapshot := snapshotForMatching()

	assert.Nil(t, MatchMeeting(snapshot, "Nobody", "2030-01-01 10:00"))
	assert.Nil(t, MatchMeeting(snapshot, "", ""))
	assert.Nil(t, MatchMeeting(nil, "Sarah", "2024-01-05 10:00"))
}
