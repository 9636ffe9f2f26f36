package interpreter

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/meetingmate/store"
)

// fakeStoreClient is an in-memory StoreClient recording every call.
type fakeStoreClient struct {
	meetings []*store.Meeting
	nextID   int32
	calls    []string

	failCreate bool
	failUpdate bool
	failDelete bool
	failList   bool
}

func newFakeStoreClient(seed ...*store.Meeting) *fakeStoreClient {
	f := &fakeStoreClient{nextID: 1}
	for _, meeting := range seed {
		m := *meeting
		m.ID = f.nextID
		f.nextID++
		f.meetings = append(f.meetings, &m)
	}
	return f
}

func (f *fakeStoreClient) ListMeetings(_ context.Context) ([]*store.Meeting, error) {
	f.calls = append(f.calls, "list")
	if f.failList {
		return nil, fmt.Errorf("store unavailable")
	}
	out := make([]*store.Meeting, len(f.meetings))
	copy(out, f.meetings)
	return out, nil
}

func (f *fakeStoreClient) CreateMeeting(_ context.Context, create *store.Meeting) (*store.Meeting, error) {
	f.calls = append(f.calls, "create")
	if f.failCreate {
		return nil, fmt.Errorf("store unavailable")
	}
	m := *create
	m.ID = f.nextID
	f.nextID++
	f.meetings = append(f.meetings, &m)
	return &m, nil
}

func (f *fakeStoreClient) UpdateMeeting(_ context.Context, update *store.UpdateMeeting) (*store.Meeting, error) {
	f.calls = append(f.calls, "update")
	if f.failUpdate {
		return nil, fmt.Errorf("store unavailable")
	}
	for _, meeting := range f.meetings {
		if meeting.ID == update.ID {
			if update.DateTime != nil {
				meeting.DateTime = *update.DateTime
			}
			if update.Attendee != nil {
				meeting.Attendee = *update.Attendee
			}
			if update.Notes != nil {
				meeting.Notes = *update.Notes
			}
			if update.Title != nil {
				meeting.Title = *update.Title
			}
			return meeting, nil
		}
	}
	return nil, fmt.Errorf("meeting not found")
}

func (f *fakeStoreClient) DeleteMeeting(_ context.Context, id int32) (*store.Meeting, error) {
	f.calls = append(f.calls, "delete")
	if f.failDelete {
		return nil, fmt.Errorf("store unavailable")
	}
	for i, meeting := range f.meetings {
		if meeting.ID == id {
			f.meetings = append(f.meetings[:i], f.meetings[i+1:]...)
			return meeting, nil
		}
	}
	return nil, fmt.Errorf("meeting not found")
}

// Monday 2024-01-01, 09:00.
var testNow = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func interpretOne(t *testing.T, client *fakeStoreClient, utterance string) *Result {
	t.Helper()
	snapshot, err := client.ListMeetings(context.Background())
	require.NoError(t, err)
	client.calls = nil
	return New(nil).Interpret(context.Background(), utterance, testNow, snapshot, client)
}

func TestInterpret_ScheduleWithAttendee(t *testing.T) {
	client := newFakeStoreClient()

	result := interpretOne(t, client, "Schedule a call with Sarah tomorrow at 2pm")

	require.Len(t, client.meetings, 1)
	created := client.meetings[0]
	assert.Equal(t, "2024-01-02 14:00", created.DateTime)
	assert.Equal(t, "Sarah", created.Attendee)
	assert.Equal(t, "Meeting with Sarah", created.Notes)
	assert.Equal(t, "Meeting with Sarah", created.Title)

	assert.Contains(t, result.Reply, "I've scheduled your meeting for 2024-01-02 14:00")
	assert.Contains(t, result.Reply, "with Sarah")
	assert.Contains(t, result.Reply, `"Meeting with Sarah"`)

	// Snapshot is refetched after the mutation.
	require.Len(t, result.Snapshot, 1)
	assert.Equal(t, created.ID, result.Snapshot[0].ID)
	assert.Equal(t, []string{"create", "list"}, client.calls)
}

func TestInterpret_ScheduleExplicitNoteWins(t *testing.T) {
	client := newFakeStoreClient()

	interpretOne(t, client, "Schedule a meeting with Bob tomorrow about the roadmap")

	require.Len(t, client.meetings, 1)
	assert.Equal(t, "the roadmap", client.meetings[0].Notes)
	assert.Equal(t, "Meeting with Bob", client.meetings[0].Title)
}

func TestInterpret_ScheduleWithoutAttendee(t *testing.T) {
	client := newFakeStoreClient()

	result := interpretOne(t, client, "Book something tomorrow at 10am")

	require.Len(t, client.meetings, 1)
	assert.Equal(t, "", client.meetings[0].Attendee)
	assert.Equal(t, "", client.meetings[0].Notes)
	assert.Equal(t, "Meeting", client.meetings[0].Title)
	assert.NotContains(t, result.Reply, "Note:")
}

func TestInterpret_ScheduleNoDateClarifies(t *testing.T) {
	client := newFakeStoreClient()

	result := interpretOne(t, client, "Schedule a meeting with Sarah")

	assert.Equal(t, replyScheduleClarify, result.Reply)
	assert.Empty(t, client.calls, "no store calls on clarification")
	assert.Empty(t, client.meetings)
}

func TestInterpret_ScheduleStoreFailure(t *testing.T) {
	client := newFakeStoreClient()
	client.failCreate = true

	result := interpretOne(t, client, "Schedule a call with Sarah tomorrow at 2pm")

	assert.Equal(t, replyScheduleFailed, result.Reply)
	assert.Equal(t, []string{"create"}, client.calls, "failed create is not retried")
}

func TestInterpret_CancelByAttendeeBeatsDate(t *testing.T) {
	client := newFakeStoreClient(
		// Matches only by date (tomorrow).
		&store.Meeting{DateTime: "2024-01-02 09:00", Attendee: "", Title: "Meeting"},
		// Matches only by attendee.
		&store.Meeting{DateTime: "2024-01-20 09:00", Attendee: "Sarah", Title: "Meeting with Sarah"},
	)

	result := interpretOne(t, client, "Cancel my meeting with Sarah tomorrow")

	require.Len(t, client.meetings, 1)
	assert.Equal(t, "", client.meetings[0].Attendee, "the attendee match was deleted, not the date match")
	assert.Contains(t, result.Reply, "I've canceled your meeting with Sarah on 2024-01-20 09:00")
	require.Len(t, result.Snapshot, 1)
}

func TestInterpret_CancelByDateOnly(t *testing.T) {
	client := newFakeStoreClient(
		&store.Meeting{DateTime: "2024-01-05 10:00", Attendee: "", Title: "Meeting"},
	)

	result := interpretOne(t, client, "Cancel friday's meeting")

	assert.Empty(t, client.meetings)
	assert.Contains(t, result.Reply, "I've canceled your meeting with them on 2024-01-05 10:00")
}

func TestInterpret_CancelClarifiesWithoutSlots(t *testing.T) {
	client := newFakeStoreClient(
		&store.Meeting{DateTime: "2024-01-05 10:00", Attendee: "Sarah", Title: "Meeting with Sarah"},
	)

	result := interpretOne(t, client, "cancel it")

	assert.Equal(t, replyCancelClarify, result.Reply)
	assert.Empty(t, client.calls)
}

func TestInterpret_CancelNoMatchListsMeetings(t *testing.T) {
	client := newFakeStoreClient(
		&store.Meeting{DateTime: "2024-01-05 10:00", Attendee: "Sarah", Title: "Meeting with Sarah"},
	)

	result := interpretOne(t, client, "Cancel my meeting with Zoe")

	assert.Contains(t, result.Reply, "I couldn't find that exact meeting")
	assert.Contains(t, result.Reply, "• Meeting with Sarah with Sarah - 2024-01-05 10:00")
	assert.Len(t, client.meetings, 1, "nothing deleted")
}

func TestInterpret_CancelNoMeetingsAtAll(t *testing.T) {
	client := newFakeStoreClient()

	result := interpretOne(t, client, "Cancel my meeting with Zoe")

	assert.Equal(t, replyNoMeetings, result.Reply)
}

func TestInterpret_AnnotateAppendsToRealNotes(t *testing.T) {
	client := newFakeStoreClient(
		&store.Meeting{DateTime: "2024-01-05 10:00", Attendee: "Sarah", Notes: "Bring the deck", Title: "Meeting with Sarah"},
	)

	// No note pattern matches here, so the text after the colon is used.
	result := interpretOne(t, client, "Add to my meeting with Sarah: bring snacks")

	assert.Equal(t, "Bring the deck. bring snacks", client.meetings[0].Notes)
	assert.Contains(t, result.Reply, "added to your existing notes")
}

func TestInterpret_AnnotateReplacesSynthesizedPlaceholder(t *testing.T) {
	client := newFakeStoreClient(
		&store.Meeting{DateTime: "2024-01-05 10:00", Attendee: "Sarah", Notes: "Meeting with Sarah", Title: "Meeting with Sarah"},
	)

	result := interpretOne(t, client, "Add to my meeting with Sarah: bring snacks")

	assert.Equal(t, "bring snacks", client.meetings[0].Notes)
	assert.Contains(t, result.Reply, "added the note to your meeting with Sarah")
}

func TestInterpret_AnnotateClarifiesWithoutNote(t *testing.T) {
	client := newFakeStoreClient(
		&store.Meeting{DateTime: "2024-01-05 10:00", Attendee: "Sarah", Title: "Meeting with Sarah"},
	)

	result := interpretOne(t, client, "add a note to my meeting with Sarah")

	// "with Sarah" extracts, but no note text and no colon fallback.
	assert.Equal(t, replyAnnotateClarify, result.Reply)
	assert.Empty(t, client.calls)
}

func TestInterpret_AnnotateUnknownAttendee(t *testing.T) {
	client := newFakeStoreClient(
		&store.Meeting{DateTime: "2024-01-05 10:00", Attendee: "Sarah", Title: "Meeting with Sarah"},
	)

	result := interpretOne(t, client, "Add to my meeting with Zoe: hello")

	assert.Equal(t, "I couldn't find a meeting with Zoe. Could you check the name?", result.Reply)
	assert.Empty(t, client.calls)
}

func TestInterpret_ListEmpty(t *testing.T) {
	client := newFakeStoreClient()

	result := interpretOne(t, client, "show my meetings")

	assert.Equal(t, replyListEmpty, result.Reply)
	assert.Empty(t, client.calls, "list intent reads only the snapshot")
}

func TestInterpret_ListPreservesOrder(t *testing.T) {
	client := newFakeStoreClient(
		&store.Meeting{DateTime: "2024-01-09 10:00", Attendee: "Sarah", Notes: "Bring the deck", Title: "Meeting with Sarah"},
		&store.Meeting{DateTime: "2024-01-05 14:00", Attendee: "", Title: "Meeting"},
	)

	result := interpretOne(t, client, "show my meetings")

	first := "• Meeting with Sarah with Sarah - 2024-01-09 10:00"
	second := "• Meeting - 2024-01-05 14:00"
	assert.Contains(t, result.Reply, first)
	assert.Contains(t, result.Reply, second)
	assert.Less(t, strings.Index(result.Reply, first), strings.Index(result.Reply, second), "insertion order preserved")
	assert.Contains(t, result.Reply, "📝 Note: Bring the deck")
}

func TestInterpret_UnknownReturnsHelp(t *testing.T) {
	client := newFakeStoreClient()

	result := interpretOne(t, client, "tell me a joke")

	assert.Equal(t, replyHelp, result.Reply)
	assert.Empty(t, client.calls)
}

// Schedule then list: the created meeting shows up with the same
// dateTime/attendee/title/notes that were submitted.
func TestInterpret_ScheduleThenListRoundTrip(t *testing.T) {
	client := newFakeStoreClient()

	scheduled := interpretOne(t, client, "Schedule a call with Sarah tomorrow at 2pm")
	require.Len(t, scheduled.Snapshot, 1)

	listed := New(nil).Interpret(context.Background(), "show my meetings", testNow, scheduled.Snapshot, client)

	assert.Contains(t, listed.Reply, "• Meeting with Sarah with Sarah - 2024-01-02 14:00")
	assert.Contains(t, listed.Reply, "📝 Note: Meeting with Sarah")
}

func TestInterpret_SnapshotRefreshFailureKeepsPrevious(t *testing.T) {
	client := newFakeStoreClient(
		&store.Meeting{DateTime: "2024-01-05 10:00", Attendee: "Sarah", Title: "Meeting with Sarah"},
	)

	snapshot, err := client.ListMeetings(context.Background())
	require.NoError(t, err)

	client.failList = true
	result := New(nil).Interpret(context.Background(), "Cancel my meeting with Sarah", testNow, snapshot, client)

	assert.Contains(t, result.Reply, "I've canceled your meeting with Sarah")
	// Refetch failed; the stale snapshot is returned rather than nothing.
	assert.Len(t, result.Snapshot, 1)
}
