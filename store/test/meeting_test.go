package test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/meetingmate/internal/util"
	"github.com/hrygo/meetingmate/store"
)

func TestMeetingStore(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	created, err := ts.CreateMeeting(ctx, &store.Meeting{
		UID:      util.GenUUID(),
		DateTime: "2024-01-02 14:00",
		Attendee: "Sarah",
		Notes:    "Meeting with Sarah",
		Title:    "Meeting with Sarah",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)
	assert.NotZero(t, created.CreatedTs)
	assert.Equal(t, "2024-01-02 14:00", created.DateTime)

	found, err := ts.GetMeeting(ctx, &store.FindMeeting{ID: &created.ID})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.UID, found.UID)
	assert.Equal(t, "Sarah", found.Attendee)
	assert.Equal(t, "Meeting with Sarah", found.Notes)

	notes := "Meeting with Sarah. bring snacks"
	updated, err := ts.UpdateMeeting(ctx, &store.UpdateMeeting{
		ID:    created.ID,
		Notes: &notes,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, notes, updated.Notes)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Sarah", updated.Attendee)
	assert.Equal(t, "2024-01-02 14:00", updated.DateTime)

	err = ts.DeleteMeeting(ctx, &store.DeleteMeeting{ID: created.ID})
	require.NoError(t, err)

	found, err = ts.GetMeeting(ctx, &store.FindMeeting{ID: &created.ID})
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMeetingStore_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	dateTimes := []string{"2024-03-01 10:00", "2024-01-01 10:00", "2024-02-01 10:00"}
	for _, dateTime := range dateTimes {
		_, err := ts.CreateMeeting(ctx, &store.Meeting{
			UID:      util.GenUUID(),
			DateTime: dateTime,
			Title:    "Meeting",
		})
		require.NoError(t, err)
	}

	list, err := ts.ListMeetings(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Listing returns creation order, not chronological order.
	for i, meeting := range list {
		assert.Equal(t, dateTimes[i], meeting.DateTime)
	}
}

func TestMeetingStore_ListCache(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	first, err := ts.CreateMeeting(ctx, &store.Meeting{
		UID:      util.GenUUID(),
		DateTime: "2024-01-02 10:00",
		Title:    "Meeting",
	})
	require.NoError(t, err)

	list, err := ts.ListMeetings(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)

	// A mutation must invalidate the cached listing.
	err = ts.DeleteMeeting(ctx, &store.DeleteMeeting{ID: first.ID})
	require.NoError(t, err)

	list, err = ts.ListMeetings(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMeetingStore_FindByUID(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	uid := util.GenUUID()
	_, err := ts.CreateMeeting(ctx, &store.Meeting{
		UID:      uid,
		DateTime: "2024-01-02 10:00",
		Title:    "Meeting",
	})
	require.NoError(t, err)

	found, err := ts.GetMeeting(ctx, &store.FindMeeting{UID: &uid})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, uid, found.UID)
}

func TestMeetingStore_NotFound(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	missing := "missing"
	_, err := ts.UpdateMeeting(ctx, &store.UpdateMeeting{ID: 999, Notes: &missing})
	assert.Error(t, err)

	err = ts.DeleteMeeting(ctx, &store.DeleteMeeting{ID: 999})
	assert.Error(t, err)
}
