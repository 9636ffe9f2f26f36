package store

import (
	"context"
	"strings"
)

// DateTimeLayout is the canonical meeting time format.
const DateTimeLayout = "2006-01-02 15:04"

// Meeting is the object representing a scheduled meeting.
type Meeting struct {
	ID        int32
	UID       string
	CreatedTs int64
	UpdatedTs int64
	// DateTime is the meeting time in "2006-01-02 15:04" 24-hour form.
	DateTime string
	Attendee string
	Notes    string
	Title    string
}

// DatePart returns the date portion of DateTime.
func (m *Meeting) DatePart() string {
	date, _, _ := strings.Cut(m.DateTime, " ")
	return date
}

// FindMeeting is the find condition for meeting.
type FindMeeting struct {
	ID  *int32
	UID *string

	// Pagination
	Limit  *int
	Offset *int
}

// UpdateMeeting is the update request for meeting.
// Nil fields are left untouched.
type UpdateMeeting struct {
	ID       int32
	DateTime *string
	Attendee *string
	Notes    *string
	Title    *string
}

// DeleteMeeting is the delete request for meeting.
type DeleteMeeting struct {
	ID int32
}

// CreateMeeting creates a new meeting.
func (s *Store) CreateMeeting(ctx context.Context, create *Meeting) (*Meeting, error) {
	meeting, err := s.driver.CreateMeeting(ctx, create)
	if err != nil {
		return nil, err
	}
	s.meetingListCache.Delete(meetingListCacheKey)
	return meeting, nil
}

// ListMeetings lists meetings in insertion order.
func (s *Store) ListMeetings(ctx context.Context, find *FindMeeting) ([]*Meeting, error) {
	if cached, ok := s.meetingListCache.Get(meetingListCacheKey); ok && isPlainListFind(find) {
		return cached.([]*Meeting), nil
	}

	list, err := s.driver.ListMeetings(ctx, find)
	if err != nil {
		return nil, err
	}
	if isPlainListFind(find) {
		s.meetingListCache.Set(meetingListCacheKey, list)
	}
	return list, nil
}

// GetMeeting gets a meeting by find condition.
func (s *Store) GetMeeting(ctx context.Context, find *FindMeeting) (*Meeting, error) {
	list, err := s.driver.ListMeetings(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// UpdateMeeting updates a meeting and returns the updated record.
func (s *Store) UpdateMeeting(ctx context.Context, update *UpdateMeeting) (*Meeting, error) {
	if err := s.driver.UpdateMeeting(ctx, update); err != nil {
		return nil, err
	}
	s.meetingListCache.Delete(meetingListCacheKey)
	return s.GetMeeting(ctx, &FindMeeting{ID: &update.ID})
}

// DeleteMeeting deletes a meeting.
func (s *Store) DeleteMeeting(ctx context.Context, delete *DeleteMeeting) error {
	if err := s.driver.DeleteMeeting(ctx, delete); err != nil {
		return err
	}
	s.meetingListCache.Delete(meetingListCacheKey)
	return nil
}

// isPlainListFind reports whether find selects the full collection,
// which is the only shape worth caching.
func isPlainListFind(find *FindMeeting) bool {
	return find == nil || (find.ID == nil && find.UID == nil && find.Limit == nil && find.Offset == nil)
}
