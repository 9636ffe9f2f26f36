package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hrygo/meetingmate/internal/util"
	"github.com/hrygo/meetingmate/store"
)

// MeetingResponse is the wire representation of a meeting record.
type MeetingResponse struct {
	ID       int32  `json:"id"`
	UID      string `json:"uid"`
	DateTime string `json:"dateTime"`
	Attendee string `json:"attendee"`
	Notes    string `json:"notes"`
	Title    string `json:"title"`
}

// CreateMeetingRequest is the create request body.
type CreateMeetingRequest struct {
	DateTime string `json:"dateTime"`
	Attendee string `json:"attendee"`
	Notes    string `json:"notes"`
	Title    string `json:"title"`
}

// UpdateMeetingRequest is the partial update request body.
// Nil fields are left untouched.
type UpdateMeetingRequest struct {
	DateTime *string `json:"dateTime"`
	Attendee *string `json:"attendee"`
	Notes    *string `json:"notes"`
	Title    *string `json:"title"`
}

// MeetingMessageResponse wraps a mutation result with a message.
type MeetingMessageResponse struct {
	Message string          `json:"message"`
	Meeting MeetingResponse `json:"meeting"`
}

func convertMeeting(meeting *store.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:       meeting.ID,
		UID:      meeting.UID,
		DateTime: meeting.DateTime,
		Attendee: meeting.Attendee,
		Notes:    meeting.Notes,
		Title:    meeting.Title,
	}
}

// ListMeetings returns all meetings in insertion order.
// GET /api/v1/meetings
func (s *APIV1Service) ListMeetings(c echo.Context) error {
	list, err := s.Store.ListMeetings(c.Request().Context(), &store.FindMeeting{})
	if err != nil {
		s.logger.Error("failed to list meetings", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "failed to list meetings"})
	}

	response := make([]MeetingResponse, 0, len(list))
	for _, meeting := range list {
		response = append(response, convertMeeting(meeting))
	}
	return c.JSON(http.StatusOK, response)
}

// CreateMeeting schedules a new meeting. The store assigns the id.
// POST /api/v1/meetings
func (s *APIV1Service) CreateMeeting(c echo.Context) error {
	var req CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}
	if strings.TrimSpace(req.DateTime) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "dateTime is required"})
	}

	title := req.Title
	if title == "" {
		title = "Meeting"
	}

	meeting, err := s.Store.CreateMeeting(c.Request().Context(), &store.Meeting{
		UID:      util.GenUUID(),
		DateTime: req.DateTime,
		Attendee: req.Attendee,
		Notes:    req.Notes,
		Title:    title,
	})
	if err != nil {
		s.logger.Error("failed to create meeting", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "failed to create meeting"})
	}

	return c.JSON(http.StatusOK, MeetingMessageResponse{
		Message: "Meeting scheduled",
		Meeting: convertMeeting(meeting),
	})
}

// UpdateMeeting applies a partial update to a meeting.
// PUT /api/v1/meetings/:id
func (s *APIV1Service) UpdateMeeting(c echo.Context) error {
	id, err := parseMeetingID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid meeting id"})
	}

	existing, err := s.Store.GetMeeting(c.Request().Context(), &store.FindMeeting{ID: &id})
	if err != nil {
		s.logger.Error("failed to get meeting", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "failed to update meeting"})
	}
	if existing == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Meeting not found"})
	}

	var req UpdateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}

	meeting, err := s.Store.UpdateMeeting(c.Request().Context(), &store.UpdateMeeting{
		ID:       id,
		DateTime: req.DateTime,
		Attendee: req.Attendee,
		Notes:    req.Notes,
		Title:    req.Title,
	})
	if err != nil {
		s.logger.Error("failed to update meeting", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "failed to update meeting"})
	}

	return c.JSON(http.StatusOK, MeetingMessageResponse{
		Message: "Meeting updated",
		Meeting: convertMeeting(meeting),
	})
}

// DeleteMeeting cancels a meeting and returns the removed record.
// DELETE /api/v1/meetings/:id
func (s *APIV1Service) DeleteMeeting(c echo.Context) error {
	id, err := parseMeetingID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid meeting id"})
	}

	existing, err := s.Store.GetMeeting(c.Request().Context(), &store.FindMeeting{ID: &id})
	if err != nil {
		s.logger.Error("failed to get meeting", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "failed to delete meeting"})
	}
	if existing == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Meeting not found"})
	}

	if err := s.Store.DeleteMeeting(c.Request().Context(), &store.DeleteMeeting{ID: id}); err != nil {
		s.logger.Error("failed to delete meeting", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "failed to delete meeting"})
	}

	return c.JSON(http.StatusOK, MeetingMessageResponse{
		Message: "Meeting canceled",
		Meeting: convertMeeting(existing),
	})
}

func parseMeetingID(c echo.Context) (int32, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}
