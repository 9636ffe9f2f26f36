package v1

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrygo/meetingmate/internal/util"
	errcode "github.com/hrygo/meetingmate/server/internal/errors"
	"github.com/hrygo/meetingmate/server/internal/observability"
	"github.com/hrygo/meetingmate/store"
)

// ChatRequest is one user utterance.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the assistant reply and the refreshed meeting list.
type ChatResponse struct {
	Reply    string            `json:"reply"`
	Meetings []MeetingResponse `json:"meetings"`
}

// Chat runs one utterance through the interpreter.
// POST /api/v1/chat
func (s *APIV1Service) Chat(c echo.Context) error {
	reqCtx := observability.NewRequestContext(s.logger, c.RealIP())

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "invalid request body",
			"code":    string(errcode.ErrCodeInvalidArgument),
		})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "message is required",
			"code":    string(errcode.ErrCodeInvalidArgument),
		})
	}

	// One utterance at a time. A second submission while one is in
	// flight is rejected, not queued; racing two interpretations
	// against the same snapshot could act on stale data.
	if !s.chatSemaphore.TryAcquire(1) {
		return c.JSON(http.StatusConflict, map[string]string{
			"message": "another message is being processed",
			"code":    string(errcode.ErrCodeBusy),
		})
	}
	defer s.chatSemaphore.Release(1)

	ctx := c.Request().Context()
	client := &localStoreClient{store: s.Store}

	snapshot, err := client.ListMeetings(ctx)
	if err != nil {
		reqCtx.Error("failed to fetch meeting snapshot", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "failed to load meetings"})
	}

	result := s.Interpreter.Interpret(ctx, req.Message, time.Now(), snapshot, client)

	meetings := make([]MeetingResponse, 0, len(result.Snapshot))
	for _, meeting := range result.Snapshot {
		meetings = append(meetings, convertMeeting(meeting))
	}

	reqCtx.Info("utterance processed",
		slog.Int(observability.LogFieldUtteranceLen, len(req.Message)),
		slog.Int64(observability.LogFieldDuration, reqCtx.DurationMs()),
	)

	return c.JSON(http.StatusOK, ChatResponse{Reply: result.Reply, Meetings: meetings})
}

// localStoreClient adapts *store.Store to the interpreter's StoreClient.
// The CLI uses an HTTP implementation of the same interface.
type localStoreClient struct {
	store *store.Store
}

func (l *localStoreClient) ListMeetings(ctx context.Context) ([]*store.Meeting, error) {
	return l.store.ListMeetings(ctx, &store.FindMeeting{})
}

func (l *localStoreClient) CreateMeeting(ctx context.Context, create *store.Meeting) (*store.Meeting, error) {
	if create.UID == "" {
		create.UID = util.GenUUID()
	}
	return l.store.CreateMeeting(ctx, create)
}

func (l *localStoreClient) UpdateMeeting(ctx context.Context, update *store.UpdateMeeting) (*store.Meeting, error) {
	return l.store.UpdateMeeting(ctx, update)
}

func (l *localStoreClient) DeleteMeeting(ctx context.Context, id int32) (*store.Meeting, error) {
	meeting, err := l.store.GetMeeting(ctx, &store.FindMeeting{ID: &id})
	if err != nil {
		return nil, err
	}
	if err := l.store.DeleteMeeting(ctx, &store.DeleteMeeting{ID: id}); err != nil {
		return nil, err
	}
	return meeting, nil
}
