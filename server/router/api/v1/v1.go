package v1

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/semaphore"

	"github.com/hrygo/meetingmate/internal/profile"
	"github.com/hrygo/meetingmate/server/interpreter"
	"github.com/hrygo/meetingmate/server/middleware"
	"github.com/hrygo/meetingmate/store"
)

// APIV1Service wires the meeting CRUD and chat endpoints.
type APIV1Service struct {
	Profile     *profile.Profile
	Store       *store.Store
	Interpreter *interpreter.Interpreter

	logger      *slog.Logger
	rateLimiter *middleware.RateLimiter

	// chatSemaphore serializes utterances: the interpreter is
	// single-threaded per utterance and acts on a store snapshot, so
	// concurrent submissions are rejected rather than raced.
	chatSemaphore *semaphore.Weighted
}

// NewAPIV1Service creates the API service.
func NewAPIV1Service(profile *profile.Profile, store *store.Store, logger *slog.Logger) *APIV1Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &APIV1Service{
		Profile:       profile,
		Store:         store,
		Interpreter:   interpreter.New(logger),
		logger:        logger,
		rateLimiter:   middleware.NewRateLimiter(),
		chatSemaphore: semaphore.NewWeighted(1),
	}
}

// RegisterRoutes registers all v1 routes with the given Echo instance.
func (s *APIV1Service) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")

	g.GET("/meetings", s.ListMeetings)
	g.POST("/meetings", s.CreateMeeting)
	g.PUT("/meetings/:id", s.UpdateMeeting)
	g.DELETE("/meetings/:id", s.DeleteMeeting)

	g.POST("/chat", s.Chat, middleware.RateLimit(s.rateLimiter))
}
