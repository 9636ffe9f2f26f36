// Package interpreter implements the natural-language command
// interpreter behind the chat surface. One utterance goes through
// classify → extract → (match) → act → respond in a single pass; every
// failure path terminates in a user-facing reply, never an error.
package interpreter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	errcode "github.com/hrygo/meetingmate/server/internal/errors"
	"github.com/hrygo/meetingmate/store"
)

// StoreClient is the record-store collaborator consumed by the
// interpreter. All four operations may fail; none are retried.
type StoreClient interface {
	ListMeetings(ctx context.Context) ([]*store.Meeting, error)
	CreateMeeting(ctx context.Context, create *store.Meeting) (*store.Meeting, error)
	UpdateMeeting(ctx context.Context, update *store.UpdateMeeting) (*store.Meeting, error)
	DeleteMeeting(ctx context.Context, id int32) (*store.Meeting, error)
}

// Result is the outcome of one interpretation pass.
type Result struct {
	// Reply is the natural-language confirmation or clarification.
	Reply string
	// Snapshot is the meeting list after any mutation performed by
	// this pass, refetched from the store.
	Snapshot []*store.Meeting
}

// Interpreter turns free-text utterances into store actions and replies.
// It holds no cross-utterance state; callers must serialize utterances.
type Interpreter struct {
	logger *slog.Logger
}

// New creates an interpreter logging through the given logger.
func New(logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interpreter{logger: logger}
}

// Interpret processes a single utterance against the supplied snapshot
// and store client. The reference now is injected by the caller.
func (i *Interpreter) Interpret(ctx context.Context, utterance string, now time.Time, snapshot []*store.Meeting, client StoreClient) *Result {
	intent := ClassifyIntent(utterance)
	i.logger.Debug("classified utterance",
		slog.String("intent", intent.String()),
		slog.Int("snapshot_size", len(snapshot)))

	switch intent {
	case IntentSchedule:
		return i.handleSchedule(ctx, utterance, now, snapshot, client)
	case IntentCancel:
		return i.handleCancel(ctx, utterance, now, snapshot, client)
	case IntentAnnotate:
		return i.handleAnnotate(ctx, utterance, snapshot, client)
	case IntentList:
		return i.handleList(snapshot)
	default:
		return &Result{Reply: replyHelp, Snapshot: snapshot}
	}
}

func (i *Interpreter) handleSchedule(ctx context.Context, utterance string, now time.Time, snapshot []*store.Meeting, client StoreClient) *Result {
	dateTime, ok := ExtractDateTime(utterance, now)
	if !ok {
		i.logger.Debug("schedule clarification", slog.String("reason", errcode.ExtractionFailed("no date/time in utterance").Error()))
		return &Result{Reply: replyScheduleClarify, Snapshot: snapshot}
	}

	attendee, _ := ExtractAttendee(utterance)
	note, hasNote := ExtractNote(utterance)

	// An explicit note always wins over the synthesized placeholder.
	composedNote := ""
	switch {
	case hasNote:
		composedNote = note
	case attendee != "":
		composedNote = synthesizedNote(attendee)
	}

	title := "Meeting"
	if attendee != "" {
		title = synthesizedNote(attendee)
	}

	created, err := client.CreateMeeting(ctx, &store.Meeting{
		DateTime: dateTime,
		Attendee: attendee,
		Notes:    composedNote,
		Title:    title,
	})
	if err != nil {
		i.logger.Error("store call failed", slog.String("error", errcode.StoreFailed("create meeting", err).Error()))
		return &Result{Reply: replyScheduleFailed, Snapshot: snapshot}
	}

	reply := fmt.Sprintf("✅ Got it! I've scheduled your meeting for %s", created.DateTime)
	if attendee != "" {
		reply += fmt.Sprintf(" with %s", attendee)
	}
	if composedNote != "" {
		reply += fmt.Sprintf(". Note: %q", composedNote)
	}

	return &Result{Reply: reply, Snapshot: i.refreshSnapshot(ctx, snapshot, client)}
}

func (i *Interpreter) handleCancel(ctx context.Context, utterance string, now time.Time, snapshot []*store.Meeting, client StoreClient) *Result {
	attendee, _ := ExtractAttendee(utterance)
	dateTime, _ := ExtractDateTime(utterance, now)

	if attendee == "" && dateTime == "" {
		return &Result{Reply: replyCancelClarify, Snapshot: snapshot}
	}

	matched := MatchMeeting(snapshot, attendee, dateTime)
	if matched == nil {
		i.logger.Debug("cancel resolution failed", slog.String("reason", errcode.MatchFailed("no record for extracted slots").Error()))
		if len(snapshot) == 0 {
			return &Result{Reply: replyNoMeetings, Snapshot: snapshot}
		}
		return &Result{Reply: renderNoMatch(snapshot), Snapshot: snapshot}
	}

	if _, err := client.DeleteMeeting(ctx, matched.ID); err != nil {
		i.logger.Error("store call failed", slog.String("error", errcode.StoreFailed("delete meeting", err).Error()))
		return &Result{Reply: replyCancelFailed, Snapshot: snapshot}
	}

	who := matched.Attendee
	if who == "" {
		who = "them"
	}
	reply := fmt.Sprintf("✅ Done! I've canceled your meeting with %s on %s", who, matched.DateTime)

	return &Result{Reply: reply, Snapshot: i.refreshSnapshot(ctx, snapshot, client)}
}

func (i *Interpreter) handleAnnotate(ctx context.Context, utterance string, snapshot []*store.Meeting, client StoreClient) *Result {
	attendee, _ := ExtractAttendee(utterance)
	note, ok := ExtractNote(utterance)
	if !ok {
		note = noteAfterColon(utterance)
	}

	if attendee == "" || note == "" {
		return &Result{Reply: replyAnnotateClarify, Snapshot: snapshot}
	}

	// Annotation targets by attendee only, never by date.
	matched := MatchMeeting(snapshot, attendee, "")
	if matched == nil {
		return &Result{
			Reply:    fmt.Sprintf("I couldn't find a meeting with %s. Could you check the name?", attendee),
			Snapshot: snapshot,
		}
	}

	// Append to real notes; overwrite the synthesized placeholder.
	appended := matched.Notes != "" && matched.Notes != synthesizedNote(attendee)
	finalNotes := note
	if appended {
		finalNotes = fmt.Sprintf("%s. %s", matched.Notes, note)
	}

	if _, err := client.UpdateMeeting(ctx, &store.UpdateMeeting{ID: matched.ID, Notes: &finalNotes}); err != nil {
		i.logger.Error("store call failed", slog.String("error", errcode.StoreFailed("update meeting", err).Error()))
		return &Result{Reply: replyAnnotateFailed, Snapshot: snapshot}
	}

	var reply string
	if appended {
		reply = fmt.Sprintf("✅ Got it! I've added to your existing notes for the meeting with %s: %q", attendee, note)
	} else {
		reply = fmt.Sprintf("✅ Got it! I've added the note to your meeting with %s: %q", attendee, note)
	}

	return &Result{Reply: reply, Snapshot: i.refreshSnapshot(ctx, snapshot, client)}
}

func (i *Interpreter) handleList(snapshot []*store.Meeting) *Result {
	if len(snapshot) == 0 {
		return &Result{Reply: replyListEmpty, Snapshot: snapshot}
	}
	return &Result{Reply: renderSchedule(snapshot), Snapshot: snapshot}
}

// refreshSnapshot refetches the full meeting list after a mutation so
// the next interpretation never acts on stale data. On fetch failure the
// previous snapshot is kept; it is advisory only.
func (i *Interpreter) refreshSnapshot(ctx context.Context, previous []*store.Meeting, client StoreClient) []*store.Meeting {
	list, err := client.ListMeetings(ctx)
	if err != nil {
		i.logger.Warn("snapshot refresh failed", slog.String("error", errcode.StoreFailed("list meetings", err).Error()))
		return previous
	}
	return list
}
