// Package client provides an HTTP implementation of the interpreter's
// StoreClient interface against a remote meetingmate server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hrygo/meetingmate/store"
)

// Client talks to the meeting CRUD API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL, e.g. "http://localhost:8081".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type meetingPayload struct {
	ID       int32  `json:"id"`
	UID      string `json:"uid"`
	DateTime string `json:"dateTime"`
	Attendee string `json:"attendee"`
	Notes    string `json:"notes"`
	Title    string `json:"title"`
}

type messagePayload struct {
	Message string         `json:"message"`
	Meeting meetingPayload `json:"meeting"`
}

func (p meetingPayload) toMeeting() *store.Meeting {
	return &store.Meeting{
		ID:       p.ID,
		UID:      p.UID,
		DateTime: p.DateTime,
		Attendee: p.Attendee,
		Notes:    p.Notes,
		Title:    p.Title,
	}
}

// ListMeetings fetches all meetings in insertion order.
func (c *Client) ListMeetings(ctx context.Context) ([]*store.Meeting, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/meetings", nil)
	if err != nil {
		return nil, err
	}

	var payload []meetingPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "malformed meeting list response")
	}

	list := make([]*store.Meeting, 0, len(payload))
	for _, p := range payload {
		list = append(list, p.toMeeting())
	}
	return list, nil
}

// CreateMeeting creates a meeting; the server assigns the id.
func (c *Client) CreateMeeting(ctx context.Context, create *store.Meeting) (*store.Meeting, error) {
	request := map[string]string{
		"dateTime": create.DateTime,
		"attendee": create.Attendee,
		"notes":    create.Notes,
		"title":    create.Title,
	}
	body, err := c.do(ctx, http.MethodPost, "/api/v1/meetings", request)
	if err != nil {
		return nil, err
	}
	return decodeMeetingMessage(body)
}

// UpdateMeeting applies a partial update.
func (c *Client) UpdateMeeting(ctx context.Context, update *store.UpdateMeeting) (*store.Meeting, error) {
	request := map[string]any{}
	if update.DateTime != nil {
		request["dateTime"] = *update.DateTime
	}
	if update.Attendee != nil {
		request["attendee"] = *update.Attendee
	}
	if update.Notes != nil {
		request["notes"] = *update.Notes
	}
	if update.Title != nil {
		request["title"] = *update.Title
	}

	body, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/meetings/%d", update.ID), request)
	if err != nil {
		return nil, err
	}
	return decodeMeetingMessage(body)
}

// DeleteMeeting deletes a meeting and returns the removed record.
func (c *Client) DeleteMeeting(ctx context.Context, id int32) (*store.Meeting, error) {
	body, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/meetings/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeMeetingMessage(body)
}

func decodeMeetingMessage(body []byte) (*store.Meeting, error) {
	var payload messagePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "malformed meeting response")
	}
	if payload.Meeting.ID == 0 {
		return nil, errors.New("malformed meeting response: missing meeting")
	}
	return payload.Meeting.toMeeting(), nil
}

func (c *Client) do(ctx context.Context, method, path string, request any) ([]byte, error) {
	var reqBody io.Reader
	if request != nil {
		encoded, err := json.Marshal(request)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	if request != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s failed", method, path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("%s %s returned status %d", method, path, resp.StatusCode)
	}
	return body, nil
}
