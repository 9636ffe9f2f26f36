package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/hrygo/meetingmate/store"
)

func (d *DB) CreateMeeting(ctx context.Context, create *store.Meeting) (*store.Meeting, error) {
	fields := []string{"uid", "date_time", "attendee", "notes", "title"}
	placeholderValues := []any{
		create.UID, create.DateTime, create.Attendee, create.Notes, create.Title,
	}

	// Add optional timestamps
	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		placeholderValues = append(placeholderValues, create.CreatedTs)
	}
	if create.UpdatedTs != 0 {
		fields = append(fields, "updated_ts")
		placeholderValues = append(placeholderValues, create.UpdatedTs)
	}

	stmt := `INSERT INTO meeting (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	return create, nil
}

func (d *DB) ListMeetings(ctx context.Context, find *store.FindMeeting) ([]*store.Meeting, error) {
	where, args := []string{"1 = 1"}, []any{}

	if find != nil {
		if v := find.ID; v != nil {
			where, args = append(where, "meeting.id = "+placeholder(len(args)+1)), append(args, *v)
		}
		if v := find.UID; v != nil {
			where, args = append(where, "meeting.uid = "+placeholder(len(args)+1)), append(args, *v)
		}
	}

	// Insertion order is part of the contract.
	query := `
		SELECT id, uid, created_ts, updated_ts, date_time, attendee, notes, title
		FROM meeting
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY meeting.id ASC`

	if find != nil && find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query meetings: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Meeting, 0)
	for rows.Next() {
		var meeting store.Meeting
		if err := rows.Scan(
			&meeting.ID,
			&meeting.UID,
			&meeting.CreatedTs,
			&meeting.UpdatedTs,
			&meeting.DateTime,
			&meeting.Attendee,
			&meeting.Notes,
			&meeting.Title,
		); err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		list = append(list, &meeting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meetings: %w", err)
	}

	return list, nil
}

func (d *DB) UpdateMeeting(ctx context.Context, update *store.UpdateMeeting) error {
	set, args := []string{}, []any{}

	if v := update.DateTime; v != nil {
		set, args = append(set, "date_time = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Attendee; v != nil {
		set, args = append(set, "attendee = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Notes; v != nil {
		set, args = append(set, "notes = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Title; v != nil {
		set, args = append(set, "title = "+placeholder(len(args)+1)), append(args, *v)
	}

	// If no fields to update, return early
	if len(set) == 0 {
		return nil
	}

	set = append(set, "updated_ts = strftime('%s', 'now')")
	args = append(args, update.ID)

	stmt := `UPDATE meeting SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args))
	result, err := d.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("failed to update meeting: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("meeting not found")
	}

	return nil
}

func (d *DB) DeleteMeeting(ctx context.Context, delete *store.DeleteMeeting) error {
	stmt := `DELETE FROM meeting WHERE id = ` + placeholder(1)
	result, err := d.db.ExecContext(ctx, stmt, delete.ID)
	if err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("meeting not found")
	}

	return nil
}
