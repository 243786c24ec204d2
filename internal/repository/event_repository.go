package repository // repository holds data access logic for domain entities

import (
	"context"
	"database/sql"
	"errors"

	"github.com/chiweic/schedule-api/internal/model"
)

// EventRepo provides methods to create and retrieve events.
type EventRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// Create inserts a new event. SectionID may be nil for a detached event.
// After insert the ID field of the event will be set.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	const q = `INSERT INTO events (start_time, end_time, event_date, location, section_id) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, e.StartTime, e.EndTime, e.EventDate, e.Location, e.SectionID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

// GetByID retrieves an event by its ID. It returns ErrEventNotFound when
// no row is found.
func (r *EventRepo) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	const q = `SELECT id, start_time, end_time, event_date, location, section_id FROM events WHERE id = ?`
	var e model.Event
	err := r.db.QueryRowContext(ctx, q, id).Scan(&e.ID, &e.StartTime, &e.EndTime, &e.EventDate, &e.Location, &e.SectionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &e, nil
}

// List returns a page of events in id order.
func (r *EventRepo) List(ctx context.Context, offset, limit int) ([]*model.Event, error) {
	const q = `SELECT id, start_time, end_time, event_date, location, section_id FROM events ORDER BY id LIMIT ? OFFSET ?`
	return r.query(ctx, q, limit, offset)
}

// ListBySection returns all events attached to the given section in id
// order. Used to embed children in section responses.
func (r *EventRepo) ListBySection(ctx context.Context, sectionID int64) ([]*model.Event, error) {
	const q = `SELECT id, start_time, end_time, event_date, location, section_id FROM events WHERE section_id = ? ORDER BY id`
	return r.query(ctx, q, sectionID)
}

func (r *EventRepo) query(ctx context.Context, q string, args ...any) ([]*model.Event, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Event{}
	for rows.Next() {
		e := new(model.Event)
		if err := rows.Scan(&e.ID, &e.StartTime, &e.EndTime, &e.EventDate, &e.Location, &e.SectionID); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update writes every column of the event back to its row, including the
// untouched section_id. ErrEventNotFound is returned when no row is
// affected.
func (r *EventRepo) Update(ctx context.Context, e *model.Event) error {
	const q = `UPDATE events SET start_time = ?, end_time = ?, event_date = ?, location = ?, section_id = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, e.StartTime, e.EndTime, e.EventDate, e.Location, e.SectionID, e.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEventNotFound
	}
	return nil
}

// Delete removes an event by id.
func (r *EventRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEventNotFound
	}
	return nil
}
