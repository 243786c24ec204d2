package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to match sentinel values

	"github.com/chiweic/schedule-api/internal/model"
)

// ScheduleRepo encapsulates all database queries related to schedules. It
// depends on a sql.DB connection which should be configured elsewhere.
type ScheduleRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewScheduleRepo constructs a ScheduleRepo with the provided DB handle.
// This function allows dependency injection of the database in tests and
// at startup.
func NewScheduleRepo(db *sql.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// Create inserts a new schedule into the database. On success the
// schedule's ID field is populated with the auto-generated value.
func (r *ScheduleRepo) Create(ctx context.Context, s *model.Schedule) error {
	const q = `INSERT INTO schedules (url, title, venue, venue_url, schedule_datetime, locations, registration, description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		s.URL, s.Title, s.Venue, s.VenueURL, s.ScheduleDatetime, s.Locations, s.Registration, s.Description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// GetByID fetches a schedule by its ID. It returns ErrScheduleNotFound if
// no row is found.
func (r *ScheduleRepo) GetByID(ctx context.Context, id int64) (*model.Schedule, error) {
	const q = `SELECT id, url, title, venue, venue_url, schedule_datetime, locations, registration, description
	           FROM schedules WHERE id = ?`
	var s model.Schedule
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.URL, &s.Title, &s.Venue, &s.VenueURL, &s.ScheduleDatetime, &s.Locations, &s.Registration, &s.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns a page of schedules in id order.
func (r *ScheduleRepo) List(ctx context.Context, offset, limit int) ([]*model.Schedule, error) {
	const q = `SELECT id, url, title, venue, venue_url, schedule_datetime, locations, registration, description
	           FROM schedules ORDER BY id LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Schedule{}
	for rows.Next() {
		s := new(model.Schedule)
		if err := rows.Scan(&s.ID, &s.URL, &s.Title, &s.Venue, &s.VenueURL, &s.ScheduleDatetime, &s.Locations, &s.Registration, &s.Description); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update writes every column of the schedule back to its row. Callers are
// expected to have merged partial input into a freshly loaded record.
// ErrScheduleNotFound is returned when no row is affected.
func (r *ScheduleRepo) Update(ctx context.Context, s *model.Schedule) error {
	const q = `UPDATE schedules
	           SET url = ?, title = ?, venue = ?, venue_url = ?, schedule_datetime = ?, locations = ?, registration = ?, description = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		s.URL, s.Title, s.Venue, s.VenueURL, s.ScheduleDatetime, s.Locations, s.Registration, s.Description, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

// Delete removes a schedule by id. Sections keep their schedule_id value;
// there is no cascade. ErrScheduleNotFound is returned when no row is
// affected.
func (r *ScheduleRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrScheduleNotFound
	}
	return nil
}
