package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors package allows sentinel comparisons

	"github.com/chiweic/schedule-api/internal/model"
)

// SectionRepo provides methods to create and retrieve sections. It embeds
// a database handle to perform queries and commands.
type SectionRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewSectionRepo constructs a SectionRepo with the given DB handle.
func NewSectionRepo(db *sql.DB) *SectionRepo {
	return &SectionRepo{db: db}
}

// Create inserts a new section. ScheduleID may be nil for a detached
// section. After insert the ID field of the section will be set.
func (r *SectionRepo) Create(ctx context.Context, s *model.Section) error {
	const q = `INSERT INTO sections (title, sequence, status, schedule_id) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Title, s.Sequence, s.Status, s.ScheduleID)
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

// GetByID retrieves a section by its ID. It returns ErrSectionNotFound
// when no row is found.
func (r *SectionRepo) GetByID(ctx context.Context, id int64) (*model.Section, error) {
	const q = `SELECT id, title, sequence, status, schedule_id FROM sections WHERE id = ?`
	var s model.Section
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Title, &s.Sequence, &s.Status, &s.ScheduleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns a page of sections in id order.
func (r *SectionRepo) List(ctx context.Context, offset, limit int) ([]*model.Section, error) {
	const q = `SELECT id, title, sequence, status, schedule_id FROM sections ORDER BY id LIMIT ? OFFSET ?`
	return r.query(ctx, q, limit, offset)
}

// ListBySchedule returns all sections attached to the given schedule in id
// order. Used to embed children in schedule responses.
func (r *SectionRepo) ListBySchedule(ctx context.Context, scheduleID int64) ([]*model.Section, error) {
	const q = `SELECT id, title, sequence, status, schedule_id FROM sections WHERE schedule_id = ? ORDER BY id`
	return r.query(ctx, q, scheduleID)
}

// query runs a SELECT returning full section rows and scans them into a
// slice. The slice is never nil so callers serialize [] instead of null.
func (r *SectionRepo) query(ctx context.Context, q string, args ...any) ([]*model.Section, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Section{}
	for rows.Next() {
		s := new(model.Section)
		if err := rows.Scan(&s.ID, &s.Title, &s.Sequence, &s.Status, &s.ScheduleID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update writes every column of the section back to its row, including the
// untouched schedule_id. ErrSectionNotFound is returned when no row is
// affected.
func (r *SectionRepo) Update(ctx context.Context, s *model.Section) error {
	const q = `UPDATE sections SET title = ?, sequence = ?, status = ?, schedule_id = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, s.Title, s.Sequence, s.Status, s.ScheduleID, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSectionNotFound
	}
	return nil
}

// Delete removes a section by id. Events keep their section_id value;
// there is no cascade.
func (r *SectionRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sections WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSectionNotFound
	}
	return nil
}
