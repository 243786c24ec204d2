package repository // repository holds data access logic for domain entities

import (
	"context"
	"database/sql"
	"errors"

	"github.com/chiweic/schedule-api/internal/model"
)

// VenueRepo provides methods to create and retrieve venues. Venues have no
// children, so this is the plainest repository of the four.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue. After insert the ID field will be set.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const q = `INSERT INTO venues (name, tel, address, mail, url, fax, contact) VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.Tel, v.Address, v.Mail, v.URL, v.Fax, v.Contact)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = id
	return nil
}

// GetByID retrieves a venue by its ID. It returns ErrVenueNotFound when no
// row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id int64) (*model.Venue, error) {
	const q = `SELECT id, name, tel, address, mail, url, fax, contact FROM venues WHERE id = ?`
	var v model.Venue
	err := r.db.QueryRowContext(ctx, q, id).Scan(&v.ID, &v.Name, &v.Tel, &v.Address, &v.Mail, &v.URL, &v.Fax, &v.Contact)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// List returns a page of venues in id order.
func (r *VenueRepo) List(ctx context.Context, offset, limit int) ([]*model.Venue, error) {
	const q = `SELECT id, name, tel, address, mail, url, fax, contact FROM venues ORDER BY id LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Venue{}
	for rows.Next() {
		v := new(model.Venue)
		if err := rows.Scan(&v.ID, &v.Name, &v.Tel, &v.Address, &v.Mail, &v.URL, &v.Fax, &v.Contact); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update writes every column of the venue back to its row.
// ErrVenueNotFound is returned when no row is affected.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	const q = `UPDATE venues SET name = ?, tel = ?, address = ?, mail = ?, url = ?, fax = ?, contact = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.Tel, v.Address, v.Mail, v.URL, v.Fax, v.Contact, v.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVenueNotFound
	}
	return nil
}

// Delete removes a venue by id.
func (r *VenueRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVenueNotFound
	}
	return nil
}
