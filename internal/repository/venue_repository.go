// Package repository contains data access logic separated from HTTP handlers.
// This file defines the Venue model and repository methods for CRUD, search
// and lookup operations. A Venue represents a performance space that can
// host shows; each show on its schedule references exactly one artist.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used for sentinel comparisons
	"strings"      // strings offers trimming and case folding for validation and search
)

// Venue represents a venue entity persisted in the database. Genres are
// carried as an ordered tag list and stored comma-joined in a single
// column; the repository owns that round trip. CreatedAt and UpdatedAt
// are DB timestamps in "2006-01-02 15:04:05" UTC form and are not exposed
// in API responses.
type Venue struct {
	ID           uint64   `json:"id"`            // ID is the unique identifier of the venue
	Name         string   `json:"name"`          // Name is the human-friendly venue name
	City         string   `json:"city"`          // City where the venue is located
	State        string   `json:"state"`         // State where the venue is located
	Address      string   `json:"address"`       // Address is the street address
	Phone        string   `json:"phone"`         // Phone is a contact number
	Genres       []string `json:"genres"`        // Genres is the ordered list of genre tags
	ImageLink    string   `json:"image_link"`    // ImageLink is a URL to a venue image
	FacebookLink string   `json:"facebook_link"` // FacebookLink is a URL to the venue's social profile
	CreatedAt    string   `json:"-"`             // CreatedAt records row creation time
	UpdatedAt    string   `json:"-"`             // UpdatedAt records last update time
}

// validate checks the required fields before any SQL runs. It returns a
// ValidationError naming the first offending field so no partially
// assigned record ever reaches the database.
func (v *Venue) validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return required("name")
	}
	if strings.TrimSpace(v.City) == "" {
		return required("city")
	}
	if strings.TrimSpace(v.State) == "" {
		return required("state")
	}
	if strings.TrimSpace(v.Address) == "" {
		return required("address")
	}
	if strings.TrimSpace(v.Phone) == "" {
		return required("phone")
	}
	if len(v.Genres) == 0 {
		return required("genres")
	}
	if strings.TrimSpace(v.ImageLink) == "" {
		return required("image_link")
	}
	if strings.TrimSpace(v.FacebookLink) == "" {
		return required("facebook_link")
	}
	return nil
}

// VenueSearchRow is a single hit from a name search. NumUpcomingShows is a
// live count of the venue's shows starting at or after the query clock; it
// is computed by the database per call and never cached.
type VenueSearchRow struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

// VenueRepo encapsulates all database queries related to venues. It
// depends on a sql.DB connection pool which is configured elsewhere.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle. This
// allows dependency injection of the database in tests and at startup.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create validates and inserts a new venue inside a single transaction.
// On success the venue's ID, CreatedAt and UpdatedAt fields are populated
// from the database. On any failure the transaction is rolled back and no
// partial write is visible to subsequent reads.
func (r *VenueRepo) Create(ctx context.Context, v *Venue) (err error) {
	if err = v.validate(); err != nil {
		return err
	}
	var tx *sql.Tx
	tx, err = r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	// Ensure rollback or commit at the end
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	const qInsert = `INSERT INTO venues (name, city, state, address, phone, genres, image_link, facebook_link)
	                 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, qInsert,
		v.Name, v.City, v.State, v.Address, v.Phone, joinGenres(v.Genres), v.ImageLink, v.FacebookLink)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	// Follow-up SELECT to populate default timestamp fields.
	const qSelect = `SELECT created_at, updated_at FROM venues WHERE id = ?`
	err = tx.QueryRowContext(ctx, qSelect, v.ID).Scan(&v.CreatedAt, &v.UpdatedAt)
	return err
}

// Update validates and overwrites all mutable fields of an existing venue
// inside a single transaction. It returns ErrVenueNotFound when the id does
// not exist at the time of the existence check.
func (r *VenueRepo) Update(ctx context.Context, v *Venue) (err error) {
	if err = v.validate(); err != nil {
		return err
	}
	var tx *sql.Tx
	tx, err = r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	// Verify the venue exists before touching it.
	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, v.ID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}
	const qUpdate = `UPDATE venues
	                 SET name = ?, city = ?, state = ?, address = ?, phone = ?, genres = ?, image_link = ?, facebook_link = ?, updated_at = CURRENT_TIMESTAMP
	                 WHERE id = ?`
	_, err = tx.ExecContext(ctx, qUpdate,
		v.Name, v.City, v.State, v.Address, v.Phone, joinGenres(v.Genres), v.ImageLink, v.FacebookLink, v.ID)
	if err != nil {
		return err
	}
	err = tx.QueryRowContext(ctx, `SELECT created_at, updated_at FROM venues WHERE id = ?`, v.ID).Scan(&v.CreatedAt, &v.UpdatedAt)
	return err
}

// GetByID fetches a venue by its ID. It returns ErrVenueNotFound if no
// row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*Venue, error) {
	const q = `SELECT id, name, city, state, address, phone, genres, image_link, facebook_link, created_at, updated_at
	           FROM venues WHERE id = ?`
	var v Venue
	var genres string
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &genres, &v.ImageLink, &v.FacebookLink, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	v.Genres = splitGenres(genres)
	return &v, nil
}

// ListAll returns all venues ordered by id. When no venues exist it
// returns an empty slice and nil error.
func (r *VenueRepo) ListAll(ctx context.Context) ([]*Venue, error) {
	const q = `SELECT id, name, city, state, address, phone, genres, image_link, facebook_link
	           FROM venues ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Venue{}
	for rows.Next() {
		v := new(Venue)
		var genres string
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &genres, &v.ImageLink, &v.FacebookLink); err != nil {
			return nil, err
		}
		v.Genres = splitGenres(genres)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName performs a case-insensitive substring match against venue
// names. Each hit carries the number of that venue's shows starting at or
// after the current instant, computed live by a correlated subquery.
// Start times are stored as UTC strings, so the pivot must be
// UTC_TIMESTAMP() rather than NOW(): NOW() follows the session time zone
// and would skew the count on any server not running in UTC, disagreeing
// with the detail endpoint's time.Now().UTC() pivot.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]VenueSearchRow, error) {
	const q = `SELECT v.id, v.name,
	                  (SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time >= UTC_TIMESTAMP()) AS num_upcoming_shows
	           FROM venues v
	           WHERE LOWER(v.name) LIKE ?
	           ORDER BY v.id`
	rows, err := r.db.QueryContext(ctx, q, "%"+strings.ToLower(term)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []VenueSearchRow{}
	for rows.Next() {
		var d VenueSearchRow
		if err := rows.Scan(&d.ID, &d.Name, &d.NumUpcomingShows); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a venue. The policy for dependent shows is reject: when
// the venue still has shows on its schedule the delete is aborted inside
// the transaction and ErrConflict is returned. ErrVenueNotFound is
// returned when the id does not exist.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}
	// Check for shows referencing this venue.
	var showCount int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE venue_id = ?`, id).Scan(&showCount); err != nil {
		return err
	}
	if showCount > 0 {
		err = ErrConflict
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	return err
}
