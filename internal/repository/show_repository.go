// Package repository contains data access logic for Show domain operations.
// A Show is the association entity joining exactly one Artist and one Venue
// at one point in time. Shows are immutable after creation; there is no
// update path. Display joins (artist/venue names and images) are computed
// by explicit queries at read time, never stored on the row.
// NOTE: Time strings are stored in DB format "2006-01-02 15:04:05" (UTC).
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// TimeLayout is the DB timestamp layout used throughout the repositories.
const TimeLayout = "2006-01-02 15:04:05"

// Show represents a scheduled performance persisted in the database.
type Show struct {
	ID        uint64 `json:"id"`         // ID is the primary key of the show
	ArtistID  uint64 `json:"artist_id"`  // ArtistID references artists.id
	VenueID   uint64 `json:"venue_id"`   // VenueID references venues.id
	StartTime string `json:"start_time"` // StartTime is the DB timestamp when the show begins (UTC)
}

// ShowListRow is a flattened row of the all-shows view joining the show
// with its venue and artist display fields.
type ShowListRow struct {
	VenueID         uint64 `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShowRow is one entry of a venue's schedule: the artist side of a
// show, joined at read time.
type ArtistShowRow struct {
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueShowRow is one entry of an artist's schedule: the venue side of a
// show, joined at read time.
type VenueShowRow struct {
	VenueID        uint64 `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show inside a single transaction. Both referenced
// ids must exist at the moment of the integrity check: a missing artist
// yields ErrArtistNotFound, a missing venue ErrVenueNotFound, and in
// either case no row is written. StartTime must already be normalized to
// TimeLayout by the caller. On success the new show is immediately
// visible under both the artist's and the venue's schedules.
func (r *ShowRepo) Create(ctx context.Context, s *Show) (err error) {
	if s.ArtistID == 0 {
		return required("artist_id")
	}
	if s.VenueID == 0 {
		return required("venue_id")
	}
	if s.StartTime == "" {
		return required("start_time")
	}
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
	// Referential integrity checks inside the same transaction as the
	// insert, so a concurrent delete cannot orphan the new show.
	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ?`, s.ArtistID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrArtistNotFound
		}
		return err
	}
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, s.VenueID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}
	const qInsert = `INSERT INTO shows (artist_id, venue_id, start_time) VALUES (?, ?, ?)`
	res, err := tx.ExecContext(ctx, qInsert, s.ArtistID, s.VenueID, s.StartTime)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByID retrieves a show by its ID. It returns ErrShowNotFound if there
// is no matching row.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*Show, error) {
	const q = `SELECT id, artist_id, venue_id, start_time FROM shows WHERE id = ?`
	var s Show
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.ArtistID, &s.VenueID, &s.StartTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListAll returns the flattened all-shows view joined with venue and
// artist display fields, ordered by start time ascending.
func (r *ShowRepo) ListAll(ctx context.Context) ([]ShowListRow, error) {
	const q = `SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ShowListRow{}
	for rows.Next() {
		var d ShowListRow
		if err := rows.Scan(&d.VenueID, &d.VenueName, &d.ArtistID, &d.ArtistName, &d.ArtistImageLink, &d.StartTime); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByVenue returns the artist side of every show scheduled at a venue,
// ordered by start time ascending. The caller partitions the result into
// past and upcoming against its own pivot clock.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]ArtistShowRow, error) {
	const q = `SELECT s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN artists a ON a.id = s.artist_id
	           WHERE s.venue_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ArtistShowRow{}
	for rows.Next() {
		var d ArtistShowRow
		if err := rows.Scan(&d.ArtistID, &d.ArtistName, &d.ArtistImageLink, &d.StartTime); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByArtist returns the venue side of every show on an artist's
// schedule, ordered by start time ascending.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]VenueShowRow, error) {
	const q = `SELECT s.venue_id, v.name, v.image_link, s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           WHERE s.artist_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []VenueShowRow{}
	for rows.Next() {
		var d VenueShowRow
		if err := rows.Scan(&d.VenueID, &d.VenueName, &d.VenueImageLink, &d.StartTime); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
