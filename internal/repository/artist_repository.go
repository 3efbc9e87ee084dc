// Package repository contains data access logic separated from HTTP handlers.
// This file defines the Artist model and repository methods. An Artist is
// an independent root entity like Venue but without a street address; its
// schedule is derived from shows referencing the artist by id.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// Artist represents an artist entity persisted in the database. Genres use
// the same comma-joined storage round trip as Venue.
type Artist struct {
	ID           uint64   `json:"id"`            // ID is the unique identifier of the artist
	Name         string   `json:"name"`          // Name is the artist or band name
	City         string   `json:"city"`          // City where the artist is based
	State        string   `json:"state"`         // State where the artist is based
	Phone        string   `json:"phone"`         // Phone is a contact number
	Genres       []string `json:"genres"`        // Genres is the ordered list of genre tags
	ImageLink    string   `json:"image_link"`    // ImageLink is a URL to an artist image
	FacebookLink string   `json:"facebook_link"` // FacebookLink is a URL to the artist's social profile
	CreatedAt    string   `json:"-"`             // CreatedAt records row creation time
	UpdatedAt    string   `json:"-"`             // UpdatedAt records last update time
}

// validate checks the required fields before any SQL runs.
func (a *Artist) validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return required("name")
	}
	if strings.TrimSpace(a.City) == "" {
		return required("city")
	}
	if strings.TrimSpace(a.State) == "" {
		return required("state")
	}
	if strings.TrimSpace(a.Phone) == "" {
		return required("phone")
	}
	if len(a.Genres) == 0 {
		return required("genres")
	}
	if strings.TrimSpace(a.ImageLink) == "" {
		return required("image_link")
	}
	if strings.TrimSpace(a.FacebookLink) == "" {
		return required("facebook_link")
	}
	return nil
}

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create validates and inserts a new artist inside a single transaction.
// On success the ID and timestamp fields are populated from the database;
// on any failure the transaction is rolled back.
func (r *ArtistRepo) Create(ctx context.Context, a *Artist) (err error) {
	if err = a.validate(); err != nil {
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
	const qInsert = `INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link)
	                 VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, qInsert,
		a.Name, a.City, a.State, a.Phone, joinGenres(a.Genres), a.ImageLink, a.FacebookLink)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	const qSelect = `SELECT created_at, updated_at FROM artists WHERE id = ?`
	err = tx.QueryRowContext(ctx, qSelect, a.ID).Scan(&a.CreatedAt, &a.UpdatedAt)
	return err
}

// Update validates and overwrites all mutable fields of an existing artist
// inside a single transaction. It returns ErrArtistNotFound when the id
// does not exist.
func (r *ArtistRepo) Update(ctx context.Context, a *Artist) (err error) {
	if err = a.validate(); err != nil {
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
	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ?`, a.ID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrArtistNotFound
		}
		return err
	}
	const qUpdate = `UPDATE artists
	                 SET name = ?, city = ?, state = ?, phone = ?, genres = ?, image_link = ?, facebook_link = ?, updated_at = CURRENT_TIMESTAMP
	                 WHERE id = ?`
	_, err = tx.ExecContext(ctx, qUpdate,
		a.Name, a.City, a.State, a.Phone, joinGenres(a.Genres), a.ImageLink, a.FacebookLink, a.ID)
	if err != nil {
		return err
	}
	err = tx.QueryRowContext(ctx, `SELECT created_at, updated_at FROM artists WHERE id = ?`, a.ID).Scan(&a.CreatedAt, &a.UpdatedAt)
	return err
}

// GetByID fetches an artist by its ID. It returns ErrArtistNotFound if no
// row is found.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*Artist, error) {
	const q = `SELECT id, name, city, state, phone, genres, image_link, facebook_link, created_at, updated_at
	           FROM artists WHERE id = ?`
	var a Artist
	var genres string
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres, &a.ImageLink, &a.FacebookLink, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	a.Genres = splitGenres(genres)
	return &a, nil
}

// ListAll returns all artists ordered by id.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]*Artist, error) {
	const q = `SELECT id, name, city, state, phone, genres, image_link, facebook_link
	           FROM artists ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Artist{}
	for rows.Next() {
		a := new(Artist)
		var genres string
		if err := rows.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres, &a.ImageLink, &a.FacebookLink); err != nil {
			return nil, err
		}
		a.Genres = splitGenres(genres)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName performs a case-insensitive substring match against artist
// names and returns the full matching records. Unlike venue search this
// does not attach an upcoming-show count; the asymmetry is inherited from
// the behavior this service replaces and is kept deliberately.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]*Artist, error) {
	const q = `SELECT id, name, city, state, phone, genres, image_link, facebook_link
	           FROM artists
	           WHERE LOWER(name) LIKE ?
	           ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, "%"+strings.ToLower(term)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Artist{}
	for rows.Next() {
		a := new(Artist)
		var genres string
		if err := rows.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres, &a.ImageLink, &a.FacebookLink); err != nil {
			return nil, err
		}
		a.Genres = splitGenres(genres)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
