package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyyur/fyyur/internal/repository"
)

func newShowTestHandler(t *testing.T) (*ShowHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewShowHandler(repository.NewShowRepo(db), repository.NewVenueRepo(db), repository.NewArtistRepo(db)), mock
}

func TestShowCreateHandlerBadTimestamp(t *testing.T) {
	h, mock := newShowTestHandler(t)

	rec := doJSON(t, h.Create, http.MethodPost, "/v1/shows",
		`{"artist_id":4,"venue_id":7,"start_time":"next friday"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Nothing reached the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowCreateHandlerMissingFields(t *testing.T) {
	h, mock := newShowTestHandler(t)

	rec := doJSON(t, h.Create, http.MethodPost, "/v1/shows", `{"venue_id":7,"start_time":"2035-04-01T20:00:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h.Create, http.MethodPost, "/v1/shows", `{"artist_id":4,"venue_id":7}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowCreateHandlerMissingArtist(t *testing.T) {
	h, mock := newShowTestHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM artists WHERE id = ?")).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectRollback()

	rec := doJSON(t, h.Create, http.MethodPost, "/v1/shows",
		`{"artist_id":999,"venue_id":7,"start_time":"2035-04-01T20:00:00"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowGetHandler(t *testing.T) {
	h, mock := newShowTestHandler(t)

	mock.ExpectQuery("SELECT id, artist_id, venue_id, start_time FROM shows").
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows([]string{"id", "artist_id", "venue_id", "start_time"}).
			AddRow(12, 4, 7, "2035-04-01 20:00:00"))

	rec := doJSON(t, h.Get, http.MethodGet, "/v1/shows/12", "", "id", "12")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID        uint64 `json:"id"`
		ArtistID  uint64 `json:"artist_id"`
		VenueID   uint64 `json:"venue_id"`
		StartTime string `json:"start_time"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(12), resp.ID)
	assert.Equal(t, uint64(4), resp.ArtistID)
	assert.Equal(t, "2035-04-01T20:00:00Z", resp.StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowGetHandlerNotFound(t *testing.T) {
	h, mock := newShowTestHandler(t)

	mock.ExpectQuery("SELECT id, artist_id, venue_id, start_time FROM shows").
		WithArgs(404).
		WillReturnError(sql.ErrNoRows)

	rec := doJSON(t, h.Get, http.MethodGet, "/v1/shows/404", "", "id", "404")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowGetHandlerBadID(t *testing.T) {
	h, mock := newShowTestHandler(t)

	rec := doJSON(t, h.Get, http.MethodGet, "/v1/shows/twelve", "", "id", "twelve")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowListHandlerSerializesISO(t *testing.T) {
	h, mock := newShowTestHandler(t)

	mock.ExpectQuery("SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time").
		WillReturnRows(sqlmock.NewRows([]string{"venue_id", "v.name", "artist_id", "a.name", "a.image_link", "start_time"}).
			AddRow(7, "The Musical Hop", 4, "Guns N Petals", "gnp.jpg", "2035-04-01 20:00:00"))

	rec := doJSON(t, h.List, http.MethodGet, "/v1/shows", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []struct {
			VenueName  string `json:"venue_name"`
			ArtistName string `json:"artist_name"`
			StartTime  string `json:"start_time"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "2035-04-01T20:00:00Z", resp.Items[0].StartTime)
	assert.Equal(t, "The Musical Hop", resp.Items[0].VenueName)
}
