package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewShowRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM artists WHERE id = ?")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM venues WHERE id = ?")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec("INSERT INTO shows").
		WithArgs(4, 7, "2035-04-01 20:00:00").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	show := &Show{ArtistID: 4, VenueID: 7, StartTime: "2035-04-01 20:00:00"}
	require.NoError(t, repo.Create(context.Background(), show))
	assert.Equal(t, uint64(11), show.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowCreateMissingArtist(t *testing.T) {
	db, mock := newMock(t)
	repo := NewShowRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM artists WHERE id = ?")).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectRollback()

	show := &Show{ArtistID: 999, VenueID: 7, StartTime: "2035-04-01 20:00:00"}
	err := repo.Create(context.Background(), show)
	assert.ErrorIs(t, err, ErrArtistNotFound)
	// No INSERT was ever attempted; the transaction rolled back.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowCreateMissingVenue(t *testing.T) {
	db, mock := newMock(t)
	repo := NewShowRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM artists WHERE id = ?")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM venues WHERE id = ?")).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectRollback()

	show := &Show{ArtistID: 4, VenueID: 999, StartTime: "2035-04-01 20:00:00"}
	err := repo.Create(context.Background(), show)
	assert.ErrorIs(t, err, ErrVenueNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowCreateRequiredFields(t *testing.T) {
	db, mock := newMock(t)
	repo := NewShowRepo(db)

	err := repo.Create(context.Background(), &Show{VenueID: 7, StartTime: "2035-04-01 20:00:00"})
	assert.True(t, IsValidation(err))

	err = repo.Create(context.Background(), &Show{ArtistID: 4, VenueID: 7})
	assert.True(t, IsValidation(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowListAll(t *testing.T) {
	db, mock := newMock(t)
	repo := NewShowRepo(db)

	cols := []string{"venue_id", "v.name", "artist_id", "a.name", "a.image_link", "start_time"}
	mock.ExpectQuery("SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(7, "The Musical Hop", 4, "Guns N Petals", "https://example.com/gnp.jpg", "2019-05-21 21:30:00").
			AddRow(3, "Park Square Live Music & Coffee", 5, "Matt Quevedo", "https://example.com/mq.jpg", "2035-04-01 20:00:00"))

	rows, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Guns N Petals", rows[0].ArtistName)
	assert.Equal(t, uint64(3), rows[1].VenueID)
}

// The end-to-end listing scenario at the repository level: create a show
// far in the future, read the venue's schedule back, and confirm it lands
// in upcoming with the correct counts.
func TestShowListedUnderUpcoming(t *testing.T) {
	db, mock := newMock(t)
	repo := NewShowRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM artists WHERE id = ?")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM venues WHERE id = ?")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec("INSERT INTO shows").
		WithArgs(4, 7, "2035-04-01 20:00:00").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	show := &Show{ArtistID: 4, VenueID: 7, StartTime: "2035-04-01 20:00:00"}
	require.NoError(t, repo.Create(context.Background(), show))

	mock.ExpectQuery("SELECT s.artist_id, a.name, a.image_link, s.start_time").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"artist_id", "name", "image_link", "start_time"}).
			AddRow(4, "Guns N Petals", "https://example.com/gnp.jpg", "2035-04-01 20:00:00"))

	schedule, err := repo.ListByVenue(context.Background(), 7)
	require.NoError(t, err)

	past, upcoming, err := PartitionArtistShows(schedule, time.Now().UTC())
	require.NoError(t, err)
	assert.Len(t, past, 0)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Guns N Petals", upcoming[0].ArtistName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
