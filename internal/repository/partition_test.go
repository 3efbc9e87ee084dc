package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pivot = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func artistRow(ts string) ArtistShowRow {
	return ArtistShowRow{ArtistID: 1, ArtistName: "Guided By Voices", ArtistImageLink: "https://example.com/gbv.jpg", StartTime: ts}
}

func TestPartitionArtistShowsCompleteness(t *testing.T) {
	rows := []ArtistShowRow{
		artistRow("2019-06-15 20:00:00"),
		artistRow("2025-12-31 23:00:00"),
		artistRow("2026-01-01 20:00:00"),
		artistRow("2035-04-01 20:00:00"),
	}
	past, upcoming, err := PartitionArtistShows(rows, pivot)
	require.NoError(t, err)

	// Every show lands in exactly one side.
	assert.Len(t, past, 2)
	assert.Len(t, upcoming, 2)
	assert.Equal(t, len(rows), len(past)+len(upcoming))
	for _, row := range past {
		start, perr := time.ParseInLocation(TimeLayout, row.StartTime, time.UTC)
		require.NoError(t, perr)
		assert.True(t, start.Before(pivot))
	}
	for _, row := range upcoming {
		start, perr := time.ParseInLocation(TimeLayout, row.StartTime, time.UTC)
		require.NoError(t, perr)
		assert.False(t, start.Before(pivot))
	}
}

func TestPartitionPivotEqualityIsUpcoming(t *testing.T) {
	// The split is strict two-way: a show starting exactly at the pivot
	// belongs to upcoming, never to both or neither.
	rows := []ArtistShowRow{artistRow("2026-01-01 12:00:00")}
	past, upcoming, err := PartitionArtistShows(rows, pivot)
	require.NoError(t, err)
	assert.Empty(t, past)
	assert.Len(t, upcoming, 1)
}

func TestPartitionVenueShows(t *testing.T) {
	rows := []VenueShowRow{
		{VenueID: 3, VenueName: "The Musical Hop", VenueImageLink: "https://example.com/hop.jpg", StartTime: "2020-02-02 21:30:00"},
		{VenueID: 4, VenueName: "Park Square Live Music & Coffee", VenueImageLink: "https://example.com/psq.jpg", StartTime: "2035-04-08 20:00:00"},
	}
	past, upcoming, err := PartitionVenueShows(rows, pivot)
	require.NoError(t, err)
	require.Len(t, past, 1)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "The Musical Hop", past[0].VenueName)
	assert.Equal(t, "Park Square Live Music & Coffee", upcoming[0].VenueName)
}

func TestPartitionEmptySchedule(t *testing.T) {
	past, upcoming, err := PartitionArtistShows(nil, pivot)
	require.NoError(t, err)
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}

func TestPartitionMalformedTimestamp(t *testing.T) {
	_, _, err := PartitionArtistShows([]ArtistShowRow{artistRow("next tuesday")}, pivot)
	assert.Error(t, err)
}
