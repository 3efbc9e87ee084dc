package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestampLayouts(t *testing.T) {
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2035-04-01T20:00:00Z",
		"2035-04-01T20:00:00",
		"2035-04-01 20:00:00",
		"  2035-04-01T20:00:00  ",
	} {
		got, err := ParseTimestamp(in)
		require.NoError(t, err, "input %q", in)
		assert.True(t, got.Equal(want), "input %q parsed to %v", in, got)
	}
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "2035-13-40 99:00:00", "01/04/2035"} {
		_, err := ParseTimestamp(in)
		assert.ErrorIs(t, err, ErrBadTimestamp, "input %q", in)
	}
}

func TestToDBTimeNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2035, 4, 1, 22, 0, 0, 0, loc)
	assert.Equal(t, "2035-04-01 20:00:00", ToDBTime(in))
}

func TestToISO8601(t *testing.T) {
	got, err := ToISO8601("2035-04-01 20:00:00")
	require.NoError(t, err)
	assert.Equal(t, "2035-04-01T20:00:00Z", got)

	_, err = ToISO8601("not a timestamp")
	assert.Error(t, err)
}

func TestFormatDisplay(t *testing.T) {
	full, err := FormatDisplay("2035-04-01 20:00:00", "full")
	require.NoError(t, err)
	assert.Equal(t, "Sunday April 1, 2035 at 8:00PM", full)

	medium, err := FormatDisplay("2035-04-01 20:00:00", "medium")
	require.NoError(t, err)
	assert.Equal(t, "Sun Apr 01, 2035 8:00PM", medium)

	// Unknown options fall back to the medium style.
	fallback, err := FormatDisplay("2035-04-01 20:00:00", "short")
	require.NoError(t, err)
	assert.Equal(t, medium, fallback)
}
