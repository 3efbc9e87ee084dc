package repository

import "time"

// Schedule partitioning. A schedule is split into past and upcoming
// against a pivot clock at read time: start times strictly before the
// pivot are past, everything else is upcoming. Every row lands in exactly
// one side, so len(past)+len(upcoming) always equals len(rows). Nothing
// is materialized; a show migrates from upcoming to past as real time
// passes without any write.

// PartitionArtistShows splits a venue's schedule rows around the pivot.
func PartitionArtistShows(rows []ArtistShowRow, pivot time.Time) (past, upcoming []ArtistShowRow, err error) {
	past = []ArtistShowRow{}
	upcoming = []ArtistShowRow{}
	for _, row := range rows {
		up, perr := startsAtOrAfter(row.StartTime, pivot)
		if perr != nil {
			return nil, nil, perr
		}
		if up {
			upcoming = append(upcoming, row)
		} else {
			past = append(past, row)
		}
	}
	return past, upcoming, nil
}

// PartitionVenueShows splits an artist's schedule rows around the pivot.
func PartitionVenueShows(rows []VenueShowRow, pivot time.Time) (past, upcoming []VenueShowRow, err error) {
	past = []VenueShowRow{}
	upcoming = []VenueShowRow{}
	for _, row := range rows {
		up, perr := startsAtOrAfter(row.StartTime, pivot)
		if perr != nil {
			return nil, nil, perr
		}
		if up {
			upcoming = append(upcoming, row)
		} else {
			past = append(past, row)
		}
	}
	return past, upcoming, nil
}

// startsAtOrAfter reports whether a DB timestamp is at or after the pivot.
func startsAtOrAfter(ts string, pivot time.Time) (bool, error) {
	t, err := time.ParseInLocation(TimeLayout, ts, time.UTC)
	if err != nil {
		return false, err
	}
	return !t.Before(pivot), nil
}
