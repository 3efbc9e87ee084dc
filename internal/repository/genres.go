package repository

import "strings"

// Genres are carried as an ordered list of tags in Go but persisted as a
// single comma-joined column, matching the original single-string schema.
// The round trip is lossless for tag values that do not contain a comma;
// delimiter collision is a known limitation of the schema and is not
// guarded against here.

// joinGenres serializes a tag list into the stored column value.
func joinGenres(genres []string) string {
	return strings.Join(genres, ",")
}

// splitGenres deserializes the stored column value back into a tag list.
// An empty column yields a nil slice rather than a one-element slice
// containing the empty string.
func splitGenres(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
