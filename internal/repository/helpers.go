package repository

import "time"

// timestampLayout is fixed-width so text ordering matches time ordering.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// nowUTC returns the current UTC time in the stored layout.
func nowUTC() string {
	return formatTimestamp(time.Now())
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// parseTimestamp parses a timestamp column written by this package.
func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}
