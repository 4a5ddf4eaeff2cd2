package jsonutil

import (
	"errors"
	"time"
)

// isoLayouts are the ISO-8601 forms accepted by DateTime, most specific
// first. Fractional seconds are accepted after any seconds field.
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseISODateTime parses s keeping its UTC offset. Values without an
// offset are taken as UTC.
func parseISODateTime(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("not an ISO-8601 date-time")
}
