// Package datematch finds calendar dates embedded in outline labels.
package datematch

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Layout is the only date format recognized inside labels.
const Layout = "2006-01-02"

// ErrMalformedDate is returned when a token matches the date pattern but is
// not a valid calendar date (e.g. 2021-02-30).
var ErrMalformedDate = errors.New("malformed date")

var datePattern = regexp.MustCompile(`[0-9]{4}-[0-9]{2}-[0-9]{2}`)

// HasDate reports whether label contains a date token.
func HasDate(label string) bool {
	return datePattern.MatchString(label)
}

// Extract returns the first date token in label.
func Extract(label string) (string, bool) {
	token := datePattern.FindString(label)
	return token, token != ""
}

// Timestamp converts a date token into milliseconds since the Unix epoch at
// midnight UTC. Parsing never depends on the local time zone or locale.
func Timestamp(token string) (int64, error) {
	t, err := time.ParseInLocation(Layout, token, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrMalformedDate, token, err)
	}
	return t.UnixMilli(), nil
}

// LabelTimestamp extracts the date token from label and converts it.
func LabelTimestamp(label string) (int64, error) {
	token, ok := Extract(label)
	if !ok {
		return 0, fmt.Errorf("%w: no date in %q", ErrMalformedDate, label)
	}
	return Timestamp(token)
}
